package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/EvarJr/EBotikaApp/internal/api/handler"
	"github.com/EvarJr/EBotikaApp/internal/chat"
	"github.com/EvarJr/EBotikaApp/internal/community"
	"github.com/EvarJr/EBotikaApp/internal/config"
	"github.com/EvarJr/EBotikaApp/internal/consult"
	"github.com/EvarJr/EBotikaApp/internal/directory"
	"github.com/EvarJr/EBotikaApp/internal/localization"
	"github.com/EvarJr/EBotikaApp/internal/qr"
	"github.com/EvarJr/EBotikaApp/internal/seed"
	"github.com/EvarJr/EBotikaApp/internal/storage"
	"github.com/EvarJr/EBotikaApp/internal/triage"
)

const snapshotInterval = 30 * time.Second

func main() {
	log.Println("Starting Ebotika+ Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}
	store := storage.NewService(rdb)

	localizer, err := localization.NewLocalizer(cfg.LocalesDir)
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	// Domain state: seeded demo data, then whatever survived the last run.
	users := directory.New(seed.Users())
	residents := directory.NewResidentStore(seed.Residents())
	profiles := directory.NewProfileStore(seed.DoctorProfiles())
	consults := consult.NewStore(seed.Consultations(), seed.Prescriptions())
	forum := community.NewForum(seed.ForumPosts())

	threads := chat.NewStore()
	gate := chat.NewGate()
	restoreChatState(store, threads, gate)

	private := chat.NewPrivateStore()
	private.Restore(seed.PrivateThreads())

	chatSvc := chat.NewService(users, gate, threads)
	inbox := chat.NewInbox(threads, users)

	h := &handler.Handler{
		Users:     users,
		Residents: residents,
		Profiles:  profiles,
		Chat:      chatSvc,
		Inbox:     inbox,
		Private:   private,
		Forum:     forum,
		Consults:  consults,
		Triage:    triage.NewResponder(),
		Store:     store,
		Localizer: localizer,
		QR:        qr.NewClient(cfg.QRBaseURL),
		JWTSecret: []byte(cfg.JWTSecret),
	}

	r := gin.Default()
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// Periodic snapshot keeps the threads and access windows durable
	// without a write hook on every message.
	stopSnapshots := make(chan struct{})
	go func() {
		ticker := time.NewTicker(snapshotInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				saveChatState(store, threads, gate)
			case <-stopSnapshots:
				return
			}
		}
	}()

	go func() {
		log.Printf("Listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	close(stopSnapshots)
	saveChatState(store, threads, gate)

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func restoreChatState(store *storage.Service, threads *chat.Store, gate *chat.Gate) {
	saved, err := store.LoadThreads()
	if err != nil {
		log.Printf("WARNING: failed to load saved threads: %v", err)
	}
	if saved != nil {
		threads.Restore(saved)
		log.Printf("Restored %d chat threads", len(saved))
	} else {
		threads.Restore(seed.PatientDoctorThreads())
	}

	windows, err := store.LoadAccessWindows()
	if err != nil {
		log.Printf("WARNING: failed to load access windows: %v", err)
	}
	if windows != nil {
		gate.Restore(windows)
	}
}

func saveChatState(store *storage.Service, threads *chat.Store, gate *chat.Gate) {
	if err := store.SaveThreads(threads.Snapshot()); err != nil {
		log.Printf("ERROR: failed to save threads: %v", err)
	}
	if err := store.SaveAccessWindows(gate.Snapshot()); err != nil {
		log.Printf("ERROR: failed to save access windows: %v", err)
	}
}
