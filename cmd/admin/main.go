// Command admin is a small moderation CLI against a running Ebotika+
// server: ban/unban accounts, grant premium, pull the consultation export.
// It logs in with the RHU admin credentials from the environment.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

func main() {
	baseURL := getenv("EBOTIKA_URL", "http://localhost:8080")
	email := getenv("ADMIN_EMAIL", "admin@ebotika.ph")
	password := getenv("ADMIN_PASSWORD", "password")

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <ban|unban|premium|export> [args]")
		os.Exit(1)
	}

	token, err := login(baseURL, email, password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	command := os.Args[1]
	switch command {
	case "ban", "unban":
		if len(os.Args) != 3 {
			fmt.Printf("Usage: admin %s <user_id>\n", command)
			os.Exit(1)
		}
		status := "banned"
		if command == "unban" {
			status = "active"
		}
		body, _ := json.Marshal(map[string]string{"status": status})
		if err := call(http.MethodPatch, baseURL+"/api/admin/users/"+os.Args[2]+"/status", token, body, nil); err != nil {
			log.Fatalf("Error updating status: %v", err)
		}
		fmt.Printf("User %s is now %s.\n", os.Args[2], status)
	case "premium":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin premium <user_id>")
			os.Exit(1)
		}
		if err := call(http.MethodPost, baseURL+"/api/admin/users/"+os.Args[2]+"/premium", token, nil, nil); err != nil {
			log.Fatalf("Error upgrading user: %v", err)
		}
		fmt.Printf("User %s upgraded to premium.\n", os.Args[2])
	case "export":
		if err := call(http.MethodGet, baseURL+"/api/consultations/export", token, nil, os.Stdout); err != nil {
			log.Fatalf("Error exporting consultations: %v", err)
		}
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func login(baseURL, email, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(baseURL+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned %s", resp.Status)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func call(method, url, token string, body []byte, out io.Writer) error {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %s: %s", resp.Status, msg)
	}
	if out != nil {
		_, err = io.Copy(out, resp.Body)
	}
	return err
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
