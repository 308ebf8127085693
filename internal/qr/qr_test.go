package qr_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvarJr/EBotikaApp/internal/qr"
)

func TestImageURLEncodesPayload(t *testing.T) {
	c := qr.NewClient("https://api.qrserver.com/v1/create-qr-code/")
	payload := qr.VoucherPayload{PrescriptionID: "rx1", PatientID: "p1", Medicine: "Paracetamol 500mg"}

	u, err := c.ImageURL(payload, 200)
	require.NoError(t, err)
	assert.Contains(t, u, "size=200x200")
	assert.Contains(t, u, "rx1")
}

func TestFetchImage(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "150x150", r.URL.Query().Get("size"))

		var payload qr.VoucherPayload
		require.NoError(t, json.Unmarshal([]byte(r.URL.Query().Get("data")), &payload))
		assert.Equal(t, "rx1", payload.PrescriptionID)
		assert.Equal(t, "p1", payload.PatientID)

		w.Write(png)
	}))
	defer srv.Close()

	c := qr.NewClient(srv.URL)
	got, err := c.FetchImage(context.Background(), qr.VoucherPayload{PrescriptionID: "rx1", PatientID: "p1"}, 150)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestFetchImageServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := qr.NewClient(srv.URL)
	_, err := c.FetchImage(context.Background(), qr.VoucherPayload{PrescriptionID: "rx1"}, 150)
	assert.Error(t, err)
}
