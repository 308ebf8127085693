// Package qr fetches prescription voucher images from the external QR code
// service. The service renders the voucher payload as a PNG; no QR encoding
// happens locally.
package qr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// VoucherPayload is the data encoded into a prescription QR code, scanned
// back by the pharmacy.
type VoucherPayload struct {
	PrescriptionID string `json:"prescriptionId"`
	PatientID      string `json:"patientId"`
	Medicine       string `json:"medicine,omitempty"`
}

// Client calls the QR image service (api.qrserver.com by default).
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ImageURL builds the service URL for a voucher at the given pixel size.
func (c *Client) ImageURL(payload VoucherPayload, size int) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set("size", fmt.Sprintf("%dx%d", size, size))
	q.Set("data", string(data))
	return c.BaseURL + "?" + q.Encode(), nil
}

// FetchImage downloads the rendered QR PNG for a voucher.
func (c *Client) FetchImage(ctx context.Context, payload VoucherPayload, size int) ([]byte, error) {
	u, err := c.ImageURL(payload, size)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qr: service returned %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
