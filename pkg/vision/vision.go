// Package vision wraps the Google Cloud Vision images:annotate endpoint
// for text detection.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ProviderError is an error reported by the Vision API itself, as
// opposed to a transport failure.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return "Google Vision API Error: " + e.Message
}

type Client struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://vision.googleapis.com"
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type annotateImage struct {
	Content string `json:"content"`
}

type annotateFeature struct {
	Type string `json:"type"`
}

type annotateEntry struct {
	Image    annotateImage     `json:"image"`
	Features []annotateFeature `json:"features"`
}

type annotateRequest struct {
	Requests []annotateEntry `json:"requests"`
}

type apiStatus struct {
	Message string `json:"message"`
}

type textAnnotation struct {
	Description string `json:"description"`
}

type annotateResult struct {
	Error           *apiStatus       `json:"error"`
	TextAnnotations []textAnnotation `json:"textAnnotations"`
}

type annotateResponse struct {
	Responses []annotateResult `json:"responses"`
}

// ExtractText runs TEXT_DETECTION over the image and returns the full
// recognized text. An image with no detectable text yields "" with a
// nil error.
func (c *Client) ExtractText(ctx context.Context, image []byte) (string, error) {
	payload := annotateRequest{
		Requests: []annotateEntry{{
			Image:    annotateImage{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []annotateFeature{{Type: "TEXT_DETECTION"}},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("unexpected OCR error: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/images:annotate?key="+c.APIKey, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("unexpected OCR error: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	log.Printf("[VISION] POST %s/v1/images:annotate image_bytes=%d", c.BaseURL, len(image))
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error connecting to Google Vision API: %w", err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("network error connecting to Google Vision API: %w", err)
	}

	var out annotateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("unexpected OCR error: %w", err)
	}
	if len(out.Responses) == 0 {
		return "", nil
	}
	first := out.Responses[0]
	if first.Error != nil && first.Error.Message != "" {
		return "", &ProviderError{Message: first.Error.Message}
	}
	if len(first.TextAnnotations) > 0 {
		return first.TextAnnotations[0].Description, nil
	}
	return "", nil
}
