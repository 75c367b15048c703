// Package mlclient calls an external risk model over HTTP.
package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"traffix/internal/domain"
	"traffix/pkg/validator"
)

type HTTPClassifier struct {
	endpoint string
	client   *http.Client
}

func NewHTTPClassifier(baseURL string, timeout time.Duration) *HTTPClassifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPClassifier{
		endpoint: strings.TrimRight(baseURL, "/") + "/predict",
		client:   &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Features []float64 `json:"features"`
}

type predictResponse struct {
	Label *int `json:"label"`
}

func (c *HTTPClassifier) Predict(ctx context.Context, features domain.RiskFeatureVector) (int, error) {
	if err := validator.ValidateStruct(features); err != nil {
		return 0, fmt.Errorf("invalid feature vector: %w", err)
	}

	body, err := json.Marshal(predictRequest{Features: features.Values()})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal ML request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create ML request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("ML service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("ML service returned status: %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("failed to decode ML response: %w", err)
	}
	if out.Label == nil || (*out.Label != 0 && *out.Label != 1) {
		return 0, errors.New("ML service returned invalid label")
	}
	return *out.Label, nil
}
