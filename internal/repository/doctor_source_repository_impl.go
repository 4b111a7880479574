package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	domainRepo "doctor-directory/internal/domain/repository"
)

// maxPayloadBytes caps the upstream response body.
const maxPayloadBytes = 16 << 20

var ErrInvalidPayload = errors.New("doctor source returned invalid JSON")

type doctorSourceRepository struct {
	url        string
	httpClient *http.Client
}

func NewDoctorSourceRepository(url string, timeout time.Duration) domainRepo.DoctorSourceRepository {
	return &doctorSourceRepository{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchDoctors performs a single GET. Non-2xx statuses, transport errors and
// bodies that are not JSON are returned as errors; nothing is retried.
func (r *doctorSourceRepository) FetchDoctors(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build doctor source request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch doctors: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("doctor source returned status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read doctor source body: %w", err)
	}
	if !json.Valid(payload) {
		return nil, ErrInvalidPayload
	}

	return payload, nil
}
