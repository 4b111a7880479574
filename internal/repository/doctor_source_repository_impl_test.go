package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSourceServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestDoctorSourceRepository_FetchDoctors(t *testing.T) {
	srv, calls := newSourceServer(t, http.StatusOK, `[{"id":"1","name":"Dr. Rao"}]`)
	repo := NewDoctorSourceRepository(srv.URL, time.Second)

	payload, err := repo.FetchDoctors(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","name":"Dr. Rao"}]`, string(payload))
	assert.Equal(t, 1, *calls)
}

func TestDoctorSourceRepository_NonSuccessStatus(t *testing.T) {
	srv, calls := newSourceServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	repo := NewDoctorSourceRepository(srv.URL, time.Second)

	payload, err := repo.FetchDoctors(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Nil(t, payload)
	assert.Equal(t, 1, *calls, "failed fetches are not retried")
}

func TestDoctorSourceRepository_InvalidJSON(t *testing.T) {
	srv, _ := newSourceServer(t, http.StatusOK, `<html>not json</html>`)
	repo := NewDoctorSourceRepository(srv.URL, time.Second)

	_, err := repo.FetchDoctors(context.Background())

	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDoctorSourceRepository_NonArrayIsNotAnError(t *testing.T) {
	srv, _ := newSourceServer(t, http.StatusOK, `{"doctors":[]}`)
	repo := NewDoctorSourceRepository(srv.URL, time.Second)

	payload, err := repo.FetchDoctors(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}

func TestDoctorSourceRepository_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewDoctorSourceRepository(url, time.Second).FetchDoctors(context.Background())

	assert.Error(t, err)
}
