package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/catalog"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/config"
)

type stubProvider struct {
	inspiration *models.DailyInspiration
	err         error
	calls       int
}

func (s *stubProvider) Fetch(context.Context) (*models.DailyInspiration, error) {
	s.calls++
	return s.inspiration, s.err
}

func TestDailyServesProviderContent(t *testing.T) {
	fresh := &models.DailyInspiration{
		Verse: models.Verse{Arabic: "آية", English: "verse", Bengali: "আয়াত", Reference: "1:1"},
		Dua:   models.Dua{Arabic: "دعاء", English: "dua", Bengali: "দোয়া"},
	}
	svc := NewInspirationService(&stubProvider{inspiration: fresh}, nil, time.Hour, nil)

	got := svc.Daily(context.Background())

	assert.Equal(t, *fresh, got)
}

func TestDailyFallsBackOnProviderError(t *testing.T) {
	svc := NewInspirationService(&stubProvider{err: errors.New("upstream down")}, nil, time.Hour, nil)

	got := svc.Daily(context.Background())

	assert.Equal(t, catalog.FallbackInspiration, got)
}

func TestHTTPProviderDecodesResponse(t *testing.T) {
	payload := models.DailyInspiration{
		Verse: models.Verse{Arabic: "آية", English: "verse", Bengali: "আয়াত", Reference: "94:6"},
		Dua:   models.Dua{Arabic: "دعاء", English: "dua", Bengali: "দোয়া"},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	provider := NewHTTPInspirationProvider(config.InspirationConfig{
		Endpoint: server.URL,
		APIKey:   "key-1",
		Model:    "test-model",
		Timeout:  time.Second,
	})

	got, err := provider.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, payload, *got)
}

func TestHTTPProviderRejectsIncompleteBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"verse": {}, "dua": {}}`))
	}))
	defer server.Close()

	provider := NewHTTPInspirationProvider(config.InspirationConfig{Endpoint: server.URL, Timeout: time.Second})

	_, err := provider.Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPProviderRejectsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := NewHTTPInspirationProvider(config.InspirationConfig{Endpoint: server.URL, Timeout: time.Second})

	_, err := provider.Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPProviderRequiresEndpoint(t *testing.T) {
	provider := NewHTTPInspirationProvider(config.InspirationConfig{Timeout: time.Second})

	_, err := provider.Fetch(context.Background())
	assert.Error(t, err)
}

func TestDailyTimeoutDegradesToFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	provider := NewHTTPInspirationProvider(config.InspirationConfig{
		Endpoint: server.URL,
		Timeout:  10 * time.Millisecond,
	})
	svc := NewInspirationService(provider, nil, time.Hour, nil)

	got := svc.Daily(context.Background())

	assert.Equal(t, catalog.FallbackInspiration, got)
}
