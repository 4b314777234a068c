package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/catalog"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/config"
)

// InspirationProvider fetches a daily verse and dua from an external source.
type InspirationProvider interface {
	Fetch(ctx context.Context) (*models.DailyInspiration, error)
}

// HTTPInspirationProvider calls a JSON generation endpoint. The response body
// must decode straight into DailyInspiration.
type HTTPInspirationProvider struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

// NewHTTPInspirationProvider constructs the provider from config.
func NewHTTPInspirationProvider(cfg config.InspirationConfig) *HTTPInspirationProvider {
	return &HTTPInspirationProvider{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

// Fetch requests a fresh verse and dua.
func (p *HTTPInspirationProvider) Fetch(ctx context.Context) (*models.DailyInspiration, error) {
	if p.endpoint == "" {
		return nil, fmt.Errorf("inspiration endpoint not configured")
	}
	payload, err := json.Marshal(map[string]string{
		"model":  p.model,
		"prompt": "Provide one short Quranic verse and one short dua, each with Arabic text, English and Bengali translations, and the verse reference.",
	})
	if err != nil {
		return nil, fmt.Errorf("encode inspiration request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build inspiration request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch inspiration: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inspiration endpoint returned %d", resp.StatusCode)
	}

	var inspiration models.DailyInspiration
	if err := json.NewDecoder(resp.Body).Decode(&inspiration); err != nil {
		return nil, fmt.Errorf("decode inspiration response: %w", err)
	}
	if inspiration.Verse.Arabic == "" || inspiration.Dua.Arabic == "" {
		return nil, fmt.Errorf("inspiration response incomplete")
	}
	return &inspiration, nil
}

// InspirationService serves the daily inspiration with a per-day cache. A
// failed or slow fetch degrades to the built-in fallback instead of erroring;
// the public homepage must never break because an upstream did.
type InspirationService struct {
	provider InspirationProvider
	redis    *redis.Client
	ttl      time.Duration
	logger   *zap.Logger
	metrics  *MetricsService
}

// NewInspirationService constructs InspirationService. The redis client may be
// nil, in which case every request hits the provider.
func NewInspirationService(provider InspirationProvider, redisClient *redis.Client, ttl time.Duration, logger *zap.Logger) *InspirationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InspirationService{provider: provider, redis: redisClient, ttl: ttl, logger: logger}
}

// WithMetrics attaches fallback instrumentation.
func (s *InspirationService) WithMetrics(metrics *MetricsService) *InspirationService {
	s.metrics = metrics
	return s
}

// Daily returns today's verse and dua. Fallback content is never cached, so a
// recovered upstream takes effect on the next request.
func (s *InspirationService) Daily(ctx context.Context) models.DailyInspiration {
	key := fmt.Sprintf("inspiration:daily:%s", time.Now().UTC().Format("2006-01-02"))

	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, key).Result(); err == nil {
			var cached models.DailyInspiration
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached
			}
		}
	}

	inspiration, err := s.provider.Fetch(ctx)
	if err != nil {
		s.logger.Warn("inspiration fetch failed, serving fallback", zap.Error(err))
		s.metrics.RecordInspirationFallback()
		return catalog.FallbackInspiration
	}

	if s.redis != nil {
		if raw, err := json.Marshal(inspiration); err == nil {
			if err := s.redis.Set(ctx, key, raw, s.ttl).Err(); err != nil {
				s.logger.Warn("failed to cache inspiration", zap.Error(err))
			}
		}
	}
	return *inspiration
}
