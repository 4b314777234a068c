package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	appErrors "github.com/madinatul-uloom/madrasah-admin-api/pkg/errors"
)

const (
	dashboardCacheKey = "dashboard:stats"
	visitorCountKey   = "visitors:total"
)

type studentCounter interface {
	CountByType(ctx context.Context, studentType models.StudentType) (int, error)
}

type recordCounter interface {
	Count(ctx context.Context) (int, error)
}

type amountTotaler interface {
	TotalAmount(ctx context.Context) (float64, error)
}

// DashboardStats is the aggregate snapshot the dashboard section renders.
type DashboardStats struct {
	TotalStudents          int       `json:"total_students"`
	ResidentialStudents    int       `json:"residential_students"`
	NonResidentialStudents int       `json:"non_residential_students"`
	TotalResults           int       `json:"total_results"`
	TotalDonations         float64   `json:"total_donations"`
	DonationsThisMonth     float64   `json:"donations_this_month"`
	TotalIncome            float64   `json:"total_income"`
	TotalExpenses          float64   `json:"total_expenses"`
	Balance                float64   `json:"balance"`
	FeedbackCount          int       `json:"feedback_count"`
	VisitorCount           int64     `json:"visitor_count"`
	GeneratedAt            time.Time `json:"generated_at"`
}

// DashboardService aggregates stats across the domain with a short-lived
// cache, and tracks the public visitor counter.
type DashboardService struct {
	students  studentCounter
	results   recordCounter
	feedback  recordCounter
	donations donationTotals
	incomes   amountTotaler
	expenses  amountTotaler
	redis     *redis.Client
	ttl       time.Duration
	logger    *zap.Logger
}

// NewDashboardService constructs DashboardService. The redis client may be
// nil; stats are then computed on every request and the visitor counter
// reports zero.
func NewDashboardService(
	students studentCounter,
	results recordCounter,
	feedback recordCounter,
	donations donationTotals,
	incomes amountTotaler,
	expenses amountTotaler,
	redisClient *redis.Client,
	ttl time.Duration,
	logger *zap.Logger,
) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		students:  students,
		results:   results,
		feedback:  feedback,
		donations: donations,
		incomes:   incomes,
		expenses:  expenses,
		redis:     redisClient,
		ttl:       ttl,
		logger:    logger,
	}
}

// Stats returns the aggregate snapshot, served from cache when fresh. The
// boolean reports whether the snapshot came from the cache.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, bool, error) {
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var cached DashboardStats
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, true, nil
			}
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, false, err
	}

	if s.redis != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.redis.Set(ctx, dashboardCacheKey, raw, s.ttl).Err(); err != nil {
				s.logger.Warn("failed to cache dashboard stats", zap.Error(err))
			}
		}
	}
	return stats, false, nil
}

// Invalidate drops the cached snapshot so the next read recomputes.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, dashboardCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}

// RecordVisit bumps and returns the public visitor counter.
func (s *DashboardService) RecordVisit(ctx context.Context) int64 {
	if s.redis == nil {
		return 0
	}
	count, err := s.redis.Incr(ctx, visitorCountKey).Result()
	if err != nil {
		s.logger.Warn("failed to bump visitor counter", zap.Error(err))
		return 0
	}
	return count
}

func (s *DashboardService) compute(ctx context.Context) (*DashboardStats, error) {
	residential, err := s.students.CountByType(ctx, models.StudentResidential)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count students")
	}
	nonResidential, err := s.students.CountByType(ctx, models.StudentNonResidential)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count students")
	}
	resultCount, err := s.results.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count results")
	}
	feedbackCount, err := s.feedback.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count feedback")
	}
	totalDonations, err := s.donations.TotalAmount(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to total donations")
	}
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthDonations, err := s.donations.TotalSince(ctx, monthStart)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to total recent donations")
	}
	totalIncome, err := s.incomes.TotalAmount(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to total incomes")
	}
	totalExpenses, err := s.expenses.TotalAmount(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to total expenses")
	}

	var visitors int64
	if s.redis != nil {
		if count, err := s.redis.Get(ctx, visitorCountKey).Int64(); err == nil {
			visitors = count
		}
	}

	return &DashboardStats{
		TotalStudents:          residential + nonResidential,
		ResidentialStudents:    residential,
		NonResidentialStudents: nonResidential,
		TotalResults:           resultCount,
		TotalDonations:         totalDonations,
		DonationsThisMonth:     monthDonations,
		TotalIncome:            totalIncome,
		TotalExpenses:          totalExpenses,
		Balance:                totalIncome - totalExpenses,
		FeedbackCount:          feedbackCount,
		VisitorCount:           visitors,
		GeneratedAt:            now,
	}, nil
}
