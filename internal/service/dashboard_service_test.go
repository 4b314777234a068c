package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
)

type stubStudentCounter struct {
	residential    int
	nonResidential int
}

func (s *stubStudentCounter) CountByType(_ context.Context, studentType models.StudentType) (int, error) {
	if studentType == models.StudentResidential {
		return s.residential, nil
	}
	return s.nonResidential, nil
}

type stubCounter struct{ count int }

func (s *stubCounter) Count(context.Context) (int, error) { return s.count, nil }

type stubDonationTotals struct {
	total float64
	month float64
}

func (s *stubDonationTotals) TotalAmount(context.Context) (float64, error) { return s.total, nil }
func (s *stubDonationTotals) TotalSince(context.Context, time.Time) (float64, error) {
	return s.month, nil
}

type stubTotaler struct{ total float64 }

func (s *stubTotaler) TotalAmount(context.Context) (float64, error) { return s.total, nil }

func TestDashboardStatsAggregates(t *testing.T) {
	svc := NewDashboardService(
		&stubStudentCounter{residential: 30, nonResidential: 70},
		&stubCounter{count: 12},
		&stubCounter{count: 4},
		&stubDonationTotals{total: 90000, month: 15000},
		&stubTotaler{total: 120000},
		&stubTotaler{total: 45000},
		nil, time.Minute, nil,
	)

	stats, cached, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.False(t, cached)
	assert.Equal(t, 100, stats.TotalStudents)
	assert.Equal(t, 30, stats.ResidentialStudents)
	assert.Equal(t, 70, stats.NonResidentialStudents)
	assert.Equal(t, 12, stats.TotalResults)
	assert.Equal(t, 90000.0, stats.TotalDonations)
	assert.Equal(t, 15000.0, stats.DonationsThisMonth)
	assert.Equal(t, 120000.0, stats.TotalIncome)
	assert.Equal(t, 45000.0, stats.TotalExpenses)
	assert.Equal(t, 75000.0, stats.Balance)
	assert.Equal(t, 4, stats.FeedbackCount)
	assert.Zero(t, stats.VisitorCount)
	assert.False(t, stats.GeneratedAt.IsZero())
}

func TestDashboardRecordVisitWithoutRedis(t *testing.T) {
	svc := NewDashboardService(
		&stubStudentCounter{}, &stubCounter{}, &stubCounter{},
		&stubDonationTotals{}, &stubTotaler{}, &stubTotaler{},
		nil, time.Minute, nil,
	)

	assert.Zero(t, svc.RecordVisit(context.Background()))
}
