package dashboard

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/ami-meeting-svc/errors"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/repositories"
)

// AssigneeStats aggregates item counts per status for one assignee.
// Assignee is nil for the single row covering unassigned items.
type AssigneeStats struct {
	Assignee        *string
	TodoCount       int64
	InProgressCount int64
	DoneCount       int64
}

// Metrics is the dashboard aggregation result
type Metrics struct {
	TotalItems     int64
	CompletionRate float64
	OverdueCount   int64
	AssigneeStats  []AssigneeStats
}

// Service defines the dashboard aggregation use case
type Service interface {
	// ComputeMetrics aggregates over every action item in the store
	ComputeMetrics(ctx context.Context) (*Metrics, error)
}

// DashboardService implements Service.
// Counts are not scoped to the acting user: the dashboard is a store-wide
// view, kept as-is until product clarifies otherwise.
type DashboardService struct {
	actionItemRepo repositories.ActionItemRepository
	logger         *zap.Logger
}

// Ensure DashboardService implements Service interface
var _ Service = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(actionItemRepo repositories.ActionItemRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		actionItemRepo: actionItemRepo,
		logger:         logger,
	}
}

// ComputeMetrics computes the completion rate and per-assignee counts
func (s *DashboardService) ComputeMetrics(ctx context.Context) (*Metrics, error) {
	totalItems, err := s.actionItemRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.ErrStorage(err)
	}

	doneCount, err := s.actionItemRepo.CountByStatus(ctx, entities.ActionItemStatusDone)
	if err != nil {
		return nil, apperrors.ErrStorage(err)
	}

	overdueCount, err := s.actionItemRepo.CountOverdue(ctx)
	if err != nil {
		return nil, apperrors.ErrStorage(err)
	}

	completionRate := 0.0
	if totalItems > 0 {
		completionRate = math.Round(float64(doneCount)/float64(totalItems)*1000) / 10
	}

	rows, err := s.actionItemRepo.GroupByAssigneeStatus(ctx)
	if err != nil {
		return nil, apperrors.ErrStorage(err)
	}

	return &Metrics{
		TotalItems:     totalItems,
		CompletionRate: completionRate,
		OverdueCount:   overdueCount,
		AssigneeStats:  buildAssigneeStats(rows),
	}, nil
}

// buildAssigneeStats folds (assignee, status) rows into one row per
// assignee, sorted by assignee with the unassigned row sorting as the
// empty string (first).
func buildAssigneeStats(rows []repositories.AssigneeStatusCount) []AssigneeStats {
	statsMap := make(map[string]*AssigneeStats)
	for _, row := range rows {
		key := ""
		if row.Assignee != nil {
			key = *row.Assignee
		}
		stats, ok := statsMap[key]
		if !ok {
			stats = &AssigneeStats{Assignee: row.Assignee}
			statsMap[key] = stats
		}
		switch row.Status {
		case entities.ActionItemStatusTodo:
			stats.TodoCount = row.Count
		case entities.ActionItemStatusInProgress:
			stats.InProgressCount = row.Count
		case entities.ActionItemStatusDone:
			stats.DoneCount = row.Count
		}
	}

	keys := make([]string, 0, len(statsMap))
	for key := range statsMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]AssigneeStats, 0, len(keys))
	for _, key := range keys {
		out = append(out, *statsMap[key])
	}
	return out
}
