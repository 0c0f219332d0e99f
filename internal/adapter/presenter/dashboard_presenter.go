package presenter

import (
	dashboarddto "github.com/johnquangdev/ami-meeting-svc/internal/adapter/dto/dashboard"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/dashboard"
)

// ToMetricsResponse converts dashboard metrics to MetricsResponse DTO
func ToMetricsResponse(m *dashboard.Metrics) *dashboarddto.MetricsResponse {
	if m == nil {
		return nil
	}
	stats := make([]*dashboarddto.AssigneeStatsResponse, len(m.AssigneeStats))
	for i, s := range m.AssigneeStats {
		stats[i] = &dashboarddto.AssigneeStatsResponse{
			Assignee:        s.Assignee,
			TodoCount:       s.TodoCount,
			InProgressCount: s.InProgressCount,
			DoneCount:       s.DoneCount,
		}
	}
	return &dashboarddto.MetricsResponse{
		TotalItems:     m.TotalItems,
		CompletionRate: m.CompletionRate,
		OverdueCount:   m.OverdueCount,
		AssigneeStats:  stats,
	}
}
