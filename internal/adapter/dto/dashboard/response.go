package dashboard

// AssigneeStatsResponse represents per-assignee status counts. A null
// assignee is the "unassigned" bucket.
type AssigneeStatsResponse struct {
	Assignee        *string `json:"assignee"`
	TodoCount       int64   `json:"todo_count"`
	InProgressCount int64   `json:"in_progress_count"`
	DoneCount       int64   `json:"done_count"`
}

// MetricsResponse represents the dashboard aggregate
type MetricsResponse struct {
	TotalItems     int64                    `json:"total_items"`
	CompletionRate float64                  `json:"completion_rate"`
	OverdueCount   int64                    `json:"overdue_count"`
	AssigneeStats  []*AssigneeStatsResponse `json:"assignee_stats"`
}
