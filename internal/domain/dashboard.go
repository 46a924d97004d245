package domain

import "github.com/shopspring/decimal"

// DashboardSummary is the home screen snapshot for one staff member.
type DashboardSummary struct {
	LeadsByStatus    map[LeadStatus]int
	MyOpenTasks      int
	MyOverdueTasks   int
	MyTasksDueToday  int
	OpenTickets      int
	OpenDeals        int
	PipelineValue    decimal.Decimal
	WeightedPipeline decimal.Decimal
	UpcomingMeetings int
	DueReminders     int
	UnfinishedTodos  int
	RunningTimerID   *int64
}
