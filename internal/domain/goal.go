package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType names the metric a goal measures.
type GoalType string

// Goal types.
const (
	GoalTotalIncome    GoalType = "total_income"
	GoalNewClients     GoalType = "new_clients"
	GoalConvertedLeads GoalType = "converted_leads"
	GoalWonDeals       GoalType = "won_deals"
	GoalClosedTickets  GoalType = "closed_tickets"
)

// Goal is a target for a metric over a date range, for one staff member or
// the whole company when StaffID is nil.
type Goal struct {
	Model
	Subject            string
	Description        string
	Type               GoalType
	Target             decimal.Decimal
	StartDate          time.Time
	EndDate            time.Time
	StaffID            *int64
	NotifyWhenAchieved bool
}

// Progress is achieved as a percentage of the target, capped at 100.
func (g *Goal) Progress(achieved decimal.Decimal) int {
	if !g.Target.IsPositive() {
		return 0
	}
	pct := achieved.Mul(hundred).Div(g.Target).Floor()
	if pct.GreaterThan(hundred) {
		return 100
	}
	if pct.IsNegative() {
		return 0
	}
	return int(pct.IntPart())
}

// Achieved reports whether achieved meets the target.
func (g *Goal) Achieved(achieved decimal.Decimal) bool {
	return g.Target.IsPositive() && achieved.GreaterThanOrEqual(g.Target)
}
