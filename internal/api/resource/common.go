package resource

import "github.com/phrazzld/crm-mobile-api/internal/domain"

// BusinessInfoResource is the company profile.
type BusinessInfoResource struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	VAT         string `json:"vat_number"`
	Currency    string `json:"currency"`
	Timezone    string `json:"timezone"`
	DateFormat  string `json:"date_format"`
	LogoURL     string `json:"logo_url"`
}

// NewBusinessInfo transforms the company profile.
func NewBusinessInfo(b domain.BusinessInfo) BusinessInfoResource {
	return BusinessInfoResource(b)
}

// NewOptions keeps only the public option keys.
func NewOptions(opts map[string]string) map[string]string {
	out := make(map[string]string, len(domain.PublicOptions))
	for _, key := range domain.PublicOptions {
		if v, ok := opts[key]; ok {
			out[key] = v
		}
	}
	return out
}

// DashboardResource is the home screen snapshot.
type DashboardResource struct {
	Leads struct {
		ByStatus map[string]int `json:"by_status"`
		Total    int            `json:"total"`
	} `json:"leads"`
	Tasks struct {
		Open     int `json:"open"`
		Overdue  int `json:"overdue"`
		DueToday int `json:"due_today"`
	} `json:"tasks"`
	Deals struct {
		Open             int    `json:"open"`
		PipelineValue    string `json:"pipeline_value"`
		WeightedPipeline string `json:"weighted_pipeline"`
	} `json:"deals"`
	OpenTickets      int    `json:"open_tickets"`
	UpcomingMeetings int    `json:"upcoming_meetings"`
	DueReminders     int    `json:"due_reminders"`
	UnfinishedTodos  int    `json:"unfinished_todos"`
	RunningTimerID   *int64 `json:"running_timer_id"`
}

// NewDashboard transforms a dashboard summary.
func NewDashboard(s *domain.DashboardSummary) DashboardResource {
	var r DashboardResource
	r.Leads.ByStatus = make(map[string]int, len(s.LeadsByStatus))
	for status, n := range s.LeadsByStatus {
		r.Leads.ByStatus[string(status)] = n
		r.Leads.Total += n
	}
	r.Tasks.Open = s.MyOpenTasks
	r.Tasks.Overdue = s.MyOverdueTasks
	r.Tasks.DueToday = s.MyTasksDueToday
	r.Deals.Open = s.OpenDeals
	r.Deals.PipelineValue = money(s.PipelineValue)
	r.Deals.WeightedPipeline = money(s.WeightedPipeline)
	r.OpenTickets = s.OpenTickets
	r.UpcomingMeetings = s.UpcomingMeetings
	r.DueReminders = s.DueReminders
	r.UnfinishedTodos = s.UnfinishedTodos
	r.RunningTimerID = s.RunningTimerID
	return r
}
