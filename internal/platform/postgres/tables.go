package postgres

import (
	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

var staffTable = &table[*domain.Staff]{
	name:   "staff",
	entity: "staff",
	columns: []string{
		"first_name", "last_name", "email", "phone", "password",
		"is_admin", "active", "avatar_url", "last_login_at",
	},
	newE: func() *domain.Staff { return &domain.Staff{} },
	values: func(s *domain.Staff) []any {
		return []any{
			s.FirstName, s.LastName, s.Email, s.Phone, s.PasswordHash,
			s.IsAdmin, s.Active, s.AvatarURL, ptrArg(s.LastLoginAt),
		}
	},
	targets: func(s *domain.Staff) []any {
		return []any{
			&s.FirstName, &s.LastName, &s.Email, text(&s.Phone), &s.PasswordHash,
			&s.IsAdmin, &s.Active, text(&s.AvatarURL), nullable(&s.LastLoginAt),
		}
	},
	search:      []string{"first_name", "last_name", "email"},
	filters:     map[string]string{"active": "active", "is_admin": "is_admin"},
	sorts:       map[string]string{"name": "first_name", "email": "email", "created_at": "created_at"},
	defaultSort: "first_name",
	sortAsc:     true,
}

var leadTable = &table[*domain.Lead]{
	name:   "leads",
	entity: "lead",
	columns: []string{
		"name", "company", "title", "email", "phone", "website", "address",
		"city", "country", "source", "status", "lead_value", "description",
		"assigned_to", "client_id", "last_contact_at", "converted_at",
	},
	newE: func() *domain.Lead { return &domain.Lead{} },
	values: func(l *domain.Lead) []any {
		return []any{
			l.Name, l.Company, l.Title, l.Email, l.Phone, l.Website, l.Address,
			l.City, l.Country, l.Source, string(l.Status), l.Value, l.Description,
			ptrArg(l.AssignedTo), ptrArg(l.ClientID), ptrArg(l.LastContactAt), ptrArg(l.ConvertedAt),
		}
	},
	targets: func(l *domain.Lead) []any {
		return []any{
			&l.Name, text(&l.Company), text(&l.Title), text(&l.Email), text(&l.Phone),
			text(&l.Website), text(&l.Address), text(&l.City), text(&l.Country),
			text(&l.Source), &l.Status, &l.Value, text(&l.Description),
			nullable(&l.AssignedTo), nullable(&l.ClientID), nullable(&l.LastContactAt),
			nullable(&l.ConvertedAt),
		}
	},
	search: []string{"name", "company", "email", "phone"},
	filters: map[string]string{
		"status": "status", "source": "source", "assigned_to": "assigned_to",
	},
	sorts: map[string]string{
		"name": "name", "status": "status", "value": "lead_value",
		"created_at": "created_at", "last_contact_at": "last_contact_at",
	},
	defaultSort: "created_at",
}

var clientTable = &table[*domain.Client]{
	name:   "clients",
	entity: "client",
	columns: []string{
		"company", "vat", "phone", "website", "address", "city", "state",
		"zip", "country", "currency", "active", "lead_id",
	},
	newE: func() *domain.Client { return &domain.Client{} },
	values: func(c *domain.Client) []any {
		return []any{
			c.Company, c.VAT, c.Phone, c.Website, c.Address, c.City, c.State,
			c.Zip, c.Country, c.Currency, c.Active, ptrArg(c.LeadID),
		}
	},
	targets: func(c *domain.Client) []any {
		return []any{
			&c.Company, text(&c.VAT), text(&c.Phone), text(&c.Website), text(&c.Address),
			text(&c.City), text(&c.State), text(&c.Zip), text(&c.Country),
			text(&c.Currency), &c.Active, nullable(&c.LeadID),
		}
	},
	search:      []string{"company", "vat", "phone", "city"},
	filters:     map[string]string{"active": "active", "country": "country"},
	sorts:       map[string]string{"company": "company", "created_at": "created_at"},
	defaultSort: "company",
	sortAsc:     true,
}

var pipelineStageTable = &table[*domain.PipelineStage]{
	name:    "pipeline_stages",
	entity:  "pipeline stage",
	columns: []string{"pipeline_id", "name", "position", "win_probability"},
	newE:    func() *domain.PipelineStage { return &domain.PipelineStage{} },
	values: func(s *domain.PipelineStage) []any {
		return []any{s.PipelineID, s.Name, s.Position, s.WinProbability}
	},
	targets: func(s *domain.PipelineStage) []any {
		return []any{&s.PipelineID, &s.Name, &s.Position, &s.WinProbability}
	},
	search:      []string{"name"},
	filters:     map[string]string{"pipeline_id": "pipeline_id"},
	sorts:       map[string]string{"position": "position"},
	defaultSort: "position",
	sortAsc:     true,
}

var dealTable = &table[*domain.Deal]{
	name:   "deals",
	entity: "deal",
	columns: []string{
		"name", "description", "client_id", "lead_id", "stage_id", "amount",
		"currency", "status", "expected_close_date", "owner_id", "lost_reason", "closed_at",
	},
	newE: func() *domain.Deal { return &domain.Deal{} },
	values: func(d *domain.Deal) []any {
		return []any{
			d.Name, d.Description, ptrArg(d.ClientID), ptrArg(d.LeadID), d.StageID, d.Amount,
			d.Currency, string(d.Status), ptrArg(d.ExpectedCloseDate), ptrArg(d.OwnerID),
			d.LostReason, ptrArg(d.ClosedAt),
		}
	},
	targets: func(d *domain.Deal) []any {
		return []any{
			&d.Name, text(&d.Description), nullable(&d.ClientID), nullable(&d.LeadID),
			&d.StageID, &d.Amount, text(&d.Currency), &d.Status,
			nullable(&d.ExpectedCloseDate), nullable(&d.OwnerID), text(&d.LostReason),
			nullable(&d.ClosedAt),
		}
	},
	search: []string{"name", "description"},
	filters: map[string]string{
		"status": "status", "stage_id": "stage_id", "client_id": "client_id", "owner_id": "owner_id",
	},
	sorts: map[string]string{
		"name": "name", "amount": "amount", "expected_close_date": "expected_close_date",
		"created_at": "created_at",
	},
	defaultSort: "created_at",
}

var taskTable = &table[*domain.Task]{
	name:   "tasks",
	entity: "task",
	columns: []string{
		"name", "description", "priority", "status", "start_date", "due_date",
		"model_type", "model_id", "assigned_to", "created_by", "completed_at",
	},
	newE: func() *domain.Task { return &domain.Task{} },
	values: func(t *domain.Task) []any {
		args := []any{
			t.Name, t.Description, string(t.Priority), string(t.Status),
			ptrArg(t.StartDate), ptrArg(t.DueDate),
		}
		args = append(args, relatedArgs(t.Related)...)
		return append(args, ptrArg(t.AssignedTo), t.CreatedBy, ptrArg(t.CompletedAt))
	},
	targets: func(t *domain.Task) []any {
		targets := []any{
			&t.Name, text(&t.Description), &t.Priority, &t.Status,
			nullable(&t.StartDate), nullable(&t.DueDate),
		}
		targets = append(targets, relatedTargets(&t.Related)...)
		return append(targets, nullable(&t.AssignedTo), &t.CreatedBy, nullable(&t.CompletedAt))
	},
	search: []string{"name", "description"},
	filters: map[string]string{
		"status": "status", "priority": "priority", "assigned_to": "assigned_to",
		"model_type": "model_type", "model_id": "model_id",
	},
	sorts: map[string]string{
		"name": "name", "due_date": "due_date", "priority": "priority",
		"status": "status", "created_at": "created_at",
	},
	defaultSort: "created_at",
}

var meetingTable = &table[*domain.Meeting]{
	name:   "meetings",
	entity: "meeting",
	columns: []string{
		"title", "description", "location", "start_at", "end_at", "status",
		"model_type", "model_id", "organizer_id", "cancel_reason",
	},
	newE: func() *domain.Meeting { return &domain.Meeting{} },
	values: func(m *domain.Meeting) []any {
		args := []any{
			m.Title, m.Description, m.Location, utc(m.StartAt), utc(m.EndAt), string(m.Status),
		}
		args = append(args, relatedArgs(m.Related)...)
		return append(args, m.OrganizerID, m.CancelReason)
	},
	targets: func(m *domain.Meeting) []any {
		targets := []any{
			&m.Title, text(&m.Description), text(&m.Location), &m.StartAt, &m.EndAt, &m.Status,
		}
		targets = append(targets, relatedTargets(&m.Related)...)
		return append(targets, &m.OrganizerID, text(&m.CancelReason))
	},
	search: []string{"title", "location"},
	filters: map[string]string{
		"status": "status", "organizer_id": "organizer_id",
		"model_type": "model_type", "model_id": "model_id",
	},
	sorts:       map[string]string{"start_at": "start_at", "title": "title", "created_at": "created_at"},
	defaultSort: "start_at",
	sortAsc:     true,
}

var proposalTable = &table[*domain.Proposal]{
	name:   "proposals",
	entity: "proposal",
	columns: []string{
		"subject", "content", "model_type", "model_id", "total", "currency",
		"status", "open_till", "assigned_to", "created_by", "decided_at",
	},
	newE: func() *domain.Proposal { return &domain.Proposal{} },
	values: func(p *domain.Proposal) []any {
		return []any{
			p.Subject, p.Content, string(p.Related.Type), p.Related.ID, p.Total, p.Currency,
			string(p.Status), ptrArg(p.OpenTill), ptrArg(p.AssignedTo), p.CreatedBy,
			ptrArg(p.DecidedAt),
		}
	},
	targets: func(p *domain.Proposal) []any {
		return []any{
			&p.Subject, text(&p.Content), &p.Related.Type, &p.Related.ID, &p.Total,
			text(&p.Currency), &p.Status, nullable(&p.OpenTill), nullable(&p.AssignedTo),
			&p.CreatedBy, nullable(&p.DecidedAt),
		}
	},
	search: []string{"subject"},
	filters: map[string]string{
		"status": "status", "model_type": "model_type", "model_id": "model_id",
		"assigned_to": "assigned_to",
	},
	sorts: map[string]string{
		"subject": "subject", "total": "total", "open_till": "open_till", "created_at": "created_at",
	},
	defaultSort: "created_at",
}

var estimateTable = &table[*domain.Estimate]{
	name:   "estimates",
	entity: "estimate",
	columns: []string{
		"number", "client_id", "deal_id", "date", "expiry_date", "currency",
		"subtotal", "discount", "tax", "total", "status", "invoice_id",
		"notes", "terms", "created_by",
	},
	newE: func() *domain.Estimate { return &domain.Estimate{} },
	values: func(e *domain.Estimate) []any {
		return []any{
			e.Number, e.ClientID, ptrArg(e.DealID), e.Date, ptrArg(e.ExpiryDate), e.Currency,
			e.Subtotal, e.Discount, e.Tax, e.Total, string(e.Status), ptrArg(e.InvoiceID),
			e.Notes, e.Terms, e.CreatedBy,
		}
	},
	targets: func(e *domain.Estimate) []any {
		return []any{
			&e.Number, &e.ClientID, nullable(&e.DealID), &e.Date, nullable(&e.ExpiryDate),
			text(&e.Currency), &e.Subtotal, &e.Discount, &e.Tax, &e.Total, &e.Status,
			nullable(&e.InvoiceID), text(&e.Notes), text(&e.Terms), &e.CreatedBy,
		}
	},
	search:  []string{"number", "notes"},
	filters: map[string]string{"status": "status", "client_id": "client_id"},
	sorts: map[string]string{
		"number": "number", "date": "date", "total": "total", "created_at": "created_at",
	},
	defaultSort: "date",
}

var invoiceTable = &table[*domain.Invoice]{
	name:   "invoices",
	entity: "invoice",
	columns: []string{
		"number", "client_id", "estimate_id", "date", "due_date", "currency",
		"subtotal", "discount", "tax", "total", "status",
	},
	newE: func() *domain.Invoice { return &domain.Invoice{} },
	values: func(i *domain.Invoice) []any {
		return []any{
			i.Number, i.ClientID, ptrArg(i.EstimateID), i.Date, ptrArg(i.DueDate), i.Currency,
			i.Subtotal, i.Discount, i.Tax, i.Total, string(i.Status),
		}
	},
	targets: func(i *domain.Invoice) []any {
		return []any{
			&i.Number, &i.ClientID, nullable(&i.EstimateID), &i.Date, nullable(&i.DueDate),
			text(&i.Currency), &i.Subtotal, &i.Discount, &i.Tax, &i.Total, &i.Status,
		}
	},
	defaultSort: "date",
}

var estimateRequestTable = &table[*domain.EstimateRequest]{
	name:   "estimate_requests",
	entity: "estimate request",
	columns: []string{
		"name", "email", "phone", "client_id", "assigned_to", "status", "submission",
	},
	newE: func() *domain.EstimateRequest { return &domain.EstimateRequest{} },
	values: func(r *domain.EstimateRequest) []any {
		return []any{
			r.Name, r.Email, r.Phone, ptrArg(r.ClientID), ptrArg(r.AssignedTo),
			string(r.Status), r.Submission,
		}
	},
	targets: func(r *domain.EstimateRequest) []any {
		return []any{
			text(&r.Name), &r.Email, text(&r.Phone), nullable(&r.ClientID),
			nullable(&r.AssignedTo), &r.Status, text(&r.Submission),
		}
	},
	search: []string{"name", "email"},
	filters: map[string]string{
		"status": "status", "assigned_to": "assigned_to", "client_id": "client_id",
	},
	sorts:       map[string]string{"created_at": "created_at", "email": "email"},
	defaultSort: "created_at",
}

var ticketTable = &table[*domain.Ticket]{
	name:   "tickets",
	entity: "ticket",
	columns: []string{
		"subject", "message", "client_id", "email", "department", "priority",
		"status", "assigned_to", "created_by", "last_reply_at",
	},
	newE: func() *domain.Ticket { return &domain.Ticket{} },
	values: func(t *domain.Ticket) []any {
		return []any{
			t.Subject, t.Message, ptrArg(t.ClientID), t.Email, t.Department,
			string(t.Priority), string(t.Status), ptrArg(t.AssignedTo), t.CreatedBy,
			ptrArg(t.LastReplyAt),
		}
	},
	targets: func(t *domain.Ticket) []any {
		return []any{
			&t.Subject, text(&t.Message), nullable(&t.ClientID), text(&t.Email),
			text(&t.Department), &t.Priority, &t.Status, nullable(&t.AssignedTo),
			&t.CreatedBy, nullable(&t.LastReplyAt),
		}
	},
	search: []string{"subject", "email"},
	filters: map[string]string{
		"status": "status", "priority": "priority", "department": "department",
		"assigned_to": "assigned_to", "client_id": "client_id",
	},
	sorts: map[string]string{
		"subject": "subject", "priority": "priority", "last_reply_at": "last_reply_at",
		"created_at": "created_at",
	},
	defaultSort: "created_at",
}

var ticketReplyTable = &table[*domain.TicketReply]{
	name:    "ticket_replies",
	entity:  "ticket reply",
	columns: []string{"ticket_id", "staff_id", "message"},
	newE:    func() *domain.TicketReply { return &domain.TicketReply{} },
	values: func(r *domain.TicketReply) []any {
		return []any{r.TicketID, r.StaffID, r.Message}
	},
	targets: func(r *domain.TicketReply) []any {
		return []any{&r.TicketID, &r.StaffID, &r.Message}
	},
	defaultSort: "created_at",
	sortAsc:     true,
}

var todoTable = &table[*domain.Todo]{
	name:    "todos",
	entity:  "todo",
	columns: []string{"staff_id", "description", "finished", "finished_at", "item_order"},
	newE:    func() *domain.Todo { return &domain.Todo{} },
	values: func(t *domain.Todo) []any {
		return []any{t.StaffID, t.Description, t.Finished, ptrArg(t.FinishedAt), t.ItemOrder}
	},
	targets: func(t *domain.Todo) []any {
		return []any{&t.StaffID, &t.Description, &t.Finished, nullable(&t.FinishedAt), &t.ItemOrder}
	},
	search:      []string{"description"},
	filters:     map[string]string{"staff_id": "staff_id", "finished": "finished"},
	sorts:       map[string]string{"item_order": "item_order", "created_at": "created_at"},
	defaultSort: "item_order",
	sortAsc:     true,
}

var timesheetTable = &table[*domain.Timesheet]{
	name:    "timesheets",
	entity:  "timesheet",
	columns: []string{"task_id", "staff_id", "start_time", "end_time", "note"},
	newE:    func() *domain.Timesheet { return &domain.Timesheet{} },
	values: func(t *domain.Timesheet) []any {
		return []any{t.TaskID, t.StaffID, utc(t.StartTime), ptrArg(t.EndTime), t.Note}
	},
	targets: func(t *domain.Timesheet) []any {
		return []any{&t.TaskID, &t.StaffID, &t.StartTime, nullable(&t.EndTime), text(&t.Note)}
	},
	search:      []string{"note"},
	filters:     map[string]string{"task_id": "task_id", "staff_id": "staff_id"},
	sorts:       map[string]string{"start_time": "start_time"},
	defaultSort: "start_time",
}

var noteTable = &table[*domain.Note]{
	name:    "notes",
	entity:  "note",
	columns: []string{"model_type", "model_id", "description", "created_by"},
	newE:    func() *domain.Note { return &domain.Note{} },
	values: func(n *domain.Note) []any {
		return []any{string(n.Related.Type), n.Related.ID, n.Description, n.CreatedBy}
	},
	targets: func(n *domain.Note) []any {
		return []any{&n.Related.Type, &n.Related.ID, &n.Description, &n.CreatedBy}
	},
	search: []string{"description"},
	filters: map[string]string{
		"model_type": "model_type", "model_id": "model_id", "created_by": "created_by",
	},
	sorts:       map[string]string{"created_at": "created_at"},
	defaultSort: "created_at",
}

var commentTable = &table[*domain.Comment]{
	name:    "comments",
	entity:  "comment",
	columns: []string{"model_type", "model_id", "content", "staff_id"},
	newE:    func() *domain.Comment { return &domain.Comment{} },
	values: func(c *domain.Comment) []any {
		return []any{string(c.Related.Type), c.Related.ID, c.Content, c.StaffID}
	},
	targets: func(c *domain.Comment) []any {
		return []any{&c.Related.Type, &c.Related.ID, &c.Content, &c.StaffID}
	},
	search: []string{"content"},
	filters: map[string]string{
		"model_type": "model_type", "model_id": "model_id", "staff_id": "staff_id",
	},
	sorts:       map[string]string{"created_at": "created_at"},
	defaultSort: "created_at",
}

var goalTable = &table[*domain.Goal]{
	name:   "goals",
	entity: "goal",
	columns: []string{
		"subject", "description", "goal_type", "target", "start_date", "end_date",
		"staff_id", "notify_when_achieved",
	},
	newE: func() *domain.Goal { return &domain.Goal{} },
	values: func(g *domain.Goal) []any {
		return []any{
			g.Subject, g.Description, string(g.Type), g.Target, g.StartDate, g.EndDate,
			ptrArg(g.StaffID), g.NotifyWhenAchieved,
		}
	},
	targets: func(g *domain.Goal) []any {
		return []any{
			&g.Subject, text(&g.Description), &g.Type, &g.Target, &g.StartDate, &g.EndDate,
			nullable(&g.StaffID), &g.NotifyWhenAchieved,
		}
	},
	search:      []string{"subject"},
	filters:     map[string]string{"goal_type": "goal_type", "staff_id": "staff_id"},
	sorts:       map[string]string{"end_date": "end_date", "start_date": "start_date"},
	defaultSort: "end_date",
}

var reminderTable = &table[*domain.Reminder]{
	name:   "reminders",
	entity: "reminder",
	columns: []string{
		"model_type", "model_id", "description", "remind_at", "staff_id",
		"notify_by_email", "is_notified", "created_by",
	},
	newE: func() *domain.Reminder { return &domain.Reminder{} },
	values: func(r *domain.Reminder) []any {
		return []any{
			string(r.Related.Type), r.Related.ID, r.Description, utc(r.RemindAt), r.StaffID,
			r.NotifyByEmail, r.IsNotified, r.CreatedBy,
		}
	},
	targets: func(r *domain.Reminder) []any {
		return []any{
			&r.Related.Type, &r.Related.ID, text(&r.Description), &r.RemindAt, &r.StaffID,
			&r.NotifyByEmail, &r.IsNotified, &r.CreatedBy,
		}
	},
	search: []string{"description"},
	filters: map[string]string{
		"model_type": "model_type", "model_id": "model_id", "staff_id": "staff_id",
		"is_notified": "is_notified",
	},
	sorts:       map[string]string{"remind_at": "remind_at"},
	defaultSort: "remind_at",
	sortAsc:     true,
}

var emailAccountTable = &table[*domain.EmailAccount]{
	name:   "email_accounts",
	entity: "email account",
	columns: []string{
		"staff_id", "name", "email", "imap_host", "imap_port", "smtp_host", "smtp_port",
		"encryption", "username", "password", "is_default",
	},
	newE: func() *domain.EmailAccount { return &domain.EmailAccount{} },
	values: func(a *domain.EmailAccount) []any {
		return []any{
			a.StaffID, a.Name, a.Email, a.IMAPHost, a.IMAPPort, a.SMTPHost, a.SMTPPort,
			a.Encryption, a.Username, a.Password, a.IsDefault,
		}
	},
	targets: func(a *domain.EmailAccount) []any {
		return []any{
			&a.StaffID, text(&a.Name), &a.Email, text(&a.IMAPHost), &a.IMAPPort,
			text(&a.SMTPHost), &a.SMTPPort, text(&a.Encryption), text(&a.Username),
			text(&a.Password), &a.IsDefault,
		}
	},
	search:      []string{"name", "email"},
	filters:     map[string]string{"staff_id": "staff_id"},
	sorts:       map[string]string{"email": "email"},
	defaultSort: "email",
	sortAsc:     true,
}

var emailMessageTable = &table[*domain.EmailMessage]{
	name:   "email_messages",
	entity: "email message",
	columns: []string{
		"account_id", "staff_id", "folder", "subject", "from_address", "to_addresses",
		"cc_addresses", "bcc_addresses", "body_html", "body_text", "is_read", "is_starred",
		"sent_at", "received_at", "in_reply_to",
	},
	newE: func() *domain.EmailMessage { return &domain.EmailMessage{} },
	values: func(m *domain.EmailMessage) []any {
		return []any{
			m.AccountID, m.StaffID, string(m.Folder), m.Subject, m.FromAddress,
			domain.JoinAddresses(m.To), domain.JoinAddresses(m.Cc), domain.JoinAddresses(m.Bcc),
			m.BodyHTML, m.BodyText, m.IsRead, m.IsStarred,
			ptrArg(m.SentAt), ptrArg(m.ReceivedAt), ptrArg(m.InReplyTo),
		}
	},
	targets: func(m *domain.EmailMessage) []any {
		return []any{
			&m.AccountID, &m.StaffID, &m.Folder, text(&m.Subject), text(&m.FromAddress),
			addresses(&m.To), addresses(&m.Cc), addresses(&m.Bcc),
			text(&m.BodyHTML), text(&m.BodyText), &m.IsRead, &m.IsStarred,
			nullable(&m.SentAt), nullable(&m.ReceivedAt), nullable(&m.InReplyTo),
		}
	},
	search: []string{"subject", "from_address", "to_addresses"},
	filters: map[string]string{
		"account_id": "account_id", "staff_id": "staff_id", "folder": "folder",
		"is_read": "is_read", "is_starred": "is_starred",
	},
	sorts:       map[string]string{"created_at": "created_at", "subject": "subject"},
	defaultSort: "created_at",
}

var emailAttachmentTable = &table[*domain.EmailAttachment]{
	name:    "email_attachments",
	entity:  "email attachment",
	columns: []string{"message_id", "file_name", "mime_type", "size", "storage_path"},
	newE:    func() *domain.EmailAttachment { return &domain.EmailAttachment{} },
	values: func(a *domain.EmailAttachment) []any {
		return []any{a.MessageID, a.FileName, a.MimeType, a.Size, a.StoragePath}
	},
	targets: func(a *domain.EmailAttachment) []any {
		return []any{&a.MessageID, &a.FileName, text(&a.MimeType), &a.Size, &a.StoragePath}
	},
	defaultSort: "id",
	sortAsc:     true,
}

var emailSignatureTable = &table[*domain.EmailSignature]{
	name:    "email_signatures",
	entity:  "email signature",
	columns: []string{"staff_id", "account_id", "name", "body", "is_default"},
	newE:    func() *domain.EmailSignature { return &domain.EmailSignature{} },
	values: func(s *domain.EmailSignature) []any {
		return []any{s.StaffID, ptrArg(s.AccountID), s.Name, s.Body, s.IsDefault}
	},
	targets: func(s *domain.EmailSignature) []any {
		return []any{&s.StaffID, nullable(&s.AccountID), &s.Name, text(&s.Body), &s.IsDefault}
	},
	search:      []string{"name"},
	filters:     map[string]string{"staff_id": "staff_id", "account_id": "account_id"},
	sorts:       map[string]string{"name": "name"},
	defaultSort: "name",
	sortAsc:     true,
}

var chatRoomTable = &table[*domain.ChatRoom]{
	name:    "chat_rooms",
	entity:  "chat room",
	columns: []string{"name", "room_type", "created_by", "last_message_at"},
	newE:    func() *domain.ChatRoom { return &domain.ChatRoom{} },
	values: func(r *domain.ChatRoom) []any {
		return []any{r.Name, string(r.Type), r.CreatedBy, ptrArg(r.LastMessageAt)}
	},
	targets: func(r *domain.ChatRoom) []any {
		return []any{text(&r.Name), &r.Type, &r.CreatedBy, nullable(&r.LastMessageAt)}
	},
	defaultSort: "last_message_at",
}

var chatMessageTable = &table[*domain.ChatMessage]{
	name:    "chat_messages",
	entity:  "chat message",
	columns: []string{"room_id", "staff_id", "body"},
	newE:    func() *domain.ChatMessage { return &domain.ChatMessage{} },
	values: func(m *domain.ChatMessage) []any {
		return []any{m.RoomID, m.StaffID, m.Body}
	},
	targets: func(m *domain.ChatMessage) []any {
		return []any{&m.RoomID, &m.StaffID, &m.Body}
	},
	filters:     map[string]string{"room_id": "room_id"},
	defaultSort: "created_at",
}
