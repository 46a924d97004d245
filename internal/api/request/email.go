package request

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// CreateEmailAccountRequest connects a mailbox for the caller.
type CreateEmailAccountRequest struct {
	Name       string `json:"name"       validate:"max=191"`
	Email      string `json:"email"      validate:"required,email,max=191"`
	IMAPHost   string `json:"imap_host"  validate:"required,hostname|ip,max=255"`
	IMAPPort   int    `json:"imap_port"  validate:"required,gt=0,lte=65535"`
	SMTPHost   string `json:"smtp_host"  validate:"required,hostname|ip,max=255"`
	SMTPPort   int    `json:"smtp_port"  validate:"required,gt=0,lte=65535"`
	Encryption string `json:"encryption" validate:"omitempty,oneof=ssl tls none"`
	Username   string `json:"username"   validate:"required,max=191"`
	Password   string `json:"password"   validate:"required,max=255"`
	IsDefault  bool   `json:"is_default"`
}

// Prepare implements Preparer.
func (r *CreateEmailAccountRequest) Prepare(s *Sanitizer) {
	r.Name = s.Text(r.Name)
	if r.Encryption == "" {
		r.Encryption = "tls"
	}
}

// New builds the account owned by actor.
func (r *CreateEmailAccountRequest) New(actor int64, _ time.Time) (*domain.EmailAccount, error) {
	return &domain.EmailAccount{
		StaffID:    actor,
		Name:       r.Name,
		Email:      r.Email,
		IMAPHost:   r.IMAPHost,
		IMAPPort:   r.IMAPPort,
		SMTPHost:   r.SMTPHost,
		SMTPPort:   r.SMTPPort,
		Encryption: r.Encryption,
		Username:   r.Username,
		Password:   r.Password,
		IsDefault:  r.IsDefault,
	}, nil
}

// UpdateEmailAccountRequest changes the fields it carries. An empty
// password keeps the stored one.
type UpdateEmailAccountRequest struct {
	Name       *string `json:"name"       validate:"omitnil,max=191"`
	Email      *string `json:"email"      validate:"omitnil,notblank,email,max=191"`
	IMAPHost   *string `json:"imap_host"  validate:"omitnil,notblank,hostname|ip,max=255"`
	IMAPPort   *int    `json:"imap_port"  validate:"omitnil,gt=0,lte=65535"`
	SMTPHost   *string `json:"smtp_host"  validate:"omitnil,notblank,hostname|ip,max=255"`
	SMTPPort   *int    `json:"smtp_port"  validate:"omitnil,gt=0,lte=65535"`
	Encryption *string `json:"encryption" validate:"omitnil,oneof=ssl tls none"`
	Username   *string `json:"username"   validate:"omitnil,notblank,max=191"`
	Password   *string `json:"password"   validate:"omitnil,max=255"`
	IsDefault  *bool   `json:"is_default"`
}

// Prepare implements Preparer.
func (r *UpdateEmailAccountRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Name)
}

// Apply implements Updater.
func (r *UpdateEmailAccountRequest) Apply(a *domain.EmailAccount, _ time.Time) error {
	set(&a.Name, r.Name)
	set(&a.Email, r.Email)
	set(&a.IMAPHost, r.IMAPHost)
	set(&a.IMAPPort, r.IMAPPort)
	set(&a.SMTPHost, r.SMTPHost)
	set(&a.SMTPPort, r.SMTPPort)
	set(&a.Encryption, r.Encryption)
	set(&a.Username, r.Username)
	if r.Password != nil && *r.Password != "" {
		a.Password = *r.Password
	}
	set(&a.IsDefault, r.IsDefault)
	return nil
}

// CreateEmailSignatureRequest saves a signature block.
type CreateEmailSignatureRequest struct {
	Name      string `json:"name"       validate:"required,max=191"`
	Body      string `json:"signature"  validate:"max=65535"`
	AccountID *int64 `json:"account_id" validate:"omitempty,gt=0"`
	IsDefault bool   `json:"is_default"`
}

// Prepare implements Preparer.
func (r *CreateEmailSignatureRequest) Prepare(s *Sanitizer) {
	r.Name = s.Text(r.Name)
	r.Body = s.HTML(r.Body)
}

// References implements Referencer.
func (r *CreateEmailSignatureRequest) References() []Reference {
	return []Reference{ref("account_id", "email_accounts", r.AccountID)}
}

// New builds the signature owned by actor.
func (r *CreateEmailSignatureRequest) New(actor int64, _ time.Time) (*domain.EmailSignature, error) {
	return &domain.EmailSignature{
		StaffID:   actor,
		AccountID: optionalID(r.AccountID),
		Name:      r.Name,
		Body:      r.Body,
		IsDefault: r.IsDefault,
	}, nil
}

// UpdateEmailSignatureRequest changes the fields it carries.
type UpdateEmailSignatureRequest struct {
	Name      *string `json:"name"       validate:"omitnil,notblank,max=191"`
	Body      *string `json:"signature"  validate:"omitnil,max=65535"`
	AccountID *int64  `json:"account_id" validate:"omitnil,gte=0"`
	IsDefault *bool   `json:"is_default"`
}

// Prepare implements Preparer.
func (r *UpdateEmailSignatureRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Name)
	s.HTMLPtr(r.Body)
}

// References implements Referencer.
func (r *UpdateEmailSignatureRequest) References() []Reference {
	return []Reference{ref("account_id", "email_accounts", r.AccountID)}
}

// Apply implements Updater.
func (r *UpdateEmailSignatureRequest) Apply(sig *domain.EmailSignature, _ time.Time) error {
	set(&sig.Name, r.Name)
	set(&sig.Body, r.Body)
	setID(&sig.AccountID, r.AccountID)
	set(&sig.IsDefault, r.IsDefault)
	return nil
}

// ComposeEmailRequest writes a message. Unless saved as a draft it is
// queued in the outbox for the CRM mailer.
type ComposeEmailRequest struct {
	AccountID int64    `json:"account_id"  validate:"required,gt=0"`
	To        []string `json:"to"          validate:"required,min=1,max=50,dive,email"`
	Cc        []string `json:"cc"          validate:"max=50,dive,email"`
	Bcc       []string `json:"bcc"         validate:"max=50,dive,email"`
	Subject   string   `json:"subject"     validate:"max=998"`
	BodyHTML  string   `json:"body"        validate:"max=1048576"`
	Draft     bool     `json:"draft"`
	InReplyTo *int64   `json:"in_reply_to" validate:"omitempty,gt=0"`
}

// Prepare implements Preparer.
func (r *ComposeEmailRequest) Prepare(s *Sanitizer) {
	r.Subject = s.Text(r.Subject)
	r.BodyHTML = s.HTML(r.BodyHTML)
}

// References implements Referencer.
func (r *ComposeEmailRequest) References() []Reference {
	return []Reference{
		{Field: "account_id", Table: "email_accounts", ID: r.AccountID},
		ref("in_reply_to", "email_messages", r.InReplyTo),
	}
}

// New builds the message for actor sending from account. The sender
// address is filled in from the account by the caller.
func (r *ComposeEmailRequest) New(actor int64, now time.Time, s *Sanitizer) *domain.EmailMessage {
	m := &domain.EmailMessage{
		AccountID: r.AccountID,
		StaffID:   actor,
		Subject:   r.Subject,
		To:        r.To,
		Cc:        nonNil(r.Cc),
		Bcc:       nonNil(r.Bcc),
		BodyHTML:  r.BodyHTML,
		BodyText:  s.Text(r.BodyHTML),
		InReplyTo: optionalID(r.InReplyTo),
	}
	m.QueueForSending(r.Draft)
	if !r.Draft {
		m.SentAt = &now
	}
	return m
}

// UpdateEmailMessageRequest flags or files a message.
type UpdateEmailMessageRequest struct {
	IsRead    *bool   `json:"is_read"`
	IsStarred *bool   `json:"is_starred"`
	Folder    *string `json:"folder" validate:"omitnil,oneof=inbox sent drafts trash archive"`
}

// Apply implements Updater.
func (r *UpdateEmailMessageRequest) Apply(m *domain.EmailMessage, _ time.Time) error {
	if r.Folder != nil && domain.EmailFolder(*r.Folder) != m.Folder {
		if err := m.MoveTo(domain.EmailFolder(*r.Folder)); err != nil {
			return err
		}
	}
	set(&m.IsRead, r.IsRead)
	set(&m.IsStarred, r.IsStarred)
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
