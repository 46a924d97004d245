package resource

import (
	"fmt"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// EmailAccountResource is a mailbox connection. The password is never
// rendered; HasPassword tells the app whether one is stored.
type EmailAccountResource struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IMAPHost    string `json:"imap_host"`
	IMAPPort    int    `json:"imap_port"`
	SMTPHost    string `json:"smtp_host"`
	SMTPPort    int    `json:"smtp_port"`
	Encryption  string `json:"encryption"`
	Username    string `json:"username"`
	HasPassword bool   `json:"has_password"`
	IsDefault   bool   `json:"is_default"`
	CreatedAt   string `json:"created_at"`
}

// NewEmailAccount transforms an account.
func NewEmailAccount(a *domain.EmailAccount) EmailAccountResource {
	return EmailAccountResource{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		IMAPHost:    a.IMAPHost,
		IMAPPort:    a.IMAPPort,
		SMTPHost:    a.SMTPHost,
		SMTPPort:    a.SMTPPort,
		Encryption:  a.Encryption,
		Username:    a.Username,
		HasPassword: a.Password != "",
		IsDefault:   a.IsDefault,
		CreatedAt:   timestamp(a.CreatedAt),
	}
}

// EmailMessageResource is a mailbox message.
type EmailMessageResource struct {
	ID          int64    `json:"id"`
	AccountID   int64    `json:"account_id"`
	Folder      string   `json:"folder"`
	Subject     string   `json:"subject"`
	FromAddress string   `json:"from"`
	To          []string `json:"to"`
	Cc          []string `json:"cc"`
	Bcc         []string `json:"bcc"`
	BodyHTML    string   `json:"body_html"`
	BodyText    string   `json:"body_text"`
	IsRead      bool     `json:"is_read"`
	IsStarred   bool     `json:"is_starred"`
	SentAt      *string  `json:"sent_at"`
	ReceivedAt  *string  `json:"received_at"`
	InReplyTo   *int64   `json:"in_reply_to"`
	CreatedAt   string   `json:"created_at"`
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// NewEmailMessage transforms a message.
func NewEmailMessage(m *domain.EmailMessage) EmailMessageResource {
	return EmailMessageResource{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Folder:      string(m.Folder),
		Subject:     m.Subject,
		FromAddress: m.FromAddress,
		To:          orEmpty(m.To),
		Cc:          orEmpty(m.Cc),
		Bcc:         orEmpty(m.Bcc),
		BodyHTML:    m.BodyHTML,
		BodyText:    m.BodyText,
		IsRead:      m.IsRead,
		IsStarred:   m.IsStarred,
		SentAt:      timestampPtr(m.SentAt),
		ReceivedAt:  timestampPtr(m.ReceivedAt),
		InReplyTo:   m.InReplyTo,
		CreatedAt:   timestamp(m.CreatedAt),
	}
}

// AttachmentPath is the API path serving attachment metadata by id.
const AttachmentPath = "/api/v1/email/attachments/%d"

// EmailAttachmentResource is attachment metadata. The storage path stays
// server side.
type EmailAttachmentResource struct {
	ID          int64  `json:"id"`
	MessageID   int64  `json:"message_id"`
	FileName    string `json:"file_name"`
	MimeType    string `json:"mime_type"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url"`
}

// NewEmailAttachment transforms attachment metadata.
func NewEmailAttachment(a *domain.EmailAttachment) EmailAttachmentResource {
	return EmailAttachmentResource{
		ID:          a.ID,
		MessageID:   a.MessageID,
		FileName:    a.FileName,
		MimeType:    a.MimeType,
		Size:        a.Size,
		DownloadURL: fmt.Sprintf(AttachmentPath, a.ID),
	}
}

// EmailSignatureResource is a signature block.
type EmailSignatureResource struct {
	ID        int64  `json:"id"`
	AccountID *int64 `json:"account_id"`
	Name      string `json:"name"`
	Body      string `json:"signature"`
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at"`
}

// NewEmailSignature transforms a signature.
func NewEmailSignature(s *domain.EmailSignature) EmailSignatureResource {
	return EmailSignatureResource{
		ID:        s.ID,
		AccountID: s.AccountID,
		Name:      s.Name,
		Body:      s.Body,
		IsDefault: s.IsDefault,
		CreatedAt: timestamp(s.CreatedAt),
	}
}
