package domain

import (
	"strings"
	"time"
)

// EmailFolder is a mailbox folder.
type EmailFolder string

// Email folders. Outbox holds messages queued for the CRM mailer.
const (
	FolderInbox   EmailFolder = "inbox"
	FolderSent    EmailFolder = "sent"
	FolderDrafts  EmailFolder = "drafts"
	FolderOutbox  EmailFolder = "outbox"
	FolderTrash   EmailFolder = "trash"
	FolderArchive EmailFolder = "archive"
)

// EmailAccount is a staff member's mailbox connection. Password is write
// only and never leaves the API.
type EmailAccount struct {
	Model
	StaffID    int64
	Name       string
	Email      string
	IMAPHost   string
	IMAPPort   int
	SMTPHost   string
	SMTPPort   int
	Encryption string
	Username   string
	Password   string
	IsDefault  bool
}

// EmailMessage is a stored or queued email.
type EmailMessage struct {
	Model
	AccountID   int64
	StaffID     int64
	Folder      EmailFolder
	Subject     string
	FromAddress string
	To          []string
	Cc          []string
	Bcc         []string
	BodyHTML    string
	BodyText    string
	IsRead      bool
	IsStarred   bool
	SentAt      *time.Time
	ReceivedAt  *time.Time
	InReplyTo   *int64
}

// QueueForSending puts a composed message in the outbox. Drafts stay in
// the drafts folder.
func (m *EmailMessage) QueueForSending(draft bool) {
	m.IsRead = true
	if draft {
		m.Folder = FolderDrafts
		return
	}
	m.Folder = FolderOutbox
}

// MoveTo moves the message to another folder. Queued messages stay put
// until the mailer picks them up.
func (m *EmailMessage) MoveTo(folder EmailFolder) error {
	if m.Folder == FolderOutbox && folder != FolderTrash {
		return NewStateError("folder", "A queued message can only be moved to the trash.")
	}
	m.Folder = folder
	return nil
}

// JoinAddresses stores an address list in a single column.
func JoinAddresses(addrs []string) string {
	return strings.Join(addrs, ",")
}

// SplitAddresses reverses JoinAddresses.
func SplitAddresses(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// EmailAttachment is file metadata for an attachment. The bytes live in
// CRM storage.
type EmailAttachment struct {
	Model
	MessageID   int64
	FileName    string
	MimeType    string
	Size        int64
	StoragePath string
}

// EmailSignature is a reusable signature block.
type EmailSignature struct {
	Model
	StaffID   int64
	AccountID *int64
	Name      string
	Body      string
	IsDefault bool
}
