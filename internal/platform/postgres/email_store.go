package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// EmailMessageStore implements store.EmailMessageStore.
type EmailMessageStore struct {
	*crudStore[*domain.EmailMessage]
}

var _ store.EmailMessageStore = (*EmailMessageStore)(nil)

// NewEmailMessageStore creates an EmailMessageStore.
func NewEmailMessageStore(db *sql.DB, log *slog.Logger) *EmailMessageStore {
	return &EmailMessageStore{crudStore: newCRUDStore(db, emailMessageTable, log)}
}

// Attachments implements store.EmailMessageStore.
func (s *EmailMessageStore) Attachments(ctx context.Context, messageID int64) ([]*domain.EmailAttachment, error) {
	t := emailAttachmentTable
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT %s FROM %s WHERE message_id = $1 ORDER BY id", t.selectList(), t.name),
		messageID)
	if err != nil {
		return nil, fmt.Errorf("list email attachments: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	out := []*domain.EmailAttachment{}
	for rows.Next() {
		a := t.newE()
		if err := rows.Scan(t.scanTargets(a)...); err != nil {
			return nil, fmt.Errorf("scan email attachment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Attachment implements store.EmailMessageStore.
func (s *EmailMessageStore) Attachment(ctx context.Context, id int64) (*domain.EmailAttachment, error) {
	return emailAttachmentTable.get(ctx, s.db, id)
}
