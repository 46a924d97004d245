package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// TicketStore implements store.TicketStore.
type TicketStore struct {
	*crudStore[*domain.Ticket]
}

var _ store.TicketStore = (*TicketStore)(nil)

// NewTicketStore creates a TicketStore.
func NewTicketStore(db *sql.DB, log *slog.Logger) *TicketStore {
	return &TicketStore{crudStore: newCRUDStore(db, ticketTable, log)}
}

// Replies implements store.TicketStore.
func (s *TicketStore) Replies(ctx context.Context, ticketID int64) ([]*domain.TicketReply, error) {
	t := ticketReplyTable
	query := fmt.Sprintf("SELECT %s FROM %s WHERE ticket_id = $1 ORDER BY created_at, id",
		t.selectList(), t.name)
	rows, err := s.db.QueryContext(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list ticket replies: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	replies := []*domain.TicketReply{}
	for rows.Next() {
		r := t.newE()
		if err := rows.Scan(t.scanTargets(r)...); err != nil {
			return nil, fmt.Errorf("scan ticket reply: %w", err)
		}
		replies = append(replies, r)
	}
	return replies, rows.Err()
}

// AddReply implements store.TicketStore.
func (s *TicketStore) AddReply(ctx context.Context, ticket *domain.Ticket, reply *domain.TicketReply) error {
	now := s.clock()
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		reply.TicketID = ticket.ID
		if err := ticketReplyTable.insert(ctx, tx, reply, now); err != nil {
			return err
		}
		return s.table.update(ctx, tx, ticket, now)
	})
}
