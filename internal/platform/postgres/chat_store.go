package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/platform/logger"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// ChatStore implements store.ChatStore.
type ChatStore struct {
	db     *sql.DB
	logger *slog.Logger
	clock  func() time.Time
}

var _ store.ChatStore = (*ChatStore)(nil)

// NewChatStore creates a ChatStore.
func NewChatStore(db *sql.DB, log *slog.Logger) *ChatStore {
	if log == nil {
		log = slog.Default()
	}
	return &ChatStore{
		db:     db,
		logger: log.With(slog.String("component", "chat_store")),
		clock:  time.Now,
	}
}

const roomsForMemberSQL = `
	SELECT r.id, r.name, r.room_type, r.created_by, r.last_message_at, r.created_at, r.updated_at,
		(SELECT COUNT(*) FROM chat_messages m
		 WHERE m.room_id = r.id AND m.staff_id <> $1
		 AND m.created_at > COALESCE(mem.last_read_at, 'epoch'::timestamptz)) AS unread
	FROM chat_rooms r
	JOIN chat_room_members mem ON mem.room_id = r.id AND mem.staff_id = $1
	ORDER BY r.last_message_at DESC NULLS LAST, r.id DESC
	LIMIT $2 OFFSET $3`

// Rooms implements store.ChatStore.
func (s *ChatStore) Rooms(ctx context.Context, staffID int64, p store.ListParams) (*store.Page[*domain.ChatRoom], error) {
	page := &store.Page[*domain.ChatRoom]{Items: []*domain.ChatRoom{}, Page: p.Page, PerPage: p.PerPage}
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM chat_room_members WHERE staff_id = $1", staffID).Scan(&page.Total); err != nil {
		return nil, fmt.Errorf("count chat rooms: %w", MapError(err))
	}
	if page.Total == 0 {
		return page, nil
	}

	rows, err := s.db.QueryContext(ctx, roomsForMemberSQL, staffID, p.PerPage, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("list chat rooms: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	byID := map[int64]*domain.ChatRoom{}
	ids := []int64{}
	for rows.Next() {
		room := &domain.ChatRoom{}
		targets := append(chatRoomTable.scanTargets(room), &room.UnreadCount)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan chat room: %w", err)
		}
		page.Items = append(page.Items, room)
		byID[room.ID] = room
		ids = append(ids, room.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat rooms: %w", err)
	}
	if err := s.loadMembers(ctx, s.db, ids, byID); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *ChatStore) loadMembers(ctx context.Context, q store.DBTX, ids []int64, byID map[int64]*domain.ChatRoom) error {
	if len(ids) == 0 {
		return nil
	}
	rows, err := q.QueryContext(ctx,
		"SELECT room_id, staff_id FROM chat_room_members WHERE room_id = ANY($1) ORDER BY room_id, staff_id",
		ids)
	if err != nil {
		return fmt.Errorf("load chat members: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var roomID, staffID int64
		if err := rows.Scan(&roomID, &staffID); err != nil {
			return fmt.Errorf("scan chat member: %w", err)
		}
		if room, ok := byID[roomID]; ok {
			room.MemberIDs = append(room.MemberIDs, staffID)
		}
	}
	return rows.Err()
}

// Room implements store.ChatStore.
func (s *ChatStore) Room(ctx context.Context, id int64) (*domain.ChatRoom, error) {
	room, err := chatRoomTable.get(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if err := s.loadMembers(ctx, s.db, []int64{id}, map[int64]*domain.ChatRoom{id: room}); err != nil {
		return nil, err
	}
	return room, nil
}

// CreateRoom implements store.ChatStore.
func (s *ChatStore) CreateRoom(ctx context.Context, room *domain.ChatRoom) error {
	now := s.clock()
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := chatRoomTable.insert(ctx, tx, room, now); err != nil {
			return err
		}
		for _, staffID := range room.MemberIDs {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO chat_room_members (room_id, staff_id, joined_at) VALUES ($1, $2, $3)",
				room.ID, staffID, utc(now)); err != nil {
				return fmt.Errorf("add chat member %d: %w", staffID, MapError(err))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("chat room created",
		slog.Int64("room_id", room.ID),
		slog.Int("members", len(room.MemberIDs)))
	return nil
}

// DeleteRoom implements store.ChatStore. Members and messages go with the
// room through ON DELETE CASCADE.
func (s *ChatStore) DeleteRoom(ctx context.Context, id int64) error {
	return chatRoomTable.delete(ctx, s.db, id)
}

// Messages implements store.ChatStore.
func (s *ChatStore) Messages(ctx context.Context, roomID int64, p store.ListParams) (*store.Page[*domain.ChatMessage], error) {
	return chatMessageTable.list(ctx, s.db, p.WithFilter("room_id", fmt.Sprint(roomID)))
}

// PostMessage implements store.ChatStore. Posting also marks the room read
// for the sender.
func (s *ChatStore) PostMessage(ctx context.Context, msg *domain.ChatMessage) error {
	now := s.clock()
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := chatMessageTable.insert(ctx, tx, msg, now); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE chat_rooms SET last_message_at = $1, updated_at = $1 WHERE id = $2",
			utc(now), msg.RoomID); err != nil {
			return fmt.Errorf("bump chat room: %w", MapError(err))
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE chat_room_members SET last_read_at = $1 WHERE room_id = $2 AND staff_id = $3",
			utc(now), msg.RoomID, msg.StaffID); err != nil {
			return fmt.Errorf("mark sender read: %w", MapError(err))
		}
		return nil
	})
}

// MarkRead implements store.ChatStore.
func (s *ChatStore) MarkRead(ctx context.Context, roomID, staffID int64, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE chat_room_members SET last_read_at = $1 WHERE room_id = $2 AND staff_id = $3",
		utc(at), roomID, staffID)
	if err != nil {
		return fmt.Errorf("mark chat read: %w", MapError(err))
	}
	return CheckRowsAffected(res, "chat room member")
}
