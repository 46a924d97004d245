package mocks

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// ChatStore is an in-memory store.ChatStore.
type ChatStore struct {
	RoomStore    *MemoryStore[*domain.ChatRoom]
	MessageStore *MemoryStore[*domain.ChatMessage]
	Err          error

	mu       sync.Mutex
	lastRead map[[2]int64]time.Time
}

var _ store.ChatStore = (*ChatStore)(nil)

// NewChatStore creates an empty ChatStore.
func NewChatStore() *ChatStore {
	return &ChatStore{
		RoomStore:    NewMemoryStore[*domain.ChatRoom](),
		MessageStore: NewMemoryStore[*domain.ChatMessage](),
		lastRead:     map[[2]int64]time.Time{},
	}
}

// Rooms implements store.ChatStore.
func (s *ChatStore) Rooms(_ context.Context, staffID int64, p store.ListParams) (*store.Page[*domain.ChatRoom], error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var rooms []*domain.ChatRoom
	for _, r := range s.RoomStore.All() {
		if r.HasMember(staffID) {
			r.UnreadCount = s.unread(r.ID, staffID)
			rooms = append(rooms, r)
		}
	}
	slices.SortStableFunc(rooms, func(a, b *domain.ChatRoom) int {
		return lastActivity(b).Compare(lastActivity(a))
	})
	return paginate(rooms, p), nil
}

func lastActivity(r *domain.ChatRoom) time.Time {
	if r.LastMessageAt != nil {
		return *r.LastMessageAt
	}
	return r.CreatedAt
}

func (s *ChatStore) unread(roomID, staffID int64) int {
	s.mu.Lock()
	read, seen := s.lastRead[[2]int64{roomID, staffID}]
	s.mu.Unlock()
	n := 0
	for _, m := range s.MessageStore.All() {
		if m.RoomID == roomID && m.StaffID != staffID && (!seen || m.CreatedAt.After(read)) {
			n++
		}
	}
	return n
}

// Room implements store.ChatStore.
func (s *ChatStore) Room(ctx context.Context, id int64) (*domain.ChatRoom, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.RoomStore.Get(ctx, id)
}

// CreateRoom implements store.ChatStore.
func (s *ChatStore) CreateRoom(ctx context.Context, room *domain.ChatRoom) error {
	if s.Err != nil {
		return s.Err
	}
	return s.RoomStore.Create(ctx, room)
}

// DeleteRoom implements store.ChatStore.
func (s *ChatStore) DeleteRoom(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if err := s.RoomStore.Delete(ctx, id); err != nil {
		return err
	}
	for _, m := range s.MessageStore.All() {
		if m.RoomID == id {
			_ = s.MessageStore.Delete(ctx, m.ID)
		}
	}
	return nil
}

// Messages implements store.ChatStore.
func (s *ChatStore) Messages(_ context.Context, roomID int64, p store.ListParams) (*store.Page[*domain.ChatMessage], error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var msgs []*domain.ChatMessage
	all := s.MessageStore.All()
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].RoomID == roomID {
			msgs = append(msgs, all[i])
		}
	}
	return paginate(msgs, p), nil
}

// PostMessage implements store.ChatStore.
func (s *ChatStore) PostMessage(ctx context.Context, msg *domain.ChatMessage) error {
	if s.Err != nil {
		return s.Err
	}
	room, err := s.RoomStore.Get(ctx, msg.RoomID)
	if err != nil {
		return err
	}
	if err := s.MessageStore.Create(ctx, msg); err != nil {
		return err
	}
	at := msg.CreatedAt
	room.LastMessageAt = &at
	return s.MarkRead(ctx, msg.RoomID, msg.StaffID, at)
}

// MarkRead implements store.ChatStore.
func (s *ChatStore) MarkRead(_ context.Context, roomID, staffID int64, at time.Time) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRead[[2]int64{roomID, staffID}] = at
	return nil
}
