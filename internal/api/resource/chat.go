package resource

import "github.com/phrazzld/crm-mobile-api/internal/domain"

// ChatRoomResource is a conversation as seen by one member.
type ChatRoomResource struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	CreatedBy     int64   `json:"created_by"`
	MemberIDs     []int64 `json:"member_ids"`
	LastMessageAt *string `json:"last_message_at"`
	UnreadCount   int     `json:"unread_count"`
	CreatedAt     string  `json:"created_at"`
}

// NewChatRoom transforms a room.
func NewChatRoom(c *domain.ChatRoom) ChatRoomResource {
	members := c.MemberIDs
	if members == nil {
		members = []int64{}
	}
	return ChatRoomResource{
		ID:            c.ID,
		Name:          c.Name,
		Type:          string(c.Type),
		CreatedBy:     c.CreatedBy,
		MemberIDs:     members,
		LastMessageAt: timestampPtr(c.LastMessageAt),
		UnreadCount:   c.UnreadCount,
		CreatedAt:     timestamp(c.CreatedAt),
	}
}

// ChatMessageResource is one chat message.
type ChatMessageResource struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"room_id"`
	StaffID   int64  `json:"staff_id"`
	Body      string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// NewChatMessage transforms a message.
func NewChatMessage(m *domain.ChatMessage) ChatMessageResource {
	return ChatMessageResource{
		ID:        m.ID,
		RoomID:    m.RoomID,
		StaffID:   m.StaffID,
		Body:      m.Body,
		CreatedAt: timestamp(m.CreatedAt),
	}
}
