package domain

import (
	"slices"
	"time"
)

// ChatRoomType distinguishes one-to-one rooms from group rooms.
type ChatRoomType string

// Chat room types.
const (
	ChatDirect ChatRoomType = "direct"
	ChatGroup  ChatRoomType = "group"
)

// ChatRoom is a staff conversation.
type ChatRoom struct {
	Model
	Name          string
	Type          ChatRoomType
	CreatedBy     int64
	MemberIDs     []int64
	LastMessageAt *time.Time
	UnreadCount   int
}

// HasMember reports whether staffID belongs to the room.
func (c *ChatRoom) HasMember(staffID int64) bool {
	return slices.Contains(c.MemberIDs, staffID)
}

// NormalizeMembers adds the creator, removes duplicates and sorts.
func (c *ChatRoom) NormalizeMembers() {
	ids := append([]int64{c.CreatedBy}, c.MemberIDs...)
	slices.Sort(ids)
	c.MemberIDs = slices.Compact(ids)
}

// Validate checks membership rules for the room type.
func (c *ChatRoom) Validate() error {
	switch c.Type {
	case ChatDirect:
		if len(c.MemberIDs) != 2 {
			return NewStateError("member_ids", "A direct chat must have exactly one other member.")
		}
	case ChatGroup:
		if c.Name == "" {
			return NewStateError("name", "The name field is required for group chats.")
		}
	}
	return nil
}

// ChatMessage is one message posted to a room.
type ChatMessage struct {
	Model
	RoomID  int64
	StaffID int64
	Body    string
}
