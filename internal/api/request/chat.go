package request

import (
	"fmt"
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// CreateChatRoomRequest opens a direct or group conversation. The caller
// is always a member.
type CreateChatRoomRequest struct {
	Name      string  `json:"name"       validate:"max=191"`
	Type      string  `json:"type"       validate:"required,oneof=direct group"`
	MemberIDs []int64 `json:"member_ids" validate:"required,min=1,max=100,dive,gt=0"`
}

// Prepare implements Preparer.
func (r *CreateChatRoomRequest) Prepare(s *Sanitizer) {
	r.Name = s.Text(r.Name)
}

// References implements Referencer.
func (r *CreateChatRoomRequest) References() []Reference {
	refs := make([]Reference, len(r.MemberIDs))
	for i, id := range r.MemberIDs {
		refs[i] = Reference{Field: fmt.Sprintf("member_ids.%d", i), Table: "staff", ID: id}
	}
	return refs
}

// New builds the room with actor as creator and member.
func (r *CreateChatRoomRequest) New(actor int64, _ time.Time) (*domain.ChatRoom, error) {
	room := &domain.ChatRoom{
		Name:      r.Name,
		Type:      domain.ChatRoomType(r.Type),
		CreatedBy: actor,
		MemberIDs: append([]int64(nil), r.MemberIDs...),
	}
	room.NormalizeMembers()
	if err := room.Validate(); err != nil {
		return nil, err
	}
	return room, nil
}

// PostChatMessageRequest sends a message to a room. Bodies are plain
// text.
type PostChatMessageRequest struct {
	Body string `json:"message" validate:"required,max=5000"`
}

// Prepare implements Preparer.
func (r *PostChatMessageRequest) Prepare(s *Sanitizer) {
	r.Body = s.Text(r.Body)
}

// Check implements Checker.
func (r *PostChatMessageRequest) Check() map[string]string {
	if r.Body == "" {
		return map[string]string{"message": "The message field is required."}
	}
	return nil
}
