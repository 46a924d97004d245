package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/crm-mobile-api/internal/api/request"
	"github.com/phrazzld/crm-mobile-api/internal/api/resource"
	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// ChatHandler serves /chat. Every room route is limited to room members.
type ChatHandler struct {
	base
	chat store.ChatStore
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(d Deps, chat store.ChatStore) *ChatHandler {
	return &ChatHandler{base: newBase(d, "chat_handler"), chat: chat}
}

// Routes registers the chat routes.
func (h *ChatHandler) Routes(r chi.Router) {
	r.Route("/chat/rooms", func(r chi.Router) {
		r.Get("/", h.Rooms)
		r.Post("/", h.CreateRoom)
		r.Get("/{id}", h.Room)
		r.Delete("/{id}", h.DeleteRoom)
		r.Get("/{id}/messages", h.Messages)
		r.Post("/{id}/messages", h.PostMessage)
		r.Post("/{id}/read", h.MarkRead)
	})
}

// Rooms handles GET /chat/rooms.
func (h *ChatHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	page, err := h.chat.Rooms(r.Context(), actor, h.listParams(r))
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("list chat rooms: %w", err))
		return
	}
	c := resource.NewCollection(page, resource.NewChatRoom)
	shared.RespondWithPage(w, r, c.Items, c.Meta)
}

// CreateRoom handles POST /chat/rooms.
func (h *ChatHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var req request.CreateChatRoomRequest
	if !h.bind(w, r, &req) {
		return
	}
	room, err := req.New(actor, h.now())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := h.chat.CreateRoom(r.Context(), room); err != nil {
		HandleAPIError(w, r, fmt.Errorf("create chat room: %w", err))
		return
	}
	shared.RespondWithMessage(w, r, http.StatusCreated, "Chat room created successfully.", resource.NewChatRoom(room))
}

// room loads {id} for a member. Non-members get 404.
func (h *ChatHandler) room(w http.ResponseWriter, r *http.Request) (*domain.ChatRoom, int64, bool) {
	actor, ok := h.actor(w, r)
	if !ok {
		return nil, 0, false
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return nil, 0, false
	}
	room, err := h.chat.Room(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("get chat room %d: %w", id, err))
		return nil, 0, false
	}
	if !room.HasMember(actor) {
		HandleAPIError(w, r, fmt.Errorf("staff %d is not in chat room %d: %w", actor, id, store.ErrNotFound))
		return nil, 0, false
	}
	return room, actor, true
}

// Room handles GET /chat/rooms/{id}.
func (h *ChatHandler) Room(w http.ResponseWriter, r *http.Request) {
	room, _, ok := h.room(w, r)
	if !ok {
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, resource.NewChatRoom(room))
}

// DeleteRoom handles DELETE /chat/rooms/{id}. Only the creator may delete.
func (h *ChatHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	room, actor, ok := h.room(w, r)
	if !ok {
		return
	}
	if room.CreatedBy != actor {
		HandleAPIError(w, r, fmt.Errorf("delete chat room %d: %w", room.ID, domain.ErrUnauthorized))
		return
	}
	if err := h.chat.DeleteRoom(r.Context(), room.ID); err != nil {
		HandleAPIError(w, r, fmt.Errorf("delete chat room %d: %w", room.ID, err))
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, "Chat room deleted successfully.", nil)
}

// Messages handles GET /chat/rooms/{id}/messages, newest first.
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	room, _, ok := h.room(w, r)
	if !ok {
		return
	}
	page, err := h.chat.Messages(r.Context(), room.ID, h.listParams(r))
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("list messages of room %d: %w", room.ID, err))
		return
	}
	c := resource.NewCollection(page, resource.NewChatMessage)
	shared.RespondWithPage(w, r, c.Items, c.Meta)
}

// PostMessage handles POST /chat/rooms/{id}/messages.
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	room, actor, ok := h.room(w, r)
	if !ok {
		return
	}
	var req request.PostChatMessageRequest
	if !h.bind(w, r, &req) {
		return
	}
	msg := &domain.ChatMessage{RoomID: room.ID, StaffID: actor, Body: req.Body}
	if err := h.chat.PostMessage(r.Context(), msg); err != nil {
		HandleAPIError(w, r, fmt.Errorf("post to room %d: %w", room.ID, err))
		return
	}
	shared.RespondWithMessage(w, r, http.StatusCreated, "Message sent.", resource.NewChatMessage(msg))
}

// MarkRead handles POST /chat/rooms/{id}/read.
func (h *ChatHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	room, actor, ok := h.room(w, r)
	if !ok {
		return
	}
	if err := h.chat.MarkRead(r.Context(), room.ID, actor, h.now()); err != nil {
		HandleAPIError(w, r, fmt.Errorf("mark room %d read: %w", room.ID, err))
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, "Messages marked as read.", nil)
}
