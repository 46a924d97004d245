package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/mocks"
)

func TestChatHandler_Rooms(t *testing.T) {
	chat := mocks.NewChatStore()
	refs := mocks.NewReferenceChecker().Add("staff", 7, 8, 9)
	deps := testDeps(refs)
	alice := testServer(NewChatHandler(deps, chat), 7)
	bob := testServer(NewChatHandler(deps, chat), 8)
	carol := testServer(NewChatHandler(deps, chat), 9)

	res := doRequest(t, alice, http.MethodPost, "/chat/rooms", map[string]any{"type": "direct", "member_ids": []int64{8}})
	require.Equal(t, http.StatusCreated, res.Code)
	assert.Equal(t, []any{float64(7), float64(8)}, res.data(t)["member_ids"], "creator joins the room")

	res = doRequest(t, alice, http.MethodPost, "/chat/rooms", map[string]any{"type": "group", "member_ids": []int64{8}})
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Contains(t, res.Errors, "name")

	res = doRequest(t, alice, http.MethodPost, "/chat/rooms", map[string]any{"type": "direct", "member_ids": []int64{42}})
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Contains(t, res.Errors, "member_ids.0")

	res = doRequest(t, bob, http.MethodPost, "/chat/rooms/1/messages", map[string]any{"message": "hi <script>x</script>there"})
	require.Equal(t, http.StatusCreated, res.Code)
	assert.Equal(t, "Message sent.", res.Message)
	require.Equal(t, 1, chat.MessageStore.Len())
	assert.NotContains(t, chat.MessageStore.All()[0].Body, "<script>")

	res = doRequest(t, alice, http.MethodGet, "/chat/rooms/1/messages", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Len(t, res.items(t), 1)
	assert.Equal(t, http.StatusOK, doRequest(t, alice, http.MethodPost, "/chat/rooms/1/read", map[string]any{}).Code)

	t.Run("non members cannot see the room", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, doRequest(t, carol, http.MethodGet, "/chat/rooms/1", nil).Code)
		assert.Equal(t, http.StatusNotFound, doRequest(t, carol, http.MethodGet, "/chat/rooms/1/messages", nil).Code)
		assert.Equal(t, http.StatusNotFound,
			doRequest(t, carol, http.MethodPost, "/chat/rooms/1/messages", map[string]any{"message": "hello"}).Code)

		res := doRequest(t, carol, http.MethodGet, "/chat/rooms", nil)
		require.Equal(t, http.StatusOK, res.Code)
		assert.Empty(t, res.items(t))
	})

	t.Run("only the creator deletes", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, doRequest(t, bob, http.MethodDelete, "/chat/rooms/1", nil).Code)
		assert.Equal(t, http.StatusOK, doRequest(t, alice, http.MethodDelete, "/chat/rooms/1", nil).Code)
		assert.Equal(t, 0, chat.RoomStore.Len())
	})
}

func TestTicketHandler_Reply(t *testing.T) {
	tickets := mocks.NewTicketStore()
	tickets.Seed(&domain.Ticket{Subject: "Login broken", Status: domain.TicketOpen})
	srv := testServer(NewTicketHandler(testDeps(nil), tickets), 7)

	res := doRequest(t, srv, http.MethodPost, "/tickets/1/replies", map[string]any{"message": "Looking into it"})
	require.Equal(t, http.StatusCreated, res.Code)
	assert.Equal(t, "Reply added successfully.", res.Message)

	stored, err := tickets.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketAnswered, stored.Status)
	require.NotNil(t, stored.LastReplyAt)

	res = doRequest(t, srv, http.MethodPost, "/tickets/1/replies", map[string]any{"message": "Fixed", "status": "closed"})
	require.Equal(t, http.StatusCreated, res.Code)

	res = doRequest(t, srv, http.MethodGet, "/tickets/1/replies", nil)
	require.Equal(t, http.StatusOK, res.Code)
	replies := res.items(t)
	require.Len(t, replies, 2)

	stored, err = tickets.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketClosed, stored.Status)

	res = doRequest(t, srv, http.MethodPost, "/tickets/1/replies", map[string]any{"message": "x", "status": "deleted"})
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Contains(t, res.Errors, "status")
}
