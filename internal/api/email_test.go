package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/mocks"
)

type emailFixture struct {
	accounts   *mocks.MemoryStore[*domain.EmailAccount]
	signatures *mocks.MemoryStore[*domain.EmailSignature]
	messages   *mocks.EmailMessageStore
	srv        http.Handler
}

func newEmailFixture(staffID int64) *emailFixture {
	f := &emailFixture{
		accounts:   mocks.NewMemoryStore[*domain.EmailAccount](),
		signatures: mocks.NewMemoryStore[*domain.EmailSignature](),
		messages:   mocks.NewEmailMessageStore(),
	}
	f.accounts.Match = func(a *domain.EmailAccount, key, value string) bool {
		return key != "staff_id" || mocks.MatchInt64(a.StaffID, value)
	}
	f.accounts.Seed(
		&domain.EmailAccount{StaffID: 7, Email: "sales@acme.test", Password: "secret"},
		&domain.EmailAccount{StaffID: 8, Email: "bob@acme.test"},
	)
	refs := mocks.NewReferenceChecker().Add("email_accounts", 1, 2)
	h := NewEmailHandler(testDeps(refs), f.accounts, f.signatures, f.messages)
	f.srv = testServer(h, staffID)
	return f
}

func TestEmailHandler_Compose(t *testing.T) {
	t.Run("queues in outbox", func(t *testing.T) {
		f := newEmailFixture(7)
		res := doRequest(t, f.srv, http.MethodPost, "/email/messages", map[string]any{
			"account_id": 1,
			"to":         []string{"client@roe.test"},
			"subject":    "Your quote",
			"body":       `<p>Hello</p><script>alert(1)</script>`,
		})
		require.Equal(t, http.StatusCreated, res.Code)
		assert.Equal(t, "Email queued for sending.", res.Message)

		data := res.data(t)
		assert.Equal(t, "outbox", data["folder"])
		assert.Equal(t, "sales@acme.test", data["from"])

		stored := f.messages.All()[0]
		assert.Equal(t, int64(7), stored.StaffID)
		assert.NotContains(t, stored.BodyHTML, "<script>")
		require.NotNil(t, stored.SentAt)
	})

	t.Run("draft", func(t *testing.T) {
		f := newEmailFixture(7)
		res := doRequest(t, f.srv, http.MethodPost, "/email/messages", map[string]any{
			"account_id": 1, "to": []string{"client@roe.test"}, "draft": true,
		})
		require.Equal(t, http.StatusCreated, res.Code)
		assert.Equal(t, "Draft saved.", res.Message)
		assert.Equal(t, "drafts", res.data(t)["folder"])
	})

	t.Run("account of another staff member", func(t *testing.T) {
		f := newEmailFixture(7)
		res := doRequest(t, f.srv, http.MethodPost, "/email/messages", map[string]any{
			"account_id": 2, "to": []string{"client@roe.test"},
		})
		assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
		assert.Equal(t, []string{"The selected account id is invalid."}, res.Errors["account_id"])
		assert.Equal(t, 0, f.messages.Len())
	})

	t.Run("bad recipient", func(t *testing.T) {
		f := newEmailFixture(7)
		res := doRequest(t, f.srv, http.MethodPost, "/email/messages", map[string]any{
			"account_id": 1, "to": []string{"not-an-address"},
		})
		assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	})
}

func TestEmailHandler_Messages(t *testing.T) {
	f := newEmailFixture(7)
	f.messages.Seed(
		&domain.EmailMessage{AccountID: 1, StaffID: 7, Folder: domain.FolderInbox, Subject: "Hi"},
		&domain.EmailMessage{AccountID: 2, StaffID: 8, Folder: domain.FolderInbox, Subject: "Private"},
		&domain.EmailMessage{AccountID: 1, StaffID: 7, Folder: domain.FolderOutbox, Subject: "Queued"},
	)
	f.messages.Files.Seed(
		&domain.EmailAttachment{MessageID: 1, FileName: "quote.pdf", MimeType: "application/pdf", Size: 2048},
		&domain.EmailAttachment{MessageID: 2, FileName: "secret.pdf"},
	)

	res := doRequest(t, f.srv, http.MethodGet, "/email/messages?folder=inbox", nil)
	require.Equal(t, http.StatusOK, res.Code)
	items := res.items(t)
	require.Len(t, items, 1)
	assert.Equal(t, "Hi", items[0]["subject"])

	res = doRequest(t, f.srv, http.MethodGet, "/email/messages/1", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, true, res.data(t)["is_read"], "opening marks read")

	assert.Equal(t, http.StatusNotFound, doRequest(t, f.srv, http.MethodGet, "/email/messages/2", nil).Code)

	res = doRequest(t, f.srv, http.MethodGet, "/email/messages/1/attachments", nil)
	require.Equal(t, http.StatusOK, res.Code)
	require.Len(t, res.items(t), 1)
	assert.Equal(t, "quote.pdf", res.items(t)[0]["file_name"])

	assert.Equal(t, http.StatusOK, doRequest(t, f.srv, http.MethodGet, "/email/attachments/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, f.srv, http.MethodGet, "/email/attachments/2", nil).Code)

	t.Run("queued messages only move to trash", func(t *testing.T) {
		res := doRequest(t, f.srv, http.MethodPatch, "/email/messages/3", map[string]any{"folder": "archive"})
		assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
		assert.Contains(t, res.Errors, "folder")

		res = doRequest(t, f.srv, http.MethodPatch, "/email/messages/3", map[string]any{"folder": "trash"})
		require.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "trash", res.data(t)["folder"])
	})
}

func TestEmailHandler_Accounts(t *testing.T) {
	f := newEmailFixture(7)

	res := doRequest(t, f.srv, http.MethodGet, "/email/accounts", nil)
	require.Equal(t, http.StatusOK, res.Code)
	items := res.items(t)
	require.Len(t, items, 1)
	assert.Equal(t, "sales@acme.test", items[0]["email"])
	assert.NotContains(t, items[0], "password")

	assert.Equal(t, http.StatusNotFound, doRequest(t, f.srv, http.MethodDelete, "/email/accounts/2", nil).Code)
	assert.Equal(t, 2, f.accounts.Len())
}
