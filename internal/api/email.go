package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/crm-mobile-api/internal/api/request"
	"github.com/phrazzld/crm-mobile-api/internal/api/resource"
	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// EmailHandler serves /email. Accounts, signatures and messages belong to
// one staff member and are invisible to everybody else.
type EmailHandler struct {
	base
	accounts   *crud[*domain.EmailAccount, resource.EmailAccountResource]
	signatures *crud[*domain.EmailSignature, resource.EmailSignatureResource]
	messages   *crud[*domain.EmailMessage, resource.EmailMessageResource]

	accountStore store.EmailAccountStore
	messageStore store.EmailMessageStore
}

// NewEmailHandler creates an EmailHandler.
func NewEmailHandler(
	d Deps,
	accounts store.EmailAccountStore,
	signatures store.EmailSignatureStore,
	messages store.EmailMessageStore,
) *EmailHandler {
	b := newBase(d, "email_handler")
	return &EmailHandler{
		base: b,
		accounts: &crud[*domain.EmailAccount, resource.EmailAccountResource]{
			base:        b,
			noun:        "Email account",
			store:       accounts,
			present:     plain(resource.NewEmailAccount),
			newCreate:   func() request.Creator[*domain.EmailAccount] { return &request.CreateEmailAccountRequest{} },
			newUpdate:   func() request.Updater[*domain.EmailAccount] { return &request.UpdateEmailAccountRequest{} },
			owns:        func(a *domain.EmailAccount, actor int64) bool { return a.StaffID == actor },
			ownerFilter: "staff_id",
		},
		signatures: &crud[*domain.EmailSignature, resource.EmailSignatureResource]{
			base:        b,
			noun:        "Signature",
			store:       signatures,
			present:     plain(resource.NewEmailSignature),
			newCreate:   func() request.Creator[*domain.EmailSignature] { return &request.CreateEmailSignatureRequest{} },
			newUpdate:   func() request.Updater[*domain.EmailSignature] { return &request.UpdateEmailSignatureRequest{} },
			owns:        func(s *domain.EmailSignature, actor int64) bool { return s.StaffID == actor },
			ownerFilter: "staff_id",
		},
		messages: &crud[*domain.EmailMessage, resource.EmailMessageResource]{
			base:        b,
			noun:        "Email",
			store:       messages,
			present:     plain(resource.NewEmailMessage),
			newUpdate:   func() request.Updater[*domain.EmailMessage] { return &request.UpdateEmailMessageRequest{} },
			owns:        func(m *domain.EmailMessage, actor int64) bool { return m.StaffID == actor },
			ownerFilter: "staff_id",
		},
		accountStore: accounts,
		messageStore: messages,
	}
}

// Routes registers the email routes.
func (h *EmailHandler) Routes(r chi.Router) {
	r.Route("/email", func(r chi.Router) {
		r.Route("/accounts", h.accounts.mount)
		r.Route("/signatures", h.signatures.mount)
		r.Route("/messages", func(r chi.Router) {
			r.Get("/", h.messages.List)
			r.Post("/", h.Compose)
			r.Get("/{id}", h.ShowMessage)
			r.Patch("/{id}", h.messages.Update)
			r.Delete("/{id}", h.messages.Delete)
			r.Get("/{id}/attachments", h.Attachments)
		})
		r.Get("/attachments/{id}", h.Attachment)
	})
}

// Compose handles POST /email/messages. The message is queued in the
// outbox for the CRM mailer, or kept in drafts when draft is set.
func (h *EmailHandler) Compose(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var req request.ComposeEmailRequest
	if !h.bind(w, r, &req) {
		return
	}

	account, err := h.accountStore.Get(r.Context(), req.AccountID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		HandleAPIError(w, r, fmt.Errorf("load email account %d: %w", req.AccountID, err))
		return
	}
	if err != nil || account.StaffID != actor {
		HandleAPIError(w, r, request.NewValidationError("account_id", "The selected account id is invalid."))
		return
	}

	msg := req.New(actor, h.now(), h.binder.Sanitizer())
	msg.FromAddress = account.Email
	if err := h.messageStore.Create(r.Context(), msg); err != nil {
		HandleAPIError(w, r, fmt.Errorf("store composed email: %w", err))
		return
	}

	message := "Email queued for sending."
	if req.Draft {
		message = "Draft saved."
	}
	h.log(r).Info("email composed",
		"message_id", msg.ID,
		"folder", string(msg.Folder))
	shared.RespondWithMessage(w, r, http.StatusCreated, message, resource.NewEmailMessage(msg))
}

// ShowMessage handles GET /email/messages/{id}. Opening a message marks
// it read.
func (h *EmailHandler) ShowMessage(w http.ResponseWriter, r *http.Request) {
	msg, ok := h.messages.load(w, r)
	if !ok {
		return
	}
	if !msg.IsRead {
		msg.IsRead = true
		if err := h.messageStore.Update(r.Context(), msg); err != nil {
			HandleAPIError(w, r, fmt.Errorf("mark email %d read: %w", msg.ID, err))
			return
		}
	}
	shared.RespondWithData(w, r, http.StatusOK, resource.NewEmailMessage(msg))
}

// Attachments handles GET /email/messages/{id}/attachments.
func (h *EmailHandler) Attachments(w http.ResponseWriter, r *http.Request) {
	msg, ok := h.messages.load(w, r)
	if !ok {
		return
	}
	files, err := h.messageStore.Attachments(r.Context(), msg.ID)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("list attachments of email %d: %w", msg.ID, err))
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, resource.List(files, resource.NewEmailAttachment))
}

// Attachment handles GET /email/attachments/{id}. It returns metadata and
// a download URL, not the file itself.
func (h *EmailHandler) Attachment(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	file, err := h.messageStore.Attachment(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("get attachment %d: %w", id, err))
		return
	}
	msg, err := h.messageStore.Get(r.Context(), file.MessageID)
	if err == nil && msg.StaffID != actor {
		err = fmt.Errorf("attachment %d not visible to staff %d: %w", id, actor, store.ErrNotFound)
	}
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, resource.NewEmailAttachment(file))
}
