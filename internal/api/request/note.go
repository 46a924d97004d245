package request

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// CreateNoteRequest attaches a note to a record.
type CreateNoteRequest struct {
	ModelType   string `json:"model_type"  validate:"required,model_type"`
	ModelID     int64  `json:"model_id"    validate:"required,gt=0"`
	Description string `json:"description" validate:"required,max=65535"`
}

// Prepare implements Preparer.
func (r *CreateNoteRequest) Prepare(s *Sanitizer) {
	r.Description = s.HTML(r.Description)
}

// Check implements Checker.
func (r *CreateNoteRequest) Check() map[string]string {
	if r.Description == "" {
		return map[string]string{"description": "The description field is required."}
	}
	return nil
}

// References implements Referencer.
func (r *CreateNoteRequest) References() []Reference {
	return []Reference{modelRef(r.ModelType, r.ModelID)}
}

// New builds the note.
func (r *CreateNoteRequest) New(actor int64, _ time.Time) (*domain.Note, error) {
	return &domain.Note{
		Related:     domain.ModelRef{Type: domain.ModelType(r.ModelType), ID: r.ModelID},
		Description: r.Description,
		CreatedBy:   actor,
	}, nil
}

// UpdateNoteRequest edits a note's text.
type UpdateNoteRequest struct {
	Description *string `json:"description" validate:"omitnil,notblank,max=65535"`
}

// Prepare implements Preparer.
func (r *UpdateNoteRequest) Prepare(s *Sanitizer) {
	s.HTMLPtr(r.Description)
}

// Apply implements Updater.
func (r *UpdateNoteRequest) Apply(n *domain.Note, _ time.Time) error {
	set(&n.Description, r.Description)
	return nil
}

// CreateCommentRequest comments on a record.
type CreateCommentRequest struct {
	ModelType string `json:"model_type" validate:"required,model_type"`
	ModelID   int64  `json:"model_id"   validate:"required,gt=0"`
	Content   string `json:"content"    validate:"required,max=65535"`
}

// Prepare implements Preparer.
func (r *CreateCommentRequest) Prepare(s *Sanitizer) {
	r.Content = s.HTML(r.Content)
}

// Check implements Checker.
func (r *CreateCommentRequest) Check() map[string]string {
	if r.Content == "" {
		return map[string]string{"content": "The content field is required."}
	}
	return nil
}

// References implements Referencer.
func (r *CreateCommentRequest) References() []Reference {
	return []Reference{modelRef(r.ModelType, r.ModelID)}
}

// New builds the comment.
func (r *CreateCommentRequest) New(actor int64, _ time.Time) (*domain.Comment, error) {
	return &domain.Comment{
		Related: domain.ModelRef{Type: domain.ModelType(r.ModelType), ID: r.ModelID},
		Content: r.Content,
		StaffID: actor,
	}, nil
}

// UpdateCommentRequest edits a comment.
type UpdateCommentRequest struct {
	Content *string `json:"content" validate:"omitnil,notblank,max=65535"`
}

// Prepare implements Preparer.
func (r *UpdateCommentRequest) Prepare(s *Sanitizer) {
	s.HTMLPtr(r.Content)
}

// Apply implements Updater.
func (r *UpdateCommentRequest) Apply(c *domain.Comment, _ time.Time) error {
	set(&c.Content, r.Content)
	return nil
}
