package request

import (
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// CreateTodoRequest adds an item to the caller's own todo list.
type CreateTodoRequest struct {
	Description string `json:"description" validate:"required,max=1000"`
	ItemOrder   int    `json:"item_order"  validate:"gte=0"`
}

// Prepare implements Preparer.
func (r *CreateTodoRequest) Prepare(s *Sanitizer) {
	r.Description = s.Text(r.Description)
}

// New builds the todo for actor.
func (r *CreateTodoRequest) New(actor int64, _ time.Time) (*domain.Todo, error) {
	return &domain.Todo{StaffID: actor, Description: r.Description, ItemOrder: r.ItemOrder}, nil
}

// UpdateTodoRequest changes the fields it carries.
type UpdateTodoRequest struct {
	Description *string `json:"description" validate:"omitnil,notblank,max=1000"`
	Finished    *bool   `json:"finished"`
	ItemOrder   *int    `json:"item_order"  validate:"omitnil,gte=0"`
}

// Prepare implements Preparer.
func (r *UpdateTodoRequest) Prepare(s *Sanitizer) {
	s.TextPtr(r.Description)
}

// Apply implements Updater.
func (r *UpdateTodoRequest) Apply(t *domain.Todo, now time.Time) error {
	set(&t.Description, r.Description)
	set(&t.ItemOrder, r.ItemOrder)
	if r.Finished != nil && *r.Finished != t.Finished {
		t.SetFinished(*r.Finished, now)
	}
	return nil
}
