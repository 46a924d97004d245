package domain

import "fmt"

// ModelType names a CRM record kind that other records can attach to
// (notes, comments, reminders, tasks, meetings, proposals).
type ModelType string

// Polymorphic model types.
const (
	ModelLead     ModelType = "lead"
	ModelClient   ModelType = "client"
	ModelDeal     ModelType = "deal"
	ModelTask     ModelType = "task"
	ModelTicket   ModelType = "ticket"
	ModelEstimate ModelType = "estimate"
	ModelProposal ModelType = "proposal"
)

var modelTables = map[ModelType]string{
	ModelLead:     "leads",
	ModelClient:   "clients",
	ModelDeal:     "deals",
	ModelTask:     "tasks",
	ModelTicket:   "tickets",
	ModelEstimate: "estimates",
	ModelProposal: "proposals",
}

// ModelTypes lists every polymorphic model type in a stable order.
func ModelTypes() []ModelType {
	return []ModelType{
		ModelLead, ModelClient, ModelDeal, ModelTask,
		ModelTicket, ModelEstimate, ModelProposal,
	}
}

// Valid reports whether t is a known model type.
func (t ModelType) Valid() bool {
	_, ok := modelTables[t]
	return ok
}

// Table returns the CRM table that stores records of this type.
func (t ModelType) Table() string {
	return modelTables[t]
}

// ParseModelType validates s as a ModelType.
func ParseModelType(s string) (ModelType, error) {
	t := ModelType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidModelType, s)
	}
	return t, nil
}

// ModelRef points at one CRM record of a given type.
type ModelRef struct {
	Type ModelType
	ID   int64
}

// NewModelRef builds a ModelRef, returning nil when either part is empty.
func NewModelRef(t string, id int64) *ModelRef {
	if t == "" || id == 0 {
		return nil
	}
	return &ModelRef{Type: ModelType(t), ID: id}
}
