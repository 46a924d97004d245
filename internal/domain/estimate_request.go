package domain

// EstimateRequestStatus is the handling state of an inbound quote request.
type EstimateRequestStatus string

// Estimate request statuses.
const (
	EstimateRequestPending    EstimateRequestStatus = "pending"
	EstimateRequestProcessing EstimateRequestStatus = "processing"
	EstimateRequestCompleted  EstimateRequestStatus = "completed"
	EstimateRequestCancelled  EstimateRequestStatus = "cancelled"
)

// EstimateRequest is a request for a quote, usually submitted from a web
// form and then worked by staff.
type EstimateRequest struct {
	Model
	Name       string
	Email      string
	Phone      string
	ClientID   *int64
	AssignedTo *int64
	Status     EstimateRequestStatus
	Submission string
}
