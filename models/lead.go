package models

import "time"

// Lead statuses. A lead moves pending → contacted → scheduled → completed,
// or to cancelled from any non-terminal state.
const (
	LeadStatusPending   = "pending"
	LeadStatusContacted = "contacted"
	LeadStatusScheduled = "scheduled"
	LeadStatusCompleted = "completed"
	LeadStatusCancelled = "cancelled"
)

// Lead is a client's submitted service request, carrying a snapshot of the
// quote that was shown at submission time.
type Lead struct {
	ID          string         `bson:"id" json:"id"`
	ClientID    string         `bson:"client_id" json:"client_id"`
	ServiceID   string         `bson:"service_id" json:"service_id"`
	ServiceName string         `bson:"service_name" json:"service_name"`
	Quote       Quote          `bson:"quote" json:"quote"` // Immutable snapshot, never recomputed after submit
	FormData    map[string]any `bson:"form_data" json:"form_data"`
	Description string         `bson:"description" json:"description"` // Derived problem description used for validation
	Immediate   bool           `bson:"immediate" json:"immediate"`
	Date        time.Time      `bson:"date" json:"date"` // Requested appointment date
	Status      string         `bson:"status" json:"status"`
	CreatedAt   time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `bson:"updated_at" json:"updated_at"`
}

// LeadInput is the submission payload for creating a lead.
type LeadInput struct {
	ClientID  string         `json:"client_id" binding:"required"`
	ServiceID string         `json:"service_id" binding:"required"`
	FormData  map[string]any `json:"form_data"`
	Immediate bool           `json:"immediate"`
	Date      *time.Time     `json:"date"`
}
