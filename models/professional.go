package models

import "time"

// Professional represents a service provider listed on the marketplace.
type Professional struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Discipline    string    `bson:"discipline" json:"discipline"` // Primary trade, e.g., "hvac"
	Bio           string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Rating        float64   `bson:"rating" json:"rating"`                 // Average review score, 0–5
	CompletedJobs int       `bson:"completed_jobs" json:"completed_jobs"` // Lifetime completed leads
	Status        string    `bson:"status" json:"status"`                 // "active", "paused", "suspended"
	City          string    `bson:"city,omitempty" json:"city,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
