// Package domain contains the core data types for the Itinerary Planner API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, completion, handler).
package domain

import "time"

// Itinerary is a generated travel plan together with the request that produced it.
// Records are immutable once created: there is no update or delete.
type Itinerary struct {
	ID          int64     `json:"id"`
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	UserEmail   string    `json:"user_email"`
	Result      string    `json:"result"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItineraryRequest carries the client-supplied fields of a create request.
// The validate tags are enforced by the service layer after whitespace is trimmed.
// Days is capped at the largest value the INTEGER column can hold.
type ItineraryRequest struct {
	Destination string `json:"destination" validate:"required,max=255"`
	Days        int    `json:"days" validate:"required,gte=1,lte=2147483647"`
	UserEmail   string `json:"user_email" validate:"required,email,max=254"`
}
