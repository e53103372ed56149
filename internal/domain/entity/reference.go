package entity

import "github.com/google/uuid"

// Tag is a photography niche a member works in.
type Tag struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Service is a kind of work a member offers.
type Service struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// LocationState is the top level of the location hierarchy.
type LocationState struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// LocationCity belongs to exactly one state.
type LocationCity struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	StateID uuid.UUID      `json:"stateId"`
	State   *LocationState `json:"state,omitempty"`
}
