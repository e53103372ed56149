package entity

import (
	"time"

	"github.com/google/uuid"
)

// TravelPreference is how far a member is willing to travel for work.
type TravelPreference string

const (
	TravelBase    TravelPreference = "BASE"
	TravelRegion  TravelPreference = "REGION"
	TravelCountry TravelPreference = "COUNTRY"
)

// IsValid checks if the TravelPreference is a known value.
func (p TravelPreference) IsValid() bool {
	switch p {
	case TravelBase, TravelRegion, TravelCountry:
		return true
	default:
		return false
	}
}

// Label is the human readable description shown on profiles.
func (p TravelPreference) Label() string {
	switch p {
	case TravelBase:
		return "City only"
	case TravelRegion:
		return "Region"
	case TravelCountry:
		return "Anywhere in the country"
	default:
		return string(p)
	}
}

// Links holds a member's external profiles.
type Links struct {
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Member is the public-facing profile of an applicant. Its ID equals the owning User's ID.
type Member struct {
	ID                uuid.UUID
	FullName          string
	Username          string // Slug-normalised, unique.
	Identity          []string
	About             string
	Email             string
	PhoneNumber       string
	DateOfBirth       time.Time
	YearsOfExperience int
	TravelPreference  TravelPreference
	ProfilePictureURL string
	Links             Links
	IsFeatured        bool
	LocationCityID    uuid.UUID
	Location          *LocationCity
	Tags              []Tag
	Services          []Service
	Application       *MembershipApplication
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsApproved reports whether the member is visible in the public directory.
func (m *Member) IsApproved() bool {
	return m.Application != nil && m.Application.Status == StatusApproved
}

// TagIDs returns the ids of the member's tags.
func (m *Member) TagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(m.Tags))
	for i, t := range m.Tags {
		ids[i] = t.ID
	}

	return ids
}

// ServiceIDs returns the ids of the member's services.
func (m *Member) ServiceIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(m.Services))
	for i, s := range m.Services {
		ids[i] = s.ID
	}

	return ids
}
