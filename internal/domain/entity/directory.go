package entity

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// SortOrder selects the secondary ordering of directory results.
// Featured members always come first.
type SortOrder string

const (
	SortDefault        SortOrder = ""
	SortExperienceAsc  SortOrder = "experienceAsc"
	SortExperienceDesc SortOrder = "experienceDesc"
	SortName           SortOrder = "name"
)

// IsValid checks if the SortOrder is a known value.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortDefault, SortExperienceAsc, SortExperienceDesc, SortName:
		return true
	default:
		return false
	}
}

// ExperienceRange bounds years of experience inclusively. Nil bounds are open.
type ExperienceRange struct {
	Start *int
	End   *int
}

// DirectoryFilter is the conjunction of criteria applied to the member directory.
// Empty sets and nil ids mean "no constraint".
type DirectoryFilter struct {
	Search            string
	Experience        ExperienceRange
	StateID           *uuid.UUID
	CityID            *uuid.UUID
	TravelPreferences []TravelPreference
	TagIDs            []uuid.UUID
	ServiceIDs        []uuid.UUID
	Status            ApplicationStatus
	Sort              SortOrder
}

// Normalize applies the directory's input conventions: an upper experience
// bound of 0 means "no upper bound", and surrounding whitespace in the
// search term is ignored.
func (f DirectoryFilter) Normalize() DirectoryFilter {
	if f.Experience.End != nil && *f.Experience.End == 0 {
		f.Experience.End = nil
	}
	f.Search = strings.TrimSpace(f.Search)

	return f
}

// Matches evaluates the filter against a fully loaded member.
func (f DirectoryFilter) Matches(m *Member) bool {
	f = f.Normalize()

	if f.Status != "" && (m.Application == nil || m.Application.Status != f.Status) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(m.FullName), strings.ToLower(f.Search)) {
		return false
	}
	if f.Experience.Start != nil && m.YearsOfExperience < *f.Experience.Start {
		return false
	}
	if f.Experience.End != nil && m.YearsOfExperience > *f.Experience.End {
		return false
	}
	if f.CityID != nil && m.LocationCityID != *f.CityID {
		return false
	}
	if f.StateID != nil && (m.Location == nil || m.Location.StateID != *f.StateID) {
		return false
	}
	if len(f.TravelPreferences) > 0 && !slices.Contains(f.TravelPreferences, m.TravelPreference) {
		return false
	}
	if len(f.TagIDs) > 0 && !intersects(f.TagIDs, m.TagIDs()) {
		return false
	}
	if len(f.ServiceIDs) > 0 && !intersects(f.ServiceIDs, m.ServiceIDs()) {
		return false
	}

	return true
}

func intersects(wanted, have []uuid.UUID) bool {
	for _, id := range have {
		if slices.Contains(wanted, id) {
			return true
		}
	}

	return false
}
