// Package request parses query strings shared by the API and the HTML pages.
package request

import (
	"net/url"
	"strconv"
	"strings"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"

	"github.com/google/uuid"
)

// AllLocations is the "no filter" sentinel for state and city selectors.
const AllLocations = "all"

// DirectoryQuery reads a directory filter and a 1-based page number from values.
// Repeatable parameters also accept comma-separated lists.
func DirectoryQuery(values url.Values) (entity.DirectoryFilter, int, error) {
	var (
		filter entity.DirectoryFilter
		fields []domainerrors.FieldError
	)

	filter.Search = values.Get("search")
	filter.Sort = entity.SortOrder(values.Get("sort"))

	var err error
	if filter.Experience.Start, err = optionalInt(values.Get("experienceStart")); err != nil {
		fields = append(fields, domainerrors.FieldError{Field: "experienceStart", Reason: "must be a whole number"})
	}
	if filter.Experience.End, err = optionalInt(values.Get("experienceEnd")); err != nil {
		fields = append(fields, domainerrors.FieldError{Field: "experienceEnd", Reason: "must be a whole number"})
	}
	if filter.StateID, err = optionalLocation(values.Get("state")); err != nil {
		fields = append(fields, domainerrors.FieldError{Field: "state", Reason: "must be a valid id"})
	}
	if filter.CityID, err = optionalLocation(values.Get("city")); err != nil {
		fields = append(fields, domainerrors.FieldError{Field: "city", Reason: "must be a valid id"})
	}

	for _, v := range List(values, "travelPreference") {
		filter.TravelPreferences = append(filter.TravelPreferences, entity.TravelPreference(strings.ToUpper(v)))
	}
	if filter.TagIDs, err = UUIDs(List(values, "tags")); err != nil {
		fields = append(fields, domainerrors.FieldError{Field: "tags", Reason: "must be valid ids"})
	}
	if filter.ServiceIDs, err = UUIDs(List(values, "services")); err != nil {
		fields = append(fields, domainerrors.FieldError{Field: "services", Reason: "must be valid ids"})
	}

	page := 1
	if raw := values.Get("page"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 {
			fields = append(fields, domainerrors.FieldError{Field: "page", Reason: "must be a positive number"})
		} else {
			page = n
		}
	}

	if len(fields) > 0 {
		return entity.DirectoryFilter{}, 0, domainerrors.NewValidationError(fields...)
	}

	return filter, page, nil
}

// List returns every non-empty value of key, splitting comma-separated entries.
func List(values url.Values, key string) []string {
	var out []string
	for _, raw := range values[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}

	return out
}

// UUIDs parses every entry of raw.
func UUIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func optionalInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}

	return &n, nil
}

func optionalLocation(raw string) (*uuid.UUID, error) {
	if raw == "" || strings.EqualFold(raw, AllLocations) {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
