package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestDirectoryFilter_Normalize(t *testing.T) {
	f := DirectoryFilter{
		Experience: ExperienceRange{Start: intPtr(3), End: intPtr(0)},
		Search:     "  asha ",
	}.Normalize()

	assert.Nil(t, f.Experience.End)
	assert.Equal(t, 3, *f.Experience.Start)
	assert.Equal(t, "asha", f.Search)
}

func TestDirectoryFilter_Matches(t *testing.T) {
	t.Parallel()

	state := uuid.New()
	city := uuid.New()
	wedding := Tag{ID: uuid.New(), Name: "Weddings & Events"}
	editing := Service{ID: uuid.New(), Name: "Image editing"}

	member := &Member{
		FullName:          "Asha Rao",
		YearsOfExperience: 7,
		TravelPreference:  TravelRegion,
		LocationCityID:    city,
		Location:          &LocationCity{ID: city, StateID: state},
		Tags:              []Tag{wedding},
		Services:          []Service{editing},
		Application:       &MembershipApplication{Status: StatusApproved},
	}

	otherID := uuid.New()

	tests := []struct {
		name   string
		filter DirectoryFilter
		want   bool
	}{
		{name: "empty filter", filter: DirectoryFilter{}, want: true},
		{name: "status match", filter: DirectoryFilter{Status: StatusApproved}, want: true},
		{name: "status mismatch", filter: DirectoryFilter{Status: StatusPending}, want: false},
		{name: "search case insensitive", filter: DirectoryFilter{Search: "asha"}, want: true},
		{name: "search miss", filter: DirectoryFilter{Search: "ravi"}, want: false},
		{name: "experience inside", filter: DirectoryFilter{Experience: ExperienceRange{Start: intPtr(5), End: intPtr(10)}}, want: true},
		{name: "experience inclusive bounds", filter: DirectoryFilter{Experience: ExperienceRange{Start: intPtr(7), End: intPtr(7)}}, want: true},
		{name: "experience below start", filter: DirectoryFilter{Experience: ExperienceRange{Start: intPtr(8)}}, want: false},
		{name: "experience end zero is open", filter: DirectoryFilter{Experience: ExperienceRange{Start: intPtr(5), End: intPtr(0)}}, want: true},
		{name: "experience above end", filter: DirectoryFilter{Experience: ExperienceRange{End: intPtr(6)}}, want: false},
		{name: "city match", filter: DirectoryFilter{CityID: &city}, want: true},
		{name: "city mismatch", filter: DirectoryFilter{CityID: &otherID}, want: false},
		{name: "state match", filter: DirectoryFilter{StateID: &state}, want: true},
		{name: "state mismatch", filter: DirectoryFilter{StateID: &otherID}, want: false},
		{name: "travel in set", filter: DirectoryFilter{TravelPreferences: []TravelPreference{TravelBase, TravelRegion}}, want: true},
		{name: "travel not in set", filter: DirectoryFilter{TravelPreferences: []TravelPreference{TravelCountry}}, want: false},
		{name: "tag intersects", filter: DirectoryFilter{TagIDs: []uuid.UUID{otherID, wedding.ID}}, want: true},
		{name: "tag disjoint", filter: DirectoryFilter{TagIDs: []uuid.UUID{otherID}}, want: false},
		{name: "service intersects", filter: DirectoryFilter{ServiceIDs: []uuid.UUID{editing.ID}}, want: true},
		{name: "service disjoint", filter: DirectoryFilter{ServiceIDs: []uuid.UUID{otherID}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.filter.Matches(member))
		})
	}
}
