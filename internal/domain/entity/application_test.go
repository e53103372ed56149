package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	all := []ApplicationStatus{StatusPending, StatusApproved, StatusDeclined, StatusBlocked}

	for _, from := range all {
		for _, to := range all {
			want := to != StatusPending
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.False(t, ApplicationStatus("ARCHIVED").CanTransitionTo(StatusApproved))
}

func TestUser_Roles(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	member := &User{Role: RoleMember}

	assert.True(t, admin.Roles().Contains(RoleAdmin))
	assert.True(t, admin.Roles().Contains(RoleMember))
	assert.False(t, member.Roles().Contains(RoleAdmin))
	assert.Equal(t, []string{"MEMBER"}, member.Roles().ToStrings())
	assert.Equal(t, Roles{RoleAdmin}, RolesFromStrings([]string{"ADMIN", "merchant"}))
}

func TestTravelPreference(t *testing.T) {
	assert.True(t, TravelRegion.IsValid())
	assert.False(t, TravelPreference("WORLD").IsValid())
	assert.Equal(t, "City only", TravelBase.Label())
	assert.Equal(t, "Anywhere in the country", TravelCountry.Label())
}
