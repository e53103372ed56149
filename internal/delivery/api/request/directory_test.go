package request

import (
	"net/url"
	"testing"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryQuery_ParsesEveryCriterion(t *testing.T) {
	tagA, tagB, svc, city := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	values := url.Values{
		"search":           {"asha"},
		"experienceStart":  {"2"},
		"experienceEnd":    {"0"},
		"state":            {"all"},
		"city":             {city.String()},
		"travelPreference": {"base,region"},
		"tags":             {tagA.String(), tagB.String()},
		"services":         {svc.String()},
		"sort":             {"experienceDesc"},
		"page":             {"3"},
	}

	filter, page, err := DirectoryQuery(values)

	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, "asha", filter.Search)
	require.NotNil(t, filter.Experience.Start)
	assert.Equal(t, 2, *filter.Experience.Start)
	require.NotNil(t, filter.Experience.End)
	assert.Equal(t, 0, *filter.Experience.End)
	assert.Nil(t, filter.StateID)
	require.NotNil(t, filter.CityID)
	assert.Equal(t, city, *filter.CityID)
	assert.Equal(t, []entity.TravelPreference{entity.TravelBase, entity.TravelRegion}, filter.TravelPreferences)
	assert.Equal(t, []uuid.UUID{tagA, tagB}, filter.TagIDs)
	assert.Equal(t, []uuid.UUID{svc}, filter.ServiceIDs)
	assert.Equal(t, entity.SortExperienceDesc, filter.Sort)
}

func TestDirectoryQuery_Defaults(t *testing.T) {
	filter, page, err := DirectoryQuery(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, entity.DirectoryFilter{}, filter)
}

func TestDirectoryQuery_ReportsBadParameters(t *testing.T) {
	values := url.Values{
		"experienceStart": {"two"},
		"city":            {"bengaluru"},
		"tags":            {"x"},
		"page":            {"0"},
	}

	_, _, err := DirectoryQuery(values)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	fields := make([]string, 0, len(vErr.Fields()))
	for _, f := range vErr.Fields() {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"experienceStart", "city", "tags", "page"}, fields)
}
