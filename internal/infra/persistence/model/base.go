// Package model holds the GORM persistence models. Ids are generated by the
// service as time-ordered UUIDs so the same models run on PostgreSQL and SQLite.
package model

import (
	"github.com/google/uuid"
)

func newID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	v7, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = v7

	return nil
}

// All lists every model in dependency order, for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&LocationStateModel{},
		&LocationCityModel{},
		&TagModel{},
		&ServiceModel{},
		&SurveyModel{},
		&MemberModel{},
		&MembershipApplicationModel{},
		&SurveyResponseModel{},
		&ApplicationTransitionModel{},
	}
}
