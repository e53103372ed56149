package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TagModel mirrors the 'tags' table.
type TagModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100);uniqueIndex;not null"`
}

func (TagModel) TableName() string {
	return "tags"
}

func (m *TagModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

// ServiceModel mirrors the 'services' table.
type ServiceModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100);uniqueIndex;not null"`
}

func (ServiceModel) TableName() string {
	return "services"
}

func (m *ServiceModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

// LocationStateModel mirrors the 'location_states' table.
type LocationStateModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100);uniqueIndex;not null"`
}

func (LocationStateModel) TableName() string {
	return "location_states"
}

func (m *LocationStateModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

// LocationCityModel mirrors the 'location_cities' table. City names are unique within a state.
type LocationCityModel struct {
	ID      uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name    string              `gorm:"type:varchar(100);not null;uniqueIndex:idx_city_state_name"`
	StateID uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_city_state_name"`
	State   *LocationStateModel `gorm:"foreignKey:StateID"`
}

func (LocationCityModel) TableName() string {
	return "location_cities"
}

func (m *LocationCityModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
