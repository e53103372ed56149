package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MemberModel mirrors the 'members' table. ID is the owning user's id.
type MemberModel struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	FullName          string                      `gorm:"type:varchar(255);not null"`
	Username          string                      `gorm:"type:varchar(100);uniqueIndex;not null"`
	Identity          datatypes.JSONSlice[string] `gorm:"not null"`
	About             string                      `gorm:"type:text;not null"`
	Email             string                      `gorm:"type:varchar(255);not null"`
	PhoneNumber       string                      `gorm:"type:varchar(20);not null"`
	DateOfBirth       time.Time                   `gorm:"not null"`
	YearsOfExperience int                         `gorm:"not null;default:0"`
	TravelPreference  string                      `gorm:"type:varchar(16);not null"`
	ProfilePictureURL string                      `gorm:"type:text"`
	Instagram         string                      `gorm:"type:varchar(64)"`
	Website           string                      `gorm:"type:text"`
	IsFeatured        bool                        `gorm:"not null;default:false;index"`
	LocationCityID    uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Location          *LocationCityModel          `gorm:"foreignKey:LocationCityID"`
	Tags              []TagModel                  `gorm:"many2many:member_tags;joinForeignKey:MemberID;joinReferences:TagID"`
	Services          []ServiceModel              `gorm:"many2many:member_services;joinForeignKey:MemberID;joinReferences:ServiceID"`
	Application       *MembershipApplicationModel `gorm:"foreignKey:MemberID"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}

// MembershipApplicationModel mirrors the 'membership_applications' table; one row per member.
type MembershipApplicationModel struct {
	ID             uuid.UUID            `gorm:"type:uuid;primaryKey"`
	MemberID       uuid.UUID            `gorm:"type:uuid;uniqueIndex;not null"`
	Status         string               `gorm:"type:varchar(16);not null;index"`
	SurveyResponse *SurveyResponseModel `gorm:"foreignKey:MemberID;references:MemberID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (MembershipApplicationModel) TableName() string {
	return "membership_applications"
}

func (m *MembershipApplicationModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

// SurveyResponseModel mirrors the 'survey_responses' table.
type SurveyResponseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	SurveyID  uuid.UUID      `gorm:"type:uuid;not null"`
	Answers   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
}

func (SurveyResponseModel) TableName() string {
	return "survey_responses"
}

func (m *SurveyResponseModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

// SurveyModel mirrors the 'surveys' table. Schema holds the field-keyed JSON document.
type SurveyModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Slug      string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Schema    datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SurveyModel) TableName() string {
	return "surveys"
}

func (m *SurveyModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

// ApplicationTransitionModel mirrors the append-only 'application_transitions' table.
type ApplicationTransitionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus  string    `gorm:"type:varchar(16);not null"`
	ToStatus    string    `gorm:"type:varchar(16);not null"`
	ActorUserID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
}

func (ApplicationTransitionModel) TableName() string {
	return "application_transitions"
}

func (m *ApplicationTransitionModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
