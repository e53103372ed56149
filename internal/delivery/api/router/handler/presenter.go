package handler

import (
	"time"

	"kala/internal/domain/entity"
	"kala/internal/domain/survey"
	"kala/internal/usecase"
	"kala/internal/util"

	"github.com/google/uuid"
)

// LocationView names a member's city and state.
type LocationView struct {
	CityID  uuid.UUID `json:"cityId"`
	City    string    `json:"city"`
	StateID uuid.UUID `json:"stateId"`
	State   string    `json:"state,omitempty"`
}

// MemberView is the public face of a member: no contact details.
type MemberView struct {
	ID                uuid.UUID               `json:"id"`
	FullName          string                  `json:"fullName"`
	Username          string                  `json:"username"`
	About             string                  `json:"about"`
	ProfilePictureURL string                  `json:"profilePicture,omitempty"`
	Links             entity.Links            `json:"links"`
	YearsOfExperience int                     `json:"yearsOfExperience"`
	TravelPreference  entity.TravelPreference `json:"travelPreference"`
	IsFeatured        bool                    `json:"isFeatured"`
	Location          *LocationView           `json:"location,omitempty"`
	Tags              []entity.Tag            `json:"tags"`
	Services          []entity.Service        `json:"services"`
}

// MemberDetailView is shown to the member themself and to admins.
type MemberDetailView struct {
	MemberView
	Identity    []string         `json:"identity"`
	Email       string           `json:"email"`
	PhoneNumber string           `json:"phoneNumber"`
	DateOfBirth string           `json:"dateOfBirth"`
	Application *ApplicationView `json:"application,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type ApplicationView struct {
	ID        uuid.UUID                `json:"id"`
	Status    entity.ApplicationStatus `json:"status"`
	SurveyID  *uuid.UUID               `json:"surveyId,omitempty"`
	Answers   survey.Answers           `json:"answers,omitempty"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

type TransitionView struct {
	FromStatus  entity.ApplicationStatus `json:"fromStatus"`
	ToStatus    entity.ApplicationStatus `json:"toStatus"`
	ActorUserID uuid.UUID                `json:"actorUserId"`
	CreatedAt   time.Time                `json:"createdAt"`
}

type UserView struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Image string      `json:"image,omitempty"`
	Role  entity.Role `json:"role"`
}

type ApplicationListView struct {
	Members    []MemberDetailView `json:"members"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalItems int64              `json:"totalItems"`
	TotalPages int                `json:"totalPages"`
}

type ApplicationDetailView struct {
	Member      MemberDetailView     `json:"member"`
	Survey      []survey.DisplayItem `json:"survey"`
	Transitions []TransitionView     `json:"transitions"`
}

func toMemberView(m *entity.Member) MemberView {
	v := MemberView{
		ID:                m.ID,
		FullName:          m.FullName,
		Username:          m.Username,
		About:             m.About,
		ProfilePictureURL: m.ProfilePictureURL,
		Links:             m.Links,
		YearsOfExperience: m.YearsOfExperience,
		TravelPreference:  m.TravelPreference,
		IsFeatured:        m.IsFeatured,
		Tags:              m.Tags,
		Services:          m.Services,
	}
	if v.Tags == nil {
		v.Tags = []entity.Tag{}
	}
	if v.Services == nil {
		v.Services = []entity.Service{}
	}
	if m.Location != nil {
		v.Location = &LocationView{CityID: m.Location.ID, City: m.Location.Name, StateID: m.Location.StateID}
		if m.Location.State != nil {
			v.Location.State = m.Location.State.Name
		}
	}

	return v
}

func toMemberDetailView(m *entity.Member) MemberDetailView {
	v := MemberDetailView{
		MemberView:  toMemberView(m),
		Identity:    m.Identity,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if !m.DateOfBirth.IsZero() {
		v.DateOfBirth = m.DateOfBirth.Format(time.DateOnly)
	}
	if m.Application != nil {
		v.Application = toApplicationView(m.Application)
	}

	return v
}

func toApplicationView(a *entity.MembershipApplication) *ApplicationView {
	v := &ApplicationView{
		ID:        a.ID,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.SurveyResponse != nil {
		surveyID := a.SurveyResponse.SurveyID
		v.SurveyID = &surveyID
		v.Answers = a.SurveyResponse.Answers
	}

	return v
}

func toTransitionViews(ts []*entity.ApplicationTransition) []TransitionView {
	views := make([]TransitionView, 0, len(ts))
	for _, t := range ts {
		views = append(views, TransitionView{
			FromStatus:  t.FromStatus,
			ToStatus:    t.ToStatus,
			ActorUserID: t.ActorUserID,
			CreatedAt:   t.CreatedAt,
		})
	}

	return views
}

func toUserView(u *entity.User) UserView {
	return UserView{ID: u.ID, Email: u.Email, Name: u.Name, Image: u.Image, Role: u.Role}
}

func toDirectoryPage(p *util.Page[*entity.Member]) util.Page[MemberView] {
	items := make([]MemberView, 0, len(p.Items))
	for _, m := range p.Items {
		items = append(items, toMemberView(m))
	}

	return util.Page[MemberView]{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

func toApplicationListView(l *usecase.ApplicationList) ApplicationListView {
	members := make([]MemberDetailView, 0, len(l.Members))
	for _, m := range l.Members {
		members = append(members, toMemberDetailView(m))
	}

	return ApplicationListView{
		Members:    members,
		Page:       l.Page,
		Limit:      l.Limit,
		TotalItems: l.TotalItems,
		TotalPages: l.TotalPages,
	}
}

func toApplicationDetailView(d *usecase.ApplicationDetail) ApplicationDetailView {
	items := d.Survey
	if items == nil {
		items = []survey.DisplayItem{}
	}

	return ApplicationDetailView{
		Member:      toMemberDetailView(d.Member),
		Survey:      items,
		Transitions: toTransitionViews(d.Transitions),
	}
}
