package models

import (
	"time"
)

// Collection (and table) names used by every store backend.
const (
	UserProfilesCollection      = "user_profiles"
	CareerSuggestionsCollection = "career_suggestions"
)

// ProfileSubmission is the career form a user submits. Every field is free text.
type ProfileSubmission struct {
	ID        string    `gorm:"primaryKey;size:64" json:"-" bson:"-"`
	CreatedAt time.Time `json:"-" bson:"createdAt"`

	Name                  string `gorm:"type:text" json:"name" bson:"name"`
	Age                   string `gorm:"type:text" json:"age" bson:"age"`
	Qualification         string `gorm:"type:text" json:"qualification" bson:"qualification"`
	InterestedSubjects    string `gorm:"type:text" json:"interestedSubjects" bson:"interestedSubjects"`
	HackathonsAttended    string `gorm:"type:text" json:"hackathonsAttended" bson:"hackathonsAttended"`
	ExtraCoursesCompleted string `gorm:"type:text" json:"extraCoursesCompleted" bson:"extraCoursesCompleted"`
	Certifications        string `gorm:"type:text" json:"certifications" bson:"certifications"`
	Workshops             string `gorm:"type:text" json:"workshops" bson:"workshops"`
	IndustryPreference    string `gorm:"type:text" json:"industryPreference" bson:"industryPreference"`
	PreferredRole         string `gorm:"type:text" json:"preferredRole" bson:"preferredRole"`
}

func (ProfileSubmission) TableName() string { return UserProfilesCollection }

// CareerSuggestion is the four-field recommendation returned to the client.
type CareerSuggestion struct {
	SuggestedJobRole       string `gorm:"type:text" json:"suggestedJobRole" bson:"suggestedJobRole"`
	CareerPath             string `gorm:"type:text" json:"careerPath" bson:"careerPath"`
	CertificationsRequired string `gorm:"type:text" json:"certificationsRequired" bson:"certificationsRequired"`
	ExpectedSalary         string `gorm:"type:text" json:"expectedSalary" bson:"expectedSalary"`
}

// CareerSuggestionRecord is the persisted form of a suggestion.
// UserProfileID always points at a ProfileSubmission stored earlier.
type CareerSuggestionRecord struct {
	ID        string    `gorm:"primaryKey;size:64" json:"-" bson:"-"`
	CreatedAt time.Time `json:"-" bson:"createdAt"`

	CareerSuggestion `gorm:"embedded" bson:",inline"`

	UserProfileID string `gorm:"index;size:64;not null" json:"user_profile_id" bson:"-"`
}

func (CareerSuggestionRecord) TableName() string { return CareerSuggestionsCollection }

// ResumeAnalysis is built per request and never stored.
type ResumeAnalysis struct {
	Strengths                []string `json:"strengths"`
	Weaknesses               []string `json:"weaknesses"`
	ImprovementSuggestions   []string `json:"improvementSuggestions"`
	RecommendedSkills        []string `json:"recommendedSkills"`
	CareerPathRecommendation string   `json:"careerPathRecommendation"`
}
