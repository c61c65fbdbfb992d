package dtos

import "github.com/justsurfingit/career-path-advisor/internal/models"

// CareerSuggestionRequest is the body of POST /api/career-suggestion.
// Pointers let `required` reject missing keys while still accepting "".
type CareerSuggestionRequest struct {
	Name                  *string `json:"name" binding:"required"`
	Age                   *string `json:"age" binding:"required"`
	Qualification         *string `json:"qualification" binding:"required"`
	InterestedSubjects    *string `json:"interestedSubjects" binding:"required"`
	HackathonsAttended    *string `json:"hackathonsAttended" binding:"required"`
	ExtraCoursesCompleted *string `json:"extraCoursesCompleted" binding:"required"`
	Certifications        *string `json:"certifications" binding:"required"`
	Workshops             *string `json:"workshops" binding:"required"`
	IndustryPreference    *string `json:"industryPreference" binding:"required"`
	PreferredRole         *string `json:"preferredRole" binding:"required"`
}

// ToProfile copies the bound request into a storable submission.
func (r *CareerSuggestionRequest) ToProfile() *models.ProfileSubmission {
	return &models.ProfileSubmission{
		Name:                  deref(r.Name),
		Age:                   deref(r.Age),
		Qualification:         deref(r.Qualification),
		InterestedSubjects:    deref(r.InterestedSubjects),
		HackathonsAttended:    deref(r.HackathonsAttended),
		ExtraCoursesCompleted: deref(r.ExtraCoursesCompleted),
		Certifications:        deref(r.Certifications),
		Workshops:             deref(r.Workshops),
		IndustryPreference:    deref(r.IndustryPreference),
		PreferredRole:         deref(r.PreferredRole),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
