package services

import (
	"fmt"

	"github.com/justsurfingit/career-path-advisor/internal/models"
)

const careerSuggestionPrompt = `
Based on the following user profile, suggest an appropriate career path:

Name: %s
Age: %s
Qualification: %s
Interested Subjects: %s
Hackathons Attended: %s
Extra Courses Completed: %s
Certifications: %s
Workshops: %s
Industry Preference: %s
Preferred Role: %s

Please provide a JSON response with these fields:
1. suggestedJobRole - A specific job role that would be suitable
2. careerPath - A detailed career progression path for 5-10 years
3. certificationsRequired - 3-5 certifications that would be beneficial
4. expectedSalary - A realistic salary range for this career path

Format your response as valid JSON like this:
{
  "suggestedJobRole": "Software Developer",
  "careerPath": "Detailed career path description...",
  "certificationsRequired": "List of certifications...",
  "expectedSalary": "$70,000 - $120,000 depending on location and experience level"
}
`

// BuildCareerPrompt renders the model prompt for one submission. Same input, same output.
func BuildCareerPrompt(p *models.ProfileSubmission) string {
	return fmt.Sprintf(careerSuggestionPrompt,
		p.Name,
		p.Age,
		p.Qualification,
		p.InterestedSubjects,
		p.HackathonsAttended,
		p.ExtraCoursesCompleted,
		p.Certifications,
		p.Workshops,
		p.IndustryPreference,
		p.PreferredRole,
	)
}
