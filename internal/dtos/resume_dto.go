package dtos

// ResumeAnalysisRequest is the body of POST /api/resume-analysis.
// ResumeContent is checked by the handler so that "" and a missing key both map to 400.
type ResumeAnalysisRequest struct {
	ResumeContent string  `json:"resumeContent"`
	FileName      *string `json:"fileName"`
}
