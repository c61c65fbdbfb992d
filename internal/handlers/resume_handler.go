package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/career-path-advisor/internal/dtos"
	"github.com/justsurfingit/career-path-advisor/internal/services"
)

// multipart framing on top of the file itself
const uploadOverhead = 1 << 20

type ResumeHandler struct {
	Service *services.ResumeService
	Log     logrus.FieldLogger
}

func NewResumeHandler(svc *services.ResumeService, log logrus.FieldLogger) *ResumeHandler {
	return &ResumeHandler{Service: svc, Log: log}
}

// AnalyzeResume is the POST /api/resume-analysis endpoint
func (h *ResumeHandler) AnalyzeResume(c *gin.Context) {
	var req dtos.ResumeAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	analysis, err := h.Service.Analyze(req.ResumeContent, req.FileName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume content is required"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// UploadResume is the POST /api/resume-analysis/upload endpoint.
// Accepts a PDF, DOCX or plain-text file in the "file" form field.
func (h *ResumeHandler) UploadResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxResumeBytes+uploadOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": services.ErrResumeTooLarge.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "A resume file is required in the \"file\" field"})
		return
	}
	if header.Size > services.MaxResumeBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": services.ErrResumeTooLarge.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file: " + err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, services.MaxResumeBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file: " + err.Error()})
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	analysis, err := h.Service.AnalyzeFile(ctx, data, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		h.Log.WithFields(logrus.Fields{"file_name": header.Filename, "size": header.Size}).WithError(err).Warn("resume upload rejected")
		c.JSON(uploadStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func uploadStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrResumeTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, services.ErrUnsupportedResumeType):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadRequest
	}
}
