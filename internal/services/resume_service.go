package services

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/career-path-advisor/internal/models"
)

// MaxResumeBytes caps uploaded resume files.
const MaxResumeBytes = 5 << 20

const (
	MimeText = "text/plain"
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrEmptyResume           = errors.New("resume content is required")
	ErrUnsupportedResumeType = errors.New("unsupported resume file type")
	ErrResumeTooLarge        = errors.New("resume file exceeds 5MB")
)

type ResumeService struct {
	Log logrus.FieldLogger
}

func NewResumeService(log logrus.FieldLogger) *ResumeService {
	return &ResumeService{Log: log}
}

// Analyze returns the same fixed analysis for every non-empty resume.
func (s *ResumeService) Analyze(content string, fileName *string) (models.ResumeAnalysis, error) {
	if content == "" {
		return models.ResumeAnalysis{}, ErrEmptyResume
	}
	name := "unknown"
	if fileName != nil && *fileName != "" {
		name = *fileName
	}
	s.Log.WithFields(logrus.Fields{"file_name": name, "length": len(content)}).Debug("resume analysis")
	return cannedAnalysis(), nil
}

// AnalyzeFile extracts text from an uploaded PDF, DOCX or plain-text resume and analyzes it.
func (s *ResumeService) AnalyzeFile(ctx context.Context, data []byte, mimeType, fileName string) (models.ResumeAnalysis, error) {
	text, err := ExtractResumeText(ctx, data, mimeType, fileName)
	if err != nil {
		return models.ResumeAnalysis{}, err
	}
	if strings.TrimSpace(text) == "" {
		return models.ResumeAnalysis{}, ErrEmptyResume
	}
	return s.Analyze(text, &fileName)
}

func cannedAnalysis() models.ResumeAnalysis {
	return models.ResumeAnalysis{
		Strengths:                []string{"Strong technical skills", "Good work experience"},
		Weaknesses:               []string{"Lacks leadership experience", "Needs more certifications"},
		ImprovementSuggestions:   []string{"Improve formatting", "Add measurable achievements"},
		RecommendedSkills:        []string{"Project Management", "Data Analysis"},
		CareerPathRecommendation: "Based on your profile, consider roles in software engineering.",
	}
}

// ExtractResumeText pulls plain text out of a resume file.
// Libraries used: github.com/ledongthuc/pdf (PDF) and github.com/nguyenthenguyen/docx (DOCX).
func ExtractResumeText(ctx context.Context, data []byte, mimeType, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) > MaxResumeBytes {
		return "", ErrResumeTooLarge
	}

	switch kind := normalizeMimeType(mimeType, fileName); kind {
	case MimeText:
		return string(data), nil
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedResumeType, kind)
	}
}

func normalizeMimeType(mimeType, fileName string) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case MimeText, MimePDF, MimeDOCX:
		return clean
	case "", "application/octet-stream", "application/zip":
	default:
		return clean
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt":
		return MimeText
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	default:
		if clean == "" {
			return "application/octet-stream"
		}
		return clean
	}
}

// extractPDF recovers from panics inside the pdf package, which happen on some malformed files.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML keeps character data and turns paragraph and line breaks into newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if (t.Name.Local == "p" || t.Name.Local == "br") && buf.Len() > 0 {
				buf.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
