package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/justsurfingit/career-path-advisor/internal/models"
)

const (
	jsonFence = "```json"
	anyFence  = "```"
)

// Defaults used when the reply parsed as a JSON object but a key is missing.
const (
	DefaultSuggestedJobRole       = "Specialist based on your profile"
	DefaultCareerPath             = "Career path details were not included in the recommendation."
	DefaultCertificationsRequired = "Recommended certifications in your field of interest"
	DefaultExpectedSalary         = "$60,000 - $150,000 depending on experience and location"
)

// Values used when the reply could not be parsed at all. The career path carries the raw reply.
const (
	UnparsedSuggestedJobRole       = "Career Specialist Recommendation"
	UnparsedCertificationsRequired = "Based on your profile, consider certifications in your domain of interest."
	UnparsedExpectedSalary         = "Varies based on location, experience, and industry"
)

var (
	errInvalidJSON = errors.New("reply is not valid JSON")
	errNotObject   = errors.New("reply is not a JSON object")
)

// ExtractJSONText picks the candidate JSON text from a model reply:
// the body of the first ```json fence, else the body of the first ``` fence, else the whole reply.
// An unterminated fence runs to the end of the reply.
func ExtractJSONText(reply string) string {
	if body, ok := fenceBody(reply, jsonFence); ok {
		return body
	}
	if body, ok := fenceBody(reply, anyFence); ok {
		return body
	}
	return reply
}

func fenceBody(reply, opener string) (string, bool) {
	start := strings.Index(reply, opener)
	if start < 0 {
		return "", false
	}
	rest := reply[start+len(opener):]
	if end := strings.Index(rest, anyFence); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}

// ParseCareerSuggestion turns a raw model reply into a suggestion. It never fails:
// the error only reports that the reply was unparseable and the raw-text form was used.
func ParseCareerSuggestion(reply string) (models.CareerSuggestion, error) {
	fields, err := decodeObject(ExtractJSONText(reply))
	if err != nil {
		return models.CareerSuggestion{
			SuggestedJobRole:       UnparsedSuggestedJobRole,
			CareerPath:             reply,
			CertificationsRequired: UnparsedCertificationsRequired,
			ExpectedSalary:         UnparsedExpectedSalary,
		}, err
	}

	return models.CareerSuggestion{
		SuggestedJobRole:       stringField(fields, "suggestedJobRole", DefaultSuggestedJobRole),
		CareerPath:             stringField(fields, "careerPath", DefaultCareerPath),
		CertificationsRequired: stringField(fields, "certificationsRequired", DefaultCertificationsRequired),
		ExpectedSalary:         stringField(fields, "expectedSalary", DefaultExpectedSalary),
	}, nil
}

func decodeObject(text string) (map[string]json.RawMessage, error) {
	if !json.Valid([]byte(text)) {
		return nil, errInvalidJSON
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil || fields == nil {
		return nil, errNotObject
	}
	return fields, nil
}

// stringField reads key as a string. Missing keys and null take def;
// other non-string values keep their JSON text.
func stringField(fields map[string]json.RawMessage, key, def string) string {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
