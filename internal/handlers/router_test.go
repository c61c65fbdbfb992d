package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/career-path-advisor/internal/database"
	"github.com/justsurfingit/career-path-advisor/internal/logger"
	"github.com/justsurfingit/career-path-advisor/internal/models"
	"github.com/justsurfingit/career-path-advisor/internal/services"
)

type fakeTextGenerator struct {
	reply string
	err   error
}

func (f fakeTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.reply, f.err
}

type brokenStore struct {
	*database.MemoryStore
}

func (brokenStore) InsertProfile(ctx context.Context, p *models.ProfileSubmission) (string, error) {
	return "", errors.New("connection refused")
}

func (brokenStore) Ping(ctx context.Context) error { return errors.New("connection refused") }

func newTestRouter(t *testing.T, store database.Store, gen services.TextGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.Discard()
	llm := services.NewLLMService(gen, log)
	return NewRouter(Deps{
		Log:    log,
		Store:  store,
		Career: services.NewCareerService(store, llm, log),
		Resume: services.NewResumeService(log),
	})
}

func validProfileBody() map[string]any {
	return map[string]any{
		"name":                  "Ada",
		"age":                   "29",
		"qualification":         "BSc Mathematics",
		"interestedSubjects":    "Algorithms",
		"hackathonsAttended":    "2",
		"extraCoursesCompleted": "Distributed systems",
		"certifications":        "",
		"workshops":             "Compilers",
		"industryPreference":    "Fintech",
		"preferredRole":         "Backend Engineer",
	}
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", resp.Body.String(), err)
	}
	return out
}

func TestWelcome(t *testing.T) {
	r := newTestRouter(t, database.NewMemoryStore(), fakeTextGenerator{})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := decodeBody(t, resp)["message"]; got != WelcomeMessage {
		t.Fatalf("unexpected message %v", got)
	}
}

func TestWelcomeConcurrent(t *testing.T) {
	r := newTestRouter(t, database.NewMemoryStore(), fakeTextGenerator{})

	var wg sync.WaitGroup
	errs := make(chan string, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
			if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), WelcomeMessage) {
				errs <- resp.Body.String()
			}
		}()
	}
	wg.Wait()
	close(errs)
	for body := range errs {
		t.Errorf("unexpected welcome response %q", body)
	}
}

func TestCareerSuggestionSuccess(t *testing.T) {
	store := database.NewMemoryStore()
	reply := "Here you go:\n```json\n{\"suggestedJobRole\":\"X\",\"careerPath\":\"Y\",\"certificationsRequired\":\"Z\",\"expectedSalary\":\"W\"}\n```"
	r := newTestRouter(t, store, fakeTextGenerator{reply: reply})

	resp := postJSON(t, r, "/api/career-suggestion", validProfileBody())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	want := map[string]any{
		"suggestedJobRole":       "X",
		"careerPath":             "Y",
		"certificationsRequired": "Z",
		"expectedSalary":         "W",
	}
	if got := decodeBody(t, resp); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	profiles, suggestions := store.Profiles(), store.Suggestions()
	if len(profiles) != 1 || len(suggestions) != 1 {
		t.Fatalf("expected 1/1 stored rows, got %d/%d", len(profiles), len(suggestions))
	}
	if profiles[0].Certifications != "" || profiles[0].PreferredRole != "Backend Engineer" {
		t.Fatalf("unexpected stored profile %+v", profiles[0])
	}
	if suggestions[0].UserProfileID != profiles[0].ID {
		t.Fatalf("suggestion does not reference the stored profile")
	}
}

func TestCareerSuggestionProviderFailure(t *testing.T) {
	r := newTestRouter(t, database.NewMemoryStore(), fakeTextGenerator{err: errors.New("quota exceeded")})

	resp := postJSON(t, r, "/api/career-suggestion", validProfileBody())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["suggestedJobRole"] != "Technical Specialist" {
		t.Fatalf("expected hard fallback role, got %v", body["suggestedJobRole"])
	}
	if !strings.HasPrefix(body["careerPath"].(string), "Based on your profile") {
		t.Fatalf("unexpected fallback careerPath %v", body["careerPath"])
	}
}

func TestCareerSuggestionValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing field", func(b map[string]any) { delete(b, "preferredRole") }},
		{"null field", func(b map[string]any) { b["age"] = nil }},
		{"non-string field", func(b map[string]any) { b["age"] = 29 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := database.NewMemoryStore()
			r := newTestRouter(t, store, fakeTextGenerator{reply: "{}"})
			body := validProfileBody()
			tt.mutate(body)

			resp := postJSON(t, r, "/api/career-suggestion", body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
			}
			if _, ok := decodeBody(t, resp)["error"]; !ok {
				t.Fatal("expected error message")
			}
			if len(store.Profiles()) != 0 {
				t.Fatal("invalid request must not be stored")
			}
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		r := newTestRouter(t, database.NewMemoryStore(), fakeTextGenerator{})
		req := httptest.NewRequest(http.MethodPost, "/api/career-suggestion", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.Code)
		}
	})
}

func TestCareerSuggestionStoreFailure(t *testing.T) {
	r := newTestRouter(t, brokenStore{database.NewMemoryStore()}, fakeTextGenerator{reply: "{}"})

	resp := postJSON(t, r, "/api/career-suggestion", validProfileBody())
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if msg, _ := decodeBody(t, resp)["error"].(string); !strings.Contains(msg, "connection refused") {
		t.Fatalf("expected underlying message, got %q", msg)
	}
}

func TestResumeAnalysis(t *testing.T) {
	r := newTestRouter(t, database.NewMemoryStore(), fakeTextGenerator{})

	for _, body := range []map[string]any{{"resumeContent": ""}, {}, {"fileName": "cv.pdf"}} {
		resp := postJSON(t, r, "/api/resume-analysis", body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %v: expected 400, got %d", body, resp.Code)
		}
	}

	first := postJSON(t, r, "/api/resume-analysis", map[string]any{"resumeContent": "Go, Kubernetes", "fileName": "cv.pdf"})
	second := postJSON(t, r, "/api/resume-analysis", map[string]any{"resumeContent": "something else entirely"})
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("expected 200s, got %d and %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("analysis depends on input: %s vs %s", first.Body.String(), second.Body.String())
	}
	body := decodeBody(t, first)
	if body["careerPathRecommendation"] != "Based on your profile, consider roles in software engineering." {
		t.Fatalf("unexpected recommendation %v", body["careerPathRecommendation"])
	}
}

func uploadRequest(t *testing.T, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/resume-analysis/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestResumeUpload(t *testing.T) {
	r := newTestRouter(t, database.NewMemoryStore(), fakeTextGenerator{})

	tests := []struct {
		name     string
		fileName string
		content  []byte
		want     int
	}{
		{"plain text", "cv.txt", []byte("Skills: Go, SQL"), http.StatusOK},
		{"empty text", "cv.txt", []byte("   "), http.StatusBadRequest},
		{"unsupported type", "cv.png", []byte{0x89, 'P', 'N', 'G'}, http.StatusUnsupportedMediaType},
		{"broken pdf", "cv.pdf", []byte("not really a pdf"), http.StatusBadRequest},
		{"pdf with broken xref", "cv.pdf", []byte("%PDF-1.4\nxref\n0 2\n0000000000 65535 f \n0000000009 00000 n \ntrailer\n<< /Size 2 /Root 1 0 R >>\nstartxref\n9\n%%%EOF"), http.StatusBadRequest},
		{"too large", "cv.txt", bytes.Repeat([]byte("a"), services.MaxResumeBytes+1), http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, uploadRequest(t, tt.fileName, tt.content))
			if resp.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, resp.Code, resp.Body.String())
			}
		})
	}

	t.Run("missing file field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/resume-analysis/upload", strings.NewReader(""))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.Code)
		}
	})
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, database.NewMemoryStore(), fakeTextGenerator{})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK || decodeBody(t, resp)["status"] != "ok" {
		t.Fatalf("expected healthy, got %d %s", resp.Code, resp.Body.String())
	}

	r = newTestRouter(t, brokenStore{database.NewMemoryStore()}, fakeTextGenerator{})
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["status"] != "unavailable" || body["error"] == nil {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t, database.NewMemoryStore(), fakeTextGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}

	preflight := httptest.NewRequest(http.MethodOptions, "/api/career-suggestion", nil)
	preflight.Header.Set("Origin", "https://example.org")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	preflight.Header.Set("Access-Control-Request-Headers", "Content-Type")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, preflight)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", resp.Code)
	}
	if !strings.Contains(resp.Header().Get("Access-Control-Allow-Methods"), http.MethodPost) {
		t.Fatalf("POST not allowed: %q", resp.Header().Get("Access-Control-Allow-Methods"))
	}
}
