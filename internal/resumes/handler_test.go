package resumes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/resume/model"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewManager("test-secret", time.Hour)
	token, err := tokens.Sign(auth.Claims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	handler := NewHandler(NewService(NewMemoryRepo()))
	r := gin.New()
	r.Use(middleware.Auth(tokens))
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)
	return r, token
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestGetWithoutSavedResumeIs404(t *testing.T) {
	r, token := newTestRouter(t)

	resp := do(t, r, http.MethodGet, "/api/v1/resume", token, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "not_found") {
		t.Fatalf("expected not_found code in body: %s", resp.Body.String())
	}
}

func TestPutThenGetRoundTrip(t *testing.T) {
	r, token := newTestRouter(t)

	put := do(t, r, http.MethodPut, "/api/v1/resume", token, model.Demo())
	if put.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", put.Code, put.Body.String())
	}

	get := do(t, r, http.MethodGet, "/api/v1/resume", token, nil)
	if get.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", get.Code)
	}
	var doc model.Resume
	if err := json.NewDecoder(get.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.PersonalInfo.FullName != "Avery Johnson" {
		t.Fatalf("unexpected resume: %+v", doc.PersonalInfo)
	}
	if doc.ID == "" {
		t.Fatal("expected assigned resume id")
	}
	if doc.CreatedAt == nil || doc.UpdatedAt == nil {
		t.Fatal("expected timestamps set on save")
	}
}

func TestPutReplacesNotAppends(t *testing.T) {
	r, token := newTestRouter(t)

	first := model.Empty()
	first.Title = "First"
	do(t, r, http.MethodPut, "/api/v1/resume", token, first)

	second := model.Empty()
	second.Title = "Second"
	do(t, r, http.MethodPut, "/api/v1/resume", token, second)

	get := do(t, r, http.MethodGet, "/api/v1/resume", token, nil)
	var doc model.Resume
	if err := json.NewDecoder(get.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Title != "Second" {
		t.Fatalf("expected latest save to win, got %q", doc.Title)
	}
}

func TestPutRejectsUnknownTemplateStyle(t *testing.T) {
	r, token := newTestRouter(t)

	resp := do(t, r, http.MethodPut, "/api/v1/resume", token, map[string]any{
		"title":         "My Resume",
		"templateStyle": "neon",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestPutDefaultsEmptyTemplateStyle(t *testing.T) {
	r, token := newTestRouter(t)

	resp := do(t, r, http.MethodPut, "/api/v1/resume", token, map[string]any{
		"title": "My Resume",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var doc model.Resume
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.TemplateStyle != model.StyleProfessional {
		t.Fatalf("expected professional default, got %q", doc.TemplateStyle)
	}
}

func TestDeleteThenGetIs404(t *testing.T) {
	r, token := newTestRouter(t)
	do(t, r, http.MethodPut, "/api/v1/resume", token, model.Demo())

	del := do(t, r, http.MethodDelete, "/api/v1/resume", token, nil)
	if del.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", del.Code)
	}

	get := do(t, r, http.MethodGet, "/api/v1/resume", token, nil)
	if get.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", get.Code)
	}
}

func TestDeleteWithoutSavedResumeIs404(t *testing.T) {
	r, token := newTestRouter(t)

	resp := do(t, r, http.MethodDelete, "/api/v1/resume", token, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	r, token := newTestRouter(t)

	doc := model.Empty()
	doc.ProfessionalSummary = "Too short."
	do(t, r, http.MethodPut, "/api/v1/resume", token, doc)

	resp := do(t, r, http.MethodGet, "/api/v1/resume/suggestions", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Suggestions) == 0 {
		t.Fatal("expected at least one suggestion for a thin resume")
	}
}

func TestExportTextEndpoint(t *testing.T) {
	r, token := newTestRouter(t)
	do(t, r, http.MethodPut, "/api/v1/resume", token, model.Demo())

	resp := do(t, r, http.MethodGet, "/api/v1/resume/export/text", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Disposition"); !strings.Contains(got, "Avery_Johnson.txt") {
		t.Fatalf("unexpected disposition %q", got)
	}
	if !strings.HasPrefix(resp.Body.String(), "AVERY JOHNSON\n") {
		t.Fatalf("unexpected export body:\n%s", resp.Body.String())
	}
}

func TestRoutesRequireAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
