package report

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/triage/triage/internal/domain/triage"
)

func newTestHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	reg, err := triage.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	cls, err := triage.NewClassifier(reg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return NewHandler(triage.NewService(reg, cls), NewService(nil)), echo.New()
}

func TestHandler_CreateReport_Text(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"patient_name":"Jo","age":30,"symptoms":["chest_pain","dizziness","sweating"]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateReport(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "symptom_analysis_Jo_") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if rec.Header().Get("X-Report-ID") == "" {
		t.Error("missing X-Report-ID header")
	}
	if !strings.Contains(rec.Body.String(), "IMMEDIATE MEDICAL ATTENTION REQUIRED") {
		t.Errorf("cardiac report body missing emergency block:\n%s", rec.Body.String())
	}
}

func TestHandler_CreateReport_Validation(t *testing.T) {
	h, e := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing patient name", `{"age":30,"symptoms":["fever"]}`},
		{"no symptoms", `{"patient_name":"Jo","age":30}`},
		{"negative age", `{"patient_name":"Jo","age":-1,"symptoms":["fever"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.CreateReport(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %v", err)
			}
		})
	}
}
