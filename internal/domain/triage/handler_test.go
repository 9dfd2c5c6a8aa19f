package triage

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	h := NewHandler(newTestService(t))
	e := echo.New()
	return h, e
}

func TestHandler_Predict(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"symptoms":["chest_pain","dizziness","sweating"]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Predict(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var pred Prediction
	if err := json.Unmarshal(rec.Body.Bytes(), &pred); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if pred.Condition != ConditionCardiacRisk || pred.Confidence != 95 {
		t.Errorf("got (%q, %d), want (Cardiac Risk, 95)", pred.Condition, pred.Confidence)
	}
}

func TestHandler_Predict_UnknownSymptom(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"symptoms":["fever","bogus"]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Predict(c)
	if err == nil {
		t.Fatal("expected error for unknown symptom")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Extract(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"text":"I have a fever and a sore throat"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Extract(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp extractResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Symptoms) != 2 || resp.Symptoms[0] != "fever" || resp.Symptoms[1] != "sore_throat" {
		t.Errorf("extracted %v, want [fever sore_throat]", resp.Symptoms)
	}
}

func TestHandler_Extract_NoMatchesReturnsEmptyList(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"text":"all good"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Extract(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"symptoms":[]`) {
		t.Errorf("expected empty symptom list, got %s", rec.Body.String())
	}
}

func TestHandler_RecommendMedicines(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/?age=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("Acidity")

	if err := h.RecommendMedicines(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var recs []Recommendation
	if err := json.Unmarshal(rec.Body.Bytes(), &recs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	names := recNames(recs)
	if len(names) != 2 || names[0] != "Antacid" || names[1] != "Probiotics" {
		t.Errorf("got %v, want [Antacid Probiotics]", names)
	}
}

func TestHandler_RecommendMedicines_Errors(t *testing.T) {
	h, e := newTestHandler(t)

	tests := []struct {
		name      string
		target    string
		condition string
		wantCode  int
	}{
		{"missing age", "/", "Flu", http.StatusBadRequest},
		{"bad age", "/?age=abc", "Flu", http.StatusBadRequest},
		{"negative age", "/?age=-3", "Flu", http.StatusBadRequest},
		{"unknown condition", "/?age=30", "Common Cold", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("name")
			c.SetParamValues(tt.condition)

			err := h.RecommendMedicines(c)
			if err == nil {
				t.Fatal("expected error")
			}
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != tt.wantCode {
				t.Errorf("expected %d, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestHandler_Analyze(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"patient_name":"Jo","age":30,"symptoms":["fever","cough","body_ache","chills"]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Analyze(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var res AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Condition != "Flu" {
		t.Errorf("condition = %q, want Flu", res.Condition)
	}
	if res.Emergency {
		t.Error("Emergency set for Flu")
	}
}

func TestHandler_Analyze_RequiresPatientName(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"age":30,"symptoms":["fever"]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Analyze(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing patient_name, got %v", err)
	}
}

func TestHandler_ListSymptoms_Paginated(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/?limit=5&offset=0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListSymptoms(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Data    []Symptom `json:"data"`
		Total   int       `json:"total"`
		HasMore bool      `json:"has_more"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 5 || resp.Total != 20 || !resp.HasMore {
		t.Errorf("page = %d items, total %d, has_more %v; want 5/20/true", len(resp.Data), resp.Total, resp.HasMore)
	}
	if resp.Data[0] != "fever" {
		t.Errorf("first symptom = %q, want fever", resp.Data[0])
	}
}

func TestHandler_GetConditionInfo_NotFound(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("Nope")

	err := h.GetConditionInfo(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
