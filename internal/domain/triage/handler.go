package triage

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/triage/triage/internal/platform/auth"
	"github.com/triage/triage/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Reference data is readable by clinicians and pharmacists.
	readGroup := api.Group("", auth.RequireRole("clinician", "pharmacist"))
	readGroup.GET("/symptoms", h.ListSymptoms)
	readGroup.GET("/conditions", h.ListConditions)
	readGroup.GET("/conditions/:name", h.GetConditionInfo)
	readGroup.GET("/conditions/:name/medicines", h.RecommendMedicines)

	// Analysis endpoints are restricted to clinicians.
	analyzeGroup := api.Group("", auth.RequireRole("clinician"))
	analyzeGroup.POST("/predict", h.Predict)
	analyzeGroup.POST("/extract", h.Extract)
	analyzeGroup.POST("/analyze", h.Analyze)
}

func (h *Handler) ListSymptoms(c echo.Context) error {
	pg := pagination.FromContext(c)
	all := h.svc.ListSymptoms()
	page := pagination.Page(all, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(all), pg.Limit, pg.Offset))
}

func (h *Handler) ListConditions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListConditions())
}

func (h *Handler) GetConditionInfo(c echo.Context) error {
	info, err := h.svc.GetConditionInfo(c.Param("name"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) RecommendMedicines(c echo.Context) error {
	ageParam := c.QueryParam("age")
	if ageParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "age query parameter is required")
	}
	age, err := strconv.Atoi(ageParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid age")
	}

	var allergies []string
	if raw := c.QueryParam("allergies"); raw != "" {
		allergies = strings.Split(raw, ",")
	}

	recs, err := h.svc.RecommendMedicines(c.Param("name"), age, allergies)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, recs)
}

type predictRequest struct {
	Symptoms []Symptom `json:"symptoms"`
}

func (h *Handler) Predict(c echo.Context) error {
	var req predictRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	pred, err := h.svc.Predict(req.Symptoms)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pred)
}

type extractRequest struct {
	Text string `json:"text"`
}

type extractResponse struct {
	Symptoms []Symptom `json:"symptoms"`
}

func (h *Handler) Extract(c echo.Context) error {
	var req extractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	symptoms := h.svc.ExtractSymptoms(req.Text)
	if symptoms == nil {
		symptoms = []Symptom{}
	}
	return c.JSON(http.StatusOK, extractResponse{Symptoms: symptoms})
}

func (h *Handler) Analyze(c echo.Context) error {
	var req AnalysisRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.PatientName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_name is required")
	}
	result, err := h.svc.Analyze(req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// httpError maps engine errors onto HTTP status codes: unknown conditions
// are 404, malformed input is 400.
func httpError(err error) error {
	switch {
	case errors.Is(err, ErrUnknownCondition):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnknownSymptom),
		errors.Is(err, ErrInvalidAge),
		errors.Is(err, ErrNoSymptoms):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
