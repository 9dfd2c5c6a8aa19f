package report

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/triage/triage/internal/domain/triage"
	"github.com/triage/triage/internal/platform/auth"
)

type Handler struct {
	engine *triage.Service
	svc    *Service
}

func NewHandler(engine *triage.Service, svc *Service) *Handler {
	return &Handler{engine: engine, svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	grp := api.Group("", auth.RequireRole("clinician"))
	grp.POST("/reports", h.CreateReport)
}

// CreateReport runs a full analysis and returns the rendered report as a
// download. format=pdf selects PDF output; anything else gets plaintext.
// Reports are not stored; the response is the only copy.
func (h *Handler) CreateReport(c echo.Context) error {
	var req triage.AnalysisRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.PatientName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_name is required")
	}

	res, err := h.engine.Analyze(req)
	if err != nil {
		switch {
		case errors.Is(err, triage.ErrUnknownSymptom),
			errors.Is(err, triage.ErrInvalidAge),
			errors.Is(err, triage.ErrNoSymptoms):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	c.Response().Header().Set("X-Report-ID", uuid.NewString())

	if c.QueryParam("format") == "pdf" {
		data, err := h.svc.RenderPDF(res)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		c.Response().Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", FileName(res, "pdf")))
		return c.Blob(http.StatusOK, "application/pdf", data)
	}

	c.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", FileName(res, "txt")))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(h.svc.RenderText(res)))
}
