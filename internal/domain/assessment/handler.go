package assessment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carelink/carelink/internal/scoring"
	"github.com/carelink/carelink/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/assessments", h.Save)
	api.GET("/assessments/:id", h.Get)
	api.GET("/assessments/:id/export", h.Export)
	api.PATCH("/assessments/:id/complete", h.Complete)
	api.GET("/patients/:id/assessments", h.ListByPatient)
	api.GET("/patients/:id/assessments/latest", h.GetLatest)
	api.PATCH("/action-items/:id", h.UpdateItem)

	api.POST("/score/dvt", h.ScoreDVT)
	api.POST("/score/braden", h.ScoreBraden)
	api.POST("/score/must", h.ScoreMUST)
}

// httpError maps domain errors onto transport status codes: invalid input is
// 400, missing records are 404, everything else is a 500.
func httpError(err error) error {
	var ve *scoring.ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	}
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) Save(c echo.Context) error {
	var req SaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Save(c.Request().Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Export(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	doc, err := h.svc.Export(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrExportUnavailable) {
			return echo.NewHTTPError(http.StatusNotImplemented, err.Error())
		}
		return httpError(err)
	}
	return c.Blob(http.StatusOK, doc.ContentType, doc.Data)
}

func (h *Handler) Complete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Complete(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListByPatient(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetLatest(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	t := scoring.AssessmentType(c.QueryParam("type"))
	a, err := h.svc.GetLatest(c.Request().Context(), patientID, t)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) UpdateItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var upd ItemUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.svc.UpdateItem(c.Request().Context(), id, &upd)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// -- Score previews --
//
// The preview endpoints run the calculators without persisting anything, so
// clinicians can see a score while still filling the form.

type dvtPreviewRequest struct {
	Strategy scoring.DVTStrategy     `json:"strategy"`
	Caprini  *scoring.CapriniFactors `json:"caprini,omitempty"`
	Wells    *scoring.WellsFactors   `json:"wells,omitempty"`
}

func (h *Handler) ScoreDVT(c echo.Context) error {
	var req dvtPreviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Strategy == "" {
		req.Strategy = scoring.StrategyCaprini
	}
	switch req.Strategy {
	case scoring.StrategyCaprini:
		if req.Caprini == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "caprini factors are required")
		}
		return c.JSON(http.StatusOK, scoring.CalculateDVT(*req.Caprini))
	case scoring.StrategyWells:
		if req.Wells == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "wells factors are required")
		}
		return c.JSON(http.StatusOK, scoring.CalculateWells(*req.Wells))
	}
	return echo.NewHTTPError(http.StatusBadRequest, "unknown dvt strategy")
}

func (h *Handler) ScoreBraden(c echo.Context) error {
	var b scoring.BradenSubscores
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := scoring.CalculateBraden(b)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) ScoreMUST(c echo.Context) error {
	var in scoring.MUSTInputs
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := scoring.CalculateMUST(in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}
