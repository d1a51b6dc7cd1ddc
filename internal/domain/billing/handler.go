package billing

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/billings", h.List)
	api.GET("/billings/:id", h.Get)
	api.POST("/billings", h.Create)
	api.PUT("/billings/:id", h.Update)
	api.DELETE("/billings/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		items []*Billing
		err   error
	)
	if pid := c.QueryParam("patientId"); pid != "" {
		items, err = h.svc.ListByPatient(ctx, pid)
	} else {
		items, err = h.svc.List(ctx)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	pg := pagination.FromContext(c)
	page := pagination.Slice(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(items), pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	b, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "billing not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) Create(c echo.Context) error {
	var b Billing
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &b); err != nil {
		if errors.Is(err, ErrBillingIDTaken) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) Update(c echo.Context) error {
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b, err := h.svc.Update(c.Request().Context(), c.Param("id"), patch)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "billing not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) Delete(c echo.Context) error {
	deleted, err := h.svc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "billing not found")
	}
	return c.NoContent(http.StatusNoContent)
}
