package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
	"github.com/Astemirdum/circulation-service/circulation/internal/model"
	"github.com/Astemirdum/circulation-service/pkg/middleware"
	"github.com/Astemirdum/circulation-service/pkg/validate"
	_ "github.com/Astemirdum/circulation-service/swagger"
)

type Handler struct {
	svc CirculationService
	now func() time.Time
	log *zap.Logger
}

type Option func(*Handler)

// WithClock replaces the time source used for checkout, check-in and hold timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

func New(svc CirculationService, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc: svc,
		now: time.Now,
		log: log.Named("handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", middleware.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		echomw.RequestLoggerWithConfig(middleware.RequestLoggerConfig(h.log)),
		echomw.RequestID(),
		middleware.NewRateLimiter(apiRPS),
	)

	assets := api.Group("/assets/:assetId")
	assets.GET("/status", h.GetStatus)
	assets.PUT("/status", h.SetStatus)
	assets.GET("/checked-out", h.IsCheckedOut)
	assets.GET("/checkout", h.GetLatestCheckout)
	assets.POST("/checkout", h.CheckOut)
	assets.POST("/checkin", h.CheckIn)
	assets.GET("/patron", h.GetCurrentPatron)
	assets.GET("/history", h.GetCheckoutHistory)
	assets.POST("/holds", h.PlaceHold)
	assets.GET("/holds", h.GetCurrentHolds)
	assets.GET("/holds/earliest", h.GetEarliestHold)
	assets.POST("/holds/promote", h.PromoteEarliestHold)

	api.GET("/checkouts", h.ListCheckouts)
	api.GET("/checkouts/:checkoutId", h.GetCheckout)
	api.GET("/holds/:holdId/patron", h.GetCurrentHoldPatron)
	api.GET("/holds/:holdId/placed", h.GetCurrentHoldPlaced)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetStatus(c echo.Context) error {
	assetID, err := idParam(c, "assetId")
	if err != nil {
		return err
	}
	st, err := h.svc.CurrentStatus(c.Request().Context(), assetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) SetStatus(c echo.Context) error {
	assetID, err := idParam(c, "assetId")
	if err != nil {
		return err
	}
	var req model.SetStatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.svc.SetStatus(c.Request().Context(), assetID, model.StatusName(req.Status)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) IsCheckedOut(c echo.Context) error {
	assetID, err := idParam(c, "assetId")
	if err != nil {
		return err
	}
	out, err := h.svc.IsCheckedOut(c.Request().Context(), assetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"checkedOut": out})
}

func (h *Handler) GetLatestCheckout(c echo.Context) error {
	assetID, err := idParam(c, "assetId")
	if err != nil {
		return err
	}
	co, err := h.svc.GetLatestCheckout(c.Request().Context(), assetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, co)
}

func (h *Handler) CheckOut(c echo.Context) error {
	assetID, err := idParam(c, "assetId")
	if err != nil {
		return err
	}
	var req model.CheckOutRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	co, err := h.svc.CheckOut(c.Request().Context(), assetID, req.CardID, h.now())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, co)
}

func (h *Handler) CheckIn(c echo.Context) error {
	assetID, err := idParam(c, "assetId")
	if err != nil {
		return err
	}
	res, err := h.svc.CheckIn(c.Request().Context(), assetID, h.now())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) GetCurrentPatron(c echo.Context) error {
	assetID, err := idParam(c, "assetId")
	if err != nil {
		return err
	}
	p, err := h.svc.GetCurrentPatron(c.Request().Context(), assetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) GetCheckoutHistory(c echo.Context) error {
	assetID, err := idParam(c, "assetId")
	if err != nil {
		return err
	}
	p, err := pageParams(c)
	if err != nil {
		return err
	}
	page, err := h.svc.GetCheckoutHistory(c.Request().Context(), assetID, p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) PlaceHold(c echo.Context) error {
	assetID, err := idParam(c, "assetId")
	if err != nil {
		return err
	}
	var req model.PlaceHoldRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	hold, err := h.svc.PlaceHold(c.Request().Context(), assetID, req.CardID, h.now())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, hold)
}

func (h *Handler) GetCurrentHolds(c echo.Context) error {
	assetID, err := idParam(c, "assetId")
	if err != nil {
		return err
	}
	p, err := pageParams(c)
	if err != nil {
		return err
	}
	page, err := h.svc.GetCurrentHolds(c.Request().Context(), assetID, p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) GetEarliestHold(c echo.Context) error {
	assetID, err := idParam(c, "assetId")
	if err != nil {
		return err
	}
	hold, ok, err := h.svc.GetEarliestHold(c.Request().Context(), assetID)
	if err != nil {
		return httpError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no holds")
	}
	return c.JSON(http.StatusOK, hold)
}

func (h *Handler) PromoteEarliestHold(c echo.Context) error {
	assetID, err := idParam(c, "assetId")
	if err != nil {
		return err
	}
	promoted, err := h.svc.PromoteEarliestHold(c.Request().Context(), assetID, h.now())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"promoted": promoted})
}

func (h *Handler) ListCheckouts(c echo.Context) error {
	p, err := pageParams(c)
	if err != nil {
		return err
	}
	page, err := h.svc.ListCheckouts(c.Request().Context(), p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) GetCheckout(c echo.Context) error {
	id, err := idParam(c, "checkoutId")
	if err != nil {
		return err
	}
	co, err := h.svc.GetCheckout(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, co)
}

func (h *Handler) GetCurrentHoldPatron(c echo.Context) error {
	id, err := idParam(c, "holdId")
	if err != nil {
		return err
	}
	p, err := h.svc.GetCurrentHoldPatron(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) GetCurrentHoldPlaced(c echo.Context) error {
	id, err := idParam(c, "holdId")
	if err != nil {
		return err
	}
	placed, err := h.svc.GetCurrentHoldPlaced(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]time.Time{"holdPlaced": placed})
}

func idParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func bindBody(c echo.Context, v any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func pageParams(c echo.Context) (model.PageRequest, error) {
	var p model.PageRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &p); err != nil {
		return p, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(p); err != nil {
		return p, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return p, nil
}

func httpError(err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidPage), errors.Is(err, errs.ErrUnknownStatus):
		code = http.StatusBadRequest
	}
	return echo.NewHTTPError(code, err.Error())
}
