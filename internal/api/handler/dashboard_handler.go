package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
	"github.com/smartgridlink/energy-trading-api/internal/core/ports"
)

// DashboardHandler serves the role-specific dashboard views and the
// community map.
type DashboardHandler struct {
	dashboards ports.DashboardService
	store      ports.SessionStore
}

func NewDashboardHandler(dashboards ports.DashboardService, store ports.SessionStore) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, store: store}
}

// Redirect resolves the generic dashboard path to the role-specific one.
//
// @Summary      Redirect to the role dashboard
// @Tags         dashboard
// @Success      302
// @Router       /dashboard [get]
func (h *DashboardHandler) Redirect(c echo.Context) error {
	sess := h.store.Snapshot()
	return c.Redirect(http.StatusFound, domain.DashboardPath(sess.User))
}

// Admin returns the platform-wide metrics view.
//
// @Summary      Admin dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.AdminOverview
// @Router       /admin/dashboard [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}
	overview, err := h.dashboards.AdminOverview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// Producer returns the producer's trading overview.
//
// @Summary      Producer dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.ProducerOverview
// @Router       /producer/dashboard [get]
func (h *DashboardHandler) Producer(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	overview, err := h.dashboards.ProducerOverview(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// Consumer returns the consumer's purchasing overview.
//
// @Summary      Consumer dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.ConsumerOverview
// @Router       /consumer/dashboard [get]
func (h *DashboardHandler) Consumer(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	overview, err := h.dashboards.ConsumerOverview(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// MapProducers lists nearby producers for the community map. Pass
// ?available=true to hide offline installations.
//
// @Summary      Nearby energy producers
// @Tags         map
// @Produce      json
// @Param        available  query     bool  false  "Only available producers"
// @Success      200        {array}   domain.EnergyProducer
// @Router       /map/producers [get]
func (h *DashboardHandler) MapProducers(c echo.Context) error {
	onlyAvailable := c.QueryParam("available") == "true"
	producers, err := h.dashboards.NearbyProducers(c.Request().Context(), onlyAvailable)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, producers)
}
