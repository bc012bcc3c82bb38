package handler

import (
	"net/http"

	"ledger-explorer/internal/core/ports"
	"ledger-explorer/internal/render"
	"ledger-explorer/pkg/apperror"
	"ledger-explorer/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChartHandler serves the balance-history chart partial.
type ChartHandler struct {
	controller ports.ChartController
	surfaces   *render.SurfaceMap
}

// NewChartHandler creates the chart handler.
func NewChartHandler(controller ports.ChartController, surfaces *render.SurfaceMap) *ChartHandler {
	return &ChartHandler{controller: controller, surfaces: surfaces}
}

// BalanceChart handles GET /partials/accounts/:id/chart. A fresh surface is
// registered per request so concurrent chart loads never share markup; the
// controller keeps the single-live-instance contract on its side.
func (h *ChartHandler) BalanceChart(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		response.ErrorHTML(c, apperror.ErrInvalidID(id))
		return
	}

	surfaceID := "balanceChart-" + uuid.New().String()[:8]
	surface := render.NewBufferSurface(surfaceID)
	h.surfaces.Register(surface)
	defer h.surfaces.Unregister(surfaceID)

	h.controller.RenderBalanceChart(c.Request.Context(), id, surfaceID)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(surface.HTML()))
}
