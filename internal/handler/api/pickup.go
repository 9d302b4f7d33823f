package api

import (
	"errors"
	"net/http"

	reqdto "pickup-options-service/internal/handler/dto/request"
	resdto "pickup-options-service/internal/handler/dto/response"
	"pickup-options-service/internal/handler/httperr"
	"pickup-options-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PickupHandler struct {
	resolution usecase.PickupResolution
}

func NewPickupHandler(resolution usecase.PickupResolution) *PickupHandler {
	return &PickupHandler{resolution: resolution}
}

// Resolve returns the pickup points a customer may choose for the order,
// without opening-hours filtering. An empty candidate list is a normal
// 200 response, never an error.
func (h *PickupHandler) Resolve(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	var req reqdto.ResolvePickupOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cfg := req.Config.ToDomain()
	set, err := h.resolution.ResolveAddresses(c.Request.Context(), orderID, req.StoreID, cfg)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to resolve pickup options", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewPickupOptionsResponse(cfg.Hash, set))
}

// ResolveOpen returns only the pickup points currently open under the
// configured look-ahead policy.
func (h *PickupHandler) ResolveOpen(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	var req reqdto.ResolveOpenPickupOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cfg := req.Config.ToDomain()
	set, err := h.resolution.ResolveOpenAddresses(c.Request.Context(), orderID, cfg)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to resolve open pickup options", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewPickupOptionsResponse(cfg.Hash, set))
}

// Invalidate drops the cached resolutions for an order. Called when the
// order is placed or deleted.
func (h *PickupHandler) Invalidate(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	if err := h.resolution.InvalidateOrder(c.Request.Context(), orderID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to invalidate pickup options", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// PointsChanged receives upstream pickup-point/authorization change
// notifications and sweeps affected cart orders.
func (h *PickupHandler) PointsChanged(c *gin.Context) {
	var req reqdto.PointsChangedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.resolution.FlushChangedPoints(c.Request.Context(), req.ToDomain()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to flush changed points", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
