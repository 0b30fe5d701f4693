package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"physrisk-api/internal/hazard"
	"physrisk-api/pkg/errors"
	"physrisk-api/pkg/response"
	"physrisk-api/pkg/scope"
)

// GetHazardData returns hazard indicator values for a set of locations.
func (h *Handler) GetHazardData(c *gin.Context) {
	h.forward(c, hazard.RequestHazardData)
}

// GetHazardDataAvailability returns the catalog of available hazard models.
func (h *Handler) GetHazardDataAvailability(c *gin.Context) {
	h.forward(c, hazard.RequestHazardDataAvailability)
}

// GetAssetExposure returns per-asset hazard exposure.
func (h *Handler) GetAssetExposure(c *gin.Context) {
	h.forward(c, hazard.RequestAssetExposure)
}

// GetAssetImpact returns per-asset impact and risk measures.
func (h *Handler) GetAssetImpact(c *gin.Context) {
	h.forward(c, hazard.RequestAssetImpact)
}

// forward relays one data query to the engine. The envelope passes through
// untouched except for group_ids, which is always overwritten with the tier
// resolved from the session, never taken from the client.
func (h *Handler) forward(c *gin.Context, requestID string) {
	ctx := c.Request.Context()

	var envelope map[string]any
	if err := c.ShouldBindJSON(&envelope); err != nil {
		h.logger.Warnf(ctx, "internal.hazard.delivery.http.forward: malformed body for %s: %v", requestID, err)
		response.HttpError(c, errors.NewBadRequestHTTPError())
		return
	}
	if envelope == nil {
		envelope = map[string]any{}
	}
	envelope[hazard.GroupIDsKey] = []string{scope.GetDataAccessFromContext(ctx)}

	reply, err := h.requester.Get(ctx, requestID, envelope)
	if err != nil {
		h.logger.Errorf(ctx, "internal.hazard.delivery.http.forward: %s failed: %v", requestID, err)
		response.HttpError(c, errors.NewBadRequestHTTPError())
		return
	}

	var parsed map[string]any
	if err := json.Unmarshal(reply, &parsed); err != nil {
		h.logger.Errorf(ctx, "internal.hazard.delivery.http.forward: %s returned non-JSON reply: %v", requestID, err)
		response.HttpError(c, errors.NewBadRequestHTTPError())
		return
	}
	if !hazard.HasResults(parsed) {
		response.HttpError(c, errors.NewNoResultsHTTPError())
		return
	}

	// The engine reply is the contract; relay it verbatim.
	c.Data(http.StatusOK, "application/json", reply)
}
