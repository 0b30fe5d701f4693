package http

import (
	"physrisk-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every route of the edge API on r. The group is
// expected to carry the tier resolver and refresh interceptor; only /profile
// adds a hard auth requirement.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/token", h.IssueToken)

	r.POST("/get_hazard_data", h.GetHazardData)
	r.POST("/get_hazard_data_availability", h.GetHazardDataAvailability)
	r.POST("/get_asset_exposure", h.GetAssetExposure)
	r.POST("/get_asset_impact", h.GetAssetImpact)

	// Resource paths contain slashes, so both routes take the whole remainder
	// and split it themselves.
	r.GET("/images/*resource", h.GetImage)
	r.GET("/tiles/*resource", h.GetTile)

	r.GET("/reset", h.Reset)
	r.POST("/logout", h.Logout)
	r.GET("/profile", mw.Auth(), h.Profile)
}
