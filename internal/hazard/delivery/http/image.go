package http

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"physrisk-api/internal/hazard"
	"physrisk-api/pkg/errors"
	"physrisk-api/pkg/response"
	"physrisk-api/pkg/scope"
)

// GetImage renders a whole hazard array as one image.
func (h *Handler) GetImage(c *gin.Context) {
	resource, format, ok := splitResource(c.Param("resource"))
	if !ok {
		response.HttpError(c, errors.NewNotFoundHTTPError("Not found"))
		return
	}

	query, ok := bindImageQuery(c)
	if !ok {
		response.HttpError(c, errors.NewBadRequestHTTPError())
		return
	}

	h.renderImage(c, query.toRequest(resource, format, nil))
}

// GetTile renders one tile of a hazard array pyramid. Tile coordinates are
// part of the path; a non-integer coordinate means the path simply does not
// address a tile.
func (h *Handler) GetTile(c *gin.Context) {
	resource, z, x, y, format, ok := splitTileResource(c.Param("resource"))
	if !ok {
		response.HttpError(c, errors.NewNotFoundHTTPError("Not found"))
		return
	}

	tile := hazard.ParseTile(z, x, y)
	if tile == nil {
		response.HttpError(c, errors.NewNotFoundHTTPError("Not found"))
		return
	}

	query, ok := bindImageQuery(c)
	if !ok {
		response.HttpError(c, errors.NewBadRequestHTTPError())
		return
	}

	h.renderImage(c, query.toRequest(resource, format, tile))
}

func (h *Handler) renderImage(c *gin.Context, req hazard.ImageRequest) {
	ctx := c.Request.Context()
	req.GroupIDs = []string{scope.GetDataAccessFromContext(ctx)}

	img, err := h.requester.GetImage(ctx, req)
	if err != nil {
		if stderrors.Is(err, hazard.ErrResourceNotFound) {
			response.HttpError(c, errors.NewNotFoundHTTPError("Resource not found"))
			return
		}
		h.logger.Errorf(ctx, "internal.hazard.delivery.http.renderImage: %q failed: %v", req.Resource, err)
		response.HttpError(c, errors.NewUpstreamHTTPError())
		return
	}

	c.Data(http.StatusOK, "image/"+req.Format, img)
}
