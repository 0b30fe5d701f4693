package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"physrisk-api/internal/hazard"
)

// imageQuery carries the optional rendering parameters shared by image and
// tile requests. Year is required; the engine cannot pick a default.
type imageQuery struct {
	Colormap   *string
	ScenarioID *string
	Year       int
	MinValue   *float64
	MaxValue   *float64
}

// splitResource splits a wildcard remainder like
// "/inundation/wri/v2/depth.png" into resource and format. The extension is
// mandatory; without it there is nothing to render into.
func splitResource(remainder string) (resource, format string, ok bool) {
	trimmed := strings.TrimPrefix(remainder, "/")
	dot := strings.LastIndex(trimmed, ".")
	if trimmed == "" || dot <= 0 || dot == len(trimmed)-1 {
		return "", "", false
	}
	if strings.Contains(trimmed[dot+1:], "/") {
		return "", "", false
	}
	return trimmed[:dot], trimmed[dot+1:], true
}

// splitTileResource splits "/res/ource/8/134/82.png" into the resource path,
// the raw z/x/y values and the format. The last three segments are the tile
// address; everything before them is the resource.
func splitTileResource(remainder string) (resource, z, x, y, format string, ok bool) {
	trimmed := strings.TrimPrefix(remainder, "/")
	segments := strings.Split(trimmed, "/")
	if len(segments) < 4 {
		return "", "", "", "", "", false
	}

	last := segments[len(segments)-1]
	dot := strings.LastIndex(last, ".")
	if dot <= 0 || dot == len(last)-1 {
		return "", "", "", "", "", false
	}

	resource = strings.Join(segments[:len(segments)-3], "/")
	if resource == "" {
		return "", "", "", "", "", false
	}
	return resource, segments[len(segments)-3], segments[len(segments)-2], last[:dot], last[dot+1:], true
}

// bindImageQuery reads the rendering query parameters. ok is false when year
// is absent or not an integer, or a bound parameter fails to parse.
func bindImageQuery(c *gin.Context) (imageQuery, bool) {
	var q imageQuery

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return imageQuery{}, false
	}
	q.Year = year

	if v := c.Query("colormap"); v != "" {
		q.Colormap = &v
	}
	if v := c.Query("scenarioId"); v != "" {
		q.ScenarioID = &v
	}
	if v := c.Query("minValue"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return imageQuery{}, false
		}
		q.MinValue = &f
	}
	if v := c.Query("maxValue"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return imageQuery{}, false
		}
		q.MaxValue = &f
	}
	return q, true
}

func (q imageQuery) toRequest(resource, format string, tile *hazard.Tile) hazard.ImageRequest {
	return hazard.ImageRequest{
		Resource:   resource,
		Format:     format,
		Tile:       tile,
		Colormap:   q.Colormap,
		ScenarioID: q.ScenarioID,
		Year:       q.Year,
		MinValue:   q.MinValue,
		MaxValue:   q.MaxValue,
	}
}
