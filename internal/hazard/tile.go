package hazard

import (
	"encoding/json"
	"math"
	"strconv"
)

// Tile addresses one unit of a zoom/x/y image pyramid. Coordinates are passed
// through to the engine verbatim; an out-of-range tile is the engine's to
// reject.
type Tile struct {
	X int
	Y int
	Z int
}

// MarshalJSON encodes the tile as the engine's [x, y, z] triple.
func (t Tile) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{t.X, t.Y, t.Z})
}

// UnmarshalJSON decodes an [x, y, z] triple.
func (t *Tile) UnmarshalJSON(data []byte) error {
	var triple [3]int
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}
	t.X, t.Y, t.Z = triple[0], triple[1], triple[2]
	return nil
}

// ParseTile turns raw z, x, y path values into a tile address. A request is a
// tile request iff all three are supplied and parse as non-negative integers;
// anything else means a whole-image request and yields nil.
func ParseTile(z, x, y string) *Tile {
	if z == "" || x == "" || y == "" {
		return nil
	}
	zi, err := strconv.Atoi(z)
	if err != nil || zi < 0 {
		return nil
	}
	xi, err := strconv.Atoi(x)
	if err != nil || xi < 0 {
		return nil
	}
	yi, err := strconv.Atoi(y)
	if err != nil || yi < 0 {
		return nil
	}
	return &Tile{X: xi, Y: yi, Z: zi}
}

// TileFromLatLon converts a WGS84 coordinate to the Web-Mercator tile
// containing it at the given zoom level.
func TileFromLatLon(lat, lon float64, zoom int) Tile {
	n := math.Exp2(float64(zoom))
	x := int((lon + 180.0) / 360.0 * n)
	latRad := lat * math.Pi / 180.0
	y := int((1.0 - math.Log(math.Tan(latRad)+1.0/math.Cos(latRad))/math.Pi) / 2.0 * n)
	return Tile{X: x, Y: y, Z: zoom}
}
