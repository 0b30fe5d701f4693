package hazard

// Engine operation identifiers, matching the request path basename.
const (
	RequestHazardData             = "get_hazard_data"
	RequestHazardDataAvailability = "get_hazard_data_availability"
	RequestAssetExposure          = "get_asset_exposure"
	RequestAssetImpact            = "get_asset_impact"
)

// GroupIDsKey is the envelope field carrying the resolved access tier.
// It is always overwritten server-side, never trusted from the client.
const GroupIDsKey = "group_ids"

// ImageRequest describes one image or tile fetch sent to the engine.
// Field names match the engine's request dictionary.
type ImageRequest struct {
	Resource   string   `json:"resource"`
	Format     string   `json:"format,omitempty"`
	Tile       *Tile    `json:"tile"`
	Colormap   *string  `json:"colormap"`
	ScenarioID *string  `json:"scenario_id"`
	Year       int      `json:"year"`
	GroupIDs   []string `json:"group_ids"`
	MinValue   *float64 `json:"min_value"`
	MaxValue   *float64 `json:"max_value"`
}

// IsTile reports whether the request addresses one tile of an array pyramid
// rather than the whole array.
func (r ImageRequest) IsTile() bool {
	return r.Tile != nil
}
