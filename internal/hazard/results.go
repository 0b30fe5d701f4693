package hazard

// resultCollections are the reply fields that count as results. If the engine
// introduces a fifth result shape this list must be extended deliberately.
var resultCollections = []string{"items", "models", "asset_impacts", "risk_measures"}

// HasResults reports whether an engine reply holds at least one non-empty
// result collection. An HTTP-level success with none of these is "no results"
// regardless of what else the reply contains.
func HasResults(reply map[string]any) bool {
	for _, key := range resultCollections {
		if truthy(reply[key]) {
			return true
		}
	}
	return false
}

// truthy mirrors the emptiness rules of the engine's own reply model: absent,
// null, empty collections, empty strings, zero and false all count as empty.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}
