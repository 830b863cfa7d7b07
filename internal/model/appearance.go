package model

import "maps"

// Appearance maps property keys (FONT_SIZE, STROKE_COLOR, ...) to values.
// Values are JSON-compatible: string, float64, bool or nil.
type Appearance map[string]any

func (a Appearance) Clone() Appearance {
	if a == nil {
		return Appearance{}
	}
	return maps.Clone(a)
}

// Merge returns a copy of a overlaid with other.
func (a Appearance) Merge(other Appearance) Appearance {
	merged := a.Clone()
	for k, v := range other {
		merged[k] = normalizeValue(v)
	}
	return merged
}

// normalizeValue widens integer values to float64 so that values survive a
// trip through JSON or msgpack unchanged.
func normalizeValue(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}
