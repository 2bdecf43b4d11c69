package models

// BackgroundKind selects between an image backdrop and a solid color.
type BackgroundKind string

const (
	BackgroundImage BackgroundKind = "image"
	BackgroundColor BackgroundKind = "color"
)

// BackgroundConfig is the singleton, admin-editable page backdrop.
type BackgroundConfig struct {
	Kind       BackgroundKind `json:"type"`
	Value      string         `json:"value"`
	Brightness float64        `json:"brightness"`
}

// ValidBackgroundKind reports whether the value is a known backdrop kind.
func ValidBackgroundKind(kind BackgroundKind) bool {
	switch kind {
	case BackgroundImage, BackgroundColor:
		return true
	default:
		return false
	}
}

// ClampBrightness forces a brightness ratio into [0, 1].
func ClampBrightness(value float64) float64 {
	switch {
	case value < 0:
		return 0
	case value > 1:
		return 1
	default:
		return value
	}
}
