package models

// Image represents a picture anchored on a sheet.
type Image struct {
	// Cell is the top-left anchor cell (e.g. "E1").
	Cell string `json:"cell"`
	// Name is the picture name stored in the drawing part.
	Name string `json:"name,omitempty"`
	// Scale is the raster quality factor the picture was rendered with (0 if unknown).
	Scale float64 `json:"scale,omitempty"`
}
