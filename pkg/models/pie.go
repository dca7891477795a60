package models

// PieSlice is one wedge of the file-count distribution chart.
// Path and Color are SVG presentation attributes and stay out of the
// JSON surface.
type PieSlice struct {
	BrainID       string  `json:"bildid"`
	NumberOfFiles int64   `json:"number_of_files"`
	Percent       float64 `json:"percent"`
	Path          string  `json:"-"`
	Color         string  `json:"-"`
	LabelX        float64 `json:"-"`
	LabelY        float64 `json:"-"`
}
