package report

import (
	"fmt"
	"math"
	"sort"

	"bilreport/pkg/models"
)

const (
	// startAngle is where the first wedge begins, in degrees measured
	// counterclockwise from the positive x axis.
	startAngle = 140.0

	pieRadius = 160.0
	pieCenter = 170.0

	legendColumnSize = 25
)

// palette provides wedge fill colors, cycled when a collection has more
// datasets than colors.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Pie computes the wedges of the file-count distribution for one collection.
// Datasets with zero files are dropped before charting so no zero-area
// wedge is drawn; remaining wedges are ordered by file count descending.
// Returns nil when nothing is left to chart.
func Pie(rows []models.Row) []models.PieSlice {
	var total int64
	slices := make([]models.PieSlice, 0, len(rows))

	for _, row := range rows {
		if row.NumberOfFiles == 0 {
			continue
		}
		total += row.NumberOfFiles
		slices = append(slices, models.PieSlice{
			BrainID:       row.BrainID,
			NumberOfFiles: row.NumberOfFiles,
		})
	}
	if total == 0 {
		return nil
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].NumberOfFiles > slices[j].NumberOfFiles
	})

	angle := startAngle
	for i := range slices {
		s := &slices[i]
		s.Percent = float64(s.NumberOfFiles) / float64(total) * 100
		s.Color = palette[i%len(palette)]

		sweep := float64(s.NumberOfFiles) / float64(total) * 360
		s.Path = wedgePath(angle, angle+sweep, len(slices) == 1)
		s.LabelX, s.LabelY = labelPoint(angle + sweep/2)
		angle += sweep
	}

	return slices
}

// LegendColumns splits slices into legend columns of at most 25 entries,
// so the legend stays readable for collections with many datasets.
func LegendColumns(slices []models.PieSlice) [][]models.PieSlice {
	if len(slices) == 0 {
		return nil
	}

	columns := make([][]models.PieSlice, 0, (len(slices)-1)/legendColumnSize+1)
	for start := 0; start < len(slices); start += legendColumnSize {
		end := start + legendColumnSize
		if end > len(slices) {
			end = len(slices)
		}
		columns = append(columns, slices[start:end])
	}
	return columns
}

// wedgePath builds the SVG path for one wedge spanning [from, to] degrees.
// A single-slice pie covers the whole circle; a 360-degree arc command is
// degenerate in SVG, so that case is drawn as two half-circle arcs.
func wedgePath(from, to float64, full bool) string {
	if full {
		return fmt.Sprintf("M %.3f %.3f A %.3f %.3f 0 1 0 %.3f %.3f A %.3f %.3f 0 1 0 %.3f %.3f Z",
			pieCenter+pieRadius, pieCenter,
			pieRadius, pieRadius, pieCenter-pieRadius, pieCenter,
			pieRadius, pieRadius, pieCenter+pieRadius, pieCenter)
	}

	x1, y1 := pointOnCircle(from)
	x2, y2 := pointOnCircle(to)

	largeArc := 0
	if to-from > 180 {
		largeArc = 1
	}

	return fmt.Sprintf("M %.3f %.3f L %.3f %.3f A %.3f %.3f 0 %d 0 %.3f %.3f Z",
		pieCenter, pieCenter, x1, y1,
		pieRadius, pieRadius, largeArc, x2, y2)
}

// pointOnCircle maps a counterclockwise angle in degrees to SVG user-space
// coordinates (SVG's y axis points down).
func pointOnCircle(deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return pieCenter + pieRadius*math.Cos(rad), pieCenter - pieRadius*math.Sin(rad)
}

// labelPoint places the percentage annotation partway along the wedge's
// mid angle.
func labelPoint(deg float64) (float64, float64) {
	const labelDistance = 0.62
	rad := deg * math.Pi / 180
	return pieCenter + pieRadius*labelDistance*math.Cos(rad),
		pieCenter - pieRadius*labelDistance*math.Sin(rad)
}
