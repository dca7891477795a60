package report

import (
	"regexp"
	"sort"

	"github.com/dustin/go-humanize"

	"bilreport/pkg/models"
)

// collectionPattern matches the two-hex-character shard segment of a BIL
// storage path, e.g. /bil/data/3f/....
var collectionPattern = regexp.MustCompile(`/bil/data/([0-9a-f]{2})/`)

// ExtractCollection returns the collection code embedded in a dataset
// directory path, or "" when the path does not follow the BIL shard layout.
func ExtractCollection(path string) string {
	match := collectionPattern.FindStringSubmatch(path)
	if match == nil {
		return ""
	}
	return match[1]
}

// PrettySize renders a byte count using binary (1024-based) units.
// A nil size means the inventory does not know it; that stays blank rather
// than collapsing into "0 B", so unknown and zero remain distinguishable.
func PrettySize(size *int64) string {
	if size == nil {
		return ""
	}
	return humanize.IBytes(uint64(*size)) // #nosec G115 - report sizes are non-negative
}

// Report is the derived, presentation-ready view of one inventory snapshot.
type Report struct {
	Rows        []models.Row
	Collections []string
}

// Build derives table rows and the collection selector list from raw
// datasets. Rows are sorted by file count descending; ties keep snapshot
// order. Collections are the de-duplicated codes present in the data,
// sorted ascending.
func Build(datasets []models.Dataset) *Report {
	rows := make([]models.Row, 0, len(datasets))
	seen := make(map[string]bool)

	for _, d := range datasets {
		code := ExtractCollection(d.Directory)
		rows = append(rows, models.Row{
			BrainID:       d.BrainID,
			Collection:    code,
			NumberOfFiles: d.NumberOfFiles,
			PrettySize:    PrettySize(d.Size),
		})
		if code != "" {
			seen[code] = true
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].NumberOfFiles > rows[j].NumberOfFiles
	})

	collections := make([]string, 0, len(seen))
	for code := range seen {
		collections = append(collections, code)
	}
	sort.Strings(collections)

	return &Report{Rows: rows, Collections: collections}
}

// HasCollection reports whether code is offered in the selector.
func (r *Report) HasCollection(code string) bool {
	for _, c := range r.Collections {
		if c == code {
			return true
		}
	}
	return false
}

// Filter returns the rows belonging to the given collection, preserving
// the sorted order.
func (r *Report) Filter(code string) []models.Row {
	filtered := make([]models.Row, 0)
	for _, row := range r.Rows {
		if row.Collection == code {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
