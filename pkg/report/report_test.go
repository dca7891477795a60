package report

import (
	"testing"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/suite"

	"bilreport/pkg/models"
)

// ReportTestSuite tests the transform layer
type ReportTestSuite struct {
	suite.Suite
}

func int64Ptr(v int64) *int64 {
	return &v
}

// TestExtractCollection tests the shard code extraction
func (s *ReportTestSuite) TestExtractCollection() {
	s.Equal("3f", ExtractCollection("/bil/data/3f/x"))
	s.Equal("aa", ExtractCollection("/bil/data/aa/deeply/nested/dataset"))
	s.Equal("00", ExtractCollection("/bil/data/00/"))
}

// TestExtractCollectionNoMatch tests paths outside the BIL shard layout
func (s *ReportTestSuite) TestExtractCollectionNoMatch() {
	s.Equal("", ExtractCollection("/other/path"))
	s.Equal("", ExtractCollection(""))
	s.Equal("", ExtractCollection("/bil/data/3f"))    // No trailing segment
	s.Equal("", ExtractCollection("/bil/data/3F/x"))  // Shard codes are lowercase
	s.Equal("", ExtractCollection("/bil/data/abc/x")) // Three characters
	s.Equal("", ExtractCollection("/bil/data/zz/x"))  // Not hex
}

// TestPrettySize tests binary size formatting
func (s *ReportTestSuite) TestPrettySize() {
	s.Equal("", PrettySize(nil))
	s.Equal("0 B", PrettySize(int64Ptr(0)))
	s.Equal("1.0 KiB", PrettySize(int64Ptr(1024)))
	s.Equal("1.5 KiB", PrettySize(int64Ptr(1536)))
	s.Equal("1.0 GiB", PrettySize(int64Ptr(1073741824)))
}

// TestPrettySizeMonotonic tests that formatted sizes never decrease when the
// input grows
func (s *ReportTestSuite) TestPrettySizeMonotonic() {
	inputs := []int64{0, 1, 512, 1023, 1024, 1536, 1048576, 10485760, 1073741824, 1099511627776}

	var previous uint64
	for _, size := range inputs {
		parsed, err := humanize.ParseBytes(PrettySize(int64Ptr(size)))
		s.Require().NoError(err)
		s.GreaterOrEqual(parsed, previous, "formatting must be monotonic")
		previous = parsed
	}
}

// TestBuildScenario tests the documented two-dataset snapshot end to end
func (s *ReportTestSuite) TestBuildScenario() {
	datasets := []models.Dataset{
		{BrainID: "A1", Directory: "/bil/data/3f/x", NumberOfFiles: 10, Size: int64Ptr(1073741824)},
		{BrainID: "A2", Directory: "/bil/data/3f/y", NumberOfFiles: 0, Size: nil},
	}

	rep := Build(datasets)

	s.Equal([]string{"3f"}, rep.Collections)
	s.Require().Len(rep.Rows, 2)
	s.Equal("A1", rep.Rows[0].BrainID)
	s.Equal("1.0 GiB", rep.Rows[0].PrettySize)
	s.Equal("A2", rep.Rows[1].BrainID)
	s.Equal("", rep.Rows[1].PrettySize)
}

// TestBuildSortDescending tests the file-count ordering
func (s *ReportTestSuite) TestBuildSortDescending() {
	datasets := []models.Dataset{
		{BrainID: "low", Directory: "/bil/data/aa/1", NumberOfFiles: 1},
		{BrainID: "high", Directory: "/bil/data/aa/2", NumberOfFiles: 100},
		{BrainID: "mid", Directory: "/bil/data/aa/3", NumberOfFiles: 50},
	}

	rep := Build(datasets)

	s.Require().Len(rep.Rows, 3)
	for i := 1; i < len(rep.Rows); i++ {
		s.GreaterOrEqual(rep.Rows[i-1].NumberOfFiles, rep.Rows[i].NumberOfFiles)
	}
	s.Equal("high", rep.Rows[0].BrainID)
	s.Equal("low", rep.Rows[2].BrainID)
}

// TestBuildSortStable tests that ties keep snapshot order
func (s *ReportTestSuite) TestBuildSortStable() {
	datasets := []models.Dataset{
		{BrainID: "first", Directory: "/bil/data/aa/1", NumberOfFiles: 5},
		{BrainID: "second", Directory: "/bil/data/aa/2", NumberOfFiles: 5},
		{BrainID: "third", Directory: "/bil/data/aa/3", NumberOfFiles: 5},
	}

	rep := Build(datasets)

	s.Require().Len(rep.Rows, 3)
	s.Equal("first", rep.Rows[0].BrainID)
	s.Equal("second", rep.Rows[1].BrainID)
	s.Equal("third", rep.Rows[2].BrainID)
}

// TestBuildCollections tests de-duplication and ascending order of the
// selector list
func (s *ReportTestSuite) TestBuildCollections() {
	datasets := []models.Dataset{
		{BrainID: "d1", Directory: "/bil/data/ff/1", NumberOfFiles: 1},
		{BrainID: "d2", Directory: "/bil/data/0a/2", NumberOfFiles: 2},
		{BrainID: "d3", Directory: "/bil/data/ff/3", NumberOfFiles: 3},
		{BrainID: "d4", Directory: "/bil/data/3c/4", NumberOfFiles: 4},
	}

	rep := Build(datasets)

	s.Equal([]string{"0a", "3c", "ff"}, rep.Collections)
	s.True(rep.HasCollection("3c"))
	s.False(rep.HasCollection("aa"))
}

// TestBuildUnmatchedPath tests that a dataset outside the shard layout stays
// in the table but out of the selector
func (s *ReportTestSuite) TestBuildUnmatchedPath() {
	datasets := []models.Dataset{
		{BrainID: "stray", Directory: "/other/path", NumberOfFiles: 7},
		{BrainID: "normal", Directory: "/bil/data/3f/x", NumberOfFiles: 3},
	}

	rep := Build(datasets)

	s.Equal([]string{"3f"}, rep.Collections)
	s.Require().Len(rep.Rows, 2)
	s.Equal("stray", rep.Rows[0].BrainID)
	s.Equal("", rep.Rows[0].Collection)
}

// TestFilter tests per-collection row filtering
func (s *ReportTestSuite) TestFilter() {
	datasets := []models.Dataset{
		{BrainID: "a", Directory: "/bil/data/3f/1", NumberOfFiles: 10},
		{BrainID: "b", Directory: "/bil/data/aa/2", NumberOfFiles: 20},
		{BrainID: "c", Directory: "/bil/data/3f/3", NumberOfFiles: 30},
	}

	rep := Build(datasets)
	filtered := rep.Filter("3f")

	s.Require().Len(filtered, 2)
	s.Equal("c", filtered[0].BrainID)
	s.Equal("a", filtered[1].BrainID)

	s.Empty(rep.Filter("bb"))
}

// TestBuildEmpty tests an empty snapshot
func (s *ReportTestSuite) TestBuildEmpty() {
	rep := Build(nil)

	s.Empty(rep.Rows)
	s.Empty(rep.Collections)
}

// TestReportSuite runs the report test suite
func TestReportSuite(t *testing.T) {
	suite.Run(t, new(ReportTestSuite))
}
