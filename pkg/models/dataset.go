package models

// Dataset is one inventory item as published in the daily report.
// Size is a pointer because the report may carry null for datasets
// whose size has not been computed yet.
type Dataset struct {
	BrainID       string `json:"bildid"`
	Directory     string `json:"bildirectory"`
	NumberOfFiles int64  `json:"number_of_files"`
	Size          *int64 `json:"size"`
}
