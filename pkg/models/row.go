package models

// Row is one presentation-ready table row derived from a Dataset.
// Collection and PrettySize are pure derivations: an empty Collection means
// the directory path does not follow the BIL shard layout, and an empty
// PrettySize means the report did not carry a size for the dataset.
type Row struct {
	BrainID       string `json:"bildid"`
	Collection    string `json:"collection,omitempty"`
	NumberOfFiles int64  `json:"number_of_files"`
	PrettySize    string `json:"pretty_size,omitempty"`
}
