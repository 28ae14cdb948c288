package model

import "fmt"

// DataFormatError reports a dataset field that could not be parsed.
type DataFormatError struct {
	RecordID string
	Field    string
	Value    string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("data format: record %s: cannot parse %s %q", e.RecordID, e.Field, e.Value)
}

// CoordinateError reports a home coordinate string that is not a
// "longitude,latitude" pair of decimals.
type CoordinateError struct {
	Value string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid longlat %q: expected \"longitude,latitude\", e.g. \"2.487970,48.846350\"", e.Value)
}
