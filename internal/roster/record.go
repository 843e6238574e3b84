// internal/roster/record.go
// Package roster loads advisor records from loosely structured CSV exports.
package roster

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultCategory is the label assigned to records whose category column is
// missing or blank.
const DefaultCategory = "Sin área"

// ErrNoRecords is reported when no decoder produced at least one record.
var ErrNoRecords = errors.New("no records with a name were found")

// Record is one advisor's normalized row.
type Record struct {
	Name     string
	Count    int
	Category string
}

// Result is the outcome of a successful load.
type Result struct {
	Records []Record
	// Encoding names the decoder whose output produced Records.
	Encoding string
}

// LoadError describes a load that produced no usable records. It carries
// enough context for the caller to tell the user what was expected.
type LoadError struct {
	Path     string
	Required []string
	Tried    []string
	Err      error
}

func (e *LoadError) Error() string {
	if len(e.Tried) == 0 {
		return fmt.Sprintf("read %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("read %s (tried %s): %v", e.Path, strings.Join(e.Tried, ", "), e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
