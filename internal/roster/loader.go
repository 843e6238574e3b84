// internal/roster/loader.go
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mwiater/copa/internal/logging"
)

// Options controls how Load interprets a file. Zero fields fall back to the
// package defaults.
type Options struct {
	Decoders        []Decoder
	Columns         Columns
	DefaultCategory string
}

func (o Options) withDefaults() Options {
	if len(o.Decoders) == 0 {
		o.Decoders = DefaultDecoders()
	}
	def := DefaultColumns()
	if len(o.Columns.Name) == 0 {
		o.Columns.Name = def.Name
	}
	if len(o.Columns.Count) == 0 {
		o.Columns.Count = def.Count
	}
	if len(o.Columns.Category) == 0 {
		o.Columns.Category = def.Category
	}
	if strings.TrimSpace(o.DefaultCategory) == "" {
		o.DefaultCategory = DefaultCategory
	}
	return o
}

// Load reads the CSV file at path and returns its records.
func Load(path string, opts Options) (Result, error) {
	opts = opts.withDefaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		logging.LogEvent("roster: read %s: %v", path, err)
		return Result{}, &LoadError{Path: path, Required: opts.Columns.Required(), Err: err}
	}
	res, err := Parse(raw, opts)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return Result{}, err
	}
	return res, nil
}

// Parse tries each decoder in order and returns the records produced by the
// first one that yields at least one record. Results are never merged across
// decoders, so when several decoders parse cleanly the earliest one wins even
// if a later one would have produced different rows.
func Parse(raw []byte, opts Options) (Result, error) {
	opts = opts.withDefaults()
	tried := make([]string, 0, len(opts.Decoders))
	for _, dec := range opts.Decoders {
		tried = append(tried, dec.Name)
		text, err := dec.Decode(raw)
		if err != nil {
			logging.LogEvent("roster: decoder %s failed: %v", dec.Name, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			logging.LogEvent("roster: decoder %s produced no content", dec.Name)
			continue
		}
		records, err := parseRecords(text, opts)
		if err != nil {
			logging.LogEvent("roster: decoder %s: %v", dec.Name, err)
			continue
		}
		if len(records) == 0 {
			logging.LogEvent("roster: decoder %s produced no records", dec.Name)
			continue
		}
		logging.LogEvent("roster: decoder %s produced %d records", dec.Name, len(records))
		return Result{Records: records, Encoding: dec.Name}, nil
	}
	return Result{}, &LoadError{Required: opts.Columns.Required(), Tried: tried, Err: ErrNoRecords}
}

func parseRecords(text string, opts Options) ([]Record, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := opts.Columns.resolve(header)

	var records []Record
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		rec, ok := normalize(row, cols, opts.DefaultCategory)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// normalize builds a Record from row. Rows without a name are rejected.
func normalize(row []string, cols layout, defaultCategory string) (Record, bool) {
	name := strings.TrimSpace(firstValue(row, cols.name))
	if name == "" {
		return Record{}, false
	}
	category := strings.TrimSpace(firstValue(row, cols.category))
	if category == "" {
		category = defaultCategory
	}
	return Record{
		Name:     name,
		Count:    parseCount(firstValue(row, cols.count)),
		Category: category,
	}, true
}

// parseCount coerces a count cell, degrading to 0 for blank, non-numeric
// or negative values.
func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
