// internal/dashboard/patch.go
package dashboard

import (
	"errors"
	"fmt"
	"os"

	"github.com/mwiater/copa/internal/logging"
	"github.com/mwiater/copa/internal/roster"
	"github.com/mwiater/copa/internal/util"
)

// ErrPlaceholderNotFound means the document does not contain the data block,
// which usually means it is not the leaderboard template.
var ErrPlaceholderNotFound = errors.New("placeholder data block not found")

// DocumentError reports a dashboard document that could not be read or
// written.
type DocumentError struct {
	Path string
	Op   string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// Outcome describes what UpdateFile did.
type Outcome struct {
	Path string
	// Block is the rendered script assignment.
	Block string
	// Matches counts placeholder blocks in the original document. Only the
	// first one is replaced.
	Matches int
	Changed bool
	Written bool
}

// Patch replaces the first placeholder block in doc with the rendered
// records, leaving every other byte untouched. It returns the new document
// and the number of placeholder blocks found.
func Patch(doc string, records []roster.Record, l Layout) (string, int, error) {
	locs := l.Pattern().FindAllStringIndex(doc, -1)
	if len(locs) == 0 {
		return "", 0, ErrPlaceholderNotFound
	}
	block := Render(records, l)
	start, end := locs[0][0], locs[0][1]
	return doc[:start] + block + doc[end:], len(locs), nil
}

// UpdateFile patches the document at path in place. With dryRun the patched
// document is computed but not written. A document without a placeholder is
// never written.
func UpdateFile(path string, records []roster.Record, l Layout, dryRun bool) (Outcome, error) {
	out := Outcome{Path: path, Block: Render(records, l)}

	data, err := os.ReadFile(path)
	if err != nil {
		return out, &DocumentError{Path: path, Op: "read", Err: err}
	}
	doc := string(data)

	patched, matches, err := Patch(doc, records, l)
	if err != nil {
		logging.LogEvent("dashboard: %s: %v", path, err)
		return out, fmt.Errorf("%s: %w", path, err)
	}
	out.Matches = matches
	out.Changed = patched != doc
	if matches > 1 {
		logging.LogEvent("dashboard: %s has %d placeholder blocks, replacing the first", path, matches)
	}

	if dryRun {
		logging.LogEvent("dashboard: dry run, %s left untouched", path)
		return out, nil
	}
	if err := util.WriteFile(path, []byte(patched)); err != nil {
		return out, &DocumentError{Path: path, Op: "write", Err: err}
	}
	out.Written = true
	logging.LogEvent("dashboard: wrote %d records to %s (changed=%t)", len(records), path, out.Changed)
	return out, nil
}
