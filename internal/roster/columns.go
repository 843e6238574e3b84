// internal/roster/columns.go
package roster

import "strings"

// Columns lists, per field, the header spellings accepted for that field in
// priority order.
type Columns struct {
	Name     []string
	Count    []string
	Category []string
}

// DefaultColumns returns the header aliases used by the leaderboard exports.
func DefaultColumns() Columns {
	return Columns{
		Name:     []string{"Nombre", "nombre", "NOMBRE"},
		Count:    []string{"Domiciliaciones", "domiciliaciones", "DOMICILIACIONES"},
		Category: []string{"Area", "area", "AREA", "Área"},
	}
}

// Required returns the preferred header for each field, for diagnostics.
func (c Columns) Required() []string {
	var out []string
	for _, aliases := range [][]string{c.Name, c.Count, c.Category} {
		if len(aliases) > 0 {
			out = append(out, aliases[0])
		}
	}
	return out
}

// layout holds, per field, the header indexes to consult in order.
type layout struct {
	name     []int
	count    []int
	category []int
}

func (c Columns) resolve(header []string) layout {
	return layout{
		name:     matchAliases(header, c.Name),
		count:    matchAliases(header, c.Count),
		category: matchAliases(header, c.Category),
	}
}

// matchAliases returns the indexes of header cells naming one of aliases.
// Exact matches come first in alias order, then case-insensitive matches on
// the trimmed header.
func matchAliases(header []string, aliases []string) []int {
	var idx []int
	seen := make(map[int]bool)
	for _, alias := range aliases {
		for i, h := range header {
			if h == alias && !seen[i] {
				idx = append(idx, i)
				seen[i] = true
				break
			}
		}
	}
	for _, alias := range aliases {
		for i, h := range header {
			if !seen[i] && strings.EqualFold(strings.TrimSpace(h), alias) {
				idx = append(idx, i)
				seen[i] = true
			}
		}
	}
	return idx
}

// firstValue returns the first non-empty cell among idx.
func firstValue(row []string, idx []int) string {
	for _, i := range idx {
		if i < len(row) && row[i] != "" {
			return row[i]
		}
	}
	return ""
}
