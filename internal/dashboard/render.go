// internal/dashboard/render.go
// Package dashboard rewrites the advisor data block embedded in the
// leaderboard HTML page.
package dashboard

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mwiater/copa/internal/roster"
)

// DefaultVariable is the script variable holding the advisor list.
const DefaultVariable = "datosAsesores"

// Layout describes the shape of the generated script block.
type Layout struct {
	Variable    string
	Indent      string
	EntryIndent string
	NameKey     string
	CountKey    string
	CategoryKey string
}

// DefaultLayout matches the block shipped in copa_dashboard_optimizado.html.
func DefaultLayout() Layout {
	return Layout{
		Variable:    DefaultVariable,
		Indent:      strings.Repeat(" ", 8),
		EntryIndent: strings.Repeat(" ", 12),
		NameKey:     "nombre",
		CountKey:    "domiciliaciones",
		CategoryKey: "area",
	}
}

// Pattern matches the placeholder block: the assignment line through the
// first closing "];", across line breaks.
func (l Layout) Pattern() *regexp.Regexp {
	head := fmt.Sprintf("%sconst %s = [", l.Indent, l.Variable)
	return regexp.MustCompile(`(?s)` + regexp.QuoteMeta(head) + `.*?\];`)
}

// Render serializes records into the script assignment that replaces the
// placeholder block.
func Render(records []roster.Record, l Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%sconst %s = [\n", l.Indent, l.Variable)
	for _, r := range records {
		fmt.Fprintf(&b, "%s{%s: \"%s\", %s: %d, %s: \"%s\"},\n",
			l.EntryIndent,
			l.NameKey, escape(r.Name),
			l.CountKey, r.Count,
			l.CategoryKey, escape(r.Category),
		)
	}
	b.WriteString(l.Indent + "];")
	return b.String()
}

// "]" is emitted as an escape so a value can never contain the "];" that
// terminates the placeholder match.
var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
	"</", `<\/`,
	"]", `\u005d`,
)

func escape(s string) string {
	return stringEscaper.Replace(s)
}
