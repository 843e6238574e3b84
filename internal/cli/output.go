// internal/cli/output.go
package copa

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/mwiater/copa/internal/dashboard"
	"github.com/mwiater/copa/internal/roster"
	"github.com/mwiater/copa/internal/util"
)

const maxNameWidth = 40

var (
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	rankStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func printBanner(out io.Writer) {
	fmt.Fprintln(out, titleStyle.Render("🏆 Copa de la Domiciliación 2026 - Updater"))
	fmt.Fprintln(out, strings.Repeat("=", 50))
}

func printLoaded(out io.Writer, res roster.Result) {
	successColor.Fprintf(out, "✅ File read successfully with encoding: %s\n", res.Encoding)
	fmt.Fprintf(out, "📊 Advisors found: %d\n", len(res.Records))
}

func printSummary(out io.Writer, s roster.Summary) {
	fmt.Fprintf(out, "📊 Total advisors: %d\n", s.Records)
	fmt.Fprintf(out, "📈 Total direct debits: %d\n", s.TotalCount)
	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("🏆 TOP %d advisors:", len(s.Top))))
	for i, r := range s.Top {
		fmt.Fprintf(out, "  %s %s - %d direct debits (%s)\n",
			rankStyle.Render(strconv.Itoa(i+1)+"."),
			util.TruncateRunes(r.Name, maxNameWidth),
			r.Count,
			r.Category,
		)
	}
}

func recordsTable(records []roster.Record) string {
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			util.TruncateRunes(r.Name, maxNameWidth),
			strconv.Itoa(r.Count),
			r.Category,
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true)
			}
			if col == 2 {
				return s.Align(lipgloss.Right)
			}
			return s
		}).
		Headers("#", "NAME", "COUNT", "CATEGORY").
		Rows(rows...)
	return t.Render()
}

// reportFailure prints the diagnostic for a fatal error, with guidance for
// the input and output failures a user can fix.
func reportFailure(out io.Writer, err error) {
	var loadErr *roster.LoadError
	var docErr *dashboard.DocumentError
	switch {
	case errors.As(err, &loadErr):
		failureColor.Fprintln(out, "❌ Error: could not read data from the CSV file")
		fmt.Fprintln(out, "Check that:")
		fmt.Fprintf(out, "  1. The file '%s' exists (relative to the current folder)\n", loadErr.Path)
		fmt.Fprintf(out, "  2. It has the columns: %s\n", strings.Join(loadErr.Required, ", "))
		fmt.Fprintln(out, "  3. It has at least one data row")
	case errors.Is(err, dashboard.ErrPlaceholderNotFound):
		failureColor.Fprintln(out, "❌ Error: the data section was not found in the HTML")
		fmt.Fprintln(out, "Check that you are using the right dashboard file")
	case errors.As(err, &docErr) && docErr.Op == "read":
		failureColor.Fprintf(out, "❌ Error: could not find the file '%s'\n", docErr.Path)
		fmt.Fprintln(out, "Make sure it is in the same folder you run copa from")
	default:
		failureColor.Fprintln(out, "❌ Error")
	}
	fmt.Fprintln(out, mutedStyle.Render("   "+err.Error()))
}
