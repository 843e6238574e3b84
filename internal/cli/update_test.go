// internal/cli/update_test.go
package copa

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/copa/internal/appconfig"
	"github.com/mwiater/copa/internal/dashboard"
	"github.com/mwiater/copa/internal/roster"
)

const dashboardHTML = `<html>
<body>
<script>
        const datosAsesores = [
            {nombre: "Ejemplo", domiciliaciones: 0, area: "Demo"},
        ];
</script>
</body>
</html>
`

const advisorsCSV = `Nombre,Domiciliaciones,Area
Ana,10,Ventas
Beto,abc,Cobranza
,4,Soporte
Carla,7,
Dario,10,Ventas
Eva,1,Soporte
Fede,3,Ventas
`

// newWorkspace writes a CSV export and a dashboard into a temp dir and
// returns a configuration pointing at them.
func newWorkspace(t *testing.T, csv, html string) appconfig.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := appconfig.Defaults()
	cfg.CSVPath = filepath.Join(dir, "datos.csv")
	cfg.HTMLPath = filepath.Join(dir, "copa_dashboard_optimizado.html")
	if err := os.WriteFile(cfg.CSVPath, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.HTMLPath, []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestRunUpdate(t *testing.T) {
	cfg := newWorkspace(t, advisorsCSV, dashboardHTML)
	var buf bytes.Buffer

	if err := runUpdate(&buf, cfg); err != nil {
		t.Fatalf("runUpdate error: %v", err)
	}

	data, err := os.ReadFile(cfg.HTMLPath)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	for _, want := range []string{
		`            {nombre: "Ana", domiciliaciones: 10, area: "Ventas"},`,
		`            {nombre: "Beto", domiciliaciones: 0, area: "Cobranza"},`,
		`            {nombre: "Carla", domiciliaciones: 7, area: "Sin área"},`,
		"<script>\n        const datosAsesores = [\n",
		"        ];\n</script>",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected %q in dashboard:\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "Ejemplo") {
		t.Fatalf("placeholder data should be replaced:\n%s", doc)
	}

	out := buf.String()
	for _, want := range []string{
		"encoding: utf-8-sig",
		"Total advisors: 6",
		"Total direct debits: 31",
		"1. Ana - 10 direct debits (Ventas)",
		"2. Dario - 10 direct debits (Ventas)",
		"3. Carla - 7 direct debits (Sin área)",
		"5. Eva - 1 direct debits (Soporte)",
		"Updated file: " + cfg.HTMLPath,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "6. ") {
		t.Fatalf("summary should list five advisors:\n%s", out)
	}
}

func TestRunUpdateTwiceIsByteIdentical(t *testing.T) {
	cfg := newWorkspace(t, advisorsCSV, dashboardHTML)
	var buf bytes.Buffer
	if err := runUpdate(&buf, cfg); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(cfg.HTMLPath)
	if err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := runUpdate(&buf, cfg); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(cfg.HTMLPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("second run changed the dashboard")
	}
	if !strings.Contains(buf.String(), "already up to date") {
		t.Fatalf("expected up-to-date notice:\n%s", buf.String())
	}
}

func TestRunUpdateMissingPlaceholder(t *testing.T) {
	cfg := newWorkspace(t, advisorsCSV, "<html><body>otra página</body></html>\n")
	var buf bytes.Buffer

	err := runUpdate(&buf, cfg)
	if !errors.Is(err, dashboard.ErrPlaceholderNotFound) {
		t.Fatalf("expected ErrPlaceholderNotFound, got %v", err)
	}
	data, readErr := os.ReadFile(cfg.HTMLPath)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(data) != "<html><body>otra página</body></html>\n" {
		t.Fatalf("dashboard was modified: %q", data)
	}
}

func TestRunUpdateNoRecords(t *testing.T) {
	cfg := newWorkspace(t, "Nombre,Domiciliaciones,Area\n", dashboardHTML)
	var buf bytes.Buffer

	err := runUpdate(&buf, cfg)
	if !errors.Is(err, roster.ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
	data, readErr := os.ReadFile(cfg.HTMLPath)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(data) != dashboardHTML {
		t.Fatalf("dashboard was modified")
	}
}

func TestRunUpdateMissingDashboard(t *testing.T) {
	cfg := newWorkspace(t, advisorsCSV, dashboardHTML)
	cfg.HTMLPath = filepath.Join(filepath.Dir(cfg.HTMLPath), "missing.html")

	err := runUpdate(&bytes.Buffer{}, cfg)
	var de *dashboard.DocumentError
	if !errors.As(err, &de) {
		t.Fatalf("expected *dashboard.DocumentError, got %v", err)
	}
}

func TestRunUpdateDryRun(t *testing.T) {
	cfg := newWorkspace(t, advisorsCSV, dashboardHTML)
	cfg.DryRun = true
	var buf bytes.Buffer

	if err := runUpdate(&buf, cfg); err != nil {
		t.Fatalf("runUpdate error: %v", err)
	}
	data, err := os.ReadFile(cfg.HTMLPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != dashboardHTML {
		t.Fatalf("dry run modified the dashboard")
	}
	out := buf.String()
	if !strings.Contains(out, `{nombre: "Fede", domiciliaciones: 3, area: "Ventas"},`) {
		t.Fatalf("expected rendered block in output:\n%s", out)
	}
	if !strings.Contains(out, "was not modified") {
		t.Fatalf("expected dry-run notice:\n%s", out)
	}
}

func TestRunShowRecords(t *testing.T) {
	cfg := newWorkspace(t, advisorsCSV, dashboardHTML)
	cfg.TopN = 2
	var buf bytes.Buffer

	if err := runShowRecords(&buf, cfg); err != nil {
		t.Fatalf("runShowRecords error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"NAME", "CATEGORY", "Beto", "Sin área", "TOP 2 advisors", "2. Dario"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	data, err := os.ReadFile(cfg.HTMLPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != dashboardHTML {
		t.Fatalf("show records must not touch the dashboard")
	}
}
