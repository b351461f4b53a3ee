package testfixtures

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/aymanbagabas/go-udiff"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Ascii profile keeps rendered output free of color sequences
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Flag for updating golden files (shared across all tests)
var UpdateGolden = flag.Bool("update", false, "update golden files")

// CompareGolden compares actual output with a golden file and reports a
// unified diff on mismatch. Use -update to regenerate golden files.
func CompareGolden(t *testing.T, goldenPath, actual string) {
	t.Helper()

	if *UpdateGolden {
		dir := filepath.Dir(goldenPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create testdata directory: %v", err)
		}

		if err := os.WriteFile(goldenPath, []byte(actual), 0644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file %s does not exist. Run with -update to create it.", goldenPath)
		}
		t.Fatalf("failed to read golden file %s: %v", goldenPath, err)
	}

	if actual != string(expected) {
		diff := udiff.Unified(goldenPath, "actual", string(expected), actual)
		t.Errorf("output does not match golden file %s\n\n%s", goldenPath, diff)
	}
}

// GoldenPath builds a path to a golden file in the testdata directory.
// Example: GoldenPath("modal_snapshot.golden") -> "testdata/modal_snapshot.golden"
func GoldenPath(filename string) string {
	return filepath.Join("testdata", filename)
}

// Plain strips escape sequences and trailing spaces from every line.
func Plain(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// Lines returns the plain lines of rendered output.
func Lines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

// Cells returns the plain text in columns [left, right) of a rendered line.
func Cells(line string, left, right int) string {
	return ansi.Strip(ansi.Cut(line, left, right))
}

// Render draws into a canvas of the canonical size and returns its plain
// content.
func Render(renderFn func(canvas uv.ScreenBuffer)) string {
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	renderFn(canvas)
	return Plain(canvas.Render())
}

// CompareRendered creates a screen buffer, renders content, and compares
// its plain text with a golden file.
func CompareRendered(t *testing.T, goldenPath string, renderFn func(canvas uv.ScreenBuffer)) {
	t.Helper()
	CompareGolden(t, goldenPath, Render(renderFn))
}
