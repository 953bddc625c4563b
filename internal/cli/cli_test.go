package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svgdxf/buildinfo"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg"
     xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"
     width="50mm" height="40mm" viewBox="0 0 50 40">
  <g inkscape:label="cut" inkscape:groupmode="layer">
    <path d="M 5,5 L 45,5 L 45,35 Z"/>
  </g>
  <g inkscape:label="Holes-Drill" inkscape:groupmode="layer">
    <path d="M 10,10 L 12,10 L 12,12 L 10,12 Z"/>
  </g>
</svg>`

func writeTestSVG(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "in.svg")
	if err := os.WriteFile(name, []byte(testSVG), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := New(&stderr, log.WarnLevel)
	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	for _, name := range []string{"convert", "layers", "preview"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not found", name)
		}
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	want := appName + " " + buildinfo.String() + "\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestConvertStdout(t *testing.T) {
	in := writeTestSVG(t)
	out, _, err := execute(t, "convert", in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out, "EOF\n") {
		t.Error("output does not end with EOF")
	}
	if got := strings.Count(out, "\nLINE\n"); got != 3 {
		t.Errorf("got %d LINE entities, want 3", got)
	}
	if got := strings.Count(out, "\nPOINT\n"); got != 1 {
		t.Errorf("got %d POINT entities, want 1", got)
	}
}

func TestConvertFile(t *testing.T) {
	in := writeTestSVG(t)
	outFile := filepath.Join(t.TempDir(), "out.dxf")
	_, stderr, err := execute(t, "convert", "--stamp", "-o", outFile, in)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("(run ")) {
		t.Error("run stamp missing from file comment")
	}
	if !strings.Contains(stderr, outFile) {
		t.Errorf("status output does not name %s", outFile)
	}
}

func TestConvertBadFlags(t *testing.T) {
	in := writeTestSVG(t)
	for _, args := range [][]string{
		{"convert", "--tolerance=-1", in},
		{"convert", "--method", "magic", in},
		{"convert", "--encoding", "ebcdic", in},
		{"convert", filepath.Join(t.TempDir(), "missing.svg")},
	} {
		if _, _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestLayers(t *testing.T) {
	in := writeTestSVG(t)
	out, _, err := execute(t, "layers", in)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "cut") || !strings.Contains(lines[0], "outline") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "Holes-Drill") || !strings.Contains(lines[1], "drill") {
		t.Errorf("unexpected second line %q", lines[1])
	}
}

func TestLayersSorted(t *testing.T) {
	in := writeTestSVG(t)
	out, _, err := execute(t, "layers", "--sort", in)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Holes-Drill") || !strings.Contains(lines[0], "#1") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "cut") || !strings.Contains(lines[1], "#0") {
		t.Errorf("unexpected second line %q", lines[1])
	}
}

func TestPreview(t *testing.T) {
	in := writeTestSVG(t)
	outFile := filepath.Join(t.TempDir(), "out.png")
	if _, _, err := execute(t, "preview", "--cap", "round", "-o", outFile, in); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(outFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Error("empty preview image")
	}
}

func TestParseCap(t *testing.T) {
	tests := []struct {
		in      string
		want    graphics.LineCapStyle
		wantErr bool
	}{
		{"", graphics.LineCapButt, false},
		{"butt", graphics.LineCapButt, false},
		{"Round", graphics.LineCapRound, false},
		{"square", graphics.LineCapSquare, false},
		{"bevel", 0, true},
	}
	for _, tt := range tests {
		got, err := parseCap(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCap(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseCap(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "1 line"},
		{7, "7 lines"},
	}
	for _, tt := range tests {
		if got := count(tt.n, "line"); got != tt.want {
			t.Errorf("count(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
