package ingest_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmkhr/cityway/core"
	"github.com/dmkhr/cityway/ingest"
)

func TestParseLine(t *testing.T) {
	require := require.New(t)

	tr, err := ingest.ParseLine("Kyiv Lviv 540")
	require.NoError(err)
	require.Equal(ingest.Triple{A: "Kyiv", B: "Lviv", Weight: 540}, tr)

	// Extra whitespace is tolerated.
	tr, err = ingest.ParseLine("  A \t B   7 ")
	require.NoError(err)
	require.Equal(ingest.Triple{A: "A", B: "B", Weight: 7}, tr)

	// Wrong token count.
	_, err = ingest.ParseLine("A B")
	require.ErrorIs(err, ingest.ErrMalformedLine)
	_, err = ingest.ParseLine("A B 5 extra")
	require.ErrorIs(err, ingest.ErrMalformedLine)

	// Non-numeric or negative weight.
	_, err = ingest.ParseLine("A B far")
	require.ErrorIs(err, ingest.ErrBadWeight)
	_, err = ingest.ParseLine("A B -5")
	require.ErrorIs(err, ingest.ErrBadWeight)
}

func TestLineSource(t *testing.T) {
	require := require.New(t)
	// Blank lines are skipped, the malformed line surfaces its error
	// without ending the stream, the stop word matches case-insensitively,
	// and nothing after it is read.
	input := strings.Join([]string{
		"A B 5",
		"",
		"bad line",
		"B C 3",
		"EXIT",
		"C D 1",
	}, "\n")
	src := ingest.NewLineSource(strings.NewReader(input))

	tr, err := src.Next()
	require.NoError(err)
	require.Equal("A", tr.A)

	_, err = src.Next()
	require.ErrorIs(err, ingest.ErrMalformedLine)

	tr, err = src.Next()
	require.NoError(err)
	require.Equal("B", tr.A)

	_, err = src.Next()
	require.ErrorIs(err, io.EOF)
	// Terminal state is sticky.
	_, err = src.Next()
	require.ErrorIs(err, io.EOF)
}

func TestSliceSource(t *testing.T) {
	require := require.New(t)
	src := ingest.NewSliceSource(
		ingest.Triple{A: "A", B: "B", Weight: 1},
		ingest.Triple{A: "B", B: "C", Weight: 2},
	)

	first, err := src.Next()
	require.NoError(err)
	require.Equal("A", first.A)
	second, err := src.Next()
	require.NoError(err)
	require.Equal("B", second.A)
	_, err = src.Next()
	require.ErrorIs(err, io.EOF)
}

func TestBuildCollectsRecoverableErrors(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph()
	src := ingest.NewSliceSource(
		ingest.Triple{A: "A", B: "B", Weight: 5},
		ingest.Triple{A: "B", B: "A", Weight: 5}, // duplicate, reversed order
		ingest.Triple{A: "B", B: "C", Weight: 3},
	)

	added, errs := ingest.Build(g, src)
	require.Equal(2, added)
	require.Len(errs, 1)
	require.ErrorIs(errs[0], core.ErrDuplicateEdge)
	require.Equal(2, g.EdgeCount())
}

func TestBuildFromLines(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph()
	// "bad line" splits into two tokens; "A B far" has three but a
	// non-numeric weight. Both are collected without ending the run.
	input := "A B 5\nbad line\nA B far\nB C 3\nexit\n"

	added, errs := ingest.Build(g, ingest.NewLineSource(strings.NewReader(input)))
	require.Equal(2, added)
	require.Len(errs, 2)
	require.ErrorIs(errs[0], ingest.ErrMalformedLine)
	require.ErrorIs(errs[1], ingest.ErrBadWeight)
	require.Equal([]string{"A", "B", "C"}, g.NodeNames())
}

func TestParseTOML(t *testing.T) {
	require := require.New(t)
	doc := []byte(`
[[edge]]
a = "Kyiv"
b = "Lviv"
weight = 540

[[edge]]
a = "Kyiv"
b = "Odesa"
weight = 475
`)
	triples, err := ingest.ParseTOML(doc)
	require.NoError(err)
	require.Len(triples, 2)
	require.Equal(ingest.Triple{A: "Kyiv", B: "Lviv", Weight: 540}, triples[0])

	_, err = ingest.ParseTOML([]byte("[[edge]]\na = \"A\"\nb = \"B\"\nweight = -1\n"))
	require.ErrorIs(err, ingest.ErrBadWeight)

	_, err = ingest.ParseTOML([]byte("[[edge]]\na = \"A\"\nweight = 1\n"))
	require.ErrorIs(err, ingest.ErrMalformedLine)
}

func TestParseYAML(t *testing.T) {
	require := require.New(t)
	doc := []byte(`
edges:
  - a: Kyiv
    b: Lviv
    weight: 540
  - a: Kyiv
    b: Odesa
    weight: 475
`)
	triples, err := ingest.ParseYAML(doc)
	require.NoError(err)
	require.Len(triples, 2)
	require.Equal(ingest.Triple{A: "Kyiv", B: "Odesa", Weight: 475}, triples[1])
}

func TestLoadFile(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "edges.toml")
	require.NoError(os.WriteFile(tomlPath, []byte("[[edge]]\na = \"A\"\nb = \"B\"\nweight = 5\n"), 0o644))
	triples, err := ingest.LoadFile(tomlPath)
	require.NoError(err)
	require.Len(triples, 1)

	yamlPath := filepath.Join(dir, "edges.yaml")
	require.NoError(os.WriteFile(yamlPath, []byte("edges:\n  - a: A\n    b: B\n    weight: 5\n"), 0o644))
	triples, err = ingest.LoadFile(yamlPath)
	require.NoError(err)
	require.Len(triples, 1)

	txtPath := filepath.Join(dir, "edges.txt")
	require.NoError(os.WriteFile(txtPath, []byte("A B 5\n"), 0o644))
	_, err = ingest.LoadFile(txtPath)
	require.ErrorIs(err, ingest.ErrUnknownFormat)

	_, err = ingest.LoadFile(filepath.Join(dir, "missing.toml"))
	require.Error(err)
}
