package edgelist

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/katalvlaran/cavepaths/cave"
)

// commentPrefix starts a line that carries no edge.
const commentPrefix = "#"

// ParseLine parses a single "<name>-<name>" line. Leading and trailing
// blanks are ignored; blanks anywhere else, including around the dash, and
// bytes that are not valid UTF-8 make the line malformed.
func ParseLine(line string) (cave.Edge, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return cave.Edge{}, errors.Wrap(cave.ErrMalformedInput, "empty line")
	}
	if !utf8.ValidString(trimmed) {
		return cave.Edge{}, errors.Wrapf(cave.ErrMalformedInput, "%q: invalid UTF-8", line)
	}
	tree, err := sParseEdgeLine.ParseString("", trimmed)
	if err != nil {
		return cave.Edge{}, errors.Wrapf(cave.ErrMalformedInput, "%q: %v", line, err)
	}

	return cave.Edge{From: tree.From, To: tree.To}, nil
}

// Parse reads every edge from r.
func Parse(r io.Reader) ([]cave.Edge, error) {
	var edges []cave.Edge
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "edgelist: read")
	}

	return edges, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]cave.Edge, error) {
	return Parse(strings.NewReader(s))
}

// Load reads and parses the edge list stored at path on fs.
func Load(fs afero.Fs, path string) ([]cave.Edge, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "edgelist: open %s", path)
	}
	defer f.Close()

	edges, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return edges, nil
}

// Format renders edges back into the line format, one per line.
func Format(edges []cave.Edge) string {
	var sb strings.Builder
	for _, e := range edges {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
