package paths

import (
	"strings"

	"github.com/katalvlaran/cavepaths/cave"
)

// Enumerate returns every path counted by Count, as cave names, in search
// order (sequential) or in completion order (WithWorkers > 1).
// Any WithOnPath option passed in is replaced.
func Enumerate(g *cave.Graph, p Policy, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out [][]string
	collect := WithOnPath(func(path []cave.NodeID) error {
		names := make([]string, len(path))
		for i, id := range path {
			names[i] = g.Name(id)
		}
		out = append(out, names)
		return nil
	})
	if _, err := Count(g, p, append(opts, collect)...); err != nil {
		return nil, err
	}

	return out, nil
}

// FormatPath joins the names along path with commas, e.g. "start,A,b,end".
func FormatPath(g *cave.Graph, path []cave.NodeID) string {
	var sb strings.Builder
	for i, id := range path {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(g.Name(id))
	}

	return sb.String()
}
