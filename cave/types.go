package cave

import "unicode"

// Default role names. They are reserved in the textual input format.
const (
	StartName = "start"
	EndName   = "end"
)

// NodeID is a dense node index in [0, Graph.Len()).
type NodeID int

// NoNode marks an empty adjacency slot and "no node" results.
const NoNode NodeID = -1

// Size classifies a cave for the revisit policies.
type Size uint8

const (
	// Small caves are subject to the revisit policy.
	Small Size = iota
	// Big caves may be revisited without limit.
	Big
)

// String implements fmt.Stringer.
func (s Size) String() string {
	if s == Big {
		return "big"
	}

	return "small"
}

// Classify reports Big when name is non-empty and every rune is upper case,
// Small otherwise.
func Classify(name string) Size {
	if name == "" {
		return Small
	}
	for _, r := range name {
		if !unicode.IsUpper(r) {
			return Small
		}
	}

	return Big
}

// Edge is an undirected connection between two named caves.
type Edge struct {
	From string
	To   string
}

// String renders the edge in the input format "a-b".
func (e Edge) String() string {
	return e.From + "-" + e.To
}

// Graph is an immutable cave network. All containers are indexed by NodeID.
// A Graph is safe for concurrent readers.
type Graph struct {
	names []string          // id → name
	sizes []Size            // id → classification
	index map[string]NodeID // name → id

	adj    []NodeID // len(names)*stride slots, NoNode when empty
	deg    []int    // occupied slots per row
	stride int

	links [][2]NodeID // input edges as ids, in input order

	start NodeID
	end   NodeID
}
