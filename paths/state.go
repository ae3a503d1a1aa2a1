package paths

import "github.com/katalvlaran/cavepaths/cave"

// visitState is the backtracking state of one in-flight path.
//
// counts[id] is how often Small cave id appears on the current path prefix.
// spent is the Small cave currently visited twice, or cave.NoNode; it is the
// path-global "extra visit already used" flag, kept in step with counts.
type visitState struct {
	counts []uint8
	spent  cave.NodeID
}

func newVisitState(n int) visitState {
	return visitState{counts: make([]uint8, n), spent: cave.NoNode}
}

// enter records a visit to Small cave id.
func (s *visitState) enter(id cave.NodeID) {
	s.counts[id]++
	if s.counts[id] == 2 {
		s.spent = id
	}
}

// leave undoes the matching enter.
func (s *visitState) leave(id cave.NodeID) {
	if s.counts[id] == 2 {
		s.spent = cave.NoNode
	}
	s.counts[id]--
}

// admits reports whether Small cave id may be entered next under p.
func (s *visitState) admits(p Policy, id cave.NodeID) bool {
	switch s.counts[id] {
	case 0:
		return true
	case 1:
		return p == OneExtraVisit && s.spent == cave.NoNode
	}

	return false
}

// clean reports whether every count is back to zero.
func (s *visitState) clean() bool {
	for _, c := range s.counts {
		if c != 0 {
			return false
		}
	}

	return s.spent == cave.NoNode
}
