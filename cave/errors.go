// SPDX-License-Identifier: MIT
// Package: cavepaths/cave
//
// errors.go — sentinel errors for graph construction.
//
// Error policy:
//   • Three error kinds are exposed as roots: ErrMalformedInput, ErrConfig, ErrInternal.
//   • Specific sentinels wrap a root so callers may branch on either level with errors.Is.
//   • Call sites attach context with github.com/pkg/errors Wrapf; never compare strings.

package cave

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates an edge that does not consist of exactly two
// well-formed names. Fatal for the input; no partial Graph is returned.
var ErrMalformedInput = errors.New("cave: malformed input")

// ErrConfig indicates input that is well-formed but lacks a required role,
// such as the start or end cave.
var ErrConfig = errors.New("cave: configuration error")

// ErrInternal signals a broken invariant inside the library (or an input that
// violates a documented precondition). It is never a user-recoverable condition.
var ErrInternal = errors.New("cave: internal error")

// ErrMissingStart is returned by Build when no edge mentions the start name.
var ErrMissingStart = fmt.Errorf("%w: start node not found", ErrConfig)

// ErrMissingEnd is returned by Build when no edge mentions the end name.
var ErrMissingEnd = fmt.Errorf("%w: end node not found", ErrConfig)

// ErrSameStartEnd is returned by Build when start and end resolve to one node.
var ErrSameStartEnd = fmt.Errorf("%w: start and end must differ", ErrConfig)

// ErrRowOverflow is returned by Build when an adjacency row has no free slot.
// It can only happen if stride was computed incorrectly.
var ErrRowOverflow = fmt.Errorf("%w: adjacency row overflow", ErrInternal)
