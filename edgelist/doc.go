// Package edgelist reads cave edge lists in the line format
//
//	<name>-<name>
//
// one undirected edge per line. Names are case-sensitive tokens without '-'
// or whitespace. Blank lines and lines whose first non-blank character is '#'
// are ignored.
//
// Every failure wraps cave.ErrMalformedInput and names the offending line;
// no partial edge list is returned.
package edgelist
