// Package edgelist reads and writes undirected weighted graphs in a plain
// whitespace-separated edge-list format:
//
//	<u> <v> <w>
//
// one edge per line, in insertion order. There is no header, comment or
// blank-line syntax; any line that does not split into exactly three fields
// that parse fails the whole load with ErrMalformedEdgeLine, wrapped with the
// 1-based line number. No partial graph is returned.
//
// ReadInts and ReadFile fix the vertex type to int and the weight type to
// int64 and accept unsigned decimal digits only. Read is the generic form,
// taking a parser per column.
package edgelist
