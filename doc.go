// Package grough is an in-memory toolkit for undirected weighted graphs built
// around edge contraction.
//
// What is grough?
//
//	A small, generic, insertion-ordered graph library plus the algorithms
//	that operate on it:
//		• core/     : insertion-ordered Graph[V, W] with uniform sampling
//		• contract/ : contraction cost, edge fusion, alias-resolved plans, random contraction
//		• bfs/, dfs/ : lazy visitors, visitation-order search, components
//		• mst/      : Kruskal spanning trees as contraction plans
//		• builder/  : deterministic fixture topologies
//		• edgelist/ : "<u> <v> <w>" text reader and writer
//		• plan/     : YAML contraction plans
//		• cmd/grough : command-line front end
//
// Quick example: contracting {1,2} on a triangle with a tail
//
//	1──5──2──7──4             3──7──1──7──4
//	 ╲3  4╱         ⇒
//	   3                      cost = 5+3+4+7 = 19
//
//	go install github.com/katalvlaran/grough/cmd/grough@latest
package grough
