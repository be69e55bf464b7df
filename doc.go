// Package frieze is the module root of a small toolkit for arithmetic
// frieze patterns, computed with exact rational and quadratic-surd
// arithmetic.
//
// 🚀 What is a frieze pattern?
//
//	Rows of numbers between a row of 0s and a row of 1s in which every
//	diamond  b / a d / c  satisfies a·d − b·c = 1. Coxeter and Conway showed
//	that positive integer friezes are exactly the triangulated polygons,
//	read off through their quiddity rows.
//
// ✨ Layout:
//
//	numeric/      exact values, rationals and a + b·√d, canonical Simplify
//	matrix/       dense matrices of exact values, exact determinants
//	lattice/      sparse write-once coordinate map holding a frieze
//	frieze/       seed checks, quiddity and diagonal builders
//	render/       staircase text and matrix views of a lattice
//	config/       YAML frieze files validated with struct tags
//	cmd/frieze/   cobra CLI (quiddity, diagonal, check, render)
//
// Quick start:
//
//	go run ./cmd/frieze quiddity 1 3 1 2 2 --rows 6
//
//	  0   0   0   0   0
//	    1   1   1   1   1
//	      1   3   1   2   2
//	        2   2   1   3   1
//	          1   1   1   1   1
//	            0   0   0   0   0
package frieze
