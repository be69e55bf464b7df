// Package config loads frieze definitions from YAML.
//
// A file lists named friezes plus optional shared defaults:
//
//	defaults:
//	  width: 6
//	  rows: 6
//	friezes:
//	  - name: pentagon
//	    type: quiddity
//	    seed: [1, 3, 1, 2, 2]
//	  - name: slope
//	    type: diagonal
//	    seed: ["1", "2", "3"]
//	    width: 4
//	    strict: true
//
// Seed entries are parsed with numeric.Parse, so "3/2" and "1+sqrt(2)" are
// accepted. Documents are checked with go-playground/validator struct tags
// before anything is built; per-entry values override the defaults, and the
// defaults override frieze.DefaultOptions.
package config
