// Package pdb reads and writes coordinate files in the old fixed-column
// PDB format. The first thing to do is build a Reader and then call Read,
// or use ReadFile which also copes with gzipped files.
//
// A parsed file is a tree,
//
//	Structure
//	  Model
//	    Chain
//	      Residue
//	        Atom
//	          Location
//
// A Structure holds one Model per MODEL/ENDMDL pair, or a single model if
// the file has none. A Chain ends at a TER record. An Atom can hold more
// than one Location when the file records alternate conformations.
//
// The ugly part of the format is numbering. Serial numbers get five
// columns and residue numbers four, but files from big simulations are
// larger than that. Different programs then switch to hexadecimal, to a
// base 36 hybrid scheme, or just print asterisks. There is no header
// saying which was used, so the reader watches the counters and guesses.
// See the comments in overflow.go.
package pdb
