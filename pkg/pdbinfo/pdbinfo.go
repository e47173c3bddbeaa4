// pdbinfo walks over structure files and reports what is in them:
// models, chains, residues, atoms and the unit cell. With many files it
// reads them in parallel, which is where the time goes when summarizing
// a whole directory of a mirror.

package pdbinfo

import (
	"fmt"
	"io"

	"pdbstruct/pdb"
	"pdbstruct/pdb/bulk"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// CmdArgs is everything MyMain needs, filled in from the command line
// or from a test.
type CmdArgs struct {
	Fnames    []string
	AllModels bool // count atoms in every model, not just the first
	NWorker   int
	Wrt       io.Writer
}

func summarize(wrt io.Writer, path string, s *pdb.Structure, allModels bool) {
	chains, residues, atoms := 0, 0, 0
	for range s.IterChains(allModels) {
		chains++
	}
	for range s.IterResidues(allModels) {
		residues++
	}
	for range s.IterAtoms(allModels) {
		atoms++
	}
	fmt.Fprintf(wrt, "%s: %d models, %d chains, %d residues, %d atoms",
		path, s.NumModels(), chains, residues, atoms)
	if lengths, ok := s.UnitCellLengths(); ok {
		angles, _ := s.UnitCellAngles()
		fmt.Fprintf(wrt, ", cell %.3f %.3f %.3f / %.2f %.2f %.2f",
			lengths[0], lengths[1], lengths[2], angles[0], angles[1], angles[2])
	}
	fmt.Fprintln(wrt)
}

// MyMain is the top level main, after parsing the command line. A file
// that cannot be read is reported and counted as a failure, but does
// not stop the others.
func MyMain(args *CmdArgs) int {
	ret := ExitSuccess
	for _, res := range bulk.ReadAll(args.Fnames, args.NWorker) {
		if res.Err != nil {
			fmt.Fprintf(args.Wrt, "%s: %v\n", res.Path, res.Err)
			ret = ExitFailure
			continue
		}
		summarize(args.Wrt, res.Path, res.Structure, args.AllModels)
	}
	return ret
}
