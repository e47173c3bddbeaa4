// pdbrenum reads a structure file and writes it back out. The output
// serial numbers start at 1 and count every line, so a file that came
// in with overflowed, hex or hybrid numbering leaves in plain decimal.
// That is usually why one runs it.

package pdbrenum

import (
	"fmt"
	"io"
	"os"

	"pdbstruct/pdb"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// CmdArgs is everything MyMain needs, filled in from the command line
// or from a test.
type CmdArgs struct {
	InFname        string
	OutFname       string // "" means standard output
	FirstModelOnly bool
	LogDest        string // where diagnostics go, see pdb.LogWhere
}

// MyMain is the top level main, after parsing the command line.
func MyMain(args *CmdArgs) int {
	lg, err := pdb.LogWhere(args.LogDest)
	if err != nil {
		fmt.Fprintln(os.Stderr, "setting up diagnostics:", err)
		return ExitFailure
	}
	defer lg.Sync()

	pr, closer, err := pdb.OpenFile(args.InFname)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	defer closer.Close()
	pr.SetLogger(lg)
	pr.SetFirstModelOnly(args.FirstModelOnly)
	s, err := pr.Read()
	if err != nil {
		fmt.Fprintln(os.Stderr, err, "(the input file)")
		return ExitFailure
	}

	var wrt io.Writer = os.Stdout
	if args.OutFname != "" {
		fp, err := os.Create(args.OutFname)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return ExitFailure
		}
		defer fp.Close()
		wrt = fp
	}
	if err := s.Write(wrt); err != nil {
		out := args.OutFname
		if out == "" {
			out = "os.Stdout"
		}
		fmt.Fprintln(os.Stderr, "fail writing to", out, err)
		return ExitFailure
	}
	return ExitSuccess
}
