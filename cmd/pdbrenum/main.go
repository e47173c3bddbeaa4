// pdbrenum reads a structure file and writes it back out with clean
// decimal numbering.

package main

import (
	"flag"
	"fmt"
	"os"

	"pdbstruct/pkg/pdbrenum"
)

func main() {
	uStr := "usage: pdbrenum [options] input [output]"
	var args pdbrenum.CmdArgs
	flag.BoolVar(&args.FirstModelOnly, "1", false, "keep only the first model")
	flag.StringVar(&args.LogDest, "l", "", "where diagnostics go: empty, stdout or a file name")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input [output]\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Expected one or two arguments. Got ", flag.NArg())
		fmt.Fprintln(os.Stderr, uStr)
		os.Exit(pdbrenum.ExitFailure)
	}
	args.InFname = flag.Arg(0)
	args.OutFname = flag.Arg(1)
	os.Exit(pdbrenum.MyMain(&args))
}
