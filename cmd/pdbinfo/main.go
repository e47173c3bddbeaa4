// pdbinfo summarizes structure files: models, chains, residues, atoms
// and the unit cell, one line per file.

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"pdbstruct/pkg/pdbinfo"
)

func main() {
	uStr := "usage: pdbinfo [options] file [file ...]"
	var args pdbinfo.CmdArgs
	flag.BoolVar(&args.AllModels, "a", false, "count atoms in all models, not just the first")
	flag.IntVar(&args.NWorker, "j", runtime.NumCPU(), "number of files to read in parallel")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file [file ...]\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Expected at least one file.")
		fmt.Fprintln(os.Stderr, uStr)
		os.Exit(pdbinfo.ExitFailure)
	}
	args.Fnames = flag.Args()
	args.Wrt = os.Stdout
	os.Exit(pdbinfo.MyMain(&args))
}
