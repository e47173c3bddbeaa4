// Package bulk reads many coordinate files at once. Parsing one file is
// strictly sequential, so the parallelism here is across files: a fixed
// pool of workers, one Structure per file, nothing shared between them.
package bulk

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/Jeffail/tunny"

	"pdbstruct/pdb"
)

// A Result pairs one input path with what reading it produced. Exactly
// one of Structure and Err is set.
type Result struct {
	Path      string
	Structure *pdb.Structure
	Err       error
}

// ReadAll reads every path using nWorker parallel workers and returns
// results in the same order as the paths. A file that fails to parse
// only fails its own Result.
func ReadAll(paths []string, nWorker int) []Result {
	if nWorker < 1 {
		nWorker = 1
	}
	pool := tunny.NewFunc(nWorker, func(payload interface{}) interface{} {
		p := payload.(string)
		s, err := pdb.ReadFile(p)
		return Result{Path: p, Structure: s, Err: err}
	})
	defer pool.Close()

	res := make([]Result, len(paths))
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			res[i] = pool.Process(p).(Result)
		}(i, p)
	}
	wg.Wait()
	return res
}

// ReadDir reads every regular file in a directory, the layout PDB
// mirrors use, one structure file per entry.
func ReadDir(dirname string, nWorker int) ([]Result, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dirname, e.Name()))
	}
	return ReadAll(paths, nWorker), nil
}
