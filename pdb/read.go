// The reader. One forward pass over the line stream, no lookahead.
// Each line either extends the tree or moves a boundary marker, and
// the numbering state follows along.

package pdb

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// A Reader parses one coordinate file into a Structure. Build it with
// NewReader, adjust it with the Set functions and then call Read once.
// The zero diagnostics setup throws everything away, so a caller that
// does not care sees only the final Structure or a fatal error.
type Reader struct {
	scn   *bufio.Scanner
	n     int // number of the line just read, 1 based
	log   *zap.SugaredLogger
	diagc chan<- Diag

	firstModelOnly bool

	strc            *Structure
	curModel        *Model
	pendingNewModel bool
	atomNums        numScope
	resNums         numScope
}

// NewReader returns a reader for one stream. The caller decides what
// the stream is, a file, a decompressor, a network body, whatever.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		return nil
	}
	return &Reader{
		scn:      bufio.NewScanner(r),
		log:      zap.NewNop().Sugar(),
		atomNums: numScope{kind: atomNum},
		resNums:  numScope{kind: residueNum},
	}
}

// SetFirstModelOnly makes Read stop at the first model boundary instead
// of loading a whole ensemble. Saves memory on NMR and trajectory files.
func (pr *Reader) SetFirstModelOnly(b bool) { pr.firstModelOnly = b }

// SetLogger directs diagnostics to lg. See LogWhere for an easy way to
// build one.
func (pr *Reader) SetLogger(lg *zap.SugaredLogger) {
	if lg != nil {
		pr.log = lg
	}
}

// SetDiagChan also delivers diagnostics on c. Sends never block, so
// give the channel some buffer or drain it while Read runs.
func (pr *Reader) SetDiagChan(c chan<- Diag) { pr.diagc = c }

// Read consumes the stream and builds the Structure. Recoverable
// oddities become diagnostics. Only garbage in mandatory fields makes
// it fail, and then the error says which line and where the numbering
// counters stood.
func (pr *Reader) Read() (*Structure, error) {
	if pr.strc != nil {
		return nil, errors.New("pdb: Read called twice on one Reader")
	}
	s := &Structure{byNumber: make(map[int]*Model)}
	pr.strc = s
	pr.atomNums.reset()
	pr.resNums.reset()

	for pr.scn.Scan() {
		pr.n++
		line := pr.scn.Text()
		switch {
		case strings.HasPrefix(line, "ATOM  ") || strings.HasPrefix(line, "HETATM"):
			if pr.pendingNewModel {
				// An ENDMDL went by with no MODEL record after it, so
				// this atom opens the next model implicitly.
				num := 0
				if pr.curModel != nil {
					num = pr.curModel.Number + 1
				}
				pr.addModel(newModel(num))
				pr.pendingNewModel = false
			}
			a, err := pr.parseAtom(line)
			if err != nil {
				return nil, err
			}
			pr.addAtom(a)

		case strings.HasPrefix(line, "MODEL"):
			// The number on the record itself is ignored. Numbering is
			// an internal increment, from 0.
			num := 0
			if pr.curModel != nil {
				num = pr.curModel.Number + 1
			}
			pr.addModel(newModel(num))
			pr.atomNums.reset()
			pr.resNums.reset()
			pr.pendingNewModel = false

		case strings.HasPrefix(line, "END"): // ENDMDL and END alike
			if pr.curModel != nil {
				pr.curModel.finalize()
			}
			if pr.firstModelOnly {
				// stop consuming input here
				s.finalize()
				return s, nil
			}
			pr.pendingNewModel = true

		case isTER(line):
			pr.addTER()

		case strings.HasPrefix(line, "CRYST1"):
			if err := pr.parseCryst1(line); err != nil {
				return nil, err
			}

		case strings.HasPrefix(line, "CONECT"):
			pr.parseConect(line)
		}
		// every other record kind is ignored
	}
	if err := pr.scn.Err(); err != nil {
		return nil, err
	}
	s.finalize()
	return s, nil
}

// isTER wants the first word of the line to be exactly TER, so a TER
// with trailing residue fields counts but records merely starting with
// those letters do not.
func isTER(line string) bool {
	if !strings.HasPrefix(line, "TER") {
		return false
	}
	f := strings.Fields(line)
	return len(f) > 0 && f[0] == "TER"
}

func (pr *Reader) addModel(m *Model) {
	s := pr.strc
	if s.defaultModel == nil {
		s.defaultModel = m
	}
	s.Models = append(s.Models, m)
	pr.curModel = m
	if _, ok := s.byNumber[m.Number]; !ok {
		s.byNumber[m.Number] = m
	}
}

func (pr *Reader) addAtom(a *Atom) {
	if pr.curModel == nil {
		pr.addModel(newModel(0))
	}
	a.ModelNumber = pr.curModel.Number
	pr.curModel.addAtom(a, pr)
}

func (pr *Reader) addTER() {
	pr.resNums.reset()
	if pr.curModel == nil || pr.curModel.curChain == nil {
		pr.warnf("TER record with no open chain, ignored")
		return
	}
	pr.curModel.curChain.addTER()
}

func (pr *Reader) parseCryst1(line string) error {
	orig := line
	line = pad80(line)
	var errs error
	var lengths, angles [3]float64
	for i, f := range []struct {
		lo, hi int
		what   string
	}{
		{6, 15, "cell length a"}, {15, 24, "cell length b"}, {24, 33, "cell length c"},
		{33, 40, "cell angle alpha"}, {40, 47, "cell angle beta"}, {47, 54, "cell angle gamma"},
	} {
		v, err := floatField(line[f.lo:f.hi], f.what)
		errs = multierr.Append(errs, err)
		if i < 3 {
			lengths[i] = v
		} else {
			angles[i-3] = v
		}
	}
	if errs != nil {
		return pr.fatal("cannot parse "+errs.Error(), orig)
	}
	// Structure scoped, a later record simply overwrites.
	pr.strc.unitCellLengths = lengths
	pr.strc.unitCellAngles = angles
	pr.strc.hasUnitCell = true
	return nil
}

// parseConect reads up to four bonded partners after the central atom.
// How many fields are present comes from where the line really ends,
// not from a fixed count.
func (pr *Reader) parseConect(line string) {
	if pr.curModel == nil {
		pr.warnf("CONECT record before any coordinates, ignored")
		return
	}
	ll := len(strings.TrimRight(line, " ")) - 5
	var atoms []int
	for _, pos := range []int{6, 11, 16, 21, 26} {
		if pos > ll {
			break
		}
		atoms = append(atoms, pr.readAtomNumber(line[pos : pos+5]))
	}
	pr.curModel.Connects = append(pr.curModel.Connects, atoms)
}

// Read is the one step entry point for a stream already in hand.
func Read(r io.Reader) (*Structure, error) {
	return NewReader(r).Read()
}
