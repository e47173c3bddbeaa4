package pdb

type resKey struct {
	number int
	icode  byte
}

// A Chain is one molecule within a model, ended by a TER record. After
// a TER, a line reusing the same chain identifier opens a fresh Chain
// object, so identifiers are only unique per model up to termination.
type Chain struct {
	ID       byte
	Residues []*Residue
	HasTER   bool

	curRes     *Residue
	byNumICode map[resKey]*Residue
	byNumber   map[int]*Residue
}

func newChain(id byte) *Chain {
	return &Chain{
		ID:         id,
		byNumICode: make(map[resKey]*Residue),
		byNumber:   make(map[int]*Residue),
	}
}

// addAtom decides whether the atom continues the open residue or opens
// a new one. Same number and insertion code with a different name is a
// point mutation if the line carries an alternate location indicator.
// Without one the file is inconsistent, which is worth a diagnostic,
// and we force a new residue rather than mixing identities.
func (c *Chain) addAtom(a *Atom, pr *Reader) {
	switch {
	case c.curRes == nil:
		c.addResidue(residueFor(a))
	case c.curRes.Number != a.ResidueNumber:
		c.addResidue(residueFor(a))
	case c.curRes.InsertionCode != a.InsertionCode:
		c.addResidue(residueFor(a))
	case c.curRes.NameWithSpaces() == a.ResidueNameWithSpaces:
		// number, name and insertion code unchanged
	case a.DefaultLoc != ' ':
		// point mutation, Residue.addAtom records the name variant
	default:
		prev := c.curRes.Atoms[len(c.curRes.Atoms)-1]
		pr.warnf("two consecutive residues with the same number (%s, %s)", a, prev)
		c.addResidue(residueFor(a))
	}
	c.curRes.addAtom(a)
}

func residueFor(a *Atom) *Residue {
	return newResidue(a.ResidueNameWithSpaces, a.ResidueNumber,
		a.InsertionCode, a.DefaultLoc, a.SegmentID)
}

func (c *Chain) addResidue(r *Residue) {
	if len(c.Residues) == 0 {
		r.FirstInChain = true
	}
	c.Residues = append(c.Residues, r)
	c.curRes = r
	// only the first residue with a given key is indexed
	key := resKey{r.Number, r.InsertionCode}
	if _, ok := c.byNumICode[key]; !ok {
		c.byNumICode[key] = r
	}
	if _, ok := c.byNumber[r.Number]; !ok {
		c.byNumber[r.Number] = r
	}
}

func (c *Chain) addTER() {
	c.HasTER = true
	c.finalize()
}

func (c *Chain) finalize() {
	if len(c.Residues) == 0 {
		return
	}
	c.Residues[0].FirstInChain = true
	c.Residues[len(c.Residues)-1].FinalInChain = true
	for _, r := range c.Residues {
		r.finalize()
	}
}

// Residue looks up a residue by sequence number and insertion code.
// The first residue seen with that pair wins.
func (c *Chain) Residue(number int, icode byte) (*Residue, bool) {
	r, ok := c.byNumICode[resKey{number, icode}]
	return r, ok
}

// ResidueByNumber looks up the first residue with a sequence number,
// whatever its insertion code.
func (c *Chain) ResidueByNumber(number int) (*Residue, bool) {
	r, ok := c.byNumber[number]
	return r, ok
}

// NumResidues returns the number of residues in the chain.
func (c *Chain) NumResidues() int { return len(c.Residues) }
