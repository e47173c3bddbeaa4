package pdb

// A Model is one MODEL/ENDMDL block, or the whole file if there are no
// model records. NMR ensembles and trajectory snapshots give one Model
// each. Connects holds the CONECT lists, each an ordered slice of
// resolved serial numbers.
type Model struct {
	Number   int
	Chains   []*Chain
	Connects [][]int

	curChain *Chain
	byID     map[byte]*Chain
}

func newModel(number int) *Model {
	return &Model{
		Number: number,
		byID:   make(map[byte]*Chain),
	}
}

// addAtom opens a new chain when there is none, when the chain
// identifier changes, or when the open chain has already seen its TER.
func (m *Model) addAtom(a *Atom, pr *Reader) {
	switch {
	case len(m.Chains) == 0:
		m.addChain(newChain(a.ChainID))
	case m.curChain.ID != a.ChainID:
		m.addChain(newChain(a.ChainID))
	case m.curChain.HasTER:
		m.addChain(newChain(a.ChainID))
	}
	m.curChain.addAtom(a, pr)
}

func (m *Model) addChain(c *Chain) {
	m.Chains = append(m.Chains, c)
	m.curChain = c
	if _, ok := m.byID[c.ID]; !ok {
		m.byID[c.ID] = c
	}
}

func (m *Model) finalize() {
	for _, c := range m.Chains {
		c.finalize()
	}
}

// Chain looks up a chain by identifier. The first chain seen with that
// identifier wins, so after a TER the continuation chains with a reused
// identifier are only reachable through the Chains slice.
func (m *Model) Chain(id byte) (*Chain, bool) {
	c, ok := m.byID[id]
	return c, ok
}

// ChainIDs returns the distinct chain identifiers in file order.
func (m *Model) ChainIDs() []byte {
	ids := make([]byte, 0, len(m.byID))
	seen := make(map[byte]bool)
	for _, c := range m.Chains {
		if !seen[c.ID] {
			seen[c.ID] = true
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// NumChains returns the number of chain objects, counting reopened
// identifiers separately.
func (m *Model) NumChains() int { return len(m.Chains) }
