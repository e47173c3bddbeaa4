package pdb

import "strings"

// A Residue holds the atoms sharing one residue slot, that is one
// (sequence number, insertion code) pair on a chain. Point mutation
// files give the same slot a different chemical identity per alternate
// location, so the residue name lives in a small per location table
// rather than a plain field.
type Residue struct {
	Number        int
	InsertionCode byte
	SegmentID     string
	Atoms         []*Atom

	primaryLoc  byte
	names       map[byte]string // name with spaces per alternate location
	atomsByName map[string]*Atom

	// Set during finalize.
	FirstInChain bool
	FinalInChain bool
}

func newResidue(nameWithSpaces string, number int, icode, altLoc byte, segID string) *Residue {
	return &Residue{
		Number:        number,
		InsertionCode: icode,
		SegmentID:     segID,
		primaryLoc:    altLoc,
		names:         map[byte]string{altLoc: nameWithSpaces},
		atomsByName:   make(map[string]*Atom),
	}
}

// addAtom appends an atom, or merges it into an atom of the same name
// that is already here. A second line for the same atom with a new
// alternate location becomes another Location on the existing atom. A
// line repeating a location the atom already holds is a duplicate and
// is dropped without comment.
func (r *Residue) addAtom(a *Atom) {
	if _, ok := r.names[a.DefaultLoc]; !ok {
		r.names[a.DefaultLoc] = a.ResidueNameWithSpaces
	}
	if old, ok := r.atomsByName[a.NameWithSpaces]; ok {
		if _, dup := old.Locations[a.DefaultLoc]; dup {
			return
		}
		for id, loc := range a.Locations {
			old.Locations[id] = loc
		}
		return
	}
	r.atomsByName[a.Name] = a
	r.atomsByName[a.NameWithSpaces] = a
	r.Atoms = append(r.Atoms, a)
}

func (r *Residue) finalize() {
	if len(r.Atoms) == 0 {
		return
	}
	r.Atoms[0].FirstAtomInChain = r.FirstInChain
	r.Atoms[len(r.Atoms)-1].FinalAtomInChain = r.FinalInChain
	for _, a := range r.Atoms {
		a.FirstResidueInChain = r.FirstInChain
		a.FinalResidueInChain = r.FinalInChain
	}
}

// Name returns the residue name of the primary alternate location with
// surrounding space removed.
func (r *Residue) Name() string {
	return strings.TrimSpace(r.names[r.primaryLoc])
}

// NameWithSpaces returns the primary name including padding, three or
// four characters.
func (r *Residue) NameWithSpaces() string {
	return r.names[r.primaryLoc]
}

// NameWithSpacesAt returns the name variant recorded for one alternate
// location.
func (r *Residue) NameWithSpacesAt(altLoc byte) (string, bool) {
	n, ok := r.names[altLoc]
	return n, ok
}

// PrimaryLoc returns the alternate location indicator of the first line
// that opened this residue.
func (r *Residue) PrimaryLoc() byte { return r.primaryLoc }

// Atom looks up an atom by name. Both padded and trimmed names work.
func (r *Residue) Atom(name string) (*Atom, bool) {
	a, ok := r.atomsByName[name]
	return a, ok
}

// NumAtoms returns the number of distinct atoms, not lines, held here.
func (r *Residue) NumAtoms() int { return len(r.Atoms) }
