// Traversal. Everything here is lazy and restartable, built on the
// iterator support in the standard library, so callers can range over
// a structure without anything being copied out.
//
// The allModels switch picks between the whole ensemble and just the
// first model, which is usually what one wants from an NMR file. For
// positions, includeAlt decides between one position per atom and every
// alternate location.

package pdb

import "iter"

// IterModels yields every model, or just the first one.
func (s *Structure) IterModels(allModels bool) iter.Seq[*Model] {
	return func(yield func(*Model) bool) {
		if allModels {
			for _, m := range s.Models {
				if !yield(m) {
					return
				}
			}
			return
		}
		if len(s.Models) > 0 {
			yield(s.Models[0])
		}
	}
}

// IterChains yields the chains of the selected models.
func (s *Structure) IterChains(allModels bool) iter.Seq[*Chain] {
	return func(yield func(*Chain) bool) {
		for m := range s.IterModels(allModels) {
			for _, c := range m.Chains {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// IterResidues yields the residues of the selected models.
func (s *Structure) IterResidues(allModels bool) iter.Seq[*Residue] {
	return func(yield func(*Residue) bool) {
		for c := range s.IterChains(allModels) {
			for _, r := range c.Residues {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// IterAtoms yields the atoms of the selected models, filtered to each
// residue's primary alternate location.
func (s *Structure) IterAtoms(allModels bool) iter.Seq[*Atom] {
	return func(yield func(*Atom) bool) {
		for c := range s.IterChains(allModels) {
			for a := range c.IterAtoms() {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// IterPositions yields atomic positions from the selected models.
func (s *Structure) IterPositions(allModels, includeAlt bool) iter.Seq[[3]float64] {
	return func(yield func([3]float64) bool) {
		for c := range s.IterChains(allModels) {
			for p := range c.IterPositions(includeAlt) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// IterChains yields the model's chains in file order.
func (m *Model) IterChains() iter.Seq[*Chain] {
	return func(yield func(*Chain) bool) {
		for _, c := range m.Chains {
			if !yield(c) {
				return
			}
		}
	}
}

// IterResidues yields the model's residues across all chains.
func (m *Model) IterResidues() iter.Seq[*Residue] {
	return func(yield func(*Residue) bool) {
		for _, c := range m.Chains {
			for _, r := range c.Residues {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// IterAtoms yields the model's atoms across all chains.
func (m *Model) IterAtoms() iter.Seq[*Atom] {
	return func(yield func(*Atom) bool) {
		for _, c := range m.Chains {
			for a := range c.IterAtoms() {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// IterPositions yields the model's atomic positions.
func (m *Model) IterPositions(includeAlt bool) iter.Seq[[3]float64] {
	return func(yield func([3]float64) bool) {
		for _, c := range m.Chains {
			for p := range c.IterPositions(includeAlt) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// IterResidues yields the chain's residues in file order.
func (c *Chain) IterResidues() iter.Seq[*Residue] {
	return func(yield func(*Residue) bool) {
		for _, r := range c.Residues {
			if !yield(r) {
				return
			}
		}
	}
}

// IterAtoms yields the chain's atoms, each residue filtered to its
// primary alternate location.
func (c *Chain) IterAtoms() iter.Seq[*Atom] {
	return func(yield func(*Atom) bool) {
		for _, r := range c.Residues {
			for a := range r.IterAtoms("") {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// IterPositions yields the chain's atomic positions.
func (c *Chain) IterPositions(includeAlt bool) iter.Seq[[3]float64] {
	return func(yield func([3]float64) bool) {
		for _, r := range c.Residues {
			for p := range r.IterPositions(includeAlt) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// IterAtoms yields atoms holding any of the selected alternate
// locations. altSel "" means the residue's primary location, "*" means
// any, and anything else is read as a list of indicator characters.
func (r *Residue) IterAtoms(altSel string) iter.Seq[*Atom] {
	return func(yield func(*Atom) bool) {
		for _, a := range r.Atoms {
			if !r.atomSelected(a, altSel) {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

func (r *Residue) atomSelected(a *Atom, altSel string) bool {
	var want []byte
	switch altSel {
	case "":
		want = []byte{r.primaryLoc}
	case "*":
		return true
	default:
		want = []byte(altSel)
	}
	for _, id := range want {
		if _, ok := a.Locations[id]; ok {
			return true
		}
	}
	return false
}

// IterPositions yields one position per primary-location atom, or every
// location of those atoms when includeAlt is set.
func (r *Residue) IterPositions(includeAlt bool) iter.Seq[[3]float64] {
	return func(yield func([3]float64) bool) {
		for a := range r.IterAtoms("") {
			if !includeAlt {
				if !yield(a.Position()) {
					return
				}
				continue
			}
			for p := range a.IterPositions() {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// IterLocations yields the atom's locations in ascending indicator
// order.
func (a *Atom) IterLocations() iter.Seq[*Location] {
	return func(yield func(*Location) bool) {
		for _, id := range a.locIDs() {
			if !yield(a.Locations[id]) {
				return
			}
		}
	}
}

// IterPositions yields the position of each location.
func (a *Atom) IterPositions() iter.Seq[[3]float64] {
	return func(yield func([3]float64) bool) {
		for loc := range a.IterLocations() {
			if !yield(loc.Position) {
				return
			}
		}
	}
}
