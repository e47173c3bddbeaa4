// Package element is a small lookup table of chemical elements. It is
// the collaborator the pdb package asks when it wants to turn a symbol
// field, or the first characters of an atom name, into an element.
// Only elements one meets in structure files are here. This is not a
// periodic table.
package element

import "strings"

// An Element describes one chemical element. Mass is the standard
// atomic weight in Dalton.
type Element struct {
	Number int
	Symbol string
	Name   string
	Mass   float64
}

// Hydrogen is picked out because four character atom names starting
// with "H" are treated as hydrogen, whatever the rest of the name says.
var Hydrogen = &Element{1, "H", "hydrogen", 1.008}

var elements = []*Element{
	Hydrogen,
	{2, "He", "helium", 4.003},
	{5, "B", "boron", 10.81},
	{6, "C", "carbon", 12.011},
	{7, "N", "nitrogen", 14.007},
	{8, "O", "oxygen", 15.999},
	{9, "F", "fluorine", 18.998},
	{11, "Na", "sodium", 22.990},
	{12, "Mg", "magnesium", 24.305},
	{14, "Si", "silicon", 28.085},
	{15, "P", "phosphorus", 30.974},
	{16, "S", "sulfur", 32.06},
	{17, "Cl", "chlorine", 35.45},
	{19, "K", "potassium", 39.098},
	{20, "Ca", "calcium", 40.078},
	{25, "Mn", "manganese", 54.938},
	{26, "Fe", "iron", 55.845},
	{27, "Co", "cobalt", 58.933},
	{28, "Ni", "nickel", 58.693},
	{29, "Cu", "copper", 63.546},
	{30, "Zn", "zinc", 65.38},
	{34, "Se", "selenium", 78.971},
	{35, "Br", "bromine", 79.904},
	{42, "Mo", "molybdenum", 95.95},
	{48, "Cd", "cadmium", 112.41},
	{53, "I", "iodine", 126.904},
	{55, "Cs", "caesium", 132.905},
	{78, "Pt", "platinum", 195.084},
	{79, "Au", "gold", 196.967},
	{80, "Hg", "mercury", 200.592},
}

var bySymbol = make(map[string]*Element, len(elements))

func init() {
	for _, e := range elements {
		bySymbol[strings.ToUpper(e.Symbol)] = e
	}
}

// BySymbol looks up an element by its symbol. Case does not matter and
// surrounding space is ignored, since the symbol field in a coordinate
// file is usually upper case and right justified.
func BySymbol(symbol string) (*Element, bool) {
	e, ok := bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	return e, ok
}
