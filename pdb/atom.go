// Parsing one ATOM or HETATM line into an Atom, and turning an Atom
// back into a line. Columns follow the wwPDB description:
//
//	 1 -  6  record name "ATOM  " or "HETATM"
//	 7 - 11  serial number
//	13 - 16  atom name
//	17       alternate location indicator
//	18 - 20  residue name (some MD programs also use column 21)
//	22       chain identifier
//	23 - 26  residue sequence number
//	27       insertion code
//	31 - 54  x, y, z
//	55 - 60  occupancy
//	61 - 66  temperature factor
//	73 - 76  segment identifier
//	77 - 78  element symbol
//	79 - 80  formal charge

package pdb

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"pdbstruct/pdb/element"
)

// A Location is one recorded position of an atom. Atoms usually have
// exactly one, but alternate conformations in crystal structures give
// several, told apart by a one character indicator.
type Location struct {
	AltLoc      byte
	Position    [3]float64
	Occupancy   float64
	TempFactor  float64
	ResidueName string // residue name with spaces as seen on this line
}

// An Atom is one atom of a residue, with all the Locations the file
// recorded for it.
type Atom struct {
	RecordName            string // "ATOM" or "HETATM"
	Serial                int
	Name                  string // trimmed
	NameWithSpaces        string // exactly four characters
	ResidueName           string
	ResidueNameWithSpaces string // three or four characters
	ChainID               byte
	ResidueNumber         int
	InsertionCode         byte
	SegmentID             string
	ElementSymbol         string           // the raw symbol field, may be empty
	Element               *element.Element // nil when it could not be resolved
	FormalCharge          int
	HasCharge             bool
	ModelNumber           int

	DefaultLoc byte
	Locations  map[byte]*Location

	// Set during finalize, once chain boundaries are known.
	FirstAtomInChain    bool
	FinalAtomInChain    bool
	FirstResidueInChain bool
	FinalResidueInChain bool
}

func pad80(line string) string {
	if len(line) >= 80 {
		return line
	}
	return line + strings.Repeat(" ", 80-len(line))
}

func floatField(s, what string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s field %q", what, s)
	}
	return v, nil
}

// parseAtom builds an Atom from one coordinate line. Coordinates that
// do not parse are fatal. Most other oddities are survivable and only
// produce diagnostics.
func (pr *Reader) parseAtom(line string) (*Atom, error) {
	orig := line
	line = pad80(line)

	a := &Atom{RecordName: strings.TrimSpace(line[0:6])}
	a.Serial = pr.readAtomNumber(line[6:11])
	a.NameWithSpaces = line[12:16]
	a.Name = strings.TrimSpace(a.NameWithSpaces)
	altLoc := line[16]

	a.ResidueNameWithSpaces = line[17:20]
	// Gromacs ffamber writes four character residue names into column
	// 21. Accept that only when the official three columns are full.
	if c := line[20]; c != ' ' {
		if len(strings.TrimSpace(a.ResidueNameWithSpaces)) != 3 {
			return nil, pr.fatal("misaligned residue name", orig)
		}
		a.ResidueNameWithSpaces += string(c)
	}
	a.ResidueName = strings.TrimSpace(a.ResidueNameWithSpaces)

	a.ChainID = line[21]
	a.ResidueNumber = pr.readResidueNumber(line[22:26], a)
	a.InsertionCode = line[26]

	var errs error
	x, e := floatField(line[30:38], "x coordinate")
	errs = multierr.Append(errs, e)
	y, e := floatField(line[38:46], "y coordinate")
	errs = multierr.Append(errs, e)
	z, e := floatField(line[46:54], "z coordinate")
	errs = multierr.Append(errs, e)
	if errs != nil {
		return nil, pr.fatal("cannot parse "+errs.Error(), orig)
	}

	occupancy := 1.0
	if s := strings.TrimSpace(line[54:60]); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			occupancy = v
		} else {
			pr.warnf("cannot parse occupancy %q, using 1.0", s)
		}
	}
	tempFactor := 0.0
	if s := strings.TrimSpace(line[60:66]); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			tempFactor = v
		} else {
			pr.warnf("cannot parse temperature factor %q, using 0.0", s)
		}
	}

	a.SegmentID = strings.TrimSpace(line[72:76])
	a.ElementSymbol = strings.TrimSpace(line[76:78])
	pr.readCharge(a, line[78:80])
	a.resolveElement()

	loc := &Location{
		AltLoc:      altLoc,
		Position:    [3]float64{x, y, z},
		Occupancy:   occupancy,
		TempFactor:  tempFactor,
		ResidueName: a.ResidueNameWithSpaces,
	}
	a.DefaultLoc = altLoc
	a.Locations = map[byte]*Location{altLoc: loc}

	// Whatever decoder produced these values, they are what we expect
	// the next line to follow on from. This is what keeps the guessing
	// decoders self correcting.
	pr.atomNums.next = a.Serial + 1
	pr.resNums.next = a.ResidueNumber + 1
	return a, nil
}

// readCharge parses the two character formal charge field. Files write
// either {sign}{digit} or {digit}{sign}, so try both ways round.
func (pr *Reader) readCharge(a *Atom, field string) {
	cs := strings.TrimSpace(field)
	if cs == "" {
		return
	}
	if v, err := strconv.Atoi(cs); err == nil {
		a.FormalCharge, a.HasCharge = v, true
		return
	}
	if len(cs) == 2 {
		if v, err := strconv.Atoi(string(cs[1]) + string(cs[0])); err == nil {
			a.FormalCharge, a.HasCharge = v, true
			return
		}
	}
	pr.warnf("cannot parse charge %q for atom %s %d", cs, a.Name, a.Serial)
}

// resolveElement fills in a.Element, trying the declared symbol field
// first and then the start of the atom name. Leading digits in the name
// are dropped, and four character names starting with H are hydrogen,
// a habit of MD programs that would otherwise look like mercury or
// holmium. Failure is not an error, the element just stays nil.
func (a *Atom) resolveElement() {
	if e, ok := element.BySymbol(a.ElementSymbol); ok {
		a.Element = e
		return
	}
	if len(a.Name) == 4 && a.Name[0] == 'H' {
		a.Element = element.Hydrogen
		return
	}
	symbol := strings.TrimLeft(strings.TrimSpace(a.NameWithSpaces[0:2]), "0123456789")
	if e, ok := element.BySymbol(symbol); ok {
		a.Element = e
	}
}

// Location returns the primary location.
func (a *Atom) Location() *Location {
	return a.Locations[a.DefaultLoc]
}

// Position returns the primary location's coordinates.
func (a *Atom) Position() [3]float64 { return a.Location().Position }

// Occupancy returns the primary location's occupancy.
func (a *Atom) Occupancy() float64 { return a.Location().Occupancy }

// TempFactor returns the primary location's temperature factor.
func (a *Atom) TempFactor() float64 { return a.Location().TempFactor }

// AltLoc returns the primary location's indicator character.
func (a *Atom) AltLoc() byte { return a.DefaultLoc }

func (a *Atom) X() float64 { return a.Position()[0] }
func (a *Atom) Y() float64 { return a.Position()[1] }
func (a *Atom) Z() float64 { return a.Position()[2] }

// locIDs returns the location indicators in ascending order.
func (a *Atom) locIDs() []byte {
	ids := make([]byte, 0, len(a.Locations))
	for id := range a.Locations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// PDBString formats this atom as one coordinate line, with the given
// serial number and alternate location. An indicator the atom does not
// hold falls back on the primary location's values.
func (a *Atom) PDBString(serial int, altLoc byte) string {
	loc, ok := a.Locations[altLoc]
	if !ok {
		loc = a.Location()
	}
	longResName := a.ResidueNameWithSpaces
	if len(longResName) == 3 {
		longResName += " "
	}
	s := fmt.Sprintf("%-6s%5d %4s%c%4s%c%4d%c   ",
		a.RecordName, serial, a.NameWithSpaces, altLoc,
		longResName, a.ChainID, a.ResidueNumber, a.InsertionCode)
	s += fmt.Sprintf("%8.3f%8.3f%8.3f%6.2f%6.2f      ",
		loc.Position[0], loc.Position[1], loc.Position[2],
		loc.Occupancy, loc.TempFactor)
	s += fmt.Sprintf("%-4s%2s", a.SegmentID, a.ElementSymbol)
	if a.HasCharge {
		s += fmt.Sprintf("%+2d", a.FormalCharge)
	} else {
		s += "  "
	}
	return s
}

func (a *Atom) String() string {
	return a.PDBString(a.Serial, a.DefaultLoc)
}

// write emits one line per selected location and returns the advanced
// serial counter. altSel "*" means every location, "" means just the
// primary one, and anything else is read as a list of indicators.
func (a *Atom) write(w io.Writer, sn int, altSel string) (int, error) {
	var ids []byte
	switch altSel {
	case "":
		ids = []byte{a.DefaultLoc}
	case "*":
		ids = a.locIDs()
	default:
		ids = []byte(altSel)
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, a.PDBString(sn, id)); err != nil {
			return sn, err
		}
		sn++
	}
	return sn, nil
}
