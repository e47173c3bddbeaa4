package pdb_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"pdbstruct/brokenio"
	"pdbstruct/pdb"
)

// atomLine builds one coordinate line. name4 is passed through verbatim
// so tests control the exact name columns, " CA " and "1HB " and so on.
func atomLine(serial, name4 string, altLoc byte, res3 string, chain byte,
	resNum string, icode byte, x, y, z float64) string {
	return fmt.Sprintf("ATOM  %5s %4s%c%3s %c%4s%c   %8.3f%8.3f%8.3f  1.00  0.00",
		serial, name4, altLoc, res3, chain, resNum, icode, x, y, z)
}

// ca is the common case, a single CA atom of an ALA residue on chain A.
func ca(serial int, resNum string) string {
	return atomLine(strconv.Itoa(serial), " CA ", ' ', "ALA", 'A', resNum, ' ', 1, 2, 3)
}

func parse(t *testing.T, lines ...string) *pdb.Structure {
	t.Helper()
	s, err := pdb.Read(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return s
}

func TestReadBasic(t *testing.T) {
	s := parse(t,
		"HEADER    HYDROLASE",
		"CRYST1   52.000   58.000   61.900  90.00  90.00  90.00 P 21 21 21    8",
		atomLine("    1", " N  ", ' ', "GLY", 'A', "   1", ' ', 11.104, 6.134, -6.504),
		atomLine("    2", " CA ", ' ', "GLY", 'A', "   1", ' ', 12.080, 6.900, -5.700),
		atomLine("    3", " N  ", ' ', "ALA", 'A', "   2", ' ', 13.000, 7.500, -5.000),
		"TER       4      ALA A   2",
		atomLine("    5", " O  ", ' ', "HOH", 'B', "   1", ' ', 1, 1, 1),
		"CONECT    1    2",
		"END",
	)
	if s.NumModels() != 1 {
		t.Fatalf("models %d, want 1", s.NumModels())
	}
	m := s.DefaultModel()
	if m == nil || m.Number != 0 {
		t.Fatalf("default model %v", m)
	}
	if m.NumChains() != 2 {
		t.Fatalf("chains %d, want 2", m.NumChains())
	}
	chA, ok := m.Chain('A')
	if !ok || chA.NumResidues() != 2 || !chA.HasTER {
		t.Fatalf("chain A wrong: %v", chA)
	}
	r, ok := chA.Residue(1, ' ')
	if !ok || r.Name() != "GLY" || r.NumAtoms() != 2 {
		t.Fatalf("residue 1: %v", r)
	}
	a, ok := r.Atom("CA")
	if !ok || a.Serial != 2 {
		t.Fatalf("CA lookup: %v", a)
	}
	if _, ok := r.Atom(" CA "); !ok {
		t.Fatalf("padded name lookup failed")
	}
	if !r.FirstInChain || r.FinalInChain {
		t.Fatalf("chain boundary flags wrong on residue 1")
	}
	r2, _ := chA.ResidueByNumber(2)
	if !r2.FinalInChain {
		t.Fatalf("residue 2 should be final in chain")
	}
	lengths, ok := s.UnitCellLengths()
	if !ok || lengths != [3]float64{52, 58, 61.9} {
		t.Fatalf("unit cell lengths %v %v", lengths, ok)
	}
	angles, _ := s.UnitCellAngles()
	if angles != [3]float64{90, 90, 90} {
		t.Fatalf("unit cell angles %v", angles)
	}
	if len(m.Connects) != 1 || len(m.Connects[0]) != 2 ||
		m.Connects[0][0] != 1 || m.Connects[0][1] != 2 {
		t.Fatalf("connects %v", m.Connects)
	}
}

func TestNoUnitCell(t *testing.T) {
	s := parse(t, ca(1, "   1"), "END")
	if _, ok := s.UnitCellLengths(); ok {
		t.Fatalf("unit cell should be absent")
	}
}

func twoModelInput() string {
	return strings.Join([]string{
		"MODEL        1",
		ca(1, "   1"),
		"ENDMDL",
		"MODEL        2",
		ca(1, "   1"),
		"ENDMDL",
		"END",
	}, "\n") + "\n"
}

func TestTwoModels(t *testing.T) {
	s, err := pdb.Read(strings.NewReader(twoModelInput()))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if s.NumModels() != 2 {
		t.Fatalf("models %d, want 2", s.NumModels())
	}
	// the declared numbers 1 and 2 are ignored, numbering is internal
	want := []int{0, 1}
	got := s.ModelNumbers()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("model numbers %v, want %v", got, want)
	}
	if m, ok := s.Model(1); !ok || m != s.Models[1] {
		t.Fatalf("lookup of model 1 failed")
	}
}

func TestFirstModelOnly(t *testing.T) {
	pr := pdb.NewReader(strings.NewReader(twoModelInput()))
	pr.SetFirstModelOnly(true)
	s, err := pr.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if s.NumModels() != 1 {
		t.Fatalf("models %d, want 1", s.NumModels())
	}
}

func TestImplicitModelBoundary(t *testing.T) {
	// no MODEL records at all, just ENDMDL between frames
	s := parse(t,
		ca(1, "   1"),
		"ENDMDL",
		ca(1, "   1"),
		"ENDMDL",
		"END",
	)
	if s.NumModels() != 2 {
		t.Fatalf("models %d, want 2", s.NumModels())
	}
	if s.Models[0].Number != 0 || s.Models[1].Number != 1 {
		t.Fatalf("model numbers %d %d", s.Models[0].Number, s.Models[1].Number)
	}
}

func TestReadTwiceFails(t *testing.T) {
	pr := pdb.NewReader(strings.NewReader("END\n"))
	if _, err := pr.Read(); err != nil {
		t.Fatalf("first read: %v", err)
	}
	if _, err := pr.Read(); err == nil {
		t.Fatalf("second read should fail")
	}
}

func TestAltLocMerge(t *testing.T) {
	s := parse(t,
		atomLine("    1", " CA ", 'A', "ALA", 'A', "   1", ' ', 1, 1, 1),
		atomLine("    2", " CA ", 'B', "ALA", 'A', "   1", ' ', 2, 2, 2),
		atomLine("    3", " CA ", 'B', "ALA", 'A', "   1", ' ', 9, 9, 9), // duplicate, dropped
		"END",
	)
	r, _ := s.DefaultModel().Chains[0].Residue(1, ' ')
	if r.NumAtoms() != 1 {
		t.Fatalf("atoms %d, want 1 merged atom", r.NumAtoms())
	}
	a, _ := r.Atom("CA")
	if len(a.Locations) != 2 {
		t.Fatalf("locations %d, want 2", len(a.Locations))
	}
	if a.AltLoc() != 'A' || a.X() != 1 {
		t.Fatalf("primary location wrong: %c %v", a.AltLoc(), a.Position())
	}
	if loc, ok := a.Locations['B']; !ok || loc.Position != [3]float64{2, 2, 2} {
		t.Fatalf("first B line should win: %v", loc)
	}
}

func TestPointMutation(t *testing.T) {
	// one residue slot, two chemical identities told apart by altloc
	s := parse(t,
		atomLine("    1", " CA ", 'A', "ALA", 'A', "   1", ' ', 1, 1, 1),
		atomLine("    2", " CB ", 'A', "ALA", 'A', "   1", ' ', 1, 1, 2),
		atomLine("    3", " CA ", 'B', "GLY", 'A', "   1", ' ', 2, 2, 2),
		"END",
	)
	ch := s.DefaultModel().Chains[0]
	if ch.NumResidues() != 1 {
		t.Fatalf("residues %d, want 1", ch.NumResidues())
	}
	r := ch.Residues[0]
	if r.Name() != "ALA" {
		t.Fatalf("primary name %q, want ALA", r.Name())
	}
	if n, ok := r.NameWithSpacesAt('B'); !ok || strings.TrimSpace(n) != "GLY" {
		t.Fatalf("variant name %q %v", n, ok)
	}
}

func TestNameChangeWithoutAltLoc(t *testing.T) {
	diags := make(chan pdb.Diag, 4)
	pr := pdb.NewReader(strings.NewReader(strings.Join([]string{
		atomLine("    1", " CA ", ' ', "ALA", 'A', "   1", ' ', 1, 1, 1),
		atomLine("    2", " CA ", ' ', "GLY", 'A', "   1", ' ', 2, 2, 2),
		"END",
	}, "\n") + "\n"))
	pr.SetDiagChan(diags)
	s, err := pr.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	ch := s.DefaultModel().Chains[0]
	if ch.NumResidues() != 2 {
		t.Fatalf("residues %d, want a forced split into 2", ch.NumResidues())
	}
	select {
	case d := <-diags:
		if !strings.Contains(d.Msg, "same number") {
			t.Fatalf("unexpected diagnostic %q", d.Msg)
		}
	default:
		t.Fatalf("no diagnostic for the inconsistent residue name")
	}
}

func TestHexSerialOverflow(t *testing.T) {
	s := parse(t,
		atomLine("99998", " N  ", ' ', "ALA", 'A', "   1", ' ', 1, 1, 1),
		atomLine("99999", " CA ", ' ', "ALA", 'A', "   1", ' ', 1, 1, 2),
		atomLine("186a0", " C  ", ' ', "ALA", 'A', "   1", ' ', 1, 1, 3),
		atomLine("186a1", " O  ", ' ', "ALA", 'A', "   1", ' ', 1, 1, 4),
		"END",
	)
	r := s.DefaultModel().Chains[0].Residues[0]
	want := []int{99998, 99999, 100000, 100001}
	for i, a := range r.Atoms {
		if a.Serial != want[i] {
			t.Fatalf("atom %d serial %d, want %d", i, a.Serial, want[i])
		}
	}
}

func TestHybridResidueOverflow(t *testing.T) {
	s := parse(t,
		ca(1, "9998"),
		ca(2, "9999"),
		ca(3, "A000"),
		ca(4, "A001"),
		"END",
	)
	ch := s.DefaultModel().Chains[0]
	want := []int{9998, 9999, 10000, 10001}
	for i, r := range ch.Residues {
		if r.Number != want[i] {
			t.Fatalf("residue %d number %d, want %d", i, r.Number, want[i])
		}
	}
	if _, ok := ch.ResidueByNumber(10001); !ok {
		t.Fatalf("decoded residue number not indexed")
	}
}

func TestGuessedResidueOverflow(t *testing.T) {
	// asterisks carry no value at all, continuation is guessed
	s := parse(t,
		ca(1, "9999"),
		atomLine("    2", " N  ", ' ', "GLY", 'A', "****", ' ', 1, 1, 1),
		atomLine("    3", " CA ", ' ', "GLY", 'A', "****", ' ', 1, 1, 2),
		atomLine("    4", " N  ", ' ', "SER", 'A', "****", ' ', 1, 1, 3),
		"END",
	)
	ch := s.DefaultModel().Chains[0]
	if ch.NumResidues() != 3 {
		t.Fatalf("residues %d, want 3", ch.NumResidues())
	}
	nums := []int{ch.Residues[0].Number, ch.Residues[1].Number, ch.Residues[2].Number}
	if nums[0] != 9999 || nums[1] != 10000 || nums[2] != 10001 {
		t.Fatalf("residue numbers %v", nums)
	}
}

func TestTERResetsResidueNumbering(t *testing.T) {
	s := parse(t,
		ca(1, "9999"),
		ca(2, "2710"),
		"TER       3      ALA A 2710",
		atomLine("    4", " CA ", ' ', "GLY", 'B', "2710", ' ', 1, 1, 1),
		"END",
	)
	m := s.DefaultModel()
	if m.NumChains() != 2 {
		t.Fatalf("chains %d, want 2", m.NumChains())
	}
	if n := m.Chains[0].Residues[1].Number; n != 10000 {
		t.Fatalf("chain A residue number %d, want hex 10000", n)
	}
	chB := m.Chains[1]
	if chB.Residues[0].Number != 2710 {
		t.Fatalf("chain B residue number %d, want plain decimal 2710",
			chB.Residues[0].Number)
	}
}

func TestModelBoundaryResetsNumbering(t *testing.T) {
	// "2710" is valid decimal, so it only reads as hex while a locked
	// scope lasts. The model boundary must end that scope.
	s := parse(t,
		"MODEL        1",
		ca(1, "9999"),
		ca(2, "2710"),
		ca(3, "2711"),
		"ENDMDL",
		"MODEL        2",
		ca(1, "2710"),
		"ENDMDL",
		"END",
	)
	first := s.Models[0].Chains[0]
	want := []int{9999, 10000, 10001}
	for i, r := range first.Residues {
		if r.Number != want[i] {
			t.Fatalf("model 0 residue %d number %d, want %d", i, r.Number, want[i])
		}
	}
	if n := s.Models[1].Chains[0].Residues[0].Number; n != 2710 {
		t.Fatalf("model 1 residue number %d, want plain decimal 2710", n)
	}
}

func TestMisalignedResidueNameFatal(t *testing.T) {
	line := "ATOM      1  CA  AL X   1      11.104   6.134  -6.504  1.00  0.00"
	_, err := pdb.Read(strings.NewReader(line + "\nEND\n"))
	if err == nil {
		t.Fatalf("want an error for the misaligned residue name")
	}
	if !strings.Contains(err.Error(), "Line: 1") {
		t.Fatalf("error should carry the line number: %v", err)
	}
}

func TestBadCryst1Fatal(t *testing.T) {
	_, err := pdb.Read(strings.NewReader("CRYST1   xx.000   58.000   61.900  90.00  90.00  90.00\n"))
	if err == nil {
		t.Fatalf("want an error for garbage cell lengths")
	}
}

func TestBrokenStream(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 50; i++ {
		b.WriteString(ca(i, "   1") + "\n")
	}
	br := brokenio.NewReader(strings.NewReader(b.String()))
	br.SetFailAfter(200)
	if _, err := pdb.Read(br); !errors.Is(err, brokenio.ErrBroken) {
		t.Fatalf("broken stream gave %v, want the reader's error", err)
	}
}

func TestStrayRecordsIgnored(t *testing.T) {
	diags := make(chan pdb.Diag, 4)
	pr := pdb.NewReader(strings.NewReader(strings.Join([]string{
		"TER",
		"CONECT    1    2",
		"REMARK nothing to see",
		ca(1, "   1"),
		"END",
	}, "\n") + "\n"))
	pr.SetDiagChan(diags)
	s, err := pr.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if s.NumModels() != 1 || s.DefaultModel().NumChains() != 1 {
		t.Fatalf("structure shape wrong")
	}
	if len(diags) != 2 {
		t.Fatalf("diagnostics %d, want 2 (stray TER, stray CONECT)", len(diags))
	}
}
