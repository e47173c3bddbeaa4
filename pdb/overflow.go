// Serial numbers get five columns and residue numbers four. Files from
// big systems need more, and the programs that write them disagree on
// what to do. We know three schemes:
//   - hexadecimal, which announces itself with the token after the last
//     decimal value (99999 -> "186a0", 9999 -> "2710")
//   - a hybrid scheme where the first character is a base 36 digit for
//     the high part and the rest is a base 36 number for the low part,
//     starting at "A0000" or "A000"
//   - asterisks, which tell us nothing, so we just keep counting.
//
// There is no header saying which is in use. The first token that does
// not fit plain decimal picks a decoder, and that decoder is then locked
// until the scope ends. Scopes end at model boundaries, and for residue
// numbers also at TER records.

package pdb

import (
	"strconv"
	"strings"
)

type decodeMode uint8

const (
	modeNone   decodeMode = iota // plain decimal, nothing locked yet
	modeHex                      // legacy base 16 extension
	modeHybrid                   // base 36 high digit + base 36 tail
	modeGuess                    // token unreadable, continue counting
)

type numKind uint8

const (
	atomNum numKind = iota
	residueNum
)

func (k numKind) ceiling() int {
	if k == atomNum {
		return 99999
	}
	return 9999
}

// The hex sentinel is ceiling+1 written in base 16.
func (k numKind) hexSentinel() string {
	if k == atomNum {
		return "186a0"
	}
	return "2710"
}

func (k numKind) hybridSentinel() string {
	if k == atomNum {
		return "A0000"
	}
	return "A000"
}

func (k numKind) guessSentinel() string {
	if k == atomNum {
		return "*****"
	}
	return "****"
}

// lowPow is the decimal weight of the hybrid high digit. The tail of a
// hybrid token is one character shorter than the full field.
func (k numKind) lowPow() int {
	if k == atomNum {
		return 10000
	}
	return 1000
}

// overflowEligible says whether a token could belong to one of the non
// decimal schemes. Exact sentinels qualify, and so does any token whose
// first character is a capital letter, since hybrid tokens need not
// start at the sentinel value if numbering skips around.
func (k numKind) overflowEligible(tok string) bool {
	switch tok {
	case k.hexSentinel(), k.hybridSentinel(), k.guessSentinel():
		return true
	}
	return len(tok) > 0 && tok[0] >= 'A' && tok[0] <= 'Z'
}

// numScope is the numbering state for one kind of counter while one
// structure is being read: the next value we expect to see and the
// decoder locked by the first overflow event.
type numScope struct {
	kind numKind
	next int
	mode decodeMode
}

func (sc *numScope) reset() {
	sc.next = 1
	sc.mode = modeNone
}

func digit36(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 10, true
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 10, true
	}
	return 0, false
}

func decodeHybrid(tok string, k numKind) (int, bool) {
	if len(tok) < 2 {
		return 0, false
	}
	hi, ok := digit36(tok[0])
	if !ok {
		return 0, false
	}
	lo, err := strconv.ParseInt(tok[1:], 36, 64)
	if err != nil || lo < 0 {
		return 0, false
	}
	return hi*k.lowPow() + int(lo), true
}

// readAtomNumber resolves one raw serial number token using, and
// updating, the numbering state for atoms.
func (pr *Reader) readAtomNumber(tok string) int {
	sc := &pr.atomNums
	if sc.mode != modeNone {
		return pr.applyMode(sc, tok, nil)
	}
	// Plain decimal, unless the counter has passed the ceiling and the
	// token looks like one of the extension schemes. The order matters:
	// "2710" parses as decimal but must be read as hex once a residue
	// counter is past 9999.
	if sc.next <= sc.kind.ceiling() || !sc.kind.overflowEligible(tok) {
		if v, err := strconv.Atoi(strings.TrimSpace(tok)); err == nil {
			return v
		}
	}
	sc.lockFromToken(tok)
	return pr.applyMode(sc, tok, nil)
}

// readResidueNumber is the residue counterpart of readAtomNumber. The
// atom being parsed comes along because the guess decoder wants to look
// at names, see guessResidueNumber.
func (pr *Reader) readResidueNumber(tok string, atom *Atom) int {
	sc := &pr.resNums
	if sc.mode != modeNone {
		return pr.applyMode(sc, tok, atom)
	}
	if sc.next <= sc.kind.ceiling() || !sc.kind.overflowEligible(tok) {
		if v, err := strconv.Atoi(strings.TrimSpace(tok)); err == nil {
			return v
		}
	}
	sc.lockFromToken(tok)
	return pr.applyMode(sc, tok, atom)
}

// lockFromToken is the first overflow event. Pick a decoder from the
// literal token. A token starting with a capital letter that is not an
// exact sentinel is most likely hybrid, so that is the default guess.
func (sc *numScope) lockFromToken(tok string) {
	switch tok {
	case sc.kind.hexSentinel():
		sc.mode = modeHex
	case sc.kind.hybridSentinel():
		sc.mode = modeHybrid
	case sc.kind.guessSentinel():
		sc.mode = modeGuess
	default:
		if len(tok) > 0 && tok[0] >= 'A' && tok[0] <= 'Z' {
			sc.mode = modeHybrid
		}
	}
}

// applyMode runs the locked decoder. If it cannot read the token, or no
// decoder could be chosen at all, decoding is abandoned for the rest of
// the scope and we fall back to counting.
func (pr *Reader) applyMode(sc *numScope, tok string, atom *Atom) int {
	switch sc.mode {
	case modeHex:
		if v, err := strconv.ParseInt(strings.TrimSpace(tok), 16, 64); err == nil {
			return int(v)
		}
	case modeHybrid:
		if v, ok := decodeHybrid(tok, sc.kind); ok {
			return v
		}
	case modeGuess:
		return pr.guessNumber(sc, atom)
	}
	sc.mode = modeGuess
	if sc.kind == atomNum {
		pr.warnf("cannot decode atom number %q, guessing from atom %d", tok, sc.next)
	} else {
		pr.warnf("cannot decode residue number %q, guessing from residue %d, atom %d",
			tok, sc.next, pr.atomNums.next)
	}
	return pr.guessNumber(sc, atom)
}

func (pr *Reader) guessNumber(sc *numScope, atom *Atom) int {
	if sc.kind == atomNum {
		return sc.next
	}
	return pr.guessResidueNumber(atom)
}

// guessResidueNumber decides a residue number from context when the
// token itself is unreadable. A changed residue name, or an atom name
// already present in the open residue, means a new residue has started.
// Otherwise the open residue continues.
func (pr *Reader) guessResidueNumber(atom *Atom) int {
	next := pr.resNums.next
	if atom == nil || pr.curModel == nil || pr.curModel.curChain == nil {
		return next
	}
	cur := pr.curModel.curChain.curRes
	if cur == nil {
		return next
	}
	if cur.NameWithSpaces() != atom.ResidueNameWithSpaces {
		return next
	}
	if _, ok := cur.atomsByName[atom.NameWithSpaces]; ok {
		return next
	}
	return cur.Number
}

// ReadAtomNumber parses a serial number token on its own, with no
// structure being read and so no numbering state to lean on. Decimal
// tokens are parsed and anything else comes back as zero.
func ReadAtomNumber(tok string) int {
	v, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil {
		return 0
	}
	return v
}

// ReadResidueNumber is ReadAtomNumber for residue number tokens.
func ReadResidueNumber(tok string) int {
	return ReadAtomNumber(tok)
}
