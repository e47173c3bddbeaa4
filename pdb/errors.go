// An error implementation that keeps the line number, the line we were
// trying to read and where the numbering counters stood. Only fatal
// problems become one of these. Anything survivable goes through
// warnf in diag.go instead.

package pdb

import "strconv"

const maxMsgLen = 70

type parseError struct {
	n        int    // line number, 1 based
	inline   string // the line that provoked the error
	desc     string
	nextAtom int // counter state when it happened
	nextRes  int
}

func (pr *Reader) fatal(desc string, line string) *parseError {
	return &parseError{
		n:        pr.n,
		inline:   line,
		desc:     desc,
		nextAtom: pr.atomNums.next,
		nextRes:  pr.resNums.next,
	}
}

func firstPart(s string) string {
	if len(s) > maxMsgLen {
		s = s[:maxMsgLen]
	}
	return s
}

func (e *parseError) Error() string {
	errmsg := "Line: " + strconv.Itoa(e.n) + " " + e.desc
	errmsg += " (next atom " + strconv.Itoa(e.nextAtom) +
		", next residue " + strconv.Itoa(e.nextRes) + ")"
	if e.inline != "" {
		errmsg += "\nLine starting with\n" + firstPart(e.inline)
	}
	return errmsg
}
