// Writing a Structure back out. Serial numbers are not reproduced from
// the input. Every model restarts a shared counter at 1 and each
// physical line advances it, TER lines included. So a file that came in
// with hex or hybrid numbering goes out in plain decimal, renumbered.

package pdb

import (
	"fmt"
	"io"
)

// Write emits the structure in fixed column format. A structure with
// more than one model brackets each non empty model in MODEL/ENDMDL.
// Either way exactly one END line ends the output. CONECT and CRYST1
// records are not re-emitted.
func (s *Structure) Write(w io.Writer) error {
	multi := len(s.Models) > 1
	for _, m := range s.Models {
		if len(m.Chains) == 0 {
			continue
		}
		if multi {
			if _, err := fmt.Fprintf(w, "MODEL     %4d\n", m.Number); err != nil {
				return err
			}
		}
		if err := m.write(w); err != nil {
			return err
		}
		if multi {
			if _, err := fmt.Fprintln(w, "ENDMDL"); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "END")
	return err
}

func (m *Model) write(w io.Writer) error {
	sn := 1 // one serial counter shared by every chain in the model
	var err error
	for _, c := range m.Chains {
		if sn, err = c.write(w, sn); err != nil {
			return err
		}
	}
	return nil
}

// write emits the chain's residues and, if the chain was terminated, a
// TER line built from the last residue. The residue number is reduced
// modulo 10000 to stay inside its four columns.
func (c *Chain) write(w io.Writer, sn int) (int, error) {
	var err error
	for _, r := range c.Residues {
		if sn, err = r.write(w, sn, "*"); err != nil {
			return sn, err
		}
	}
	if c.HasTER && len(c.Residues) > 0 {
		r := c.Residues[len(c.Residues)-1]
		_, err = fmt.Fprintf(w, "TER   %5d      %3s %c%4d%c\n",
			sn, r.NameWithSpaces(), c.ID, r.Number%10000, r.InsertionCode)
		if err != nil {
			return sn, err
		}
		sn++
	}
	return sn, nil
}

func (r *Residue) write(w io.Writer, sn int, altSel string) (int, error) {
	var err error
	for _, a := range r.Atoms {
		if sn, err = a.write(w, sn, altSel); err != nil {
			return sn, err
		}
	}
	return sn, nil
}
