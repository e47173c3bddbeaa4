// brokenio wraps an io.Reader and makes it fail on purpose. Structure
// files arrive truncated, half synced or empty more often than one
// would like, and the parsers should come back with an error, not a
// wrong structure. Wrap the real reader, decide how it should break,
// and everything downstream behaves as if the data source were bad.
//
// Unlike flipping a coin on every read, breakage here is deterministic,
// so a test that fails once fails every time.

package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is what Read returns once the configured failure point is
// reached, unless SetErr installed something else.
var ErrBroken = errors.New("brokenio: deliberate read failure")

// A Reader delivers bytes from the wrapped reader until its failure
// point, then returns an error on every call. The zero failure point
// means never fail, which makes an unconfigured Reader safe to leave in
// test plumbing.
type Reader struct {
	rdr       io.Reader
	failAfter int   // fail once this many bytes went through, 0 means never
	err       error // what to fail with
	zeroFile  bool  // pretend the source was empty
	nByte     int
}

// NewReader wraps rdr. Without any Set calls the result is just a
// pass-through.
func NewReader(rdr io.Reader) *Reader {
	return &Reader{rdr: rdr, err: ErrBroken}
}

// SetFailAfter sets the number of bytes to deliver before failing.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// SetErr replaces ErrBroken with a caller chosen error.
func (r *Reader) SetErr(err error) { r.err = err }

// SetZeroFile makes the reader report end of file immediately, which is
// what reading a zero length file looks like.
func (r *Reader) SetZeroFile(b bool) { r.zeroFile = b }

// BytesRead says how much data went through before things broke.
func (r *Reader) BytesRead() int { return r.nByte }

func (r *Reader) Read(p []byte) (int, error) {
	if r.zeroFile {
		return 0, io.EOF
	}
	if r.failAfter > 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, r.err
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err := r.rdr.Read(p)
	r.nByte += n
	return n, err
}
