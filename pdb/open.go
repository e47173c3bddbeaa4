// Opening files. Structure archives are usually gzipped, so the file
// openers sniff the magic bytes and decompress when they have to,
// rather than trusting the file name. ReadFileMmap is for the big
// uncompressed ones, where mapping beats buffered reads.

package pdb

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// wrapMaybe looks at the first two bytes and, if they are the gzip
// magic, interposes a decompressor.
func wrapMaybe(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		return gzip.NewReader(br)
	}
	return br, nil
}

// OpenFile readies a Reader for one file, decompressing transparently
// if it is gzipped. The caller can still adjust the Reader before
// calling Read, and owns the returned closer.
func OpenFile(fname string) (*Reader, io.Closer, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	rdr, err := wrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, nil, err
	}
	return NewReader(rdr), fp, nil
}

// ReadFile parses one file, decompressing transparently if it is
// gzipped.
func ReadFile(fname string) (*Structure, error) {
	pr, closer, err := OpenFile(fname)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return pr.Read()
}

// ReadFileMmap parses an uncompressed file through a memory mapping.
// Mapping an empty file fails on some systems, so that case goes the
// ordinary way.
func ReadFileMmap(fname string) (*Structure, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	if fi, err := fp.Stat(); err != nil {
		return nil, err
	} else if fi.Size() == 0 {
		return NewReader(fp).Read()
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer mm.Unmap()
	return NewReader(bytes.NewReader(mm)).Read()
}
