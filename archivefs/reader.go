// This file is part of GopherSNES.
//
// GopherSNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSNES.  If not, see <https://www.gnu.org/licenses/>.

package archivefs

import (
	"io"

	"github.com/jetsetilly/gophersnes/curated"
)

// entryReader streams the contents of an archive entry. No more than the
// declared size of the entry is ever read. Seeking forward discards data and
// seeking backward reopens the entry.
type entryReader struct {
	e   entry
	rc  io.ReadCloser
	r   io.Reader
	pos int64

	// the archive the entry belongs to. closed with the entryReader if it is
	// not nil
	arc archive
}

func newEntryReader(e entry) (*entryReader, error) {
	er := &entryReader{e: e}
	if err := er.reopen(); err != nil {
		return nil, err
	}
	return er, nil
}

func (er *entryReader) reopen() error {
	if er.rc != nil {
		er.rc.Close()
		er.rc = nil
	}

	rc, err := er.e.open()
	if err != nil {
		return curated.Errorf("archivefs: open: %v", err)
	}

	er.rc = rc
	er.r = io.LimitReader(rc, er.e.size)
	er.pos = 0

	return nil
}

// Read implements the io.Reader interface.
func (er *entryReader) Read(p []byte) (int, error) {
	if er.rc == nil {
		return 0, curated.Errorf("archivefs: read: %s is not open", er.e.name)
	}
	n, err := er.r.Read(p)
	er.pos += int64(n)
	return n, err
}

// Seek implements the io.Seeker interface.
func (er *entryReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64

	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = er.pos + offset
	case io.SeekEnd:
		abs = er.e.size + offset
	default:
		return er.pos, curated.Errorf("archivefs: seek: invalid whence (%d)", whence)
	}

	if abs < 0 {
		return er.pos, curated.Errorf("archivefs: seek: negative position (%d)", abs)
	}

	if abs < er.pos || er.rc == nil {
		if err := er.reopen(); err != nil {
			return er.pos, err
		}
	}

	// seeking past the end of the entry is not an error. reads from that
	// position return io.EOF
	if _, err := io.CopyN(io.Discard, er.r, abs-er.pos); err != nil && err != io.EOF {
		return er.pos, curated.Errorf("archivefs: seek: %v", err)
	}
	er.pos = abs

	return er.pos, nil
}

// Close implements the io.Closer interface.
func (er *entryReader) Close() error {
	var err error
	if er.rc != nil {
		err = er.rc.Close()
		er.rc = nil
	}
	if er.arc != nil {
		if cerr := er.arc.Close(); err == nil {
			err = cerr
		}
		er.arc = nil
	}
	return err
}
