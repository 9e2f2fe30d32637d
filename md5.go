//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"
)

// Errors.
var (
	ErrFinalized    = errors.New("md5: session finalized")
	ErrLength       = errors.New("md5: length mismatch")
	ErrChecksum     = errors.New("md5: invalid checksum")
	ErrInvalidState = errors.New("md5: invalid state")
)

type state byte

const (
	stateUninit state = iota
	stateFresh
	stateAccumulating
	stateFinalized
)

var stateNames = map[state]string{
	stateUninit:       "uninitialized",
	stateFresh:        "fresh",
	stateAccumulating: "accumulating",
	stateFinalized:    "finalized",
}

func (s state) String() string {
	name, ok := stateNames[s]
	if ok {
		return name
	}
	return fmt.Sprintf("{state %d}", s)
}

var (
	_ hash.Hash                  = (*Digest)(nil)
	_ io.ReaderFrom              = (*Digest)(nil)
	_ encoding.BinaryMarshaler   = (*Digest)(nil)
	_ encoding.BinaryUnmarshaler = (*Digest)(nil)
)

// Digest is an MD5 hashing session. A Digest is owned by one
// goroutine at a time; independent computations must use their own
// sessions. The zero value is ready to use and is initialized on its
// first use.
type Digest struct {
	s       [4]uint32
	x       [chunk]byte
	nx      int
	len     uint64
	state   state
	sum     Checksum
	trace   TraceFunc
	nblocks int
}

// New creates a new initialized hashing session.
func New() *Digest {
	d := new(Digest)
	d.Init()
	return d
}

// Init resets the session to its initial state. The installed tracer
// is kept.
func (d *Digest) Init() {
	d.s[0] = init0
	d.s[1] = init1
	d.s[2] = init2
	d.s[3] = init3
	d.nx = 0
	d.len = 0
	d.state = stateFresh
	d.sum = Checksum{}
	d.nblocks = 0
}

// ensureInit initializes the zero value Digest.
func (d *Digest) ensureInit() {
	if d.state == stateUninit {
		d.Init()
	}
}

// Reset implements hash.Hash.Reset.
func (d *Digest) Reset() {
	d.Init()
}

// Size implements hash.Hash.Size.
func (d *Digest) Size() int { return Size }

// BlockSize implements hash.Hash.BlockSize.
func (d *Digest) BlockSize() int { return BlockSize }

// Len returns the number of bytes processed so far.
func (d *Digest) Len() uint64 {
	return d.len
}

// Update adds the bytes p to the message. Update returns ErrFinalized
// if the session is already finalized.
func (d *Digest) Update(p []byte) error {
	d.ensureInit()
	if d.state == stateFinalized {
		return ErrFinalized
	}
	d.state = stateAccumulating
	d.write(p)
	return nil
}

// Write implements io.Writer. Unlike the hash.Hash contract
// suggests, Write returns ErrFinalized after Final, so that data
// written to a finalized session is never silently dropped.
func (d *Digest) Write(p []byte) (int, error) {
	if err := d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// ReadFrom implements io.ReaderFrom. It reads r until EOF and adds
// the data to the message.
func (d *Digest) ReadFrom(r io.Reader) (int64, error) {
	d.ensureInit()
	if d.state == stateFinalized {
		return 0, ErrFinalized
	}
	d.state = stateAccumulating

	var total int64
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			d.write(buf[:n])
			total += int64(n)
		}
		if err != nil {
			if err == io.EOF {
				return total, nil
			}
			return total, err
		}
	}
}

// write feeds p through the pending block buffer. Complete blocks
// are compressed directly from p when the buffer is empty.
func (d *Digest) write(p []byte) {
	d.len += uint64(len(p))
	for len(p) > 0 {
		if d.nx == 0 && len(p) >= chunk {
			n := len(p) &^ (chunk - 1)
			blocks(d, p[:n])
			p = p[n:]
			continue
		}
		n := copy(d.x[d.nx:], p)
		d.nx += n
		p = p[n:]
		if d.nx == chunk {
			blocks(d, d.x[:])
			d.nx = 0
		}
	}
}

// Final pads the message, finalizes the session, and returns the
// message digest. Final returns ErrFinalized if called twice.
func (d *Digest) Final() (Checksum, error) {
	d.ensureInit()
	if d.state == stateFinalized {
		return Checksum{}, ErrFinalized
	}
	d.sum = d.checkSum()
	d.state = stateFinalized
	return d.sum, nil
}

// FinalLength is like Final but the caller also specifies the total
// message length in bytes. The length must match the number of bytes
// processed by the session; in case of mismatch, FinalLength returns
// an error wrapping ErrLength and the session is not finalized.
func (d *Digest) FinalLength(length uint64) (Checksum, error) {
	d.ensureInit()
	if d.state == stateFinalized {
		return Checksum{}, ErrFinalized
	}
	if length != d.len {
		return Checksum{}, fmt.Errorf("%w: length %d, processed %d",
			ErrLength, length, d.len)
	}
	return d.Final()
}

// Sum implements hash.Hash.Sum. It appends the digest of the data
// processed so far to in and leaves the session unchanged.
func (d *Digest) Sum(in []byte) []byte {
	if d.state == stateFinalized {
		return append(in, d.sum[:]...)
	}
	// Make a copy of d so that caller can keep writing and summing.
	d0 := *d
	d0.trace = nil
	d0.ensureInit()
	hash := d0.checkSum()
	return append(in, hash[:]...)
}

func (d *Digest) checkSum() Checksum {
	// Padding. Add a 1 bit and 0 bits until 56 bytes mod 64. There is
	// always room for the 0x80 byte.
	d.x[d.nx] = 0x80
	if d.nx >= chunk-8 {
		// No room for the length: pad this block and continue with
		// an all-zero block.
		clear(d.x[d.nx+1:])
		blocks(d, d.x[:])
		clear(d.x[:chunk-8])
	} else {
		clear(d.x[d.nx+1 : chunk-8])
	}

	// Length in bits.
	binary.LittleEndian.PutUint64(d.x[chunk-8:], d.len<<3)
	blocks(d, d.x[:])
	d.nx = 0

	var digest Checksum

	binary.LittleEndian.PutUint32(digest[0:], d.s[0])
	binary.LittleEndian.PutUint32(digest[4:], d.s[1])
	binary.LittleEndian.PutUint32(digest[8:], d.s[2])
	binary.LittleEndian.PutUint32(digest[12:], d.s[3])

	return digest
}

// Sum returns the MD5 checksum of the data.
func Sum(data []byte) Checksum {
	var d Digest
	d.Init()
	d.write(data)
	return d.checkSum()
}

// SumReader returns the MD5 checksum of the data read from r and the
// number of bytes read. If reading fails, SumReader returns the error
// and no checksum.
func SumReader(r io.Reader) (Checksum, int64, error) {
	d := New()
	n, err := d.ReadFrom(r)
	if err != nil {
		return Checksum{}, n, err
	}
	sum, err := d.Final()
	return sum, n, err
}
