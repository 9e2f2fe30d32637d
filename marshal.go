//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"encoding/binary"
	"fmt"
)

const (
	magic         = "md5\x01"
	marshaledSize = len(magic) + 1 + 4*4 + chunk + 8
)

// MarshalBinary implements encoding.BinaryMarshaler. The encoding
// holds the session state, accumulator, pending block, and message
// length.
func (d *Digest) MarshalBinary() ([]byte, error) {
	if d.state == stateUninit {
		d0 := *d
		d0.Init()
		return d0.MarshalBinary()
	}
	b := make([]byte, 0, marshaledSize)
	b = append(b, magic...)
	b = append(b, byte(d.state))
	for _, v := range d.s {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	b = append(b, d.x[:]...)
	b = binary.BigEndian.AppendUint64(b, d.len)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The session
// tracer is not changed.
func (d *Digest) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledSize || string(data[:len(magic)]) != magic {
		return ErrInvalidState
	}
	data = data[len(magic):]

	st := state(data[0])
	if st == stateUninit || st > stateFinalized {
		return fmt.Errorf("%w: %s", ErrInvalidState, st)
	}
	data = data[1:]

	for i := range d.s {
		d.s[i] = binary.BigEndian.Uint32(data)
		data = data[4:]
	}
	copy(d.x[:], data[:chunk])
	data = data[chunk:]

	d.len = binary.BigEndian.Uint64(data)
	d.state = st
	d.nblocks = int(d.len / chunk)

	if st == stateFinalized {
		d.nx = 0
		binary.LittleEndian.PutUint32(d.sum[0:], d.s[0])
		binary.LittleEndian.PutUint32(d.sum[4:], d.s[1])
		binary.LittleEndian.PutUint32(d.sum[8:], d.s[2])
		binary.LittleEndian.PutUint32(d.sum[12:], d.s[3])
	} else {
		d.nx = int(d.len % chunk)
		d.sum = Checksum{}
	}
	return nil
}
