//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Compress folds one 64-byte block into the accumulator s and returns
// the new accumulator. The function panics if block is not exactly
// BlockSize bytes long.
func Compress(s [4]uint32, block []byte) [4]uint32 {
	return compress(s, block, 0, nil)
}

func compress(s [4]uint32, p []byte, block int, trace TraceFunc) [4]uint32 {
	if len(p) != chunk {
		panic(fmt.Sprintf("md5: invalid block length %d", len(p)))
	}
	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = binary.LittleEndian.Uint32(p[i*4:])
	}

	a, b, c, d := s[0], s[1], s[2], s[3]

	// The four 16-round passes differ only in the mixing function.
	// The round tables select the constant, the message word, and the
	// rotation.
	i := 0
	for ; i < 16; i++ {
		f := b&c | (^b)&d
		t := a + f + _K[i] + m[_X[i]]
		a, b, c, d = d, b+bits.RotateLeft32(t, _S[i]), b, c
		if trace != nil {
			emit(trace, block, i, a, b, c, d)
		}
	}
	for ; i < 32; i++ {
		f := b&d | c&(^d)
		t := a + f + _K[i] + m[_X[i]]
		a, b, c, d = d, b+bits.RotateLeft32(t, _S[i]), b, c
		if trace != nil {
			emit(trace, block, i, a, b, c, d)
		}
	}
	for ; i < 48; i++ {
		f := b ^ c ^ d
		t := a + f + _K[i] + m[_X[i]]
		a, b, c, d = d, b+bits.RotateLeft32(t, _S[i]), b, c
		if trace != nil {
			emit(trace, block, i, a, b, c, d)
		}
	}
	for ; i < 64; i++ {
		f := c ^ (b | ^d)
		t := a + f + _K[i] + m[_X[i]]
		a, b, c, d = d, b+bits.RotateLeft32(t, _S[i]), b, c
		if trace != nil {
			emit(trace, block, i, a, b, c, d)
		}
	}

	return [4]uint32{
		s[0] + a,
		s[1] + b,
		s[2] + c,
		s[3] + d,
	}
}

// blocks compresses all complete blocks of p into the digest state.
func blocks(dig *Digest, p []byte) {
	for len(p) >= chunk {
		dig.s = compress(dig.s, p[:chunk], dig.nblocks, dig.trace)
		dig.nblocks++
		p = p[chunk:]
	}
}
