//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"github.com/markkurossi/md5"
	"golang.org/x/crypto/chacha20"
)

const benchChunk = 1024

// keystream returns size bytes of ChaCha20 keystream with an all-zero
// key and nonce.
func keystream(size int64) ([]byte, error) {
	key := make([]byte, chacha20.KeySize)
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, err
	}
	// Stream XOR of zeros gives keystream directly.
	data := make([]byte, size)
	c.XORKeyStream(data, data)
	return data, nil
}

// bench hashes size bytes of generated data in benchChunk sized
// updates and prints the checksum.
func bench(out io.Writer, size int64, timing *Timing) error {
	data, err := keystream(size)
	if err != nil {
		return err
	}
	if timing != nil {
		timing.Sample("keystream", size)
	}

	d := md5.New()
	for ofs := 0; ofs < len(data); ofs += benchChunk {
		if err := d.Update(data[ofs:min(ofs+benchChunk, len(data))]); err != nil {
			return err
		}
	}
	sum, err := d.Final()
	if err != nil {
		return err
	}
	if timing != nil {
		timing.Sample("md5", size)
	}
	fmt.Fprintf(out, "%s  chacha20:%d\n", sum, size)
	return nil
}
