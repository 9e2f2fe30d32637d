//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"encoding/hex"
	"fmt"
)

// Checksum is a finalized MD5 message digest.
type Checksum [Size]byte

// String returns the checksum as 32 lowercase hexadecimal digits.
func (sum Checksum) String() string {
	return hex.EncodeToString(sum[:])
}

// ParseChecksum parses the hexadecimal checksum string s. Both upper
// and lower case digits are accepted.
func ParseChecksum(s string) (Checksum, error) {
	var sum Checksum
	if len(s) != 2*Size {
		return sum, fmt.Errorf("%w: invalid length %d", ErrChecksum, len(s))
	}
	if _, err := hex.Decode(sum[:], []byte(s)); err != nil {
		return sum, fmt.Errorf("%w: %v", ErrChecksum, err)
	}
	return sum, nil
}
