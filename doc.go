//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package md5 implements the MD5 hash algorithm as defined in RFC 1321.
//
// MD5 is cryptographically broken and should not be used for secure
// applications.
//
// A hashing session is driven in three phases: New (or Init) creates a
// fresh session, Update adds message bytes in chunks of any size, and
// Final pads the message and returns the 16-byte checksum:
//
//	d := md5.New()
//	d.Update([]byte("message "))
//	d.Update([]byte("digest"))
//	sum, err := d.Final()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(sum)
//
// The session is finalized after Final; further Update and Final calls
// return ErrFinalized until the session is initialized again with Init.
package md5
