//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5_test

import (
	"fmt"
	"strings"

	"github.com/markkurossi/md5"
)

func Example() {
	d := md5.New()
	d.Update([]byte("message "))
	d.Update([]byte("digest"))
	sum, err := d.Final()
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)

	// Output:
	// f96b697d7cb7938d525a2f31aaf161d0
}

func ExampleSum() {
	fmt.Printf("%s\n", md5.Sum([]byte("abc")))
	empty := md5.Sum(nil)
	fmt.Printf("%x\n", empty[:])

	// Output:
	// 900150983cd24fb0d6963f7d28e17f72
	// d41d8cd98f00b204e9800998ecf8427e
}

func ExampleSumReader() {
	sum, n, err := md5.SumReader(strings.NewReader("abcdefghijklmnopqrstuvwxyz"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s  %d bytes\n", sum, n)

	// Output:
	// c3fcd3d76192e4007dfb496cca67e13b  26 bytes
}
