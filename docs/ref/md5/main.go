// MD5 reference check against crypto/md5.

package main

import (
	stdmd5 "crypto/md5"
	"fmt"
	"os"

	"github.com/markkurossi/md5"
)

func main() {
	var failed bool

	for _, data := range [][]byte{
		[]byte("This page intentionally left blank."),
		[]byte("----------------------------------------------------------------+!!"),
		[]byte("------------------------------------------------------+"),
		[]byte("-------------------------------------------------------+"),
		[]byte("--------------------------------------------------------------+"),
		[]byte(""),
	} {
		sum := md5.Sum(data)
		ref := stdmd5.Sum(data)
		fmt.Printf("%s\n%x\n\n", sum, ref)
		if sum != md5.Checksum(ref) {
			failed = true
		}
	}
	if failed {
		fmt.Println("mismatch")
		os.Exit(1)
	}
}
