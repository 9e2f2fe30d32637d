//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	fStrings := flag.Bool("s", false, "arguments are literal strings")
	fCheck := flag.Bool("c", false, "verify checksums listed in the argument files")
	fTiming := flag.Bool("t", false, "print timing report")
	fTrace := flag.Bool("trace", false, "trace compression rounds")
	fBench := flag.Int64("bench", 0, "hash `size` bytes of generated data")
	flag.Parse()

	log.SetFlags(0)

	var timing *Timing
	if *fTiming || *fBench > 0 {
		timing = NewTiming()
	}

	if *fBench > 0 {
		if err := bench(os.Stdout, *fBench, timing); err != nil {
			log.Fatal(err)
		}
		timing.Print(os.Stdout)
		return
	}

	if *fCheck {
		ok, err := check(os.Stdout, NewLogger(os.Stderr), flag.Args())
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	h := &hasher{
		in:     os.Stdin,
		out:    os.Stdout,
		timing: timing,
	}
	if *fTrace {
		h.trace = os.Stdout
	}

	var err error
	if len(flag.Args()) == 0 {
		err = h.sumFile("-")
	} else {
		for _, arg := range flag.Args() {
			if *fStrings {
				err = h.sumString(arg)
			} else {
				err = h.sumFile(arg)
			}
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		log.Fatal(err)
	}
	if timing != nil {
		timing.Print(os.Stdout)
	}
}
