//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/markkurossi/md5"
	"github.com/markkurossi/text/superscript"
)

// hasher computes and prints checksums of its inputs.
type hasher struct {
	in     io.Reader
	out    io.Writer
	trace  io.Writer
	timing *Timing
}

// sumFile hashes file. The file "-" is the standard input.
func (h *hasher) sumFile(file string) error {
	if file == "-" {
		return h.sum(file, h.in)
	}
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return h.sum(file, f)
}

func (h *hasher) sumString(s string) error {
	return h.sum(s, strings.NewReader(s))
}

// sum hashes the data from r and prints the checksum line for name.
// Nothing is printed if reading fails.
func (h *hasher) sum(name string, r io.Reader) error {
	d := md5.New()
	if h.trace != nil {
		fmt.Fprintf(h.trace, "%s:\n", name)
		d.SetTracer(h.traceRound)
	}
	n, err := d.ReadFrom(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	sum, err := d.Final()
	if err != nil {
		return err
	}
	if h.timing != nil {
		h.timing.Sample(name, n)
	}
	fmt.Fprintf(h.out, "%s  %s\n", sum, name)
	return nil
}

func (h *hasher) traceRound(r *md5.Round) {
	if r.Index == 0 {
		fmt.Fprintf(h.trace, " block %d:\n", r.Block)
	}
	fmt.Fprintf(h.trace, "  r%-3s\tpass %d\tM[%2d]\t%08x %08x %08x %08x\n",
		superscript.Itoa(r.Index), r.Pass, r.Word, r.A, r.B, r.C, r.D)
}
