//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

// Round holds the working registers after one compression round.
type Round struct {
	Block int // Block number within the session, 0-based.
	Index int // Round number 0-63.
	Pass  int // Pass number 1-4.
	Word  int // Index of the message word the round consumed.
	A     uint32
	B     uint32
	C     uint32
	D     uint32
}

// TraceFunc observes compression rounds. The Round argument is only
// valid during the call.
type TraceFunc func(r *Round)

func emit(trace TraceFunc, block, i int, a, b, c, d uint32) {
	trace(&Round{
		Block: block,
		Index: i,
		Pass:  i/16 + 1,
		Word:  _X[i],
		A:     a,
		B:     b,
		C:     c,
		D:     d,
	})
}

// SetTracer installs the round tracer fn for the session. The nil fn
// disables tracing.
func (d *Digest) SetTracer(fn TraceFunc) {
	d.trace = fn
}
