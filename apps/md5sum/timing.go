//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// FileSize implements human readable output for byte counts.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Timing records hashing samples and renders a throughput report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample for size bytes of input label. The
// sample starts where the previous sample ended.
func (t *Timing) Sample(label string, size int64) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Size:  size,
		Start: start,
		End:   time.Now(),
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Print prints the timing report to out.
func (t *Timing) Print(out io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Input").SetAlign(tabulate.ML)
	tab.Header("Size").SetAlign(tabulate.MR)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Rate").SetAlign(tabulate.MR)

	var size int64
	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)

	for _, sample := range t.Samples {
		duration := sample.Duration()
		size += sample.Size

		row := tab.Row()
		row.Column(sample.Label)
		row.Column(FileSize(sample.Size).String())
		row.Column(duration.String())
		row.Column(percent(duration, total))
		row.Column(rate(sample.Size, duration))
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(FileSize(size).String()).SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(rate(size, total)).SetFormat(tabulate.FmtBold)

	tab.Print(out)
}

func percent(d, total time.Duration) string {
	if total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(d)/float64(total)*100)
}

func rate(size int64, d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return FileSize(float64(size)/d.Seconds()).String() + "/s"
}

// Sample contains information about one timing sample.
type Sample struct {
	Label string
	Size  int64
	Start time.Time
	End   time.Time
}

// Duration returns the sample duration.
func (s *Sample) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
