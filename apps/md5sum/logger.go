//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Point specifies a position in a checksum list.
type Point struct {
	Source string
	Line   int // 1-based
	Col    int // 0-based
}

func (p Point) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Source, p.Line, p.Col)
}

// Undefined tests if the input position is undefined.
func (p Point) Undefined() bool {
	return p.Line == 0
}

// Logger reports checksum list diagnostics.
type Logger struct {
	out      io.Writer
	warnings int
}

// NewLogger creates a new logger outputting to the argument io.Writer.
func NewLogger(out io.Writer) *Logger {
	return &Logger{
		out: out,
	}
}

// Errorf logs an error message and returns it as an error.
func (l *Logger) Errorf(loc Point, format string, a ...interface{}) error {
	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	if loc.Undefined() {
		fmt.Fprintf(l.out, "%s: %s", loc.Source, msg)
	} else {
		fmt.Fprintf(l.out, "%s: %s", loc, msg)
	}

	idx := strings.IndexRune(msg, '\n')
	if idx > 0 {
		msg = msg[:idx]
	}
	if len(loc.Source) > 0 {
		msg = loc.Source + ": " + msg
	}
	return errors.New(msg)
}

// Warningf logs a warning message.
func (l *Logger) Warningf(loc Point, format string, a ...interface{}) {
	l.warnings++
	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	if loc.Undefined() {
		fmt.Fprintf(l.out, "%s: warning: %s", loc.Source, msg)
	} else {
		fmt.Fprintf(l.out, "%s: warning: %s", loc, msg)
	}
}

// Warnings returns the number of warnings logged.
func (l *Logger) Warnings() int {
	return l.warnings
}
