//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/markkurossi/md5"
)

// check verifies the checksum lists in files. The file "-" reads the
// list from standard input. It returns false if any listed file did
// not match or any list line was malformed.
func check(out io.Writer, logger *Logger, files []string) (bool, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	result := true
	for _, file := range files {
		var ok bool
		var err error
		if file == "-" {
			ok, err = checkList(out, logger, file, os.Stdin)
		} else {
			var f *os.File
			f, err = os.Open(file)
			if err != nil {
				return false, err
			}
			ok, err = checkList(out, logger, file, f)
			f.Close()
		}
		if err != nil {
			return false, err
		}
		if !ok {
			result = false
		}
	}
	return result, nil
}

// checkList verifies the checksum lines read from r.
func checkList(out io.Writer, logger *Logger, source string, r io.Reader) (
	bool, error) {

	var lines, failed, malformed int

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if len(text) == 0 {
			continue
		}
		expected, file, col, err := parseLine(text)
		if err != nil {
			logger.Warningf(Point{
				Source: source,
				Line:   line,
				Col:    col,
			}, "improperly formatted MD5 checksum line: %s", err)
			malformed++
			continue
		}
		lines++

		sum, err := checksumFile(file)
		if err != nil {
			fmt.Fprintf(out, "%s: FAILED open or read\n", file)
			logger.Warningf(Point{
				Source: source,
				Line:   line,
			}, "%s", err)
			failed++
			continue
		}
		if sum != expected {
			fmt.Fprintf(out, "%s: FAILED\n", file)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s: OK\n", file)
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", source, err)
	}
	if lines == 0 {
		// Reported through the logger; the caller only sees the failure.
		logger.Errorf(Point{
			Source: source,
		}, "no properly formatted MD5 checksum lines found")
		return false, nil
	}
	if failed > 0 {
		fmt.Fprintf(out, "%s: %d of %d computed checksums did NOT match\n",
			source, failed, lines)
	}
	return failed == 0 && malformed == 0, nil
}

// parseLine parses a checksum line "<hex>  <file>" or "<hex> *<file>".
// On error, it returns the column where parsing failed.
func parseLine(line string) (md5.Checksum, string, int, error) {
	const hexLen = 2 * md5.Size

	if len(line) < hexLen {
		return md5.Checksum{}, "", 0, errors.New("truncated checksum")
	}
	sum, err := md5.ParseChecksum(line[:hexLen])
	if err != nil {
		return sum, "", 0, err
	}
	if len(line) < hexLen+2 || line[hexLen] != ' ' ||
		(line[hexLen+1] != ' ' && line[hexLen+1] != '*') {
		return sum, "", hexLen, errors.New("invalid separator")
	}
	file := line[hexLen+2:]
	if len(file) == 0 {
		return sum, "", hexLen + 2, errors.New("missing file name")
	}
	return sum, file, 0, nil
}

func checksumFile(file string) (md5.Checksum, error) {
	f, err := os.Open(file)
	if err != nil {
		return md5.Checksum{}, err
	}
	defer f.Close()

	sum, _, err := md5.SumReader(f)
	return sum, err
}
