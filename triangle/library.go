// Package triangle: text format for reference quotient libraries.
// The format is line-based and human-editable:
//
//	# comment
//	signature 8 3 2
//	quotient <genus> <number> <+|-> <a> <b> <d>
//
// where [[a,b],[0,d]] is the (not necessarily normalized) basis of the
// quotient's translation lattice and +/- is the mirror-symmetry flag.
// The signature line must precede the first quotient line.
package triangle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrLibraryFormat is returned (wrapped, with line context) when a library
// file is malformed.
var ErrLibraryFormat = errors.New("triangle: malformed library")

// ParseLibrary reads the text library format from r.
func ParseLibrary(r io.Reader) (*StaticLibrary, error) {
	var (
		sig       Signature
		haveSig   bool
		quotients []Quotient
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "signature":
			if len(fields) != 4 {
				return nil, errors.Wrapf(ErrLibraryFormat, "line %d: signature wants 3 integers", line)
			}
			vals, err := atois(fields[1:])
			if err != nil {
				return nil, errors.Wrapf(ErrLibraryFormat, "line %d: %v", line, err)
			}
			sig = Signature{P: vals[0], Q: vals[1], R: vals[2]}
			haveSig = true

		case "quotient":
			if !haveSig {
				return nil, errors.Wrapf(ErrLibraryFormat, "line %d: quotient before signature", line)
			}
			if len(fields) != 7 {
				return nil, errors.Wrapf(ErrLibraryFormat, "line %d: quotient wants genus number mirror a b d", line)
			}
			genus, err1 := strconv.Atoi(fields[1])
			number, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, errors.Wrapf(ErrLibraryFormat, "line %d: bad quotient identifier", line)
			}
			mirror, err := parseMirror(fields[3])
			if err != nil {
				return nil, errors.Wrapf(ErrLibraryFormat, "line %d: %v", line, err)
			}
			basis, err := atois(fields[4:])
			if err != nil {
				return nil, errors.Wrapf(ErrLibraryFormat, "line %d: %v", line, err)
			}
			sub, err := NewZLattice(sig, [2]int{basis[0], basis[1]}, [2]int{0, basis[2]})
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			quotients = append(quotients, Quotient{
				Genus:    genus,
				Number:   number,
				Mirror:   mirror,
				Subgroup: sub,
			})

		default:
			return nil, errors.Wrapf(ErrLibraryFormat, "line %d: unknown directive %q", line, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "triangle: reading library")
	}
	if !haveSig {
		return nil, errors.Wrap(ErrLibraryFormat, "missing signature line")
	}

	return NewStaticLibrary(sig, quotients)
}

// LoadLibrary reads the text library format from a file.
func LoadLibrary(path string) (*StaticLibrary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "triangle: opening library")
	}
	defer f.Close()

	return ParseLibrary(f)
}

func parseMirror(s string) (bool, error) {
	switch s {
	case "+":
		return true, nil
	case "-":
		return false, nil
	default:
		return false, fmt.Errorf("bad mirror flag %q (want + or -)", s)
	}
}

func atois(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", f)
		}
		out[i] = v
	}

	return out, nil
}
