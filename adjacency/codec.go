// Package adjacency: text serialization of the quotient-sequences structure.
// The format is line-based, human-readable, and fully deterministic, so a
// structure round-trips byte-identically through Export/Import regardless
// of the target (stream, file, or in-memory string):
//
//	hypercells adjacency v1
//	signature <p> <q> <r>
//	bound <b>
//	sparse <true|false>
//	quotients <n>
//	quotient <genus> <number> <+|->      (n lines, mirror flag last)
//	matrix full <dense n | sparse n k>
//	...                                  (n dense rows, or k "i j v" triples)
//	matrix nearest <dense n | sparse n k>
//	...
//	end
//
// The sparse flag selects which of the two encodings is emitted; both carry
// the same relation. Imported structures carry no translation-subgroup
// handles: those are engine-bound and must be re-resolved through a
// Library before the structure can feed the extension engine.
package adjacency

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	pkgerrors "github.com/pkg/errors"

	"github.com/marcelolooser/HyperCells/triangle"
)

// ErrCodecFormat is returned (wrapped, with line context) for malformed
// import text.
var ErrCodecFormat = errors.New("adjacency: malformed structure text")

const codecHeader = "hypercells adjacency v1"

// ExportTo writes the canonical text form of st to w.
func (st *Structure) ExportTo(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, codecHeader)
	fmt.Fprintf(bw, "signature %d %d %d\n", st.sig.P, st.sig.Q, st.sig.R)
	fmt.Fprintf(bw, "bound %d\n", st.bound)
	fmt.Fprintf(bw, "sparse %t\n", st.sparse)
	fmt.Fprintf(bw, "quotients %d\n", len(st.quotients))
	for i, q := range st.quotients {
		flag := "-"
		if st.Mirror(i) {
			flag = "+"
		}
		fmt.Fprintf(bw, "quotient %d %d %s\n", q.Genus, q.Number, flag)
	}
	writeMatrix(bw, "full", st.full, st.sparse)
	writeMatrix(bw, "nearest", st.nearest, st.sparse)
	fmt.Fprintln(bw, "end")

	return pkgerrors.Wrap(bw.Flush(), "adjacency: exporting structure")
}

// ExportString returns the canonical text form of st.
func (st *Structure) ExportString() (string, error) {
	var sb strings.Builder
	if err := st.ExportTo(&sb); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// ExportFile writes the canonical text form of st to a file.
func (st *Structure) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrap(err, "adjacency: creating export file")
	}
	defer f.Close()

	return st.ExportTo(f)
}

// writeMatrix emits one matrix section in the requested encoding.
func writeMatrix(w io.Writer, name string, m *Matrix, sparse bool) {
	n := m.Rows()
	if sparse {
		entries := m.ToSparse()
		fmt.Fprintf(w, "matrix %s sparse %d %d\n", name, n, len(entries))
		for _, e := range entries {
			fmt.Fprintf(w, "%d %d %d\n", e.Row, e.Col, e.Val)
		}

		return
	}

	fmt.Fprintf(w, "matrix %s dense %d\n", name, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, m.cells[i*n+j])
		}
		fmt.Fprintln(w)
	}
}

// Import reads a structure from its canonical text form.
func Import(r io.Reader) (*Structure, error) {
	p := &codecParser{scanner: bufio.NewScanner(r)}

	st, err := p.parse()
	if err != nil {
		return nil, err
	}

	return st, nil
}

// ImportString reads a structure from an in-memory string.
func ImportString(s string) (*Structure, error) {
	return Import(strings.NewReader(s))
}

// ImportFile reads a structure from a file.
func ImportFile(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "adjacency: opening import file")
	}
	defer f.Close()

	return Import(f)
}

// codecParser consumes the line-based format strictly in order.
type codecParser struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the next line, or an error at EOF.
func (p *codecParser) next() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", pkgerrors.Wrap(err, "adjacency: reading structure")
		}

		return "", pkgerrors.Wrapf(ErrCodecFormat, "line %d: unexpected end of input", p.line)
	}
	p.line++

	return p.scanner.Text(), nil
}

// fail wraps ErrCodecFormat with line context.
func (p *codecParser) fail(format string, args ...interface{}) error {
	return pkgerrors.Wrapf(ErrCodecFormat, "line %d: %s", p.line, fmt.Sprintf(format, args...))
}

func (p *codecParser) parse() (*Structure, error) {
	// 1. Header.
	header, err := p.next()
	if err != nil {
		return nil, err
	}
	if header != codecHeader {
		return nil, p.fail("bad header %q", header)
	}

	// 2. Signature, bound, sparse flag.
	sigFields, err := p.directive("signature", 3)
	if err != nil {
		return nil, err
	}
	sig := triangle.Signature{P: sigFields[0], Q: sigFields[1], R: sigFields[2]}

	boundFields, err := p.directive("bound", 1)
	if err != nil {
		return nil, err
	}

	sparseLine, err := p.next()
	if err != nil {
		return nil, err
	}
	var sparse bool
	switch sparseLine {
	case "sparse true":
		sparse = true
	case "sparse false":
		sparse = false
	default:
		return nil, p.fail("bad sparse flag %q", sparseLine)
	}

	// 3. Quotient list with mirror flags.
	countFields, err := p.directive("quotients", 1)
	if err != nil {
		return nil, err
	}
	n := countFields[0]
	if n < 0 {
		return nil, p.fail("negative quotient count %d", n)
	}

	quotients := make([]triangle.Quotient, n)
	mirror := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		line, err := p.next()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 4 || fields[0] != "quotient" {
			return nil, p.fail("bad quotient line %q", line)
		}
		genus, err1 := strconv.Atoi(fields[1])
		number, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil {
			return nil, p.fail("bad quotient identifier in %q", line)
		}
		var m bool
		switch fields[3] {
		case "+":
			m = true
		case "-":
			m = false
		default:
			return nil, p.fail("bad mirror flag %q", fields[3])
		}
		quotients[i] = triangle.Quotient{Genus: genus, Number: number, Mirror: m}
		if m {
			mirror.Set(uint(i))
		}
	}

	// 4. The two matrices, then the trailer.
	full, err := p.matrix("full", n)
	if err != nil {
		return nil, err
	}
	nearest, err := p.matrix("nearest", n)
	if err != nil {
		return nil, err
	}

	trailer, err := p.next()
	if err != nil {
		return nil, err
	}
	if trailer != "end" {
		return nil, p.fail("bad trailer %q", trailer)
	}

	return &Structure{
		sig:       sig,
		bound:     boundFields[0],
		quotients: quotients,
		mirror:    mirror,
		sparse:    sparse,
		full:      full,
		nearest:   nearest,
	}, nil
}

// directive reads one "<name> <int>..." line with exactly want integers.
func (p *codecParser) directive(name string, want int) ([]int, error) {
	line, err := p.next()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != want+1 || fields[0] != name {
		return nil, p.fail("expected %q directive, got %q", name, line)
	}

	out := make([]int, want)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, p.fail("bad integer %q", f)
		}
		out[i] = v
	}

	return out, nil
}

// matrix reads one matrix section in either encoding.
func (p *codecParser) matrix(name string, n int) (*Matrix, error) {
	line, err := p.next()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) < 4 || fields[0] != "matrix" || fields[1] != name {
		return nil, p.fail("expected matrix %s section, got %q", name, line)
	}

	dim, err := strconv.Atoi(fields[3])
	if err != nil || dim != n {
		return nil, p.fail("matrix %s dimension %q does not match quotient count %d", name, fields[3], n)
	}

	switch fields[2] {
	case "dense":
		if len(fields) != 4 {
			return nil, p.fail("bad dense matrix header %q", line)
		}

		return p.denseRows(n)

	case "sparse":
		if len(fields) != 5 {
			return nil, p.fail("bad sparse matrix header %q", line)
		}
		count, err := strconv.Atoi(fields[4])
		if err != nil || count < 0 {
			return nil, p.fail("bad sparse entry count %q", fields[4])
		}

		return p.sparseEntries(n, count)

	default:
		return nil, p.fail("unknown matrix encoding %q", fields[2])
	}
}

// denseRows reads n rows of n integers.
func (p *codecParser) denseRows(n int) (*Matrix, error) {
	m, err := NewMatrix(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		line, err := p.next()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != n {
			return nil, p.fail("dense row has %d cells, want %d", len(fields), n)
		}
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, p.fail("bad cell %q", f)
			}
			m.cells[i*n+j] = v
		}
	}

	return m, nil
}

// sparseEntries reads count "row col val" triples.
func (p *codecParser) sparseEntries(n, count int) (*Matrix, error) {
	entries := make([]SparseEntry, 0, count)
	for i := 0; i < count; i++ {
		line, err := p.next()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, p.fail("bad sparse triple %q", line)
		}
		row, err1 := strconv.Atoi(fields[0])
		col, err2 := strconv.Atoi(fields[1])
		val, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, p.fail("bad sparse triple %q", line)
		}
		entries = append(entries, SparseEntry{Row: row, Col: col, Val: val})
	}

	m, err := NewMatrixFromSparse(n, entries)
	if err != nil {
		return nil, p.fail("%v", err)
	}

	return m, nil
}
