// Package wordlist loads dictionary word lists and filters and samples them.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Field layout of a dictionary file.
const (
	Delimiter = ' '
	Quote     = '|'
)

var (
	// ErrFileAccess is returned when the dictionary cannot be opened or read.
	ErrFileAccess = errors.New("file access error")
	// ErrParse is returned when a row has malformed quoting.
	ErrParse = errors.New("parse error")
	// ErrUnterminatedQuote is the cause of a ParseError for a | quoted field that is
	// still open at the end of input.
	ErrUnterminatedQuote = errors.New("unterminated | quoted field")
)

// ParseError reports a malformed row. Line and Column are 1-based and point at the
// opening quote of the offending field.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Err)
}

// Is lets errors.Is(err, ErrParse) match.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

// LoadOptions tweaks how rows are read.
type LoadOptions struct {
	// SkipHeader drops the first row.
	SkipHeader bool
}

// Load reads the dictionary at path and returns the first field of every row.
func Load(path string, opts LoadOptions) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	return Read(f, opts)
}

// Read returns the first field of every row in r. Empty lines are skipped.
//
// Quoting is lenient: a | inside an unquoted field is kept as is, || inside a quoted
// field is a literal |, and text after a closing | is appended to the field. The only
// parse error is a quoted field that never closes.
func Read(r io.Reader, opts LoadOptions) ([]string, error) {
	s := &rowScanner{r: bufio.NewReader(r), line: 1}

	var words []string
	first := true
	for {
		row, err := s.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
		}
		if first {
			first = false
			if opts.SkipHeader {
				continue
			}
		}
		words = append(words, row[0])
	}

	return words, nil
}

type scanState int

const (
	startRecord scanState = iota
	startField
	inField
	inQuotedField
	quoteInQuotedField
)

// rowScanner splits a stream into rows of fields. Quoted fields may span lines.
type rowScanner struct {
	r    *bufio.Reader
	line int
	col  int
}

// next returns the fields of the next non-empty row, or io.EOF.
func (s *rowScanner) next() ([]string, error) {
	var (
		fields      []string
		field       strings.Builder
		state       = startRecord
		qLine, qCol int
	)

	endField := func() {
		fields = append(fields, field.String())
		field.Reset()
	}

	for {
		c, _, err := s.r.ReadRune()
		if err == io.EOF {
			switch state {
			case startRecord:
				return nil, io.EOF
			case inQuotedField:
				return nil, &ParseError{Line: qLine, Column: qCol, Err: ErrUnterminatedQuote}
			}
			endField()
			return fields, nil
		}
		if err != nil {
			return nil, err
		}

		s.col++
		line, col := s.line, s.col
		if c == '\n' {
			s.line++
			s.col = 0
		}

		if state == startRecord {
			if c == '\n' || c == '\r' {
				continue
			}
			state = startField
		}

		switch state {
		case startField:
			switch c {
			case '\n', '\r':
				endField()
				s.endLine(c)
				return fields, nil
			case Quote:
				state = inQuotedField
				qLine, qCol = line, col
			case Delimiter:
				endField()
			default:
				field.WriteRune(c)
				state = inField
			}

		case inField:
			switch c {
			case '\n', '\r':
				endField()
				s.endLine(c)
				return fields, nil
			case Delimiter:
				endField()
				state = startField
			default:
				field.WriteRune(c)
			}

		case inQuotedField:
			if c == Quote {
				state = quoteInQuotedField
			} else {
				field.WriteRune(c)
			}

		case quoteInQuotedField:
			switch c {
			case Quote:
				field.WriteRune(Quote)
				state = inQuotedField
			case Delimiter:
				endField()
				state = startField
			case '\n', '\r':
				endField()
				s.endLine(c)
				return fields, nil
			default:
				field.WriteRune(c)
				state = inField
			}
		}
	}
}

// endLine swallows the \n of a \r\n line ending.
func (s *rowScanner) endLine(c rune) {
	if c != '\r' {
		return
	}
	next, _, err := s.r.ReadRune()
	if err != nil {
		return
	}
	if next != '\n' {
		_ = s.r.UnreadRune()
		return
	}
	s.line++
	s.col = 0
}
