package processing

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// MaxLineBytes bounds a single input line. Longer lines are reported and
// skipped.
const MaxLineBytes = 1 << 20

var (
	ErrLineTooLong = errors.New("line exceeds maximum length")
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// Unit is one piece of text to analyze. Line is the 1-based position in the
// source file, or 0 for a single text argument. Err is set for a line that
// could not be read; the run continues with the next line.
type Unit struct {
	Line int
	Text string
	Err  error
}

func EachText(text string, fn func(Unit)) {
	fn(Unit{Text: text})
}

// EachLine calls fn for every non-blank line of r, in order. Blank lines are
// counted but not passed on. Lines that are too long or not valid UTF-8 are
// passed on as error units. The returned error is a read failure that ends
// the whole run.
func EachLine(r io.Reader, fn func(Unit)) error {
	br := bufio.NewReaderSize(r, 64*1024)
	lineNo := 0

	for {
		line, tooLong, err := readLine(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("[Dispatcher] read line %d: %w", lineNo+1, err)
		}
		lineNo++

		if tooLong {
			fn(Unit{Line: lineNo, Err: fmt.Errorf("%w (%d bytes)", ErrLineTooLong, MaxLineBytes)})
			continue
		}

		if !utf8.ValidString(line) {
			fn(Unit{Line: lineNo, Err: ErrInvalidUTF8})
			continue
		}

		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(Unit{Line: lineNo, Text: line})
	}
}

// readLine returns the next line without its terminator. A line longer than
// MaxLineBytes is consumed in full and flagged instead of returned.
func readLine(br *bufio.Reader) (string, bool, error) {
	var sb strings.Builder
	tooLong := false
	read := false

	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if err == io.EOF && read {
				return sb.String(), tooLong, nil
			}
			return "", false, err
		}
		read = true

		if !tooLong {
			if sb.Len()+len(chunk) > MaxLineBytes {
				tooLong = true
				sb.Reset()
			} else {
				sb.Write(chunk)
			}
		}
		if !isPrefix {
			if tooLong {
				return "", true, nil
			}
			return sb.String(), false, nil
		}
	}
}

// OpenInput opens path for reading; "-" is stdin. The caller closes the
// returned reader.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("[Dispatcher] open input file: %w", err)
	}
	return f, nil
}
