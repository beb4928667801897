package terminal

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrMalformedInput = errors.New("malformed numeric input")

const (
	blanks = " \t\r\f\v"
	// maxLineSize bounds a single input line.
	maxLineSize = 1 << 20
)

// input reads whole lines for text answers and whitespace-separated tokens for
// numbers. After a number is read, the rest of its line stays pending, so a
// following readLine returns that remainder instead of the next line.
type input struct {
	scanner *bufio.Scanner
	rest    string
	pending bool
}

func newInput(r io.Reader) *input {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &input{scanner: scanner}
}

func (in *input) readLine() (string, error) {
	if in.pending {
		line := in.rest
		in.rest, in.pending = "", false
		return line, nil
	}
	if !in.scanner.Scan() {
		return "", in.scanErr()
	}
	return in.scanner.Text(), nil
}

func (in *input) readInt() (int, error) {
	for {
		trimmed := strings.TrimLeft(in.rest, blanks)
		if in.pending && trimmed != "" {
			token := trimmed
			in.rest = ""
			if end := strings.IndexAny(trimmed, blanks); end >= 0 {
				token, in.rest = trimmed[:end], trimmed[end:]
			}
			n, err := strconv.Atoi(token)
			if err != nil {
				return 0, errors.Wrapf(ErrMalformedInput, "expected a number, got %q", token)
			}
			return n, nil
		}

		if !in.scanner.Scan() {
			return 0, in.scanErr()
		}
		in.rest, in.pending = in.scanner.Text(), true
	}
}

func (in *input) scanErr() error {
	if err := in.scanner.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	return io.EOF
}
