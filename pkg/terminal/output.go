package terminal

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// output remembers the first write error so screens can print freely and the
// loop checks once.
type output struct {
	w   io.Writer
	err error
}

func (o *output) printf(format string, args ...interface{}) {
	if o.err != nil {
		return
	}
	if _, err := fmt.Fprintf(o.w, format, args...); err != nil {
		o.err = errors.Wrap(err, "write output")
	}
}

func (o *output) println(line string) {
	o.printf("%s\n", line)
}

func (o *output) print(text string) {
	o.printf("%s", text)
}
