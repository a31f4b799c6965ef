package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Console writes diagnostics and waits for the user to acknowledge them.
type Console struct {
	input  io.Reader
	output io.Writer
}

// NewConsole binds the console to the process standard streams.
func NewConsole() *Console {
	return NewConsoleWithStreams(os.Stdin, os.Stdout)
}

func NewConsoleWithStreams(input io.Reader, output io.Writer) *Console {
	return &Console{
		input:  input,
		output: output,
	}
}

func (c *Console) Println(line string) {
	if _, err := fmt.Fprintln(c.output, line); err != nil {
		logrus.Errorf("Cannot write to console: %v", err)
	}
}

// WaitKey blocks until a single key has been pressed. A terminal is put in
// raw mode for the duration of the read so that Enter is not required.
// A closed input counts as acknowledged.
func (c *Console) WaitKey() {
	if file, ok := c.input.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		state, err := term.MakeRaw(int(file.Fd()))
		if err != nil {
			logrus.Debugf("Cannot switch terminal to raw mode: %v", err)
		} else {
			defer term.Restore(int(file.Fd()), state)
		}
	}

	buffer := make([]byte, 1)
	if _, err := c.input.Read(buffer); err != nil && !errors.Is(err, io.EOF) {
		logrus.Debugf("Cannot read key: %v", err)
	}
}
