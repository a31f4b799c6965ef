// Package dialog presents blocking error messages to the desktop user.
package dialog

import (
	"io"
	"os"
)

type Dialog struct {
	// Fallback receives the message where no native modal box exists
	Fallback io.Writer
}

func NewDialog() *Dialog {
	return &Dialog{Fallback: os.Stderr}
}
