//go:build !windows

package dialog

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// ShowError writes the message in red to the fallback writer.
func (d *Dialog) ShowError(title, message string) {
	if _, err := color.New(color.FgRed, color.Bold).Fprintf(d.Fallback, "%s: %s\n", title, message); err != nil {
		logrus.Errorf("Cannot show dialog: %v", err)
	}
}
