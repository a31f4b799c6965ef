//go:build windows

package dialog

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// ShowError displays a modal error box with a single OK button and returns
// once it has been dismissed.
func (d *Dialog) ShowError(title, message string) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		logrus.Errorf("Invalid dialog title: %v", err)
		return
	}
	messagePtr, err := windows.UTF16PtrFromString(message)
	if err != nil {
		logrus.Errorf("Invalid dialog message: %v", err)
		return
	}
	if _, err = windows.MessageBox(0, messagePtr, titlePtr, windows.MB_OK|windows.MB_ICONERROR); err != nil {
		logrus.Errorf("Cannot show dialog: %v", err)
	}
}
