//go:build windows

package notify

import (
	"golang.org/x/sys/windows"

	"copypath/internal/log"
)

// MessageBox styles (winuser.h).
const (
	mbOK              = 0x00000000
	mbIconError       = 0x00000010
	mbIconWarning     = 0x00000030
	mbIconInformation = 0x00000040
	mbSetForeground   = 0x00010000
)

// Dialog shows a modal MessageBox per report and blocks until dismissed.
type Dialog struct{}

// NewDialog returns the platform dialog notifier.
func NewDialog() Notifier {
	return Dialog{}
}

func (Dialog) show(title, message string, style uint32) {
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	if _, err := windows.MessageBox(0, text, caption, style|mbSetForeground); err != nil {
		log.ErrorErr(log.CatUI, "message box failed", err, "title", title)
	}
}

// ReportSuccess implements Notifier.
func (d Dialog) ReportSuccess(message string) { d.show(TitleSuccess, message, mbOK) }

// ReportError implements Notifier.
func (d Dialog) ReportError(message string) { d.show(TitleError, message, mbOK|mbIconError) }

// ReportWarning implements Notifier.
func (d Dialog) ReportWarning(message string) { d.show(TitleWarning, message, mbOK|mbIconWarning) }
