// Package clipboard writes the clicked item's path to the system clipboard.
package clipboard

import (
	"fmt"
	"io"
	"os"

	atotto "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"copypath/internal/log"
)

// Writer puts text on the clipboard.
type Writer interface {
	WriteText(text string) error
}

// System writes through the native clipboard. When the platform has none
// (e.g. a headless Linux box without xclip), it falls back to an OSC52
// escape sequence on Fallback so a terminal emulator can pick it up.
type System struct {
	Fallback io.Writer
}

// NewSystem returns a System writer falling back to stderr.
func NewSystem() *System {
	return &System{Fallback: os.Stderr}
}

// WriteText implements Writer.
func (s *System) WriteText(text string) error {
	if !atotto.Unsupported {
		err := atotto.WriteAll(text)
		if err == nil {
			log.Debug(log.CatClipboard, "copied", "bytes", len(text))
			return nil
		}
		if s.Fallback == nil {
			return fmt.Errorf("write clipboard: %w", err)
		}
		log.Warn(log.CatClipboard, "native clipboard failed, using OSC52", "error", err)
	}

	if s.Fallback == nil {
		return fmt.Errorf("write clipboard: no clipboard available")
	}
	if _, err := osc52.New(text).WriteTo(s.Fallback); err != nil {
		return fmt.Errorf("write clipboard via OSC52: %w", err)
	}
	log.Debug(log.CatClipboard, "copied via OSC52", "bytes", len(text))
	return nil
}
