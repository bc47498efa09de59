// Package clipboard copies text to the system clipboard, falling back to
// the terminal's OSC52 escape when no clipboard tool is available.
package clipboard

import (
	"os"

	"github.com/andareed/tcov/logging"
	sysclip "github.com/atotto/clipboard"
)

// Copy puts text on the clipboard.
func Copy(text string) error {
	if !sysclip.Unsupported {
		err := sysclip.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied via system clipboard")
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed, trying OSC52: %v", err)
	}
	return copyOSC52(os.Stdout, text)
}

// for tests
var stdoutIsTTY = func() bool { return isTTY(os.Stdout) }
