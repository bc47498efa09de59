package clipboard

import (
	"io"
	"os"
	"strings"

	"github.com/andareed/tcov/logging"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/pkg/errors"
)

func copyOSC52(w io.Writer, text string) error {
	if !osc52Supported() {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errors.New("clipboard unavailable (OSC52 unsupported by terminal)")
	}

	if _, err := osc52Sequence(text).WriteTo(w); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return errors.Wrap(err, "writing OSC52 sequence")
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

// osc52Sequence wraps the escape for tmux and screen so it reaches the
// outer terminal.
func osc52Sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	return seq
}

func osc52Supported() bool {
	if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return stdoutIsTTY()
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
