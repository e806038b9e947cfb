package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"

	"github.com/andareed/dutyfree-helper/logging"
)

// errNoOSC52 is returned when stdout cannot carry an OSC52 sequence.
var errNoOSC52 = errors.New("terminal does not support OSC52")

func copyOSC52(text string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return errNoOSC52
	}
	return writeSequence(os.Stdout, text, os.Getenv("TERM"), os.Getenv("TMUX") != "")
}

// writeSequence emits the OSC52 copy sequence for text, wrapped for tmux or
// screen when term calls for it.
func writeSequence(w io.Writer, text, term string, inTmux bool) error {
	if term == "" || strings.EqualFold(term, "dumb") {
		return errNoOSC52
	}

	seq := osc52.New(text)
	switch {
	case inTmux || strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(w); err != nil {
		return fmt.Errorf("write OSC52: %w", err)
	}
	logging.Debugf("Clipboard: copied %d bytes via OSC52", len(text))
	return nil
}
