package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/andareed/dutyfree-helper/logging"
)

// writeAll and writeOSC52 are package variables so tests can stub them.
var (
	writeAll   = clipboard.WriteAll
	writeOSC52 = copyOSC52
)

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// sequence when no native clipboard tool is available (e.g. over SSH).
func Copy(text string) error {
	err := writeAll(text)
	if err == nil {
		logging.Infof("Clipboard: copied via system clipboard")
		return nil
	}
	logging.Warnf("Clipboard: system clipboard failed: %v", err)

	if oscErr := writeOSC52(text); oscErr != nil {
		return fmt.Errorf("copy to clipboard: %w (osc52: %v)", err, oscErr)
	}
	return nil
}
