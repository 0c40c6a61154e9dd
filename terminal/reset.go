package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore the terminal to a sane state without the
// driver. Call it from panic recovery on goroutines that cannot reach
// Session.Close; errors are ignored.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiScrollRegionOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
		// Escape sequences alone don't restore termios
		resetTerminalMode()
	}
}
