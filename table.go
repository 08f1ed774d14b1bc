package edit

import "os"

// candidate is one fallback table entry: a command string, possibly with
// fixed leading arguments (e.g. a wait flag), and whether the editor needs
// a display session.
type candidate struct {
	command string
	gui     bool
}

// fallbackTable maps an OS family to its editor candidates in priority
// order. It is consulted only when no override is supplied and neither
// $VISUAL nor $EDITOR is set. Terminal editors come first so that edits
// over SSH or in a bare console keep working.
var fallbackTable = map[string][]candidate{
	"unix": {
		{command: "nano"},
		{command: "pico"},
		{command: "vim"},
		{command: "nvim"},
		{command: "vi"},
		{command: "emacs"},
		{command: "code -w", gui: true},
		{command: "subl -w", gui: true},
		{command: "gedit", gui: true},
		{command: "gvim", gui: true},
		{command: "xdg-open", gui: true},
		{command: "gnome-open", gui: true},
		{command: "kde-open", gui: true},
	},
	"darwin": {
		{command: "nano"},
		{command: "pico"},
		{command: "vim"},
		{command: "nvim"},
		{command: "vi"},
		{command: "emacs"},
		// open -Wt waits and uses the default text editor
		{command: "open -Wt", gui: true},
		{command: "code -w", gui: true},
		{command: "subl -w", gui: true},
		{command: "gvim", gui: true},
		{command: "mate", gui: true},
		{command: "open -a TextEdit", gui: true},
		{command: "open", gui: true},
	},
	"windows": {
		{command: "code.exe -w", gui: true},
		{command: "subl.exe -w", gui: true},
		{command: "notepad++.exe", gui: true},
		{command: "notepad.exe", gui: true},
	},
}

// osFamily collapses GOOS values to the fallback table's keys.
func osFamily(goos string) string {
	switch goos {
	case "windows", "darwin":
		return goos
	default:
		return "unix"
	}
}

// hasDisplay reports whether a display session is available, so GUI
// candidates can be skipped on headless systems. macOS and Windows always
// have one.
func hasDisplay(goos string) bool {
	switch goos {
	case "windows", "darwin":
		return true
	default:
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
}
