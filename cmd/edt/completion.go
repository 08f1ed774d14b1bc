package main

import (
	"os/exec"
	"strings"

	"github.com/posener/complete"
)

// knownEditors are candidates suggested for --editor completion.
var knownEditors = []string{
	"nano", "pico", "vim", "nvim", "vi", "emacs",
	"code", "subl", "gedit", "gvim", "mate",
	"notepad.exe", "notepad++.exe",
}

// newEditorPredictor returns a predictor that suggests editors actually
// present on the search path.
func newEditorPredictor() complete.Predictor {
	return complete.PredictFunc(func(args complete.Args) []string {
		var results []string
		for _, name := range knownEditors {
			if !strings.HasPrefix(name, args.Last) {
				continue
			}
			if _, err := exec.LookPath(name); err != nil {
				continue
			}
			results = append(results, name)
		}
		return results
	})
}
