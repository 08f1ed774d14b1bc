package edit

import "log/slog"

// defaultPattern names scratch files in the temp directory, with a random
// suffix filled in by os.CreateTemp.
const defaultPattern = "edit-*"

type options struct {
	editor  string
	pattern string
	logger  *slog.Logger
}

// Option configures a single edit operation.
type Option func(*options)

// WithEditor overrides editor resolution with an explicit command string,
// e.g. "code -w" or "'/opt/My Editor/ed' --wait". It takes precedence over
// $VISUAL and $EDITOR.
func WithEditor(command string) Option {
	return func(o *options) { o.editor = command }
}

// WithPattern sets the scratch file name pattern (see os.CreateTemp).
// Useful to give the editor a filename extension hint, e.g. "commit-*.md".
func WithPattern(pattern string) Option {
	return func(o *options) { o.pattern = pattern }
}

// WithLogger sets a logger for non-fatal diagnostics such as a scratch
// file that could not be removed. By default nothing is logged; the
// library never writes to any output stream on its own.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func buildOptions(opts []Option) options {
	o := options{
		pattern: defaultPattern,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.pattern == "" {
		o.pattern = defaultPattern
	}
	return o
}
