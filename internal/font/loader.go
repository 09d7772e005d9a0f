package font

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Loader resolves font references to faces.
//
// Resolution order: empty reference -> default face, built-in name ->
// embedded face, absolute path -> that file, otherwise ref relative to the
// working directory, then <dir>/<ref> and <dir>/<ref>.yaml for each of Dirs.
type Loader struct {
	Dirs   []string
	Logger *log.Logger
}

// NewLoader creates a loader searching the given asset directories.
// A nil logger discards warnings.
func NewLoader(logger *log.Logger, dirs ...string) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Dirs: dirs, Logger: logger}
}

// Open resolves ref strictly, returning an error when no asset matches.
func (l *Loader) Open(ref string) (Face, error) {
	if ref == "" || ref == DefaultName {
		return Default(), nil
	}
	if f, ok := Builtin(ref); ok {
		return f, nil
	}

	for _, candidate := range l.candidates(ref) {
		data, err := os.ReadFile(candidate)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Face{}, fmt.Errorf("read font %s: %w", candidate, err)
		}
		return Parse(data)
	}
	return Face{}, fmt.Errorf("%w: %q", ErrFontNotFound, ref)
}

// Load resolves ref and never fails: any error is logged and the default
// face is returned instead.
func (l *Loader) Load(ref string) Face {
	f, err := l.Open(ref)
	if err != nil {
		l.logger().Warn("font asset unavailable, using default", "font", ref, "error", err)
		return Default()
	}
	return f
}

func (l *Loader) candidates(ref string) []string {
	if filepath.IsAbs(ref) {
		return []string{ref}
	}
	out := []string{ref}
	for _, dir := range l.Dirs {
		out = append(out, filepath.Join(dir, ref), filepath.Join(dir, ref+".yaml"))
	}
	return out
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}
