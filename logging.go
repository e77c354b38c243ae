package physics

import (
	"fmt"
	"log"
	"os"
)

// Logger is the sink the world writes out-of-bounds removals to (at Debugf);
// degenerate-collision fallbacks are absorbed without logging. Nothing the
// solver does is fatal (§7 policy),
// so there is no Fatalf/Panicf here — only levels a caller might filter on.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// stdLogger wraps the standard library's log.Logger with a level prefix.
type stdLogger struct {
	prefix string
	out    *log.Logger
}

// NewStdLogger returns a Logger that writes to stderr via the standard
// library, tagging every line with prefix.
func NewStdLogger(prefix string) Logger {
	return &stdLogger{
		prefix: prefix,
		out:    log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *stdLogger) line(level, format string, args ...any) string {
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, fmt.Sprintf(format, args...))
	}
	return fmt.Sprintf("%s: %s", level, fmt.Sprintf(format, args...))
}

func (l *stdLogger) Debugf(format string, args ...any) { l.out.Print(l.line("DEBUG", format, args...)) }
func (l *stdLogger) Infof(format string, args ...any)  { l.out.Print(l.line("INFO", format, args...)) }
func (l *stdLogger) Warnf(format string, args ...any)  { l.out.Print(l.line("WARN", format, args...)) }
func (l *stdLogger) Errorf(format string, args ...any) { l.out.Print(l.line("ERROR", format, args...)) }

// noopLogger discards everything; used as World's default so callers who
// don't care about logging don't need to construct one.
type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}
