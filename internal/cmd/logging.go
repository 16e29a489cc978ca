package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
)

// maxVerbosity caps repeated -v flags.
const maxVerbosity = 3

// plainFormatter writes the bare message, one per line.
type plainFormatter struct{}

func (plainFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b := make([]byte, 0, len(e.Message)+1)
	b = append(b, e.Message...)
	return append(b, '\n'), nil
}

// newLogger builds the diagnostics logger. Quiet discards everything;
// otherwise errors and advisories are printed and each -v adds a level.
func newLogger(w io.Writer, quiet bool, verbosity int) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(plainFormatter{})
	l.SetOutput(w)
	if quiet {
		l.SetOutput(io.Discard)
		l.SetLevel(logrus.PanicLevel)
		return l
	}
	l.SetLevel(verbosityLevel(verbosity))
	return l
}

func verbosityLevel(v int) logrus.Level {
	switch min(max(v, 0), maxVerbosity) {
	case 0:
		return logrus.WarnLevel
	case 1:
		return logrus.InfoLevel
	case 2:
		return logrus.DebugLevel
	}
	return logrus.TraceLevel
}
