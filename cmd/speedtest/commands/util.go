package commands

import (
	"io"
	"os"

	"github.com/Dynom/speedtest/cmd/speedtest/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

func newLogger(conf config.Config, out io.Writer) (*logrus.Logger, error) {
	var err error
	logger := logrus.New()
	logger.Out = out
	logger.Level, err = logrus.ParseLevel(conf.Log.Level)
	if err != nil {
		return nil, err
	}

	switch conf.Log.Format {
	case config.LFJSON:
		logger.Formatter = &logrus.JSONFormatter{}
	default:
		logger.Formatter = &logrus.TextFormatter{
			DisableColors: !isTerminal(out),
		}
	}

	return logger, nil
}

// isTerminal returns true when w is a file attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
