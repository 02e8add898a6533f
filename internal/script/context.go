package script

import (
	"io"

	"github.com/sirupsen/logrus"

	"regexlab/internal/regexlib"
)

// Context stores the compile options and logger a script runs with.
type Context struct {
	Logger  logrus.FieldLogger
	Options []regexlib.Option
}

func (c *Context) logger() logrus.FieldLogger {
	if c == nil || c.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return c.Logger
}

func (c *Context) options() []regexlib.Option {
	if c == nil {
		return nil
	}
	return c.Options
}
