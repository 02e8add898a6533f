package script

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"regexlab/internal/regexlib"
)

// Failure is one check that did not hold.
type Failure struct {
	Pos     lexer.Position
	Pattern string
	Msg     string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %q: %s", f.Pos, f.Pattern, f.Msg)
}

// Report summarizes a script run.
type Report struct {
	Cases    int
	Checks   int
	Failures []Failure
}

func (r *Report) OK() bool { return len(r.Failures) == 0 }

func (r *Report) fail(pos lexer.Position, pattern, format string, args ...interface{}) {
	r.Failures = append(r.Failures, Failure{Pos: pos, Pattern: pattern, Msg: fmt.Sprintf(format, args...)})
}

// Err folds the failures into one error, nil when every check held.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	lines := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		lines[i] = f.String()
	}
	return errors.Errorf("%d of %d checks failed:\n%s", len(r.Failures), r.Checks, strings.Join(lines, "\n"))
}

func (r *Report) String() string {
	return fmt.Sprintf("%d cases, %d checks, %d failures", r.Cases, r.Checks, len(r.Failures))
}

// Run executes every case. Accept and reject checks run on all engines.
func (s *Script) Run(ctx *Context) *Report {
	rep := &Report{}
	for _, c := range s.Cases {
		rep.Cases++
		c.Exec(ctx, rep)
	}
	ctx.logger().WithFields(logrus.Fields{
		"cases":    rep.Cases,
		"checks":   rep.Checks,
		"failures": len(rep.Failures),
	}).Info("script finished")
	return rep
}

func (c *Case) Exec(ctx *Context, rep *Report) {
	switch {
	case c.Invalid != nil:
		rep.Checks++
		if _, err := regexlib.Compile(*c.Invalid, ctx.options()...); err == nil {
			rep.fail(c.Pos, *c.Invalid, "compiled, want an error")
		} else {
			ctx.logger().WithField("pattern", *c.Invalid).Debugf("rejected as expected: %v", err)
		}
	case c.Pattern != nil:
		c.Pattern.Exec(ctx, rep, c.Pos)
	}
}

func (p *PatternCase) Exec(ctx *Context, rep *Report, pos lexer.Position) {
	opts := append([]regexlib.Option{regexlib.WithLogger(ctx.logger())}, ctx.options()...)
	re, err := regexlib.Compile(p.Regex, opts...)
	if err != nil {
		rep.Checks++
		rep.fail(pos, p.Regex, "compile: %v", err)
		return
	}
	for _, chk := range p.Checks {
		chk.Exec(ctx, rep, re)
	}
}

func (chk *Check) Exec(ctx *Context, rep *Report, re *regexlib.Regex) {
	pattern := re.Pattern()
	switch {
	case chk.Accept != nil:
		chk.expect(rep, re, chk.Accept, true)
	case chk.Reject != nil:
		chk.expect(rep, re, chk.Reject, false)
	case chk.States != nil:
		rep.Checks++
		if got := re.DFA().Len(); got != *chk.States {
			rep.fail(chk.Pos, pattern, "minimal DFA has %d states, want %d", got, *chk.States)
		}
	case chk.Postfix != nil:
		rep.Checks++
		if got := re.Postfix().String(); got != *chk.Postfix {
			rep.fail(chk.Pos, pattern, "postfix %q, want %q", got, *chk.Postfix)
		}
	case chk.Same != nil:
		rep.Checks++
		other, err := regexlib.Compile(*chk.Same, ctx.options()...)
		if err != nil {
			rep.fail(chk.Pos, pattern, "compile %q: %v", *chk.Same, err)
			return
		}
		if w, differ := regexlib.Distinguish(re.DFA(), other.DFA()); differ {
			rep.fail(chk.Pos, pattern, "differs from %q on %q", *chk.Same, w)
		}
	}
}

func (chk *Check) expect(rep *Report, re *regexlib.Regex, inputs []string, want bool) {
	for _, in := range inputs {
		rep.Checks++
		for _, e := range regexlib.Engines {
			got, err := re.MatchWith(e, in)
			if err != nil {
				rep.fail(chk.Pos, re.Pattern(), "%s: %v", e, err)
				continue
			}
			if got != want {
				rep.fail(chk.Pos, re.Pattern(), "%s: %q accepted=%v, want %v", e, in, got, want)
			}
		}
	}
}
