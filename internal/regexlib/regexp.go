package regexlib

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Engine names one of the four automata a Regex carries.
type Engine string

const (
	EngineNFA    Engine = "nfa"    // Thompson NFA
	EngineDFA    Engine = "dfa"    // subset construction
	EngineMin    Engine = "min"    // minimized subset DFA
	EngineDirect Engine = "direct" // followpos construction
)

// Engines lists every engine in pipeline order.
var Engines = []Engine{EngineNFA, EngineDFA, EngineMin, EngineDirect}

type options struct {
	endMarker rune
	logger    logrus.FieldLogger
}

type Option func(*options)

// WithEndMarker overrides the symbol that terminates the augmented pattern.
func WithEndMarker(r rune) Option { return func(o *options) { o.endMarker = r } }

// WithLogger sets the logger that receives per-stage debug records.
func WithLogger(l logrus.FieldLogger) Option { return func(o *options) { o.logger = l } }

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

/* ----------- Компиляция ----------- */

// Regex is a compiled pattern together with every automaton derived from it.
// It is immutable once built.
type Regex struct {
	pattern string
	postfix Postfix
	tree    *Node // augmented with the end marker

	nfa       *NFA
	rawDFA    *DFA
	dfa       *DFA
	directDFA *DFA
}

func Compile(pattern string, opts ...Option) (*Regex, error) {
	o := options{endMarker: DefaultEndMarker, logger: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.WithField("pattern", pattern)

	if strings.ContainsRune(pattern, o.endMarker) {
		return nil, errors.Wrapf(ErrReservedSymbol, "compile %q: '%c'", pattern, o.endMarker)
	}

	/* 1) infix → postfix */
	postfix, err := ToPostfix(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", pattern)
	}
	log = log.WithField("postfix", postfix.String())

	/* 2) Thompson-NFA */
	nfa, err := Thompson(postfix)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", pattern)
	}

	/* 3) NFA → DFA → minimal DFA */
	raw := SubsetConstruction(nfa)
	minimal := Minimize(raw)

	/* 4) syntax tree → DFA */
	tree, err := BuildTree(Augment(postfix, o.endMarker))
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", pattern)
	}
	direct, err := DirectDFA(tree, o.endMarker)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", pattern)
	}

	log.WithFields(logrus.Fields{
		"nfa_states":    len(nfa.States),
		"dfa_states":    raw.Len(),
		"min_states":    minimal.Len(),
		"direct_states": direct.Len(),
	}).Debug("compiled")

	return &Regex{
		pattern:   pattern,
		postfix:   postfix,
		tree:      tree,
		nfa:       nfa,
		rawDFA:    raw,
		dfa:       minimal,
		directDFA: direct,
	}, nil
}

func MustCompile(p string, opts ...Option) *Regex {
	r, err := Compile(p, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Match reports whether the whole input belongs to the language, using the
// minimal DFA.
func (r *Regex) Match(s string) bool { return r.dfa.Match(s) }

// MatchWith runs the input through the chosen engine.
func (r *Regex) MatchWith(e Engine, s string) (bool, error) {
	switch e {
	case EngineNFA:
		return r.nfa.Match(s), nil
	case EngineDFA:
		return r.rawDFA.Match(s), nil
	case EngineMin:
		return r.dfa.Match(s), nil
	case EngineDirect:
		return r.directDFA.Match(s), nil
	default:
		return false, errors.Errorf("unknown engine %q", e)
	}
}

// Automaton returns the *NFA or *DFA behind an engine.
func (r *Regex) Automaton(e Engine) (any, error) {
	switch e {
	case EngineNFA:
		return r.nfa, nil
	case EngineDFA:
		return r.rawDFA, nil
	case EngineMin:
		return r.dfa, nil
	case EngineDirect:
		return r.directDFA, nil
	default:
		return nil, errors.Errorf("unknown engine %q", e)
	}
}

/* ----------- Сервисные геттеры --------------------------------------- */

func (r *Regex) Pattern() string  { return r.pattern }
func (r *Regex) Postfix() Postfix { return r.postfix }
func (r *Regex) Tree() *Node      { return r.tree }
func (r *Regex) NFA() *NFA        { return r.nfa }
func (r *Regex) RawDFA() *DFA     { return r.rawDFA }
func (r *Regex) DFA() *DFA        { return r.dfa }
func (r *Regex) DirectDFA() *DFA  { return r.directDFA }
func (r *Regex) String() string   { return r.pattern }
