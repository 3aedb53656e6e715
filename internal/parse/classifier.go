// Package parse classifies raw command-line tokens into an Invocation.
//
// Grammar, in order of precedence:
//
//	terminator   ::= "--"                      (everything after is text)
//	sequence     ::= id { "," id } | id "-" id
//	tag          ::= ( "+" | "-" ) word
//	attribute    ::= name ":" [ value ]
//	substitution ::= "/" from "/" to "/" [ "g" ]
//	command      ::= first token naming a command or custom report
//	description  ::= anything else
package parse

import (
	"errors"
	"strings"

	"taskline/internal/dates"
	"taskline/internal/logs"
	"taskline/internal/validate"
	"taskline/internal/vocab"
)

// Classifier turns argument vectors into Invocations. It keeps no state
// between calls and may be shared.
type Classifier struct {
	registry   *vocab.Registry
	dateParser dates.Parser
	durations  dates.DurationParser
	dateFormat string
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithDateParser replaces the date facility.
func WithDateParser(p dates.Parser) Option {
	return func(c *Classifier) { c.dateParser = p }
}

// WithDurationParser replaces the duration facility.
func WithDurationParser(p dates.DurationParser) Option {
	return func(c *Classifier) { c.durations = p }
}

// WithDateFormat sets the format due: and until: values are written in.
func WithDateFormat(format string) Option {
	return func(c *Classifier) {
		if format != "" {
			c.dateFormat = format
		}
	}
}

// NewClassifier creates a Classifier resolving commands against reg.
func NewClassifier(reg *vocab.Registry, opts ...Option) *Classifier {
	c := &Classifier{
		registry:   reg,
		dateParser: dates.FormatParser{},
		durations:  dates.Durations{},
		dateFormat: dates.DefaultFormat,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type state struct {
	inv                         *Invocation
	terminated                  bool
	foundSequence               bool
	foundSomethingAfterSequence bool
	desc                        strings.Builder
}

func (s *state) appendDescription(arg string) {
	if s.desc.Len() > 0 {
		s.desc.WriteByte(' ')
	}
	s.desc.WriteString(arg)
}

// Classify assigns every token in args to exactly one category. A rejected
// attribute value aborts classification and no Invocation is returned.
func (c *Classifier) Classify(args []string) (*Invocation, error) {
	s := &state{inv: newInvocation()}

	for _, arg := range args {
		if err := c.classifyToken(s, arg); err != nil {
			logs.Logger.Debugw("classification failed", "token", arg, "error", err)
			return nil, err
		}
	}

	inv := s.inv
	inv.finish()

	if candidate := s.desc.String(); validate.Description(candidate) {
		inv.Description = candidate
	} else if candidate != "" {
		logs.Logger.Debugw("description dropped", "candidate", candidate)
	}

	logs.Logger.Debugw("classified", "invocation", inv.String())
	return inv, nil
}

func (c *Classifier) classifyToken(s *state, arg string) error {
	if s.terminated {
		s.markAfterSequence()
		s.appendDescription(arg)
		return nil
	}

	if arg == "--" {
		s.terminated = true
		return nil
	}

	if !strings.EqualFold(s.inv.Command, "add") && !s.foundSomethingAfterSequence {
		if ids, ok := validate.Sequence(arg); ok {
			s.foundSequence = true
			for _, id := range ids {
				s.inv.addID(id)
			}
			return nil
		}
	}

	s.markAfterSequence()

	if sign, name, ok := validate.Tag(arg); ok {
		if sign == '+' {
			s.inv.TagsAdd = append(s.inv.TagsAdd, name)
		} else {
			s.inv.TagsRemove = append(s.inv.TagsRemove, name)
		}
		return nil
	}

	if colon := strings.IndexByte(arg, ':'); colon >= 0 {
		return c.classifyAttribute(s, arg, colon)
	}

	if s.inv.Substitution == nil {
		if from, to, global, ok := validate.Substitution(arg); ok {
			s.inv.Substitution = &Substitution{From: from, To: to, Global: global}
			return nil
		}
	}

	if s.inv.Command == "" {
		if cmd, ok := c.registry.ResolveCommand(strings.ToLower(arg)); ok {
			s.inv.Command = cmd
			return nil
		}
	}

	s.appendDescription(arg)
	return nil
}

func (s *state) markAfterSequence() {
	if s.foundSequence {
		s.foundSomethingAfterSequence = true
	}
}

func (c *Classifier) classifyAttribute(s *state, arg string, colon int) error {
	name := strings.ToLower(arg[:colon])
	value := arg[colon+1:]

	a, err := validate.Attribute(name, value, validate.DateOptions{
		Parser: c.dateParser,
		Format: c.dateFormat,
	})
	if errors.Is(err, validate.ErrUnknownAttribute) {
		s.appendDescription(arg)
		return nil
	}
	if err != nil {
		return err
	}

	if a.Name == "recur" {
		if err := validate.Duration(a.Value, c.durations); err != nil {
			logs.Logger.Debugw("recurrence ignored", "value", a.Value, "error", err)
			return nil
		}
	}

	s.inv.Attributes[a.Name] = a.Value
	return nil
}
