package match

import "go.uber.org/zap"

// Option customizes a Matcher.
type Option func(*Matcher)

// WithLogger routes the match trace to l at Debug level.
// Panics on nil; use zap.NewNop() to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("match: WithLogger(nil)")
	}
	return func(m *Matcher) {
		m.log = l
	}
}
