package lang

import (
	"github.com/ardnew/msdscript/log"
)

// Option configures parsing or evaluation behavior.
type Option func(*options)

type options struct {
	logger   log.Logger
	env      *Env
	maxDepth int
	strict   bool
}

func makeOptions(opts ...Option) options {
	o := options{env: Empty(), maxDepth: DefaultMaxDepth}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger used for trace output. The zero [log.Logger]
// discards everything.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEnv sets the environment in which [Eval] evaluates an expression.
func WithEnv(env *Env) Option {
	return func(o *options) {
		if env == nil {
			env = Empty()
		}

		o.env = env
	}
}

// WithMaxDepth limits the nesting depth of [Eval]. A depth of zero or less
// removes the limit.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithStrict makes [Parse] reject input remaining after the expression.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
