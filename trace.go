package parsec

import (
	"go.uber.org/zap"
)

// Trace returns a parser that behaves like p and logs every run at debug
// level: the label, whether it matched, and how many tokens it consumed.
func Trace[K, T any](p Parser[K, T], logger *zap.Logger) Parser[K, T] {
	if logger == nil {
		return p
	}
	return Parser[K, T]{
		run: func(tokens []K, label string) Result[K, T] {
			res := p.run(tokens, label)

			fields := []zap.Field{
				zap.String("label", label),
				zap.Bool("ok", res.ok),
				zap.Int("consumed", len(tokens)-len(res.Remaining)),
				zap.Int("remaining", len(res.Remaining)),
			}
			if res.ok {
				fields = append(fields, zap.Any("parsed", res.Parsed))
			} else {
				fields = append(fields, zap.Stringer("kind", res.kind), zap.String("description", res.Description))
			}
			logger.Debug("parse", fields...)

			return res
		},
		label: p.label,
	}
}
