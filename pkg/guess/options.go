package guess

import "log/slog"

// Option configures a game during construction.
type Option func(*Game) error

// WithSecret fixes the secret number instead of drawing a random one.
// The secret must lie within the game range. Intended for tests and replays.
func WithSecret(secret int64) Option {
	return func(g *Game) error {
		v, err := g.domain.New(secret)
		if err != nil {
			return err
		}
		g.secret = v
		return nil
	}
}

// WithLogger sets the logger used for per-guess debug logging.
// By default logging is discarded.
func WithLogger(log *slog.Logger) Option {
	return func(g *Game) error {
		if log != nil {
			g.log = log
		}
		return nil
	}
}
