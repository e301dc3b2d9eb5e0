package guess

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/boundkit/boundkit/pkg/bounded"
)

// Outcome is the result of comparing a valid guess against the secret.
type Outcome string

// Possible outcomes of a guess.
const (
	OutcomeTooLow  Outcome = "too_low"
	OutcomeTooHigh Outcome = "too_high"
	OutcomeCorrect Outcome = "correct"
)

// Game is a single guessing-game round. A secret number is drawn from the
// configured range; each submitted guess is validated against the range before
// it is compared, so the game logic never sees an out-of-range number.
//
// Game is safe for concurrent use.
type Game struct {
	mu          sync.Mutex
	domain      bounded.Domain[int64]
	secret      bounded.Value[int64]
	maxAttempts int
	attempts    int
	won         bool
	log         *slog.Logger
}

// NewGame creates a game over [cfg.Min, cfg.Max] with a uniformly random
// secret. It returns ErrInvalidConfig for a negative attempt limit and
// bounded.ErrInvalidBounds for an inverted range.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if cfg.MaxAttempts < 0 {
		return nil, fmt.Errorf("%w: negative attempt limit %d", ErrInvalidConfig, cfg.MaxAttempts)
	}

	domain, err := bounded.NewDomain(cfg.Min, cfg.Max)
	if err != nil {
		return nil, err
	}

	g := &Game{
		domain:      domain,
		secret:      domain.Clamp(drawSecret(domain)),
		maxAttempts: cfg.MaxAttempts,
		log:         slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// drawSecret picks a uniformly random member of the domain. The offset is
// computed in uint64 so spans wider than int64 do not overflow; the uint64
// sum wraps back onto the correct two's-complement int64.
func drawSecret(d bounded.Domain[int64]) int64 {
	span := uint64(d.Max()) - uint64(d.Min())
	if span == math.MaxUint64 {
		return int64(rand.Uint64())
	}
	return int64(uint64(d.Min()) + rand.Uint64N(span+1))
}

// Submit validates raw against the game range and compares it to the secret.
//
// An out-of-range guess fails with a *bounded.RangeError and does not consume
// an attempt; the caller is expected to re-prompt. A valid guess consumes an
// attempt and yields OutcomeTooLow, OutcomeTooHigh or OutcomeCorrect.
// Submitting to a finished game fails with ErrGameOver or ErrNoAttemptsLeft.
func (g *Game) Submit(raw int64) (Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.won {
		return "", ErrGameOver
	}
	if g.maxAttempts > 0 && g.attempts >= g.maxAttempts {
		return "", ErrNoAttemptsLeft
	}

	v, err := g.domain.New(raw)
	if err != nil {
		g.log.Debug("rejected out-of-range guess",
			slog.Int64("guess", raw),
			slog.String("range", g.domain.String()))
		return "", err
	}

	g.attempts++

	var outcome Outcome
	switch {
	case v.Value() < g.secret.Value():
		outcome = OutcomeTooLow
	case v.Value() > g.secret.Value():
		outcome = OutcomeTooHigh
	default:
		outcome = OutcomeCorrect
		g.won = true
	}

	g.log.Debug("guess submitted",
		slog.Int64("guess", v.Value()),
		slog.String("outcome", string(outcome)),
		slog.Int("attempts", g.attempts))

	return outcome, nil
}

// Attempts returns the number of valid guesses submitted so far.
func (g *Game) Attempts() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attempts
}

// Won reports whether the secret has been guessed.
func (g *Game) Won() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.won
}

// Finished reports whether the game accepts no further guesses, either because
// the secret was guessed or because the attempt limit is exhausted.
func (g *Game) Finished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.won || (g.maxAttempts > 0 && g.attempts >= g.maxAttempts)
}

// Domain returns the guessing range.
func (g *Game) Domain() bounded.Domain[int64] {
	return g.domain
}
