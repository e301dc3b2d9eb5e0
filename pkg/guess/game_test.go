package guess_test

import (
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boundkit/boundkit/pkg/bounded"
	"github.com/boundkit/boundkit/pkg/guess"
)

func TestNewGame(t *testing.T) {
	t.Parallel()

	t.Run("creates game with default config", func(t *testing.T) {
		game, err := guess.NewGame(guess.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, int64(1), game.Domain().Min())
		assert.Equal(t, int64(100), game.Domain().Max())
		assert.Equal(t, 0, game.Attempts())
		assert.False(t, game.Finished())
	})

	t.Run("fails on inverted range", func(t *testing.T) {
		_, err := guess.NewGame(guess.Config{Min: 100, Max: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, bounded.ErrInvalidBounds)
	})

	t.Run("fails on negative attempt limit", func(t *testing.T) {
		_, err := guess.NewGame(guess.Config{Min: 1, Max: 100, MaxAttempts: -1})
		require.Error(t, err)
		assert.ErrorIs(t, err, guess.ErrInvalidConfig)
	})

	t.Run("fails on out-of-range fixed secret", func(t *testing.T) {
		_, err := guess.NewGame(guess.DefaultConfig(), guess.WithSecret(101))
		require.Error(t, err)
		assert.ErrorIs(t, err, bounded.ErrOutOfRange)
	})

	t.Run("handles the full int64 range", func(t *testing.T) {
		game, err := guess.NewGame(guess.Config{Min: math.MinInt64, Max: math.MaxInt64})
		require.NoError(t, err)

		outcome, err := game.Submit(0)
		require.NoError(t, err)
		assert.Contains(t, []guess.Outcome{guess.OutcomeTooLow, guess.OutcomeTooHigh, guess.OutcomeCorrect}, outcome)
	})

	t.Run("handles spans wider than int64", func(t *testing.T) {
		game, err := guess.NewGame(
			guess.Config{Min: math.MinInt64 + 1, Max: math.MaxInt64},
			guess.WithSecret(math.MaxInt64))
		require.NoError(t, err)

		outcome, err := game.Submit(math.MinInt64 + 1)
		require.NoError(t, err)
		assert.Equal(t, guess.OutcomeTooLow, outcome)
	})

	t.Run("drawn secret is always guessable", func(t *testing.T) {
		// Single-value domain forces the drawn secret onto the only member.
		game, err := guess.NewGame(guess.Config{Min: 7, Max: 7})
		require.NoError(t, err)

		outcome, err := game.Submit(7)
		require.NoError(t, err)
		assert.Equal(t, guess.OutcomeCorrect, outcome)
	})
}

func TestGameSubmit(t *testing.T) {
	t.Parallel()

	newGame := func(t *testing.T, cfg guess.Config, secret int64) *guess.Game {
		t.Helper()
		game, err := guess.NewGame(cfg, guess.WithSecret(secret))
		require.NoError(t, err)
		return game
	}

	t.Run("reports too low", func(t *testing.T) {
		game := newGame(t, guess.DefaultConfig(), 50)

		outcome, err := game.Submit(25)
		require.NoError(t, err)
		assert.Equal(t, guess.OutcomeTooLow, outcome)
	})

	t.Run("reports too high", func(t *testing.T) {
		game := newGame(t, guess.DefaultConfig(), 50)

		outcome, err := game.Submit(75)
		require.NoError(t, err)
		assert.Equal(t, guess.OutcomeTooHigh, outcome)
	})

	t.Run("reports correct guess and finishes the game", func(t *testing.T) {
		game := newGame(t, guess.DefaultConfig(), 50)

		outcome, err := game.Submit(50)
		require.NoError(t, err)
		assert.Equal(t, guess.OutcomeCorrect, outcome)
		assert.True(t, game.Won())
		assert.True(t, game.Finished())
	})

	t.Run("rejects out-of-range guess without consuming attempt", func(t *testing.T) {
		game := newGame(t, guess.DefaultConfig(), 50)

		_, err := game.Submit(0)
		require.Error(t, err)
		assert.ErrorIs(t, err, bounded.ErrOutOfRange)

		var rangeErr *bounded.RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, int64(0), rangeErr.Value)
		assert.Equal(t, int64(1), rangeErr.Min)
		assert.Equal(t, int64(100), rangeErr.Max)

		assert.Equal(t, 0, game.Attempts())
	})

	t.Run("counts valid attempts", func(t *testing.T) {
		game := newGame(t, guess.DefaultConfig(), 50)

		_, err := game.Submit(10)
		require.NoError(t, err)
		_, err = game.Submit(90)
		require.NoError(t, err)

		assert.Equal(t, 2, game.Attempts())
	})

	t.Run("rejects guesses after winning", func(t *testing.T) {
		game := newGame(t, guess.DefaultConfig(), 50)

		_, err := game.Submit(50)
		require.NoError(t, err)

		_, err = game.Submit(51)
		require.Error(t, err)
		assert.ErrorIs(t, err, guess.ErrGameOver)
	})

	t.Run("enforces attempt limit", func(t *testing.T) {
		cfg := guess.Config{Min: 1, Max: 100, MaxAttempts: 2}
		game := newGame(t, cfg, 50)

		_, err := game.Submit(10)
		require.NoError(t, err)
		_, err = game.Submit(90)
		require.NoError(t, err)

		assert.True(t, game.Finished())
		assert.False(t, game.Won())

		_, err = game.Submit(50)
		require.Error(t, err)
		assert.ErrorIs(t, err, guess.ErrNoAttemptsLeft)
	})

	t.Run("winning on the last attempt beats the limit check", func(t *testing.T) {
		cfg := guess.Config{Min: 1, Max: 100, MaxAttempts: 1}
		game := newGame(t, cfg, 50)

		outcome, err := game.Submit(50)
		require.NoError(t, err)
		assert.Equal(t, guess.OutcomeCorrect, outcome)
		assert.True(t, game.Won())
	})

	t.Run("logs through the configured logger", func(t *testing.T) {
		game, err := guess.NewGame(guess.DefaultConfig(),
			guess.WithSecret(50),
			guess.WithLogger(slog.New(slog.DiscardHandler)))
		require.NoError(t, err)

		_, err = game.Submit(25)
		require.NoError(t, err)
	})
}
