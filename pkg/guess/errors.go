package guess

import "errors"

// Domain errors for game operations.
var (
	// ErrInvalidConfig is returned when a game is configured with a negative attempt limit.
	ErrInvalidConfig = errors.New("invalid game configuration")

	// ErrGameOver is returned when a guess is submitted to a finished game.
	ErrGameOver = errors.New("game is already over")

	// ErrNoAttemptsLeft is returned when the attempt limit has been exhausted.
	ErrNoAttemptsLeft = errors.New("no attempts left")

	// ErrGameNotFound is returned when the service has no game with the requested ID.
	ErrGameNotFound = errors.New("game not found")
)
