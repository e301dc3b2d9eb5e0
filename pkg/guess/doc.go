// Package guess implements a number-guessing game on top of the bounded package.
//
// A game draws a secret number from a configured inclusive range. Each
// submitted guess is validated through the range's smart constructor before
// comparison, so the comparison logic only ever operates on proven in-range
// values and never re-checks bounds.
//
// # Usage
//
// Single game:
//
//	game, err := guess.NewGame(guess.DefaultConfig()) // 1..100, unlimited attempts
//	if err != nil {
//	    return err
//	}
//
//	outcome, err := game.Submit(raw)
//	switch {
//	case errors.Is(err, bounded.ErrOutOfRange):
//	    // re-prompt, the attempt was not consumed
//	case err != nil:
//	    return err
//	case outcome == guess.OutcomeCorrect:
//	    // won
//	}
//
// Multiple sessions:
//
//	svc := guess.NewService()
//	id, err := svc.Start(cfg)
//	...
//	outcome, err := svc.Submit(id, raw)
//
// Configuration can come from the environment via the config package
// (GUESS_MIN, GUESS_MAX, GUESS_MAX_ATTEMPTS).
package guess
