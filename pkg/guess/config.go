package guess

// Config describes the game parameters. Load it with the config package:
//
//	var cfg guess.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
type Config struct {
	// Min is the inclusive lower bound of the guessing range.
	Min int64 `env:"GUESS_MIN" envDefault:"1"`
	// Max is the inclusive upper bound of the guessing range.
	Max int64 `env:"GUESS_MAX" envDefault:"100"`
	// MaxAttempts limits valid guesses per game. Zero disables the limit.
	MaxAttempts int `env:"GUESS_MAX_ATTEMPTS" envDefault:"0"`
}

// DefaultConfig returns the classic 1 to 100 game with unlimited attempts.
func DefaultConfig() Config {
	return Config{Min: 1, Max: 100}
}
