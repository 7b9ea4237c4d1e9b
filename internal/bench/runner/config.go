package runner

const (
	DefaultWarmupRuns = 0
	DefaultRuns       = 1
)

type Config struct {
	WarmupRuns int
	Runs       int
	// SkipReference disables the expr-lang cross-check.
	SkipReference bool
}

func DefaultConfig() Config {
	return Config{
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
	}
}
