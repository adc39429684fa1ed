package generator

// Options configures board generation behavior.
type Options struct {
	Seed int64 // Seed for reproducible boards (0 = random)
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{Seed: 0}
}
