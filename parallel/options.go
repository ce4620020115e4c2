package parallel

// Option configures an Engine at construction time.
type Option func(*config)

type config struct {
	shardCount int
	stealBatch int
}

func defaultConfig() config {
	return config{
		shardCount: 16,
		stealBatch: 16,
	}
}

// WithShardCount overrides the number of closed/best-g shard stripes
// (default 16). n must be >= 1; non-positive values are ignored.
func WithShardCount(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.shardCount = n
		}
	}
}

// WithStealBatch overrides the maximum number of nodes a stealer removes
// from a victim's queue in one attempt (default 16).
func WithStealBatch(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.stealBatch = n
		}
	}
}
