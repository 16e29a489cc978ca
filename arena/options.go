package arena

const (
	// DefaultBlockSize is the allocation granularity in bytes.
	DefaultBlockSize = 64 << 10
	// DefaultGrowthFactor is the shift applied to large items when computing
	// the growth chunk.
	DefaultGrowthFactor = 8
	// MaxItems is the hard ceiling on items per arena. The two high bits of a
	// 32-bit index are left free for callers that pack selectors next to it.
	MaxItems = 1<<30 - 1
)

type config struct {
	blockSize    int
	growthFactor uint
	maxItems     int
}

func defaultConfig() config {
	return config{
		blockSize:    DefaultBlockSize,
		growthFactor: DefaultGrowthFactor,
		maxItems:     MaxItems,
	}
}

// Option configures an Arena.
type Option func(*config)

// WithBlockSize sets the allocation granularity. Sizes that are not a power
// of two are ignored and the default is kept.
func WithBlockSize(size int) Option {
	return func(c *config) {
		if size > 0 && isPow2(size) {
			c.blockSize = size
		}
	}
}

// WithGrowthFactor sets the shift used for large-item growth chunks.
// Factors outside (1, 32) are ignored.
func WithGrowthFactor(factor uint) Option {
	return func(c *config) {
		if factor > 1 && factor < 32 {
			c.growthFactor = factor
		}
	}
}

// WithMaxItems caps the number of items the arena will hold.
func WithMaxItems(n int) Option {
	return func(c *config) {
		if n > 0 && n <= MaxItems {
			c.maxItems = n
		}
	}
}
