package mcp

type Options struct {
	Name    string
	Version string
	// Rate is the number of tool calls allowed per second, 0 disables limiting.
	Rate  float64
	Burst int64
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		Name:    "rawseg",
		Version: "1.0.0",
	}
}

func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

func WithVersion(version string) Option {
	return func(o *Options) {
		o.Version = version
	}
}

// WithRateLimit allows rate calls per second with bursts of up to burst.
func WithRateLimit(rate float64, burst int64) Option {
	return func(o *Options) {
		o.Rate = rate
		o.Burst = burst
	}
}
