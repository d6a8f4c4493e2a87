package counter

type Options struct {
	total int
	every int
	desc  string
}

type Option func(*Options)

func WithTotal(total int) Option {
	return func(o *Options) {
		o.total = total
	}
}

func WithDesc(desc string) Option {
	return func(o *Options) {
		o.desc = desc
	}
}

// WithEvery logs progress each time another every items were added.
func WithEvery(every int) Option {
	return func(o *Options) {
		o.every = every
	}
}
