package counter

import (
	"log"
	"sync"
	"time"
)

// Counter counts processed items and logs progress every Options.every items.
type Counter struct {
	count     int
	total     int
	every     int
	mutex     sync.Mutex
	desc      string
	startTime time.Time
}

func NewCounter(opts ...Option) *Counter {
	options := &Options{}

	for _, opt := range opts {
		opt(options)
	}

	return &Counter{
		count:     0,
		total:     options.total,
		every:     options.every,
		desc:      options.desc,
		startTime: time.Now(),
	}
}

func (c *Counter) Add() {
	c.AddN(1)
}

func (c *Counter) AddN(n int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	before := c.count
	c.count += n
	if c.every > 0 && c.count/c.every != before/c.every {
		c.report()
	}
}

func (c *Counter) Count() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.count
}

// Done logs the final count.
func (c *Counter) Done() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.report()
}

func (c *Counter) report() {
	elapsed := time.Since(c.startTime).Seconds()
	speed := 0.0
	if elapsed > 0 {
		speed = float64(c.count) / elapsed
	}
	if c.total <= 0 || speed == 0 {
		log.Printf("%s: %d, speed: %.2f/s", c.desc, c.count, speed)
		return
	}
	remaining := float64(c.total-c.count) / speed
	log.Printf("%s: %d/%d, speed: %.2f/s, remaining: %.2fs",
		c.desc, c.count, c.total, speed, remaining)
}
