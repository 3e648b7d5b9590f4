// SPDX-License-Identifier: MIT

package kmeans

import "fmt"

// DefaultMaxIter caps the number of assign/update cycles.
const DefaultMaxIter = 300

// Option configures a Refiner.
type Option func(*options)

type options struct {
	maxIter int
	workers int
}

func gatherOptions(opts []Option) options {
	o := options{maxIter: DefaultMaxIter}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithMaxIter sets the cycle cap. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("kmeans: WithMaxIter(%d): must be >= 1", n))
	}

	return func(o *options) { o.maxIter = n }
}

// WithWorkers bounds the goroutines used for assignment; 1 is sequential,
// 0 means GOMAXPROCS. Panics on negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("kmeans: WithWorkers(%d): must be >= 0", n))
	}

	return func(o *options) { o.workers = n }
}
