// SPDX-License-Identifier: MIT

package simgraph

import "fmt"

// DefaultWorkers selects runtime.GOMAXPROCS(0) goroutines.
const DefaultWorkers = 0

// Option configures graph construction.
type Option func(*options)

type options struct {
	workers int
}

func gatherOptions(opts []Option) options {
	o := options{workers: DefaultWorkers}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithWorkers bounds the goroutines used for per-row work; 1 is sequential,
// 0 means GOMAXPROCS. Panics on negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("simgraph: WithWorkers(%d): must be >= 0", n))
	}

	return func(o *options) { o.workers = n }
}
