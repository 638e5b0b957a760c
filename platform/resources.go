package platform

import (
	"github.com/charmbracelet/log"
)

type resource struct {
	name    string
	release func()
}

// Resources is a stack of acquired resources. Release pops them in reverse
// acquisition order and runs each release exactly once.
type Resources struct {
	logger *log.Logger
	stack  []resource
}

func NewResources(logger *log.Logger) *Resources {
	if logger == nil {
		logger = log.Default()
	}
	return &Resources{logger: logger}
}

// Acquire records a resource. A nil release is allowed for resources the
// platform frees on its own; they still show up in the release log.
func (r *Resources) Acquire(name string, release func()) {
	r.logger.Debug("acquire", "resource", name)
	r.stack = append(r.stack, resource{name: name, release: release})
}

// Release frees everything acquired so far, newest first.
func (r *Resources) Release() {
	for len(r.stack) > 0 {
		last := len(r.stack) - 1
		res := r.stack[last]
		r.stack = r.stack[:last]

		r.logger.Debug("release", "resource", res.name)
		if res.release != nil {
			res.release()
		}
	}
}

// Len returns the number of resources still held.
func (r *Resources) Len() int {
	return len(r.stack)
}
