// Package Go_Containers holds what the container packages share: the Container contract,
// the Number constraint and the sentinel errors every package wraps.
//
// None of the containers are safe for concurrent use. Callers sharing one across goroutines
// must synchronise access themselves.
package Go_Containers

import (
	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/constraints"
)

// Container is implemented by every container in this module. It is the gods container
// contract, so the containers here can be handed to code written against gods.
type Container interface {
	containers.Container
}

// Number are the element types that can be summed.
type Number interface {
	constraints.Integer | constraints.Float
}
