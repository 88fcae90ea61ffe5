package check

import "github.com/rosecheck/rosecheck/rose"

// Property pairs a generator with the invariant it must satisfy. Check
// must return true when the property holds for value — the exact
// predicate rose.Shrink expects, so a Property plugs into the engine
// without any boolean-sense inversion at the boundary.
type Property[T any] struct {
	Name  string
	Gen   rose.Generator[T]
	Check func(value T) bool
}
