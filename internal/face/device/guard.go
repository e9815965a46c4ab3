package device

// InputGuard brackets a critical section during which asynchronous input
// delivery must not run. Device resource creation, release, and batch
// invalidation happen inside such a section; every exit path must Unblock.
type InputGuard interface {
	Block()
	Unblock()
}

// NopGuard is an InputGuard that does nothing, for surfaces whose event
// delivery is already synchronous.
type NopGuard struct{}

// Block implements InputGuard.
func (NopGuard) Block() {}

// Unblock implements InputGuard.
func (NopGuard) Unblock() {}
