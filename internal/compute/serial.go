package compute

// SerialBackend runs the kernel inline on the calling goroutine. Same
// results as the CPU backend (the kernel is deterministic per index), but
// with a single, fixed evaluation order.
type SerialBackend struct{}

func NewSerialBackend() *SerialBackend { return &SerialBackend{} }

func (s *SerialBackend) Name() string { return "serial" }
func (s *SerialBackend) Workers() int { return 1 }

func (s *SerialBackend) Dispatch(n int, fn func(start, end int)) {
	if n > 0 {
		fn(0, n)
	}
}
