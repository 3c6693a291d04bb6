package compute

// Backend dispatches an embarrassingly parallel kernel over the index
// range [0, n). Implementations must invoke fn over disjoint, covering
// subranges and return only after every subrange has completed.
type Backend interface {
	Name() string
	Workers() int
	Dispatch(n int, fn func(start, end int))
}

var activeBackend Backend

func init() {
	activeBackend = NewCPUBackend()
}

// SetBackend replaces the process-wide backend. Tests pin the serial
// backend for bit-exact reproducibility.
func SetBackend(b Backend) {
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}
