package arith

import "os"

// Exit statuses produced by FinishPositively.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitStatus maps v to the status FinishPositively exits with:
// ExitSuccess for v >= 0, ExitFailure otherwise.
func ExitStatus(v int) int {
	if v >= 0 {
		return ExitSuccess
	}
	return ExitFailure
}

// FinishPositively terminates the process. It never returns.
//
// The exit status is 0 when v >= 0 and 1 when v < 0. Termination goes
// through os.Exit, so deferred functions do not run and the call cannot be
// recovered. Concurrent calls race; whichever reaches os.Exit first decides
// the status.
func FinishPositively(v int) {
	os.Exit(ExitStatus(v))
}
