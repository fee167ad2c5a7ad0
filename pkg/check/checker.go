package check

// Checker is implemented by all check types.
// A check probes one optional dependency and returns a Result
// indicating whether it is usable.
//
// Implementations:
//   - depcheck.Check: verifies the PDF renderer and its text shaping library
type Checker interface {
	Run() Result
}
