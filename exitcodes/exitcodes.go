// Package exitcodes defines the standard exit codes used by specrun.
package exitcodes

// Exit code constants used by specrun
// These constants define the exit codes that the application uses to indicate
// various states when it exits:
//
// * Success (0): Used when the run completes and all suites pass
// * TestFailure (1): Used when one or more suites report failures
// * RuntimeErr (2): Used for runtime errors such as malformed arguments or panics
const (
	Success     = 0 // Run completed, everything passed
	TestFailure = 1 // Suite failures
	RuntimeErr  = 2 // Runtime errors, including malformed argument vectors
)
