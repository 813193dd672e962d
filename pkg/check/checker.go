package check

// Checker is implemented by all check types.
// Each check validates a specific aspect of the environment
// and returns exactly one Result.
//
// Implementations:
//   - runtimecheck.Check: verifies the Node.js major version
//   - resourcecheck.Check: grades total system memory
//   - cmdcheck.Check: verifies an external tool is installed
//   - syscheck.Check: reports the host platform
//   - apicheck.Probe: tests API reachability and authentication
type Checker interface {
	Run() Result
}
