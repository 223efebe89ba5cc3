// pkg/environment/mode.go
package environment

// Mode identifies the protocol the supervisor launched this process to serve.
// Values match the RR_MODE strings the supervisor exports.
type Mode string

const (
	ModeHTTP       Mode = "http"
	ModeRPC        Mode = "grpc"
	ModeWorkflow   Mode = "temporal"
	ModeJobs       Mode = "jobs"
	ModeTCP        Mode = "tcp"
	ModeCentrifuge Mode = "centrifuge"
)

var knownModes = map[Mode]struct{}{
	ModeHTTP:       {},
	ModeRPC:        {},
	ModeWorkflow:   {},
	ModeJobs:       {},
	ModeTCP:        {},
	ModeCentrifuge: {},
}

// Known reports whether m is part of the mode enumeration. Comparison is exact;
// "HTTP" is not "http".
func (m Mode) Known() bool {
	_, ok := knownModes[m]
	return ok
}

func (m Mode) String() string { return string(m) }
