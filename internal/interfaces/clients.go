package interfaces

import "context"

// GapClient forwards curriculum payloads to the external gap-analysis
// service and relays the upstream response.
type GapClient interface {
	// Analyze posts a JSON payload to the service and returns the upstream
	// status code and body. The error is non-nil only when the service
	// could not be reached.
	Analyze(ctx context.Context, payload []byte) (int, []byte, error)

	// Configured reports whether a service base URL has been set.
	Configured() bool
}
