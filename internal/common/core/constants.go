package core

type RetryMode int

const (
	None RetryMode = iota // specifies that no retries will be made
	// Specifies that exponential backoff will be used for transport-level
	// failures (no HTTP response obtained). Classified HTTP errors are never
	// retried here; the caller owns any policy for those.
	Backoff
)

const (
	// Every rides resource is currently served under v1. The version belongs
	// to the resource, not the operation, so adding an operation to an
	// existing resource never changes its path prefix.
	ProductsVersion  = "v1"
	EstimatesVersion = "v1"
	RequestsVersion  = "v1"
)
