package ports

import "context"

// SequenceRepository hands out monotonic sequence numbers for container
// code generation. Sequences are keyed by code prefix (and station for
// station-scoped capsules) and are never reused within a session, even
// after a container with the number was cancelled.
type SequenceRepository interface {
	// Next returns the next sequence number for the key, starting at 1.
	Next(ctx context.Context, key string) (int, error)
}
