package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of long-running operations.
type Telemetry interface {
	// Record starts a new vertex with the given name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a unit of recorded work.
type Vertex interface {
	// Stdout returns a writer attached to the vertex output.
	Stdout() io.Writer
	// Complete marks the vertex as finished, with err on failure.
	Complete(err error)
	// Cached marks the vertex as satisfied from stored results.
	Cached()
}
