package output

import (
	"context"

	"dojocrm/internal/domain/entities"
)

// Announcer publishes event news to the academy's community channel.
// Implementations must be safe to call from request handlers; failures are
// reported as errors and never block the underlying mutation.
type Announcer interface {
	EventCreated(ctx context.Context, event *entities.Event) error
}
