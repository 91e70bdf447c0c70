package messaging

import (
	"context"

	"github.com/movemint/launchpad-sync/internal/domain"
)

// Publisher emits launchpad state-transition events. Publishing is
// best-effort: callers log failures and move on.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a launchpad event
	PublishEvent(ctx context.Context, event *domain.LaunchpadEvent) error
	// Close closes the underlying connection
	Close()
}
