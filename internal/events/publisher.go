package events

//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=../mocks/mock_publisher.go -package=mocks

import "context"

// Publisher receives message events once they are durably stored.
type Publisher interface {
	PublishMessage(ctx context.Context, evt MessageEvent) error
}
