package testutil

import (
	"context"

	"github.com/userhub/backend/pkg/pubsub"
)

// MockPublisher records every pack it receives. PublishFunc, when set, decides
// the returned error.
type MockPublisher struct {
	PublishFunc func(context.Context, string, *pubsub.Pack) error

	Topics []string
	Packs  []*pubsub.Pack
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, pack *pubsub.Pack) error {
	m.Topics = append(m.Topics, topic)
	m.Packs = append(m.Packs, pack)

	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, pack)
	}

	return nil
}

func (m *MockPublisher) Stop(ctx context.Context) error {
	return nil
}
