package source

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/emitter/core/emitter"
)

// MessageSource is a subscribed message stream. *redis.PubSub satisfies it.
type MessageSource interface {
	Channel(opts ...redis.ChannelOption) <-chan *redis.Message
	Close() error
}

// PubSub returns an emitter that calls subscribe on Start and emits every message of the
// returned stream. Stop closes the stream.
func PubSub(subscribe func(context.Context) (MessageSource, error), opts ...Option) *emitter.Emitter[*redis.Message] {
	return newSource("pubsub", newOptions(opts), func(ctx context.Context, emit func(*redis.Message)) (func(), error) {
		if subscribe == nil {
			return nil, ErrNilSubscribe
		}

		stream, err := subscribe(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
		}

		messages := stream.Channel()
		return func() {
			defer stream.Close()
			for {
				select {
				case <-ctx.Done():
					return
				case msg, ok := <-messages:
					if !ok {
						return
					}
					emit(msg)
				}
			}
		}, nil
	})
}

// Redis returns a PubSub source subscribed to channels on client. Start waits for the
// subscription to be confirmed, so messages published after Start are delivered.
//
// Example:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	orders := source.Redis(client, "orders")
//	orders.Start()
//	defer orders.Stop()
func Redis(client redis.UniversalClient, channels []string, opts ...Option) *emitter.Emitter[*redis.Message] {
	return PubSub(func(ctx context.Context) (MessageSource, error) {
		if client == nil {
			return nil, ErrNilClient
		}

		ps := client.Subscribe(ctx, channels...)
		if _, err := ps.Receive(ctx); err != nil {
			_ = ps.Close()
			return nil, err
		}
		return ps, nil
	}, opts...)
}
