package client

import (
	"context"
	"errors"
	"io"
	"sync"

	"google.golang.org/grpc"
)

// Subscription delivers snapshots from a server stream until Close is
// called or the stream fails. Updates is closed when delivery stops; Err
// then reports why (nil after Close).
type Subscription[T any] struct {
	updates chan T
	cancel  context.CancelFunc
	done    chan struct{}

	mu  sync.Mutex
	err error
}

// StartSubscription opens a stream with open and converts every message
// with convert. Stream errors pass through mapErr.
func StartSubscription[P, T any](
	ctx context.Context,
	open func(context.Context) (grpc.ServerStreamingClient[P], error),
	convert func(*P) T,
	mapErr func(error) error,
) (*Subscription[T], error) {
	ctx, cancel := context.WithCancel(ctx)

	stream, err := open(ctx)
	if err != nil {
		cancel()
		return nil, mapErr(err)
	}

	s := &Subscription[T]{
		updates: make(chan T),
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		defer close(s.updates)

		for {
			msg, err := stream.Recv()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				if errors.Is(err, io.EOF) {
					s.setErr(ErrStreamEnded)
				} else {
					s.setErr(mapErr(err))
				}
				return
			}

			select {
			case s.updates <- convert(msg):
			case <-ctx.Done():
				return
			}
		}
	}()

	return s, nil
}

func (s *Subscription[T]) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Updates yields snapshots in arrival order.
func (s *Subscription[T]) Updates() <-chan T {
	return s.updates
}

// Err is the reason delivery stopped. It is meaningful once Updates is closed.
func (s *Subscription[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close cancels the stream and waits for the receiving goroutine. It is
// safe to call more than once.
func (s *Subscription[T]) Close() {
	s.cancel()
	<-s.done
}
