package app

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/five82/fuotui/internal/fuo"
	"github.com/five82/fuotui/internal/state"
)

// MessageSource produces push messages until ctx is cancelled or the
// connection ends. *fuo.Subscriber implements it.
type MessageSource interface {
	Run(ctx context.Context, out chan<- *fuo.Message) error
}

var _ MessageSource = (*fuo.Subscriber)(nil)

const messageBuffer = 64

// StartSubscriber runs src in one goroutine and applies its messages to the
// store from another. Malformed messages are logged and dropped. When src
// stops for any reason other than cancellation the store is marked with
// SubscriberDown. The returned channel closes once both goroutines exit.
func StartSubscriber(ctx context.Context, store *state.Store, src MessageSource) <-chan struct{} {
	msgs := make(chan *fuo.Message, messageBuffer)
	done := make(chan struct{})
	logger := log.WithField("component", "subscriber")

	var runErr error
	go func() {
		runErr = src.Run(ctx, msgs)
		close(msgs)
	}()

	go func() {
		defer close(done)
		for msg := range msgs {
			if err := store.ApplyMessage(msg); err != nil {
				logger.WithError(err).WithField("topic", msg.Topic).Warn("drop push message")
				continue
			}
			logger.WithField("topic", msg.Topic).Debug("applied push message")
		}

		// runErr is set before msgs is closed.
		if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
			return
		}
		if runErr == nil {
			runErr = fuo.ErrDisconnected
		}
		logger.WithError(runErr).Error("subscriber stopped")
		store.SetSubscriberDown(runErr)
	}()
	return done
}
