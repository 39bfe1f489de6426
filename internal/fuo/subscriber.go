package fuo

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const (
	defaultPubsubAddr = "127.0.0.1:23334"
	versionCommand    = "set --pubsub-version 2.0"
)

// Subscriber owns the long-lived pub/sub connection.
type Subscriber struct {
	addr   string
	topics []string
	dialer net.Dialer
}

// NewSubscriber builds a Subscriber for addr. An empty topic list means DefaultTopics.
func NewSubscriber(addr string, topics []string) (*Subscriber, error) {
	resolved, err := normalizeAddr(addr, defaultPubsubAddr)
	if err != nil {
		return nil, err
	}
	cleaned := lo.Uniq(lo.Compact(lo.Map(topics, func(t string, _ int) string {
		return strings.TrimSpace(t)
	})))
	if len(cleaned) == 0 {
		cleaned = append([]string(nil), DefaultTopics...)
	}
	return &Subscriber{addr: resolved, topics: cleaned}, nil
}

// Addr returns the pub/sub endpoint address.
func (s *Subscriber) Addr() string {
	return s.addr
}

// Topics returns the subscribed topic patterns.
func (s *Subscriber) Topics() []string {
	return append([]string(nil), s.topics...)
}

// Run connects, subscribes and forwards every MSG frame to out until the
// connection fails or ctx is cancelled. Stray ACK frames are dropped.
//
// There is no read timeout: a silent peer blocks Run indefinitely. Run never
// closes out.
func (s *Subscriber) Run(ctx context.Context, out chan<- *Message) error {
	conn, err := s.dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return &ConnectionError{Addr: s.addr, Err: err}
	}

	var closeOnce sync.Once
	closeConn := func() { closeOnce.Do(func() { _ = conn.Close() }) }
	defer closeConn()

	stop := context.AfterFunc(ctx, closeConn)
	defer stop()

	logger := log.WithFields(log.Fields{"component": "subscriber", "addr": s.addr})
	logger.Info("connected to pubsub endpoint")

	reader := bufio.NewReader(conn)
	writer := bufio.NewWriter(conn)
	if err := skipGreeting(reader, s.addr); err != nil {
		return s.wrapCtx(ctx, err)
	}

	commands := make([]string, 0, len(s.topics)+1)
	commands = append(commands, versionCommand)
	for _, topic := range s.topics {
		commands = append(commands, "sub "+topic)
	}
	for _, cmd := range commands {
		if _, err := writer.WriteString(cmd + "\n"); err != nil {
			return s.wrapCtx(ctx, fmt.Errorf("write %q: %w", cmd, err))
		}
	}
	if err := writer.Flush(); err != nil {
		return s.wrapCtx(ctx, fmt.Errorf("flush subscribe commands: %w", err))
	}

	// Acknowledgements are assumed successful.
	for range commands {
		if _, err := ReadFrame(reader); err != nil {
			return s.wrapCtx(ctx, fmt.Errorf("read subscribe ack: %w", err))
		}
	}
	logger.WithField("topics", s.topics).Info("subscribed")

	for {
		frame, err := ReadFrame(reader)
		if err != nil {
			return s.wrapCtx(ctx, err)
		}
		msg, ok := frame.(*Message)
		if !ok {
			logger.Debug("dropping stray ack")
			continue
		}
		select {
		case out <- msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// wrapCtx reports cancellation instead of the read error it caused.
func (s *Subscriber) wrapCtx(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
