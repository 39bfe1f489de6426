package fuo

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Requester defines the request/response surface used by the app layer.
// This interface is implemented by *Client and can be used for testing.
type Requester interface {
	FetchStatus(ctx context.Context) (*StatusResponse, error)
	FetchPlaylist(ctx context.Context) ([]BriefSong, error)
	Control(ctx context.Context, cmd PlayerCommand) error
}

// Ensure Client implements Requester at compile time.
var _ Requester = (*Client)(nil)

// Client talks to the daemon's control endpoint. Every call opens a fresh
// connection, sends one command and reads one response.
type Client struct {
	addr   string
	dialer net.Dialer
}

const (
	defaultControlAddr = "127.0.0.1:23333"
	statusCommand      = "status --format=json"
	listCommand        = "list --format=json"
)

// NewClient builds a Client for the given host:port control address.
func NewClient(addr string) (*Client, error) {
	resolved, err := normalizeAddr(addr, defaultControlAddr)
	if err != nil {
		return nil, err
	}
	return &Client{addr: resolved}, nil
}

// Addr returns the control endpoint address.
func (c *Client) Addr() string {
	return c.addr
}

// Call sends command and returns the daemon's response. A MSG frame on this
// path is a protocol violation.
func (c *Client) Call(ctx context.Context, command string) (*Response, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	conn, err := c.dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return nil, &ConnectionError{Addr: c.addr, Err: err}
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("set deadline: %w", err)
		}
	}

	reader := bufio.NewReader(conn)
	writer := bufio.NewWriter(conn)
	if err := skipGreeting(reader, c.addr); err != nil {
		return nil, err
	}

	if _, err := writer.WriteString(command + "\n"); err != nil {
		return nil, fmt.Errorf("write command: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return nil, fmt.Errorf("flush command: %w", err)
	}

	frame, err := ReadFrame(reader)
	if err != nil {
		return nil, err
	}
	switch f := frame.(type) {
	case *Response:
		return f, nil
	case *Message:
		return nil, &ProtocolError{Kind: UnexpectedPush, Detail: fmt.Sprintf("topic %q in reply to %q", f.Topic, command)}
	default:
		return nil, &ProtocolError{Kind: Malformed, Detail: fmt.Sprintf("unexpected frame %T", frame)}
	}
}

// FetchStatus retrieves the full player status.
func (c *Client) FetchStatus(ctx context.Context) (*StatusResponse, error) {
	var payload StatusResponse
	if err := c.callJSON(ctx, statusCommand, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchPlaylist retrieves the current playlist.
func (c *Client) FetchPlaylist(ctx context.Context) ([]BriefSong, error) {
	var payload []BriefSong
	if err := c.callJSON(ctx, listCommand, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Control sends a playback command.
func (c *Client) Control(ctx context.Context, cmd PlayerCommand) error {
	switch cmd {
	case CommandToggle, CommandNext, CommandPrevious, CommandStop:
	default:
		return fmt.Errorf("unsupported command %q", cmd)
	}
	resp, err := c.Call(ctx, string(cmd))
	if err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("%s rejected: %s", cmd, strings.TrimSpace(string(resp.Body)))
	}
	return nil
}

func (c *Client) callJSON(ctx context.Context, command string, dest any) error {
	resp, err := c.Call(ctx, command)
	if err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("%s rejected: %s", command, strings.TrimSpace(string(resp.Body)))
	}
	if err := json.Unmarshal(resp.Body, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// skipGreeting consumes the welcome line every endpoint sends on connect.
func skipGreeting(r *bufio.Reader, addr string) error {
	line, err := r.ReadString('\n')
	if len(line) == 0 && err != nil {
		return &ProtocolError{Kind: Disconnected, Detail: "no greeting", Err: fmt.Errorf("%w: %w", ErrDisconnected, err)}
	}
	log.WithField("addr", addr).Debugf("greeting: %s", strings.TrimSpace(line))
	return nil
}

func normalizeAddr(addr, fallback string) (string, error) {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		trimmed = fallback
	}
	if _, _, err := net.SplitHostPort(trimmed); err != nil {
		return "", fmt.Errorf("parse address %q: %w", addr, err)
	}
	return trimmed, nil
}
