package fuo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Frame is one decoded protocol unit: either a *Response or a *Message.
type Frame interface {
	frame()
}

// Response is the reply to a command, framed as "ACK <status> <len>".
type Response struct {
	OK   bool
	Body []byte
}

// Message is an unsolicited push, framed as "MSG <topic> <len>".
type Message struct {
	Topic string
	Body  []byte
}

func (*Response) frame() {}
func (*Message) frame()  {}

// MaxBodyLen bounds the body length a header may announce.
const MaxBodyLen = 16 << 20

const (
	tagAck = "ack"
	tagMsg = "msg"
)

// ReadFrame decodes the next frame from r.
//
// The header line is split on whitespace; only the first token (tag), the
// second token (status or topic) and the last token (body length) matter.
// With two tokens the second one serves as both.
// The two bytes that follow the body are consumed but not validated.
func ReadFrame(r *bufio.Reader) (Frame, error) {
	line, err := r.ReadString('\n')
	if len(line) == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return nil, &ProtocolError{Kind: Disconnected, Err: ErrDisconnected}
		}
		return nil, &ProtocolError{Kind: Disconnected, Err: fmt.Errorf("%w: %w", ErrDisconnected, err)}
	}

	words := strings.Fields(line)
	if len(words) < 2 {
		return nil, &ProtocolError{Kind: Malformed, Detail: fmt.Sprintf("header %q has %d tokens", strings.TrimSpace(line), len(words))}
	}
	tag := strings.ToLower(words[0])
	if tag != tagAck && tag != tagMsg {
		return nil, &ProtocolError{Kind: Malformed, Detail: fmt.Sprintf("unknown tag %q", words[0])}
	}
	bodyLen, err := strconv.ParseUint(words[len(words)-1], 10, 31)
	if err != nil {
		return nil, &ProtocolError{Kind: Malformed, Detail: fmt.Sprintf("body length %q", words[len(words)-1]), Err: err}
	}
	if bodyLen > MaxBodyLen {
		return nil, &ProtocolError{Kind: Malformed, Detail: fmt.Sprintf("body length %d exceeds %d", bodyLen, MaxBodyLen)}
	}

	buf := make([]byte, int(bodyLen)+2)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, &ProtocolError{Kind: Disconnected, Detail: "short body", Err: fmt.Errorf("%w: %w", ErrDisconnected, err)}
	}
	body := buf[:bodyLen]

	if tag == tagAck {
		return &Response{OK: strings.ToLower(words[1]) == "ok", Body: body}, nil
	}
	return &Message{Topic: words[1], Body: body}, nil
}

// WriteResponse encodes an ACK frame.
func WriteResponse(w io.Writer, ok bool, body []byte) error {
	status := "OK"
	if !ok {
		status = "Oops"
	}
	return writeFrame(w, "ACK", status, body)
}

// WriteMessage encodes a MSG frame for topic.
func WriteMessage(w io.Writer, topic string, body []byte) error {
	return writeFrame(w, "MSG", topic, body)
}

func writeFrame(w io.Writer, tag, arg string, body []byte) error {
	if _, err := fmt.Fprintf(w, "%s %s %d\r\n", tag, arg, len(body)); err != nil {
		return fmt.Errorf("write frame header: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write frame body: %w", err)
	}
	if _, err := io.WriteString(w, "\r\n"); err != nil {
		return fmt.Errorf("write frame trailer: %w", err)
	}
	return nil
}
