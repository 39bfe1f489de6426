package fuo

import (
	"bufio"
	"io"
	"net"
	"sync"
	"testing"
)

// fakeDaemon accepts connections on a loopback port and hands each one to handle
// after sending the greeting line.
type fakeDaemon struct {
	ln     net.Listener
	wg     sync.WaitGroup
	handle func(r *bufio.Reader, w io.Writer)
}

func startFakeDaemon(t *testing.T, handle func(r *bufio.Reader, w io.Writer)) *fakeDaemon {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	d := &fakeDaemon{ln: ln, handle: handle}
	d.wg.Add(1)
	go d.serve()
	t.Cleanup(func() {
		_ = ln.Close()
		d.wg.Wait()
	})
	return d
}

func (d *fakeDaemon) Addr() string {
	return d.ln.Addr().String()
}

func (d *fakeDaemon) serve() {
	defer d.wg.Done()
	for {
		conn, err := d.ln.Accept()
		if err != nil {
			return
		}
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			defer conn.Close()
			_, _ = io.WriteString(conn, "OK feeluown 3.9 fakedaemon\n")
			d.handle(bufio.NewReader(conn), conn)
		}()
	}
}

// closedAddr returns a loopback address nothing is listening on.
func closedAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}
