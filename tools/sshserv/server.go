package sshserv

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/binary"
	"net"
	"time"

	"golang.org/x/crypto/ssh"
)

// Start launches a test SSH server on listenAddr (use 127.0.0.1:0 for an
// ephemeral port). It accepts any user with no authentication. Each exec
// request is answered with the given response body and exit status, so
// clients can exercise a full dial/exec/exit round trip without a real host.
// Returns the bound address and a stop function that closes the listener and
// waits for shutdown.
func Start(listenAddr, response string, exitStatus int) (string, func(), error) {
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return "", nil, err
	}

	stopCh := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		priv, _ := rsa.GenerateKey(rand.Reader, 2048)
		signer, _ := ssh.NewSignerFromKey(priv)
		cfg := &ssh.ServerConfig{NoClientAuth: true}
		cfg.AddHostKey(signer)

		for {
			_ = ln.(*net.TCPListener).SetDeadline(time.Now().Add(500 * time.Millisecond))
			conn, err := ln.Accept()
			select {
			case <-stopCh:
				if conn != nil {
					_ = conn.Close()
				}
				return
			default:
			}
			if err != nil {
				if ne, ok := err.(net.Error); ok && ne.Timeout() {
					continue
				}
				continue
			}
			go handleConn(conn, cfg, response, exitStatus)
		}
	}()

	stop := func() {
		close(stopCh)
		_ = ln.Close()
		<-done
	}
	return ln.Addr().String(), stop, nil
}

func handleConn(raw net.Conn, cfg *ssh.ServerConfig, response string, exitStatus int) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	_ = sc
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, reqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go handleSession(c, reqs, response, exitStatus)
	}
}

func handleSession(ch ssh.Channel, in <-chan *ssh.Request, response string, exitStatus int) {
	defer ch.Close()
	for req := range in {
		switch req.Type {
		case "exec":
			// Payload is a 4-byte length followed by the command string;
			// the canned response ignores the command itself.
			if len(req.Payload) >= 4 {
				n := binary.BigEndian.Uint32(req.Payload)
				_ = n
			}
			req.Reply(true, nil)
			_, _ = ch.Write([]byte(response))
			status := make([]byte, 4)
			binary.BigEndian.PutUint32(status, uint32(exitStatus))
			_, _ = ch.SendRequest("exit-status", false, status)
			return
		default:
			req.Reply(false, nil)
		}
	}
}
