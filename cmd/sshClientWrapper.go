package cmd

import (
	"fmt"

	"golang.org/x/crypto/ssh"
)

// sessionClient is a minimal interface to obtain a command session
type sessionClient interface {
	NewSession() (session, error)
}

// session is a minimal interface for running a command and closing
type session interface {
	CombinedOutput(cmd string) ([]byte, error)
	Close() error
}

// sshClientWrapper adapts *ssh.Client to sessionClient
type sshClientWrapper struct{ c *ssh.Client }

func (w sshClientWrapper) NewSession() (session, error) {
	if w.c == nil {
		return nil, fmt.Errorf("nil ssh client")
	}
	s, err := w.c.NewSession()
	if err != nil {
		return nil, err
	}
	return sshSessionWrapper{s}, nil
}

// sshSessionWrapper adapts *ssh.Session to session
type sshSessionWrapper struct{ s *ssh.Session }

func (w sshSessionWrapper) CombinedOutput(cmd string) ([]byte, error) {
	return w.s.CombinedOutput(cmd)
}

func (w sshSessionWrapper) Close() error { return w.s.Close() }
