package cmd

import (
	"context"
	"time"

	"golang.org/x/crypto/ssh"
)

// runRemoteCommand executes a single command and returns output + exit code.
// A timeout of zero disables the deadline.
func runRemoteCommand(client sessionClient, cmd string, timeout time.Duration) ([]byte, int, error) {
	type result struct {
		out      []byte
		exitCode int
		err      error
	}

	run := func() result {
		sess, err := client.NewSession()
		if err != nil {
			return result{nil, -1, err}
		}
		defer sess.Close()
		b, err := sess.CombinedOutput(cmd)
		if err == nil {
			return result{b, 0, nil}
		}
		// Try to derive exit status
		exit := -1
		if ee, ok := err.(*ssh.ExitError); ok {
			exit = ee.ExitStatus()
		}
		return result{b, exit, err}
	}

	if timeout <= 0 {
		r := run()
		return r.out, r.exitCode, r.err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ch := make(chan result, 1)
	go func() { ch <- run() }()

	select {
	case r := <-ch:
		return r.out, r.exitCode, r.err
	case <-ctx.Done():
		// Best-effort: indicate timeout. The session is abandoned.
		return nil, -1, context.DeadlineExceeded
	}
}
