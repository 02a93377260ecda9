package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Fake session and client for runRemoteCommand tests
type fakeSession struct {
	out     []byte
	err     error
	delay   time.Duration
	closed  bool
	lastCmd string
}

func (f *fakeSession) CombinedOutput(cmd string) ([]byte, error) {
	f.lastCmd = cmd
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.out, f.err
}

func (f *fakeSession) Close() error { f.closed = true; return nil }

type fakeClient struct {
	sess   *fakeSession
	newErr error
}

func (c *fakeClient) NewSession() (session, error) {
	if c.newErr != nil {
		return nil, c.newErr
	}
	return c.sess, nil
}

func TestRunRemoteCommand_Success(t *testing.T) {
	s := &fakeSession{out: []byte("OK\n"), err: nil}
	out, code, err := runRemoteCommand(&fakeClient{sess: s}, "echo OK", 0)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "OK\n", string(out))
	require.True(t, s.closed)
}

func TestRunRemoteCommand_Timeout(t *testing.T) {
	s := &fakeSession{out: []byte("SLOW\n"), delay: 200 * time.Millisecond}
	out, code, err := runRemoteCommand(&fakeClient{sess: s}, "sleep", 10*time.Millisecond)
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	require.Equal(t, -1, code)
	require.Nil(t, out)
}

func TestRunRemoteCommand_NewSessionError(t *testing.T) {
	out, code, err := runRemoteCommand(&fakeClient{newErr: errors.New("no session")}, "cmd", 0)
	require.Error(t, err)
	require.Equal(t, -1, code)
	require.Nil(t, out)
}

func TestRunRemoteCommand_CommandError_NoExitCode(t *testing.T) {
	s := &fakeSession{out: []byte("oops\n"), err: errors.New("boom")}
	out, code, err := runRemoteCommand(&fakeClient{sess: s}, "cmd", 0)
	require.Error(t, err)
	require.Equal(t, -1, code)
	require.Equal(t, "oops\n", string(out))
}
