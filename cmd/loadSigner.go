package cmd

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

// loadSigner parses the deploy key. The key is expected to be unencrypted;
// an encrypted key must be unlocked through ssh-agent instead.
func loadSigner(path string) (ssh.Signer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ssh.ParsePrivateKey(b)
	if err == nil {
		return s, nil
	}
	if _, ok := err.(*ssh.PassphraseMissingError); ok {
		return nil, fmt.Errorf("deploy key %s is encrypted; unlock it via ssh-agent", path)
	}
	return nil, err
}
