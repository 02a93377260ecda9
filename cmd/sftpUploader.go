package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// uploader is the transfer surface; tests substitute fakes.
type uploader interface {
	PutFile(localPath, remotePath string) error
	PutDir(localDir, remoteDir string) error
	Close() error
}

// sftpUploader copies files over the SFTP subsystem of an established SSH
// connection.
type sftpUploader struct{ c *sftp.Client }

func newSFTPUploader(client *ssh.Client) (uploader, error) {
	c, err := sftp.NewClient(client)
	if err != nil {
		return nil, fmt.Errorf("open sftp: %w", err)
	}
	return &sftpUploader{c: c}, nil
}

func (u *sftpUploader) PutFile(localPath, remotePath string) error {
	src, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer src.Close()
	if err := u.c.MkdirAll(path.Dir(remotePath)); err != nil {
		return err
	}
	dst, err := u.c.Create(remotePath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	if info, err := os.Stat(localPath); err == nil {
		_ = u.c.Chmod(remotePath, info.Mode().Perm())
	}
	return nil
}

func (u *sftpUploader) PutDir(localDir, remoteDir string) error {
	return filepath.WalkDir(localDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(localDir, p)
		if err != nil {
			return err
		}
		remote := path.Join(remoteDir, filepath.ToSlash(rel))
		if d.IsDir() {
			return u.c.MkdirAll(remote)
		}
		return u.PutFile(p, remote)
	})
}

func (u *sftpUploader) Close() error { return u.c.Close() }
