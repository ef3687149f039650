package sshutils

import (
	"fmt"
	"io"

	"github.com/pkg/sftp"
)

// SFTPClientCreator opens an SFTP session on an established connection.
// Tests override the creator on SSHConfig to avoid real transfers.
type SFTPClientCreator func(client SSHClienter) (SFTPClienter, error)

var DefaultSFTPClientCreator SFTPClientCreator = newSFTPClient

func newSFTPClient(client SSHClienter) (SFTPClienter, error) {
	raw := client.GetClient()
	if raw == nil {
		return nil, fmt.Errorf("ssh client is not connected")
	}
	sftpClient, err := sftp.NewClient(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to create sftp client: %w", err)
	}
	return &sftpClientWrapper{Client: sftpClient}, nil
}

// sftpClientWrapper narrows *sftp.Client to SFTPClienter. Create needs an
// explicit method because *sftp.File must be returned as io.WriteCloser.
type sftpClientWrapper struct {
	*sftp.Client
}

func (w *sftpClientWrapper) Create(path string) (io.WriteCloser, error) {
	return w.Client.Create(path)
}
