package sshutils

import (
	"context"
	"io"
	"os"
	"time"

	"golang.org/x/crypto/ssh"
)

// SSHConfiger is the remote-execution surface the drivers program against.
// The live implementation is SSHConfig; tests substitute MockSSHConfig.
type SSHConfiger interface {
	Connect(ctx context.Context) (SSHClienter, error)
	Close() error
	WaitForSSH(ctx context.Context, retries int, delay time.Duration) error
	ExecuteCommand(ctx context.Context, command string) (string, error)
	ExecuteCommandStream(ctx context.Context, command string, out io.Writer) error
	PushFile(ctx context.Context, remotePath string, content []byte, executable bool) error

	GetHost() string
	GetPort() int
	GetUser() string
	GetPrivateKeyPath() string
}

// SSHClienter wraps an established SSH connection.
type SSHClienter interface {
	NewSession() (SSHSessioner, error)
	GetClient() *ssh.Client
	Close() error
}

// SSHSessioner wraps a single exec channel on a connection.
type SSHSessioner interface {
	Run(command string) error
	Start(command string) error
	Wait() error
	CombinedOutput(command string) ([]byte, error)
	SetStdout(w io.Writer)
	SetStderr(w io.Writer)
	Close() error
}

// SFTPClienter is the subset of the sftp client used for file pushes.
type SFTPClienter interface {
	Create(path string) (io.WriteCloser, error)
	MkdirAll(path string) error
	Chmod(path string, mode os.FileMode) error
	Close() error
}
