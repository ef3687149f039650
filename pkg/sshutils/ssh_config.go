package sshutils

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"strconv"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
)

// SSHConfig holds the connection parameters for one remote host and
// implements SSHConfiger on top of golang.org/x/crypto/ssh.
type SSHConfig struct {
	Host           string
	Port           int
	User           string
	PrivateKeyPath string

	ClientConfig *ssh.ClientConfig

	// SSHClient is the established connection. Exported so tests can
	// inject a mock and skip dialing.
	SSHClient SSHClienter

	sftpClientCreator SFTPClientCreator
}

// NewSSHConfigFunc allows tests to substitute the constructor.
var NewSSHConfigFunc = NewSSHConfig

// NewSSHConfig reads and parses the private key at privateKeyPath and
// returns a config ready to connect. Host keys are not verified; the
// instances this tool talks to are created moments earlier and their
// host keys are unknown by construction.
func NewSSHConfig(
	host string,
	port int,
	user string,
	privateKeyPath string,
) (SSHConfiger, error) {
	key, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key %s: %w", privateKeyPath, err)
	}
	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key %s: %w", privateKeyPath, err)
	}
	return &SSHConfig{
		Host:           host,
		Port:           port,
		User:           user,
		PrivateKeyPath: privateKeyPath,
		ClientConfig: &ssh.ClientConfig{
			User:            user,
			Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
			HostKeyCallback: ssh.InsecureIgnoreHostKey(),
			Timeout:         SSHDialTimeout,
		},
		sftpClientCreator: DefaultSFTPClientCreator,
	}, nil
}

func (c *SSHConfig) GetHost() string           { return c.Host }
func (c *SSHConfig) GetPort() int              { return c.Port }
func (c *SSHConfig) GetUser() string           { return c.User }
func (c *SSHConfig) GetPrivateKeyPath() string { return c.PrivateKeyPath }

// Connect dials the host and retains the connection for subsequent calls.
func (c *SSHConfig) Connect(ctx context.Context) (SSHClienter, error) {
	l := logger.Get()
	l.Debugf("Connecting to %s@%s:%d", c.User, c.Host, c.Port)

	client, err := c.dialContext(ctx)
	if err != nil {
		return nil, err
	}
	c.SSHClient = client
	return client, nil
}

// dialContext runs ssh.Dial in a goroutine so the dial can be abandoned
// when ctx is done. ClientConfig.Timeout bounds the dial itself.
func (c *SSHConfig) dialContext(ctx context.Context) (SSHClienter, error) {
	addr := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))

	type dialResult struct {
		client *ssh.Client
		err    error
	}
	result := make(chan dialResult, 1)
	go func() {
		client, err := ssh.Dial("tcp", addr, c.ClientConfig)
		result <- dialResult{client: client, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-result:
		if res.err != nil {
			return nil, fmt.Errorf("failed to dial %s: %w", addr, res.err)
		}
		return &SSHClientWrapper{Client: res.client}, nil
	}
}

// Close tears down the retained connection, if any.
func (c *SSHConfig) Close() error {
	if c.SSHClient == nil {
		return nil
	}
	err := c.SSHClient.Close()
	c.SSHClient = nil
	return err
}

func (c *SSHConfig) ensureConnected(ctx context.Context) (SSHClienter, error) {
	if c.SSHClient != nil {
		return c.SSHClient, nil
	}
	return c.Connect(ctx)
}

// WaitForSSH polls until sshd accepts a session or the attempts run out.
// A fresh instance can take a couple of minutes to start answering.
func (c *SSHConfig) WaitForSSH(ctx context.Context, retries int, delay time.Duration) error {
	l := logger.Get()

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		client, err := c.Connect(ctx)
		if err == nil {
			session, sessionErr := client.NewSession()
			if sessionErr == nil {
				_ = session.Close()
				return nil
			}
			err = sessionErr
			_ = c.Close()
		}
		lastErr = err
		l.Debugf("SSH not ready on %s (attempt %d/%d): %v", c.Host, attempt, retries, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("SSH not available on %s after %d attempts: %w", c.Host, retries, lastErr)
}

// ExecuteCommand runs command on the remote host and returns its combined
// stdout and stderr. A non-zero exit status is returned as an *SSHError
// carrying the captured output.
func (c *SSHConfig) ExecuteCommand(ctx context.Context, command string) (string, error) {
	l := logger.Get()

	client, err := c.ensureConnected(ctx)
	if err != nil {
		return "", err
	}
	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	l.Debugf("Executing on %s: %s", c.Host, command)
	output, err := session.CombinedOutput(command)
	if err != nil {
		return string(output), &SSHError{Cmd: command, Output: string(output), Err: err}
	}
	return string(output), nil
}

// ExecuteCommandStream runs command with its output wired to out as it is
// produced. The call blocks until the command exits or ctx is done;
// cancellation closes the session and is not an error, which is how a
// followed log stream ends.
func (c *SSHConfig) ExecuteCommandStream(
	ctx context.Context,
	command string,
	out io.Writer,
) error {
	l := logger.Get()

	client, err := c.ensureConnected(ctx)
	if err != nil {
		return err
	}
	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	session.SetStdout(out)
	session.SetStderr(out)

	l.Debugf("Streaming on %s: %s", c.Host, command)
	if err := session.Start(command); err != nil {
		_ = session.Close()
		return fmt.Errorf("failed to start %q: %w", command, err)
	}

	done := make(chan error, 1)
	go func() { done <- session.Wait() }()

	select {
	case <-ctx.Done():
		_ = session.Close()
		<-done
		return nil
	case err := <-done:
		_ = session.Close()
		if err != nil {
			return &SSHError{Cmd: command, Err: err}
		}
		return nil
	}
}

// PushFile writes content to remotePath over SFTP, creating parent
// directories as needed. Executable files get mode 0755, others 0644.
func (c *SSHConfig) PushFile(
	ctx context.Context,
	remotePath string,
	content []byte,
	executable bool,
) error {
	l := logger.Get()

	client, err := c.ensureConnected(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	creator := c.sftpClientCreator
	if creator == nil {
		creator = DefaultSFTPClientCreator
	}
	sftpClient, err := creator(client)
	if err != nil {
		return fmt.Errorf("failed to open sftp session: %w", err)
	}
	defer sftpClient.Close()

	l.Debugf("Pushing %d bytes to %s:%s", len(content), c.Host, remotePath)
	if dir := path.Dir(remotePath); dir != "." && dir != "/" {
		if err := sftpClient.MkdirAll(dir); err != nil {
			return fmt.Errorf("failed to create remote directory %s: %w", dir, err)
		}
	}

	remoteFile, err := sftpClient.Create(remotePath)
	if err != nil {
		return fmt.Errorf("failed to create remote file %s: %w", remotePath, err)
	}
	if _, err := remoteFile.Write(content); err != nil {
		_ = remoteFile.Close()
		return fmt.Errorf("failed to write remote file %s: %w", remotePath, err)
	}
	if err := remoteFile.Close(); err != nil {
		return fmt.Errorf("failed to close remote file %s: %w", remotePath, err)
	}

	mode := os.FileMode(0644)
	if executable {
		mode = 0755
	}
	if err := sftpClient.Chmod(remotePath, mode); err != nil {
		return fmt.Errorf("failed to chmod remote file %s: %w", remotePath, err)
	}
	return nil
}
