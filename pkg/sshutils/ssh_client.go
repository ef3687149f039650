package sshutils

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/ssh"
)

// SSHClientWrapper adapts *ssh.Client to SSHClienter.
type SSHClientWrapper struct {
	Client *ssh.Client
}

func (w *SSHClientWrapper) NewSession() (SSHSessioner, error) {
	if w.Client == nil {
		return nil, fmt.Errorf("ssh client is not connected")
	}
	session, err := w.Client.NewSession()
	if err != nil {
		return nil, err
	}
	return &SSHSessionWrapper{Session: session}, nil
}

func (w *SSHClientWrapper) GetClient() *ssh.Client {
	return w.Client
}

func (w *SSHClientWrapper) Close() error {
	if w.Client == nil {
		return nil
	}
	return w.Client.Close()
}

// SSHSessionWrapper adapts *ssh.Session to SSHSessioner.
type SSHSessionWrapper struct {
	Session *ssh.Session
}

func (s *SSHSessionWrapper) Run(command string) error {
	return s.Session.Run(command)
}

func (s *SSHSessionWrapper) Start(command string) error {
	return s.Session.Start(command)
}

func (s *SSHSessionWrapper) Wait() error {
	return s.Session.Wait()
}

func (s *SSHSessionWrapper) CombinedOutput(command string) ([]byte, error) {
	return s.Session.CombinedOutput(command)
}

func (s *SSHSessionWrapper) SetStdout(w io.Writer) {
	s.Session.Stdout = w
}

func (s *SSHSessionWrapper) SetStderr(w io.Writer) {
	s.Session.Stderr = w
}

// Close treats io.EOF as success; ssh.Session returns it when the remote
// side already closed the channel.
func (s *SSHSessionWrapper) Close() error {
	if s.Session == nil {
		return nil
	}
	err := s.Session.Close()
	if err == io.EOF {
		return nil
	}
	return err
}

// SSHError carries the command and its captured output alongside the
// underlying failure, so callers can surface what the remote side said.
type SSHError struct {
	Cmd    string
	Output string
	Err    error
}

func (e *SSHError) Error() string {
	var sb strings.Builder
	sb.WriteString("SSHError:\n")
	sb.WriteString(fmt.Sprintf("  Cmd:    %s\n", e.Cmd))
	sb.WriteString(fmt.Sprintf("  Output: %s\n", strings.TrimRight(e.Output, "\n")))
	sb.WriteString(fmt.Sprintf("  Err:    %v", e.Err))
	return sb.String()
}

func (e *SSHError) Unwrap() error {
	return e.Err
}
