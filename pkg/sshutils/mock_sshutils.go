package sshutils

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/ssh"
)

// MockSSHConfig mocks SSHConfiger.
type MockSSHConfig struct {
	mock.Mock
}

var _ SSHConfiger = (*MockSSHConfig)(nil)

func (m *MockSSHConfig) Connect(ctx context.Context) (SSHClienter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(SSHClienter), args.Error(1)
}

func (m *MockSSHConfig) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSSHConfig) WaitForSSH(ctx context.Context, retries int, delay time.Duration) error {
	args := m.Called(ctx, retries, delay)
	return args.Error(0)
}

func (m *MockSSHConfig) ExecuteCommand(ctx context.Context, command string) (string, error) {
	args := m.Called(ctx, command)
	return args.String(0), args.Error(1)
}

func (m *MockSSHConfig) ExecuteCommandStream(
	ctx context.Context,
	command string,
	out io.Writer,
) error {
	args := m.Called(ctx, command, out)
	return args.Error(0)
}

func (m *MockSSHConfig) PushFile(
	ctx context.Context,
	remotePath string,
	content []byte,
	executable bool,
) error {
	args := m.Called(ctx, remotePath, content, executable)
	return args.Error(0)
}

func (m *MockSSHConfig) GetHost() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSSHConfig) GetPort() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockSSHConfig) GetUser() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSSHConfig) GetPrivateKeyPath() string {
	args := m.Called()
	return args.String(0)
}

// MockSSHClient mocks SSHClienter.
type MockSSHClient struct {
	mock.Mock
}

var _ SSHClienter = (*MockSSHClient)(nil)

func (m *MockSSHClient) NewSession() (SSHSessioner, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(SSHSessioner), args.Error(1)
}

func (m *MockSSHClient) GetClient() *ssh.Client {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*ssh.Client)
}

func (m *MockSSHClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockSSHSession mocks SSHSessioner.
type MockSSHSession struct {
	mock.Mock
}

var _ SSHSessioner = (*MockSSHSession)(nil)

func (m *MockSSHSession) Run(command string) error {
	args := m.Called(command)
	return args.Error(0)
}

func (m *MockSSHSession) Start(command string) error {
	args := m.Called(command)
	return args.Error(0)
}

func (m *MockSSHSession) Wait() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSSHSession) CombinedOutput(command string) ([]byte, error) {
	args := m.Called(command)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSSHSession) SetStdout(w io.Writer) {
	m.Called(w)
}

func (m *MockSSHSession) SetStderr(w io.Writer) {
	m.Called(w)
}

func (m *MockSSHSession) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockSFTPClient mocks SFTPClienter.
type MockSFTPClient struct {
	mock.Mock
}

var _ SFTPClienter = (*MockSFTPClient)(nil)

func (m *MockSFTPClient) Create(path string) (io.WriteCloser, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (m *MockSFTPClient) MkdirAll(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockSFTPClient) Chmod(path string, mode os.FileMode) error {
	args := m.Called(path, mode)
	return args.Error(0)
}

func (m *MockSFTPClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockWriteCloser mocks the file handle returned by MockSFTPClient.Create.
type MockWriteCloser struct {
	mock.Mock
}

func (m *MockWriteCloser) Write(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *MockWriteCloser) Close() error {
	args := m.Called()
	return args.Error(0)
}
