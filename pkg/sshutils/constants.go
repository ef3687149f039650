package sshutils

import "time"

var (
	TimeInBetweenSSHRetries = 2 * time.Second
	SSHTimeOut              = 1 * time.Minute
	SSHRetryAttempts        = 30
	SSHDialTimeout          = 10 * time.Second
	SSHRetryDelay           = 10 * time.Second
	SSHDefaultPort          = 22
)

func GetAggregateSSHTimeout() time.Duration {
	totalTimeout := (SSHDialTimeout + SSHRetryDelay) * time.Duration(
		SSHRetryAttempts,
	)
	return totalTimeout
}
