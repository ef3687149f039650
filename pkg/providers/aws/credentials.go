package awsprovider

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
)

const (
	CredentialSourceEnvironment = "environment"
	CredentialSourceFile        = "file"
)

// StaticCredentials is a resolved static key pair plus where it came from.
type StaticCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Source          string
}

// ResolveCredentials finds a usable key pair: the standard environment
// variables first, then first-line reads of the two key files named in
// config. Neither available means the caller cannot proceed.
func ResolveCredentials() (*StaticCredentials, error) {
	l := logger.Get()

	accessKey := strings.TrimSpace(os.Getenv("AWS_ACCESS_KEY_ID"))
	secretKey := strings.TrimSpace(os.Getenv("AWS_SECRET_ACCESS_KEY"))
	if accessKey != "" && secretKey != "" {
		l.Debug("Using AWS credentials from environment")
		return &StaticCredentials{
			AccessKeyID:     accessKey,
			SecretAccessKey: secretKey,
			SessionToken:    strings.TrimSpace(os.Getenv("AWS_SESSION_TOKEN")),
			Source:          CredentialSourceEnvironment,
		}, nil
	}

	accessKeyPath := viper.GetString("paths.access_key_file")
	secretKeyPath := viper.GetString("paths.secret_key_file")

	fileAccessKey, accessErr := readFirstLine(accessKeyPath)
	fileSecretKey, secretErr := readFirstLine(secretKeyPath)
	if accessErr != nil || secretErr != nil {
		return nil, fmt.Errorf(
			"%w: set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY, or provide %s and %s",
			ErrNoCredentials,
			accessKeyPath,
			secretKeyPath,
		)
	}

	l.Debugf("Using AWS credentials from %s and %s", accessKeyPath, secretKeyPath)
	return &StaticCredentials{
		AccessKeyID:     fileAccessKey,
		SecretAccessKey: fileSecretKey,
		Source:          CredentialSourceFile,
	}, nil
}

func readFirstLine(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%s is empty", path)
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return "", fmt.Errorf("%s is empty", path)
	}
	return line, nil
}
