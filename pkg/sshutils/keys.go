package sshutils

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"
)

// WritePrivateKeyFile stores key material the way sshd expects it to be
// stored locally: parent directory 0700, file 0600.
func WritePrivateKeyFile(path string, material []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create key directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, material, 0600); err != nil {
		return fmt.Errorf("failed to write private key %s: %w", path, err)
	}
	return nil
}

// ReadPrivateKey reads and parse-validates the private key at path.
func ReadPrivateKey(path string) ([]byte, error) {
	privateKeyBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file: %w", err)
	}
	if _, err = ssh.ParsePrivateKey(privateKeyBytes); err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return privateKeyBytes, nil
}

func GenerateRsaKeyPair() (*rsa.PrivateKey, *rsa.PublicKey) {
	privkey, _ := rsa.GenerateKey(rand.Reader, 2048)
	return privkey, &privkey.PublicKey
}

func ExportRsaPrivateKeyAsPem(privkey *rsa.PrivateKey) []byte {
	privkeyBytes := x509.MarshalPKCS1PrivateKey(privkey)
	return pem.EncodeToMemory(
		&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: privkeyBytes,
		},
	)
}

// ExportRsaPublicKeyAsAuthorizedKey renders the public half in the
// single-line format authorized_keys files use.
func ExportRsaPublicKeyAsAuthorizedKey(pubkey *rsa.PublicKey) ([]byte, error) {
	sshPub, err := ssh.NewPublicKey(pubkey)
	if err != nil {
		return nil, fmt.Errorf("failed to convert public key: %w", err)
	}
	return ssh.MarshalAuthorizedKey(sshPub), nil
}
