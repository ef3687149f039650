package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/internal/testdata"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

// LoadFixtureConfig loads the embedded config fixture into the global
// viper so a test starts from the documented defaults. The previous
// state is discarded and viper is reset again on cleanup.
func LoadFixtureConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(strings.NewReader(testdata.TestGenericConfig)))
	t.Cleanup(viper.Reset)
}

// WriteInstanceKey writes a freshly generated RSA private key to
// dir/<name>.pem, the layout the pems directory uses, and returns the
// path. The key parses, so code that dial-validates it works.
func WriteInstanceKey(t *testing.T, dir, name string) string {
	t.Helper()
	privKey, _ := sshutils.GenerateRsaKeyPair()
	path := filepath.Join(dir, name+".pem")
	require.NoError(t, sshutils.WritePrivateKeyFile(path, sshutils.ExportRsaPrivateKeyAsPem(privKey)))
	return path
}
