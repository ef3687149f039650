package envfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

const exampleTemplate = `# Database settings
DB_HOST=db
DB_PORT=5432

SECRET_KEY=<your-secret-here>
API_KEY = ""
PROJECT_NAME=
`

func useEnvsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	viper.Set("paths.envs", dir)
	t.Cleanup(func() { viper.Set("paths.envs", "") })
	return dir
}

func writeExample(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.example"), []byte(content), 0644))
}

func TestGenerateSynthesizesValues(t *testing.T) {
	dir := useEnvsDir(t)
	writeExample(t, dir, exampleTemplate)

	path, err := Generate("app")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env.app"), path)

	values, err := godotenv.Read(path)
	require.NoError(t, err)

	assert.Equal(t, "db", values["DB_HOST"])
	assert.Equal(t, "5432", values["DB_PORT"])
	assert.Equal(t, "app", values["PROJECT_NAME"])

	assert.Len(t, values["SECRET_KEY"], SecretLength)
	assert.Len(t, values["API_KEY"], SecretLength)
	assert.NotEqual(t, values["SECRET_KEY"], values["API_KEY"])
	for _, r := range values["SECRET_KEY"] {
		assert.Contains(t, secretAlphabet, string(r))
	}

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestGeneratePreservesLayout(t *testing.T) {
	dir := useEnvsDir(t)
	writeExample(t, dir, exampleTemplate)

	path, err := Generate("app")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(content), "\n")

	assert.Equal(t, "# Database settings", lines[0])
	assert.Equal(t, "DB_HOST=db", lines[1])
	assert.Empty(t, lines[3])
	// the spacing style of each assignment survives the rewrite
	assert.True(t, strings.HasPrefix(lines[5], "API_KEY = "), lines[5])
}

func TestGenerateKeepsExistingValues(t *testing.T) {
	dir := useEnvsDir(t)
	writeExample(t, dir, exampleTemplate)

	first, err := Generate("app")
	require.NoError(t, err)
	firstValues, err := godotenv.Read(first)
	require.NoError(t, err)

	second, err := Generate("app")
	require.NoError(t, err)
	secondValues, err := godotenv.Read(second)
	require.NoError(t, err)

	// regeneration never rotates a secret that is already in use
	assert.Equal(t, firstValues["SECRET_KEY"], secondValues["SECRET_KEY"])
	assert.Equal(t, firstValues["API_KEY"], secondValues["API_KEY"])
}

func TestGenerateIsAdditiveForNewTemplateKeys(t *testing.T) {
	dir := useEnvsDir(t)
	writeExample(t, dir, exampleTemplate)

	first, err := Generate("app")
	require.NoError(t, err)
	firstValues, err := godotenv.Read(first)
	require.NoError(t, err)

	writeExample(t, dir, exampleTemplate+"SIGNING_KEY=<key>\n")
	second, err := Generate("app")
	require.NoError(t, err)
	secondValues, err := godotenv.Read(second)
	require.NoError(t, err)

	assert.Equal(t, firstValues["SECRET_KEY"], secondValues["SECRET_KEY"])
	assert.Len(t, secondValues["SIGNING_KEY"], SecretLength)
}

func TestGenerateMissingTemplate(t *testing.T) {
	useEnvsDir(t)

	_, err := Generate("app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env.example")
}

func TestNeedsSynthesis(t *testing.T) {
	assert.True(t, needsSynthesis(""))
	assert.True(t, needsSynthesis("  "))
	assert.True(t, needsSynthesis("<your-key-here>"))
	assert.True(t, needsSynthesis(`"<placeholder>"`))
	assert.False(t, needsSynthesis("real-value"))
	assert.False(t, needsSynthesis("5432"))
}

func TestDeployPushesAndRestrictsPermissions(t *testing.T) {
	dir := useEnvsDir(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".env.app"), []byte("KEY=value\n"), 0600))

	mockSSH := &sshutils.MockSSHConfig{}
	mockSSH.On("GetHost").Return("203.0.113.1").Maybe()
	mockSSH.On("PushFile", mock.Anything,
		"/home/ec2-user/projects/app/.env", []byte("KEY=value\n"), false).
		Return(nil)
	mockSSH.On("ExecuteCommand", mock.Anything,
		"chmod 600 /home/ec2-user/projects/app/.env").
		Return("", nil)

	require.NoError(t, Deploy(context.Background(), mockSSH, "app"))
	mockSSH.AssertExpectations(t)
}

func TestDeployWithoutGeneratedFile(t *testing.T) {
	useEnvsDir(t)

	mockSSH := &sshutils.MockSSHConfig{}
	err := Deploy(context.Background(), mockSSH, "app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project env generate")
}
