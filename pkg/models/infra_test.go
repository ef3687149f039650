package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInfraRequestDefaults(t *testing.T) {
	req := NewInfraRequest("web-server")
	assert.Equal(t, "web-server", req.Name)
	assert.Equal(t, "t3.micro", req.InstanceType)
	assert.Equal(t, int32(30), req.VolumeSizeGiB)
	assert.Equal(t, "gp3", req.VolumeType)
	assert.Equal(t, []int32{22, 80, 443}, req.IngressPorts)
	assert.False(t, req.AssignElasticIP)
}

func TestInfraManifestApplyOverridesOnlySetFields(t *testing.T) {
	req := NewInfraRequest("web-server")
	manifest := &InfraManifest{
		InstanceType: "t3.small",
		IngressPorts: []int32{22, 8000},
		ElasticIP:    true,
	}
	manifest.Apply(req)

	assert.Equal(t, "t3.small", req.InstanceType)
	assert.Equal(t, []int32{22, 8000}, req.IngressPorts)
	assert.True(t, req.AssignElasticIP)
	// unset manifest fields keep the defaults
	assert.Equal(t, int32(30), req.VolumeSizeGiB)
	assert.Equal(t, "gp3", req.VolumeType)
}

func TestLoadInfraManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`instance_type: t3.medium
volume_size_gib: 50
volume_type: gp2
ingress_ports:
  - 22
  - 443
elastic_ip: true
`), 0644))

	manifest, err := LoadInfraManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "t3.medium", manifest.InstanceType)
	assert.Equal(t, int32(50), manifest.VolumeSizeGiB)
	assert.Equal(t, "gp2", manifest.VolumeType)
	assert.Equal(t, []int32{22, 443}, manifest.IngressPorts)
	assert.True(t, manifest.ElasticIP)
}

func TestLoadInfraManifestBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("instance_type: [unclosed"), 0644))

	_, err := LoadInfraManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestLoadInfraManifestMissingFile(t *testing.T) {
	_, err := LoadInfraManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestTeardownReport(t *testing.T) {
	report := &TeardownReport{}
	assert.True(t, report.Ok())

	report.Add("terminate instance", nil)
	report.Add("delete volume", errors.New("still attached"))
	report.Add("delete bucket", nil)

	assert.False(t, report.Ok())
	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "delete volume", failed[0].Step)
}

func TestInstanceStateHelpers(t *testing.T) {
	assert.True(t, Instance{State: "running"}.IsRunning())
	assert.False(t, Instance{State: "stopped"}.IsRunning())
	assert.True(t, Instance{State: "stopped"}.IsStopped())

	assert.Equal(t, "-", Instance{}.DisplayName())
	assert.Equal(t, "web-server", Instance{Name: "web-server"}.DisplayName())
}

func TestVolumeIsAttached(t *testing.T) {
	assert.False(t, Volume{}.IsAttached())
	assert.True(t, Volume{AttachedTo: []string{"i-1234567890abcdef0"}}.IsAttached())
}
