package table

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
)

func TestRenderInstances(t *testing.T) {
	var buf bytes.Buffer
	RenderInstances(&buf, []models.Instance{
		{
			ID:               "i-1234567890abcdef0",
			Name:             "web-server",
			State:            "running",
			Type:             "t3.micro",
			PublicIP:         "203.0.113.1",
			PrivateIP:        "10.0.0.1",
			AvailabilityZone: "af-south-1a",
		},
		{
			ID:    "i-0fedcba0987654321",
			State: "stopped",
			Type:  "t3.small",
		},
	})

	out := buf.String()
	assert.Contains(t, out, "i-1234567890abcdef0")
	assert.Contains(t, out, "web-server")
	assert.Contains(t, out, "203.0.113.1")
	// unnamed instance and missing fields render as a dash
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "NAME")
}

func TestRenderVolumes(t *testing.T) {
	var buf bytes.Buffer
	RenderVolumes(&buf, []models.Volume{
		{
			ID:         "vol-0123456789abcdef0",
			Name:       "web-server",
			State:      "in-use",
			SizeGiB:    30,
			Type:       "gp3",
			AttachedTo: []string{"i-1234567890abcdef0"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "vol-0123456789abcdef0")
	assert.Contains(t, out, "30 GiB")
	assert.Contains(t, out, "i-1234567890abcdef0")
}

func TestRenderBundleMarksMissingResources(t *testing.T) {
	var buf bytes.Buffer
	RenderBundle(&buf, &models.ResourceBundle{
		Name: "web-server",
		Instance: &models.Instance{
			ID:    "i-1234567890abcdef0",
			State: "running",
		},
		BucketName: "web-server",
	})

	out := buf.String()
	assert.Contains(t, out, "i-1234567890abcdef0 (running)")
	assert.Contains(t, out, "found")
	assert.Contains(t, out, "missing")
}

func TestRenderTeardownReport(t *testing.T) {
	report := &models.TeardownReport{}
	report.Add("terminate instance", nil)
	report.Add("delete security group", errors.New("DependencyViolation"))

	var buf bytes.Buffer
	RenderTeardownReport(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "terminate instance")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "failed: DependencyViolation")
}
