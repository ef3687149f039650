package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultInstanceType  = "t3.micro"
	DefaultVolumeSizeGiB = 30
	DefaultVolumeType    = "gp3"
	DefaultDataDevice    = "/dev/sdf"
	DefaultRootDevice    = "/dev/xvda"
)

// DefaultIngressPorts are opened on every provisioned security group.
var DefaultIngressPorts = []int32{22, 80, 443}

// InfraRequest carries the provisioning parameters for one named bundle.
// Flag values override manifest values which override the defaults.
type InfraRequest struct {
	Name            string
	InstanceType    string
	VolumeSizeGiB   int32
	VolumeType      string
	IngressPorts    []int32
	AssignElasticIP bool
}

// NewInfraRequest returns a request populated with the fixed defaults.
func NewInfraRequest(name string) *InfraRequest {
	return &InfraRequest{
		Name:          name,
		InstanceType:  DefaultInstanceType,
		VolumeSizeGiB: DefaultVolumeSizeGiB,
		VolumeType:    DefaultVolumeType,
		IngressPorts:  append([]int32{}, DefaultIngressPorts...),
	}
}

// InfraManifest is the optional YAML description of a bundle, loaded with
// --manifest. Zero values mean "not set".
type InfraManifest struct {
	InstanceType  string  `yaml:"instance_type"`
	VolumeSizeGiB int32   `yaml:"volume_size_gib"`
	VolumeType    string  `yaml:"volume_type"`
	IngressPorts  []int32 `yaml:"ingress_ports"`
	ElasticIP     bool    `yaml:"elastic_ip"`
}

// LoadInfraManifest reads and parses a manifest file.
func LoadInfraManifest(path string) (*InfraManifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest InfraManifest
	if err := yaml.Unmarshal(content, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	return &manifest, nil
}

// Apply copies the manifest's set fields onto the request.
func (m *InfraManifest) Apply(req *InfraRequest) {
	if m.InstanceType != "" {
		req.InstanceType = m.InstanceType
	}
	if m.VolumeSizeGiB > 0 {
		req.VolumeSizeGiB = m.VolumeSizeGiB
	}
	if m.VolumeType != "" {
		req.VolumeType = m.VolumeType
	}
	if len(m.IngressPorts) > 0 {
		req.IngressPorts = append([]int32{}, m.IngressPorts...)
	}
	if m.ElasticIP {
		req.AssignElasticIP = true
	}
}

// ResourceBundle is the full set of resources sharing one name tag.
// Nil or empty members mean "not found".
type ResourceBundle struct {
	Name               string
	Instance           *Instance
	Volume             *Volume
	KeyPairID          string
	KeyFilePath        string
	BucketName         string
	SecurityGroupID    string
	PolicyArn          string
	RoleName           string
	InstanceProfileArn string
	ElasticIP          string
	AllocationID       string
}

// StepResult records the outcome of one teardown step.
type StepResult struct {
	Step string
	Err  error
}

// TeardownReport collects per-step outcomes of a destroy run. Steps that
// fail are recorded and the run continues.
type TeardownReport struct {
	Steps []StepResult
}

func (r *TeardownReport) Add(step string, err error) {
	r.Steps = append(r.Steps, StepResult{Step: step, Err: err})
}

// Failed returns the steps that reported an error.
func (r *TeardownReport) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Ok reports whether every step completed.
func (r *TeardownReport) Ok() bool {
	return len(r.Failed()) == 0
}
