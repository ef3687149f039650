package models

import "time"

// Instance is the flat record every command works with. It is derived
// transiently from DescribeInstances and never persisted.
type Instance struct {
	ID               string
	Name             string
	State            string
	Type             string
	PublicIP         string
	PrivateIP        string
	ElasticIP        string
	KeyName          string
	AvailabilityZone string
	LaunchTime       time.Time
}

// IsRunning reports whether the instance is in the running state.
func (i Instance) IsRunning() bool {
	return i.State == "running"
}

// IsStopped reports whether the instance is in the stopped state.
func (i Instance) IsStopped() bool {
	return i.State == "stopped"
}

// DisplayName returns the Name tag, or "-" for unnamed instances.
func (i Instance) DisplayName() string {
	if i.Name == "" {
		return "-"
	}
	return i.Name
}

// Volume is the transient EBS volume record from DescribeVolumes.
type Volume struct {
	ID               string
	Name             string
	State            string
	SizeGiB          int32
	Type             string
	AvailabilityZone string
	Encrypted        bool
	AttachedTo       []string
	Device           string
	CreateTime       time.Time
}

// IsAttached reports whether the volume has at least one attachment.
func (v Volume) IsAttached() bool {
	return len(v.AttachedTo) > 0
}
