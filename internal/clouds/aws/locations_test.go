package internal_aws

import (
	"testing"
)

func TestIsValidAWSRegion(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		expected bool
	}{
		{"Valid region", "af-south-1", true},
		{"Valid region case insensitive", "US-WEST-2", true},
		{"Invalid region", "invalid-region", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidAWSRegion(tt.region)
			if result != tt.expected {
				t.Errorf("IsValidAWSRegion(%s) = %v, want %v", tt.region, result, tt.expected)
			}
		})
	}
}

func TestIsValidAWSInstanceType(t *testing.T) {
	tests := []struct {
		name         string
		region       string
		instanceType string
		expected     bool
	}{
		{"Valid instance type", "af-south-1", "t3.micro", true},
		{"Type not offered in region", "af-south-1", "t2.micro", false},
		{"Invalid instance type", "us-east-1", "invalid-type", false},
		{"Invalid region", "invalid-region", "t2.micro", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidAWSInstanceType(tt.region, tt.instanceType)
			if result != tt.expected {
				t.Errorf(
					"IsValidAWSInstanceType(%s, %s) = %v, want %v",
					tt.region,
					tt.instanceType,
					result,
					tt.expected,
				)
			}
		})
	}
}

func TestGetAllAWSRegions(t *testing.T) {
	regions, err := GetAllAWSRegions()
	if err != nil {
		t.Fatalf("GetAllAWSRegions() returned an error: %v", err)
	}

	if len(regions) == 0 {
		t.Error("GetAllAWSRegions() returned an empty list of regions")
	}

	knownRegions := []string{"af-south-1", "us-east-1", "eu-west-1"}
	for _, known := range knownRegions {
		if !contains(regions, known) {
			t.Errorf("GetAllAWSRegions() does not contain known region: %s", known)
		}
	}
}

func TestGetAWSInstanceTypes(t *testing.T) {
	tests := []struct {
		name             string
		region           string
		expectedErrorNil bool
	}{
		{"Valid region", "af-south-1", true},
		{"Invalid region", "invalid-region", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			types, err := GetAWSInstanceTypes(tt.region)
			if (err == nil) != tt.expectedErrorNil {
				t.Errorf(
					"GetAWSInstanceTypes(%s) error = %v, expectedErrorNil %v",
					tt.region,
					err,
					tt.expectedErrorNil,
				)
				return
			}
			if tt.expectedErrorNil && len(types) == 0 {
				t.Errorf(
					"GetAWSInstanceTypes(%s) returned an empty list for a valid region",
					tt.region,
				)
			}
		})
	}
}

func TestGetFreeTierInstanceTypes(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		expected []string
	}{
		{"Region without t2", "af-south-1", []string{"t3.micro"}},
		{"Region with t2", "us-east-1", []string{"t2.micro"}},
		{"Unknown region", "invalid-region", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetFreeTierInstanceTypes(tt.region)
			if len(got) != len(tt.expected) {
				t.Fatalf(
					"GetFreeTierInstanceTypes(%s) = %v, want %v",
					tt.region,
					got,
					tt.expected,
				)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf(
						"GetFreeTierInstanceTypes(%s) = %v, want %v",
						tt.region,
						got,
						tt.expected,
					)
				}
			}
		})
	}
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
