package internal_aws

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
)

// rawAWSData is the region and instance type catalog shipped with the
// binary. Regenerate aws_data.yaml when AWS adds offerings.
//
//go:embed aws_data.yaml
var rawAWSData []byte

type AWSData struct {
	Locations map[string][]string `yaml:"locations"`
	FreeTier  map[string][]string `yaml:"free_tier"`
}

func loadAWSData() (*AWSData, error) {
	var data AWSData
	if err := yaml.Unmarshal(rawAWSData, &data); err != nil {
		return nil, err
	}
	for _, types := range data.Locations {
		sort.Strings(types)
	}
	return &data, nil
}

func IsValidAWSRegion(region string) bool {
	l := logger.Get()
	data, err := loadAWSData()
	if err != nil {
		l.Warnf("Failed to load AWS data: %v", err)
		return false
	}

	for loc := range data.Locations {
		if strings.EqualFold(loc, region) {
			return true
		}
	}

	l.Warnf("Invalid AWS region: %s", region)
	return false
}

func IsValidAWSInstanceType(region, instanceType string) bool {
	l := logger.Get()
	data, err := loadAWSData()
	if err != nil {
		l.Warnf("Failed to load AWS data: %v", err)
		return false
	}

	instanceTypes, exists := data.Locations[region]
	if !exists {
		l.Warnf("Region not found: %s", region)
		return false
	}

	for _, size := range instanceTypes {
		if size == instanceType {
			return true
		}
	}

	l.Warnf("Invalid instance type for region: %s, instanceType: %s", region, instanceType)
	return false
}

func GetAllAWSRegions() ([]string, error) {
	data, err := loadAWSData()
	if err != nil {
		return nil, err
	}

	regions := make([]string, 0, len(data.Locations))
	for region := range data.Locations {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions, nil
}

func GetAWSInstanceTypes(region string) ([]string, error) {
	l := logger.Get()
	data, err := loadAWSData()
	if err != nil {
		l.Warnf("Failed to load AWS data: %v", err)
		return nil, err
	}

	instanceTypes, exists := data.Locations[region]
	if !exists {
		l.Warnf("Region not found: %s", region)
		return nil, fmt.Errorf("region not found: %s", region)
	}

	return instanceTypes, nil
}

// GetFreeTierInstanceTypes returns the Free Tier eligible types for region,
// or nil when the region has none on record.
func GetFreeTierInstanceTypes(region string) []string {
	data, err := loadAWSData()
	if err != nil {
		logger.Get().Warnf("Failed to load AWS data: %v", err)
		return nil
	}
	return data.FreeTier[region]
}
