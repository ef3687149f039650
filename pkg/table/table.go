package table

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
)

const (
	launchTimeLayout = "2006-01-02 15:04"
	missingCell      = "-"
)

func newTable(w io.Writer, headers []string) *tablewriter.Table {
	if w == nil {
		w = os.Stdout
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}

// RenderInstances prints the instance listing.
func RenderInstances(w io.Writer, instances []models.Instance) {
	table := newTable(w, []string{
		"ID", "Name", "State", "Type", "Public IP", "Private IP", "AZ", "Launched",
	})
	for _, instance := range instances {
		table.Append([]string{
			instance.ID,
			instance.DisplayName(),
			instance.State,
			instance.Type,
			orMissing(instance.PublicIP),
			orMissing(instance.PrivateIP),
			orMissing(instance.AvailabilityZone),
			formatTime(instance.LaunchTime),
		})
	}
	table.Render()
}

// RenderVolumes prints the volume listing.
func RenderVolumes(w io.Writer, volumes []models.Volume) {
	table := newTable(w, []string{
		"ID", "Name", "State", "Size", "Type", "Attached To",
	})
	for _, volume := range volumes {
		table.Append([]string{
			volume.ID,
			orMissing(volume.Name),
			volume.State,
			fmt.Sprintf("%d GiB", volume.SizeGiB),
			volume.Type,
			orMissing(strings.Join(volume.AttachedTo, ", ")),
		})
	}
	table.Render()
}

// RenderBundle prints the found/missing view of one resource bundle.
func RenderBundle(w io.Writer, bundle *models.ResourceBundle) {
	table := newTable(w, []string{"Resource", "Status", "Detail"})

	appendRow := func(resource, detail string) {
		status := "found"
		if detail == "" {
			status = "missing"
			detail = missingCell
		}
		table.Append([]string{resource, status, detail})
	}

	instanceDetail := ""
	if bundle.Instance != nil {
		instanceDetail = fmt.Sprintf("%s (%s)", bundle.Instance.ID, bundle.Instance.State)
	}
	appendRow("EC2 instance", instanceDetail)

	volumeDetail := ""
	if bundle.Volume != nil {
		volumeDetail = fmt.Sprintf("%s (%s)", bundle.Volume.ID, bundle.Volume.State)
	}
	appendRow("EBS volume", volumeDetail)

	appendRow("Key pair", bundle.KeyPairID)
	appendRow("Local key file", bundle.KeyFilePath)
	appendRow("S3 bucket", bundle.BucketName)
	appendRow("Security group", bundle.SecurityGroupID)
	appendRow("IAM policy", bundle.PolicyArn)
	appendRow("IAM role", bundle.RoleName)
	appendRow("Instance profile", bundle.InstanceProfileArn)
	appendRow("Elastic IP", bundle.ElasticIP)

	table.Render()
}

// RenderTeardownReport prints the per-step outcome of a destroy run.
func RenderTeardownReport(w io.Writer, report *models.TeardownReport) {
	table := newTable(w, []string{"Step", "Result"})
	for _, step := range report.Steps {
		result := "ok"
		if step.Err != nil {
			result = "failed: " + step.Err.Error()
		}
		table.Append([]string{step.Step, result})
	}
	table.Render()
}

func orMissing(s string) string {
	if s == "" {
		return missingCell
	}
	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return missingCell
	}
	return t.UTC().Format(launchTimeLayout)
}
