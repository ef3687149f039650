package awsprovider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2_types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	internal_aws "github.com/charlessiwelejalusi/jalusi-aws-handler/internal/clouds/aws"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

// AllCIDR is the ingress source for every provisioned security group.
// Opening 22/80/443 to the world is the deliberate automation trade-off
// this tool makes.
const AllCIDR = "0.0.0.0/0"

// CreateInfrastructure provisions the full resource bundle for req.Name.
// Every step checks for an existing resource first and reuses it, so a
// second run with the same name performs no Create calls. A failed step
// aborts the sequence; earlier steps are not rolled back.
func (p *AWSProvider) CreateInfrastructure(
	ctx context.Context,
	req *models.InfraRequest,
) (*models.ResourceBundle, error) {
	l := logger.Get()
	bundle := &models.ResourceBundle{Name: req.Name}

	l.Infof("Provisioning infrastructure bundle %s in %s", req.Name, p.Region)

	keyPath, err := p.EnsureKeyPair(ctx, req.Name)
	if err != nil {
		return bundle, fmt.Errorf("key pair step failed: %w", err)
	}
	bundle.KeyFilePath = keyPath

	if err := p.EnsureBucket(ctx, req.Name); err != nil {
		return bundle, fmt.Errorf("S3 bucket step failed: %w", err)
	}
	bundle.BucketName = req.Name

	groupID, err := p.EnsureSecurityGroup(ctx, req.Name, req.IngressPorts)
	if err != nil {
		return bundle, fmt.Errorf("security group step failed: %w", err)
	}
	bundle.SecurityGroupID = groupID

	policyArn, err := p.EnsurePolicy(ctx, req.Name)
	if err != nil {
		return bundle, fmt.Errorf("IAM policy step failed: %w", err)
	}
	bundle.PolicyArn = policyArn

	roleName, err := p.EnsureRole(ctx, req.Name, policyArn)
	if err != nil {
		return bundle, fmt.Errorf("IAM role step failed: %w", err)
	}
	bundle.RoleName = roleName

	profileArn, err := p.EnsureInstanceProfile(ctx, req.Name, roleName)
	if err != nil {
		return bundle, fmt.Errorf("instance profile step failed: %w", err)
	}
	bundle.InstanceProfileArn = profileArn

	instance, err := p.EnsureInstance(ctx, req, groupID)
	if err != nil {
		return bundle, fmt.Errorf("EC2 instance step failed: %w", err)
	}
	bundle.Instance = instance

	volume, err := p.EnsureDataVolume(ctx, req, instance)
	if err != nil {
		return bundle, fmt.Errorf("EBS volume step failed: %w", err)
	}
	bundle.Volume = volume

	if req.AssignElasticIP {
		publicIP, allocationID, eipErr := p.EnsureElasticIP(ctx, req.Name, instance.ID)
		if eipErr != nil {
			return bundle, fmt.Errorf("Elastic IP step failed: %w", eipErr)
		}
		bundle.ElasticIP = publicIP
		bundle.AllocationID = allocationID
		instance.ElasticIP = publicIP
	}

	l.Infof("Infrastructure bundle %s is ready (instance %s)", req.Name, instance.ID)
	return bundle, nil
}

// EnsureKeyPair returns the local path of the bundle's private key.
// When AWS already has the key pair the local pem must exist too: the
// private half only ever leaves AWS at creation time.
func (p *AWSProvider) EnsureKeyPair(ctx context.Context, name string) (string, error) {
	l := logger.Get()
	keyPath := KeyFilePath(name)

	_, err := p.EC2Client.DescribeKeyPairs(ctx, &ec2.DescribeKeyPairsInput{
		KeyNames: []string{name},
	})
	if err == nil {
		if _, statErr := os.Stat(keyPath); statErr != nil {
			return "", fmt.Errorf(
				"key pair %s exists in AWS but %s is missing locally; "+
					"delete the remote key pair or restore the pem file",
				name,
				keyPath,
			)
		}
		l.Infof("Key pair %s already exists, reusing %s", name, keyPath)
		return keyPath, nil
	}
	if !IsNotFoundError(err) {
		return "", fmt.Errorf("failed to look up key pair %s: %w", name, err)
	}

	created, err := p.EC2Client.CreateKeyPair(ctx, &ec2.CreateKeyPairInput{
		KeyName: aws.String(name),
		TagSpecifications: []ec2_types.TagSpecification{
			{
				ResourceType: ec2_types.ResourceTypeKeyPair,
				Tags:         nameTag(name),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create key pair %s: %w", name, err)
	}
	if err := sshutils.WritePrivateKeyFile(keyPath, []byte(aws.ToString(created.KeyMaterial))); err != nil {
		return "", err
	}
	l.Infof("Created key pair %s, private key saved to %s", name, keyPath)
	return keyPath, nil
}

// EnsureSecurityGroup returns the ID of the bundle's security group,
// creating it in the default VPC with the requested ingress ports when
// absent. Duplicate-rule errors on reuse are tolerated.
func (p *AWSProvider) EnsureSecurityGroup(
	ctx context.Context,
	name string,
	ports []int32,
) (string, error) {
	l := logger.Get()

	existing, err := p.EC2Client.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: []ec2_types.Filter{
			{
				Name:   aws.String("group-name"),
				Values: []string{name},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up security group %s: %w", name, err)
	}

	var groupID string
	if len(existing.SecurityGroups) > 0 {
		groupID = aws.ToString(existing.SecurityGroups[0].GroupId)
		l.Infof("Security group %s already exists (%s), reusing", name, groupID)
	} else {
		vpcID, vpcErr := p.defaultVpcID(ctx)
		if vpcErr != nil {
			return "", vpcErr
		}
		created, createErr := p.EC2Client.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
			GroupName:   aws.String(name),
			Description: aws.String(fmt.Sprintf("Ingress for the %s bundle", name)),
			VpcId:       aws.String(vpcID),
			TagSpecifications: []ec2_types.TagSpecification{
				{
					ResourceType: ec2_types.ResourceTypeSecurityGroup,
					Tags:         nameTag(name),
				},
			},
		})
		if createErr != nil {
			return "", fmt.Errorf("failed to create security group %s: %w", name, createErr)
		}
		groupID = aws.ToString(created.GroupId)
		l.Infof("Created security group %s (%s)", name, groupID)
	}

	if len(ports) == 0 {
		ports = models.DefaultIngressPorts
	}
	permissions := make([]ec2_types.IpPermission, len(ports))
	for i, port := range ports {
		permissions[i] = ec2_types.IpPermission{
			IpProtocol: aws.String("tcp"),
			FromPort:   aws.Int32(port),
			ToPort:     aws.Int32(port),
			IpRanges: []ec2_types.IpRange{
				{CidrIp: aws.String(AllCIDR)},
			},
		}
	}
	if _, err := p.EC2Client.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId:       aws.String(groupID),
		IpPermissions: permissions,
	}); err != nil && !IsAlreadyExistsError(err) {
		return "", fmt.Errorf("failed to authorize ingress on %s: %w", name, err)
	}
	return groupID, nil
}

func (p *AWSProvider) defaultVpcID(ctx context.Context) (string, error) {
	output, err := p.EC2Client.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		Filters: []ec2_types.Filter{
			{
				Name:   aws.String("isDefault"),
				Values: []string{"true"},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe VPCs: %w", err)
	}
	if len(output.Vpcs) == 0 {
		return "", fmt.Errorf("no default VPC in %s", p.Region)
	}
	return aws.ToString(output.Vpcs[0].VpcId), nil
}

// EnsureInstance launches the bundle's EC2 instance, or reuses a live
// instance already named req.Name. New instances get the bundle key
// pair, security group, instance profile, and an encrypted gp3 root
// volume that survives termination.
func (p *AWSProvider) EnsureInstance(
	ctx context.Context,
	req *models.InfraRequest,
	securityGroupID string,
) (*models.Instance, error) {
	l := logger.Get()

	existing, err := p.FindInstanceByName(ctx, req.Name)
	if err == nil {
		l.Infof("Instance %s already exists (%s, %s), reusing", req.Name, existing.ID, existing.State)
		return existing, nil
	}
	if !errors.Is(err, ErrInstanceNotFound) {
		return nil, err
	}

	amiID, err := p.ResolveLatestAMI(ctx)
	if err != nil {
		return nil, err
	}

	l.Infof("Launching %s instance %s from %s", req.InstanceType, req.Name, amiID)
	output, err := p.EC2Client.RunInstances(ctx, &ec2.RunInstancesInput{
		ImageId:          aws.String(amiID),
		InstanceType:     ec2_types.InstanceType(req.InstanceType),
		MinCount:         aws.Int32(1),
		MaxCount:         aws.Int32(1),
		KeyName:          aws.String(req.Name),
		SecurityGroupIds: []string{securityGroupID},
		IamInstanceProfile: &ec2_types.IamInstanceProfileSpecification{
			Name: aws.String(req.Name),
		},
		BlockDeviceMappings: []ec2_types.BlockDeviceMapping{
			{
				DeviceName: aws.String(models.DefaultRootDevice),
				Ebs: &ec2_types.EbsBlockDevice{
					VolumeSize:          aws.Int32(models.DefaultVolumeSizeGiB),
					VolumeType:          ec2_types.VolumeTypeGp3,
					Encrypted:           aws.Bool(true),
					DeleteOnTermination: aws.Bool(false),
				},
			},
		},
		TagSpecifications: []ec2_types.TagSpecification{
			{
				ResourceType: ec2_types.ResourceTypeInstance,
				Tags:         nameTag(req.Name),
			},
		},
	})
	if err != nil {
		return nil, p.translateLaunchError(err, req.InstanceType)
	}
	if len(output.Instances) == 0 {
		return nil, fmt.Errorf("RunInstances returned no instances for %s", req.Name)
	}
	instanceID := aws.ToString(output.Instances[0].InstanceId)

	if err := p.WaitForInstanceRunning(ctx, instanceID); err != nil {
		return nil, err
	}
	return p.FindInstanceByName(ctx, req.Name)
}

// translateLaunchError turns Free-Tier launch rejections into a
// remediation message naming the eligible types for the region. Every
// other error passes through wrapped.
func (p *AWSProvider) translateLaunchError(err error, instanceType string) error {
	message := err.Error()
	if !strings.Contains(strings.ToLower(message), "free tier") {
		return fmt.Errorf("failed to launch instance: %w", err)
	}

	hint := "check the AWS Free Tier documentation for your region"
	if eligible := internal_aws.GetFreeTierInstanceTypes(p.Region); len(eligible) > 0 {
		hint = fmt.Sprintf("Free Tier eligible types in %s: %s", p.Region, strings.Join(eligible, ", "))
	}
	return fmt.Errorf(
		"failed to launch instance: your account is restricted to Free Tier "+
			"eligible instance types and %s is not one of them.\n"+
			"  %s\n"+
			"  Retry with --instance-type set to an eligible type, or upgrade "+
			"the account's support plan to lift the restriction.\n"+
			"  Underlying error: %w",
		instanceType,
		hint,
		err,
	)
}

// EnsureDataVolume creates or reuses the bundle's data volume and
// attaches it to the instance at /dev/sdf. A volume attached to some
// other instance is detached first.
func (p *AWSProvider) EnsureDataVolume(
	ctx context.Context,
	req *models.InfraRequest,
	instance *models.Instance,
) (*models.Volume, error) {
	l := logger.Get()

	volume, err := p.FindVolumeByName(ctx, req.Name)
	switch {
	case err == nil:
		l.Infof("Volume %s already exists (%s), reusing", req.Name, volume.ID)
	case errors.Is(err, ErrVolumeNotFound):
		created, createErr := p.EC2Client.CreateVolume(ctx, &ec2.CreateVolumeInput{
			AvailabilityZone: aws.String(instance.AvailabilityZone),
			Size:             aws.Int32(req.VolumeSizeGiB),
			VolumeType:       ec2_types.VolumeType(req.VolumeType),
			Encrypted:        aws.Bool(true),
			TagSpecifications: []ec2_types.TagSpecification{
				{
					ResourceType: ec2_types.ResourceTypeVolume,
					Tags:         nameTag(req.Name),
				},
			},
		})
		if createErr != nil {
			return nil, fmt.Errorf("failed to create volume %s: %w", req.Name, createErr)
		}
		volumeID := aws.ToString(created.VolumeId)
		l.Infof("Created %dGiB %s volume %s (%s)", req.VolumeSizeGiB, req.VolumeType, req.Name, volumeID)
		if waitErr := p.WaitForVolumeAvailable(ctx, volumeID); waitErr != nil {
			return nil, waitErr
		}
		volume, err = p.GetVolumeByID(ctx, volumeID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	for _, attachedTo := range volume.AttachedTo {
		if attachedTo == instance.ID {
			l.Infof("Volume %s already attached to %s", volume.ID, instance.ID)
			return volume, nil
		}
	}
	if volume.IsAttached() {
		l.Infof("Volume %s is attached elsewhere, detaching", volume.ID)
		if _, err := p.EC2Client.DetachVolume(ctx, &ec2.DetachVolumeInput{
			VolumeId: aws.String(volume.ID),
		}); err != nil {
			return nil, fmt.Errorf("failed to detach volume %s: %w", volume.ID, err)
		}
		if err := p.WaitForVolumeAvailable(ctx, volume.ID); err != nil {
			return nil, err
		}
	}

	l.Infof("Attaching volume %s to %s at %s", volume.ID, instance.ID, models.DefaultDataDevice)
	if _, err := p.EC2Client.AttachVolume(ctx, &ec2.AttachVolumeInput{
		VolumeId:   aws.String(volume.ID),
		InstanceId: aws.String(instance.ID),
		Device:     aws.String(models.DefaultDataDevice),
	}); err != nil {
		return nil, fmt.Errorf("failed to attach volume %s: %w", volume.ID, err)
	}
	if err := p.WaitForVolumeInUse(ctx, volume.ID); err != nil {
		return nil, err
	}
	return p.GetVolumeByID(ctx, volume.ID)
}

// EnsureElasticIP allocates (or reuses by tag) an Elastic IP and
// associates it with the instance. Returns the public IP and the
// allocation ID.
func (p *AWSProvider) EnsureElasticIP(
	ctx context.Context,
	name string,
	instanceID string,
) (string, string, error) {
	l := logger.Get()

	var publicIP, allocationID, associatedTo string
	existing, err := p.EC2Client.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{
		Filters: []ec2_types.Filter{
			{
				Name:   aws.String("tag:Name"),
				Values: []string{name},
			},
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to describe addresses for %s: %w", name, err)
	}

	if len(existing.Addresses) > 0 {
		address := existing.Addresses[0]
		publicIP = aws.ToString(address.PublicIp)
		allocationID = aws.ToString(address.AllocationId)
		associatedTo = aws.ToString(address.InstanceId)
		l.Infof("Elastic IP %s already allocated (%s), reusing", publicIP, allocationID)
	} else {
		allocated, allocErr := p.EC2Client.AllocateAddress(ctx, &ec2.AllocateAddressInput{
			Domain: ec2_types.DomainTypeVpc,
			TagSpecifications: []ec2_types.TagSpecification{
				{
					ResourceType: ec2_types.ResourceTypeElasticIp,
					Tags:         nameTag(name),
				},
			},
		})
		if allocErr != nil {
			return "", "", fmt.Errorf("failed to allocate Elastic IP for %s: %w", name, allocErr)
		}
		publicIP = aws.ToString(allocated.PublicIp)
		allocationID = aws.ToString(allocated.AllocationId)
		l.Infof("Allocated Elastic IP %s (%s)", publicIP, allocationID)
	}

	if associatedTo == instanceID && instanceID != "" {
		l.Infof("Elastic IP %s already associated with %s", publicIP, instanceID)
		return publicIP, allocationID, nil
	}
	if _, err := p.EC2Client.AssociateAddress(ctx, &ec2.AssociateAddressInput{
		AllocationId: aws.String(allocationID),
		InstanceId:   aws.String(instanceID),
	}); err != nil {
		return "", "", fmt.Errorf("failed to associate Elastic IP %s: %w", publicIP, err)
	}
	l.Infof("Associated Elastic IP %s with %s", publicIP, instanceID)
	return publicIP, allocationID, nil
}

func nameTag(name string) []ec2_types.Tag {
	return []ec2_types.Tag{
		{
			Key:   aws.String("Name"),
			Value: aws.String(name),
		},
	}
}
