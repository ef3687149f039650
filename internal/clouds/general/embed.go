package general

import (
	"embed"
)

//go:embed 10_install_docker.sh
var InstallDockerScript embed.FS

func GetInstallDockerScript() ([]byte, error) {
	script, err := InstallDockerScript.ReadFile("10_install_docker.sh")
	if err != nil {
		return nil, err
	}
	return script, nil
}
