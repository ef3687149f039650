package general

import (
	"strings"
	"testing"
)

func TestGetInstallDockerScript(t *testing.T) {
	script, err := GetInstallDockerScript()
	if err != nil {
		t.Fatalf("GetInstallDockerScript() returned an error: %v", err)
	}
	content := string(script)
	if !strings.HasPrefix(content, "#!/usr/bin/env bash") {
		t.Error("install script is missing its shebang")
	}
	for _, want := range []string{"docker", "systemctl enable docker", "docker compose version"} {
		if !strings.Contains(content, want) {
			t.Errorf("install script is missing %q", want)
		}
	}
}
