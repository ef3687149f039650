package docker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanupCommandsStandard(t *testing.T) {
	commands := CleanupCommands(false)
	assert.Equal(t, standardCleanupCommands, commands)

	for _, command := range commands {
		assert.Contains(t, command, "prune -f", command)
	}
}

// Aggressive cleanup must reclaim everything standard cleanup does, plus
// the force-removals; the standard list is a strict suffix of it.
func TestAggressiveCleanupIsSuperset(t *testing.T) {
	standard := CleanupCommands(false)
	aggressive := CleanupCommands(true)

	assert.Greater(t, len(aggressive), len(standard))
	assert.Equal(t, standard, aggressive[len(aggressive)-len(standard):])
}

func TestAggressiveCleanupSparesDefaultNetworks(t *testing.T) {
	var networkRemoval string
	for _, command := range CleanupCommands(true) {
		if strings.Contains(command, "docker network rm") {
			networkRemoval = command
		}
	}
	assert.NotEmpty(t, networkRemoval)
	assert.Contains(t, networkRemoval, "bridge|host|none")
}

func TestCleanupCommandsReturnsCopies(t *testing.T) {
	first := CleanupCommands(false)
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", CleanupCommands(false)[0])
}
