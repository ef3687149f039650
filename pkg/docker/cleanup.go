package docker

// Cleanup command sets. Standard pruning only touches stopped and
// dangling resources; aggressive first force-removes everything the
// daemon knows about, then prunes. The aggressive list always contains
// the full standard list, so aggressive reclaims a superset.

var standardCleanupCommands = []string{
	"docker container prune -f",
	"docker image prune -f",
	"docker volume prune -f",
	"docker network prune -f",
	"docker system prune -f",
}

// aggressivePreludeCommands force-remove ALL containers, images, and
// volumes, and every non-default network. The default networks (bridge,
// host, none) cannot be removed and are excluded up front. The inner
// $(...) lists can be empty, hence the || true.
var aggressivePreludeCommands = []string{
	`docker ps -aq | xargs -r docker rm -f || true`,
	`docker images -q | xargs -r docker rmi -f || true`,
	`docker volume ls -q | xargs -r docker volume rm -f || true`,
	`docker network ls --format '{{.Name}}' | grep -vE '^(bridge|host|none)$' | xargs -r docker network rm || true`,
}

// CleanupCommands returns the ordered command list for one cleanup run.
func CleanupCommands(aggressive bool) []string {
	if !aggressive {
		return append([]string{}, standardCleanupCommands...)
	}
	commands := append([]string{}, aggressivePreludeCommands...)
	return append(commands, standardCleanupCommands...)
}
