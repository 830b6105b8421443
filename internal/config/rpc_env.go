package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${VAR_NAME} references in TOML values
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ReferencedEnvVars returns the names of all ${VAR} references in a raw value.
func ReferencedEnvVars(rawValue string) []string {
	matches := envVarPattern.FindAllStringSubmatch(rawValue, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// ExpandRPCURL expands ${VAR} references in an RPC endpoint. Unlike
// os.ExpandEnv it fails when a referenced variable is unset instead of
// silently producing a broken URL.
func ExpandRPCURL(networkName, rawValue string) (string, error) {
	var missing []string
	for _, name := range ReferencedEnvVars(rawValue) {
		if _, ok := os.LookupEnv(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("rpc endpoint for network %s references unset environment variables: %s",
			networkName, strings.Join(missing, ", "))
	}

	return os.ExpandEnv(rawValue), nil
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, base-sepolia -> BASE_SEPOLIA_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}
