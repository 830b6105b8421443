package config

// FoundryConfig is the subset of foundry.toml read by yieldx-deploy
type FoundryConfig struct {
	Profile      map[string]ProfileConfig `toml:"profile"`
	RpcEndpoints map[string]string        `toml:"rpc_endpoints"`
}

// ProfileConfig represents a profile's build layout
type ProfileConfig struct {
	SrcPath string `toml:"src,omitempty"`
	OutPath string `toml:"out,omitempty"`
}

// OutDir returns the configured artifact output directory of the default profile
func (c *FoundryConfig) OutDir() string {
	if c == nil {
		return ""
	}
	if profile, ok := c.Profile["default"]; ok {
		return profile.OutPath
	}
	return ""
}
