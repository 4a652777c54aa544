package app

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// fileConfig is the schema of the optional HCL settings file, e.g.
//
//	log_level   = "debug"
//	working_dir = "/data/workflows"
type fileConfig struct {
	LogLevel   string `hcl:"log_level,optional"`
	LogFormat  string `hcl:"log_format,optional"`
	WorkingDir string `hcl:"working_dir,optional"`
	TempDir    string `hcl:"temp_dir,optional"`
}

func loadConfigFile(path string) (*fileConfig, error) {
	var cfg fileConfig
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return &cfg, nil
}
