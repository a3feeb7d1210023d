package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/FBurak/Restaurant-Web/internal/flagx"
	"github.com/FBurak/Restaurant-Web/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the console configuration.
type FileConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	RestaurantID       string         `json:"restaurant_id" yaml:"restaurant_id"`
	SessionDBPath      string         `json:"session_db_path" yaml:"session_db_path"`
	LogFile            string         `json:"log_file" yaml:"log_file"`
	SnapshotPolicy     string         `json:"snapshot_policy" yaml:"snapshot_policy"`
}

// parseFile overlays values from the file named by -c/-config. Files ending
// in .yaml or .yml are decoded as YAML, anything else as JSON.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		panic(err)
	}

	if c.ServerEndpointAddr != "" {
		config.ServerEndpointAddr = c.ServerEndpointAddr
	}
	if c.RequestTimeout.Duration > 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.RestaurantID != "" {
		config.RestaurantID = c.RestaurantID
	}
	if c.SessionDBPath != "" {
		config.SessionDBPath = c.SessionDBPath
	}
	if c.LogFile != "" {
		config.LogFile = c.LogFile
	}
	if c.SnapshotPolicy != "" {
		config.SnapshotPolicy = c.SnapshotPolicy
	}
}
