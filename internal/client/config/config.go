package config

import (
	"time"

	"github.com/FBurak/Restaurant-Web/internal/common"
)

// Snapshot policies accepted by -y.
const (
	PolicyRemoteWins = "remote-wins"
	PolicyKeepDirty  = "keep-dirty"
)

// Config holds runtime settings for the admin console.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - RequestTimeout: deadline applied to each unary call.
//   - RestaurantID: tenant whose website the console edits.
//   - SessionDBPath: sqlite file holding the persisted sign-in session.
//   - LogFile: diagnostics destination, kept off the terminal.
//   - SnapshotPolicy: what a remote snapshot does to unsaved edits.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	RestaurantID       string
	SessionDBPath      string
	LogFile            string
	SnapshotPolicy     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.RestaurantID = common.DefaultRestaurantID
	c.SessionDBPath = "console.db"
	c.LogFile = "console.log"
	c.SnapshotPolicy = PolicyRemoteWins
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
