package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/FBurak/Restaurant-Web/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-i int      request timeout in seconds
//	-r string   restaurant id
//	-f string   session database file
//	-l string   log file
//	-y string   snapshot policy
//
// An unknown snapshot policy panics like a malformed flag.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-r", "-f", "-l", "-y"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	requestTimeout := fs.Int("i", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.RestaurantID, "r", cfg.RestaurantID, "restaurant id")
	fs.StringVar(&cfg.SessionDBPath, "f", cfg.SessionDBPath, "session database file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file")
	fs.StringVar(&cfg.SnapshotPolicy, "y", cfg.SnapshotPolicy, "snapshot policy (remote-wins|keep-dirty)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second

	if cfg.SnapshotPolicy != PolicyRemoteWins && cfg.SnapshotPolicy != PolicyKeepDirty {
		panic(fmt.Sprintf("unknown snapshot policy %q", cfg.SnapshotPolicy))
	}
}
