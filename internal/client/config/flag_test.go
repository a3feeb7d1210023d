package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "127.0.0.1:9090", "-i", "3", "-r", "cafe-nord", "-f", "s.db", "-l", "c.log", "-y", "keep-dirty"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", RequestTimeout: 3 * time.Second, RestaurantID: "cafe-nord",
				SessionDBPath: "s.db", LogFile: "c.log", SnapshotPolicy: PolicyKeepDirty}},
		{name: "incorrect timeout", args: []string{"cmd", "-i", "abc", "-y", "remote-wins"}, expectPanic: true},
		{name: "unknown policy", args: []string{"cmd", "-y", "merge"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
			os.Args = tt.args

			config := &Config{}
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
