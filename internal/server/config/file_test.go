package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("loads from json", func(t *testing.T) {
		path := writeTemp(t, "server.json", `{
			"endpoint_addr_grpc": "www.example:9000",
			"database_dsn": "postgres://x",
			"secret_key": "my_secret_key",
			"access_token_validity_duration": "5m",
			"refresh_token_validity_duration": "48h",
			"s3_root_user": "user",
			"s3_root_password": "password",
			"s3_bucket": "bucket",
			"s3_region": "region",
			"s3_base_endpoint": "base_endpoint",
			"public_base_url": "https://cdn.example.com",
			"upload_url_validity_duration": "2m",
			"default_restaurant_name": "Cafe Nord",
			"admin_email": "admin@example.com",
			"admin_password": "pw"
		}`)
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseFile(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://x", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 5*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, 48*time.Hour, cfg.RefreshTokenValidityDuration)
		assert.Equal(t, "user", cfg.S3RootUser)
		assert.Equal(t, "password", cfg.S3RootPassword)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "region", cfg.S3Region)
		assert.Equal(t, "base_endpoint", cfg.S3BaseEndpoint)
		assert.Equal(t, "https://cdn.example.com", cfg.PublicBaseURL)
		assert.Equal(t, 2*time.Minute, cfg.UploadURLValidityDuration)
		assert.Equal(t, "Cafe Nord", cfg.DefaultRestaurantName)
		assert.Equal(t, "admin@example.com", cfg.AdminEmail)
		assert.Equal(t, "pw", cfg.AdminPassword)
	})

	t.Run("loads from yaml and keeps missing keys", func(t *testing.T) {
		path := writeTemp(t, "server.yml", "s3_bucket: photos\naccess_token_validity_duration: 90s\n")
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "photos", cfg.S3Bucket)
		assert.Equal(t, 90*time.Second, cfg.AccessTokenValidityDuration)
		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
		assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenValidityDuration)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrGRPC: "defaults:1234", S3Bucket: "b"}
		parseFile(cfg)

		assert.Equal(t, &Config{EndpointAddrGRPC: "defaults:1234", S3Bucket: "b"}, cfg)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		path := writeTemp(t, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-config", path}

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "none.yaml")}

		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
