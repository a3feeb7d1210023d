// Package common contains shared constants and sentinel errors used across
// the console client and the content server.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultRestaurantID is the tenant used when none is configured.
const DefaultRestaurantID = "kaffeewerk"
