// Package client contains the console's transport to the content server.
//
// # Overview
//
// The package provides:
//  1. The Client interface: sign-in and token refresh, the restaurant
//     document store (read, merge write, collection append/update/delete),
//     the upload broker and three push subscriptions.
//  2. GRPCClient, a gRPC implementation that injects the access token,
//     refreshes it before it expires or after the server reports expiry,
//     applies a per-call timeout and maps status codes to sentinel errors.
//  3. Subscription, a typed stream of snapshots with explicit Close.
//  4. InitDatabase and RunMigrations for the local session database.
//
// # Error Handling
//
// Callers match ErrUnavailable, ErrUnauthorized, ErrNotFound,
// ErrInvalidArgument, ErrUploadIncomplete and ErrStreamEnded with errors.Is.
package client
