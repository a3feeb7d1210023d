// Package cli provides the interactive restaurant admin console.
//
// It wires configuration, the local session database, the gRPC client and
// an interactive REPL. Typical flow: resume the stored session or prompt
// for credentials, open a console session for the configured restaurant,
// and execute user commands until exit.
//
// Key features:
//   - Login / Logout with a persisted, automatically refreshed session
//   - Buffered form fields (about, video, review link, socials) with save
//     and discard, and a Delete/Keep prompt before leaving with unsaved edits
//   - Immediate row edits: gallery, passwords, header image, visibility, name
//   - Live views kept current by server push
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
