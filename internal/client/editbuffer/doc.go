// Package editbuffer keeps the locally edited copy of the restaurant form
// fields (about text, video link, review link, social links) in step with
// the remote document.
//
// A Synchronizer is Clean while its buffer mirrors the last remote
// snapshot and Dirty once the user has edited it. Save pushes the whole
// buffered field set in one merge write; Discard restores the cached
// snapshot without touching the store.
package editbuffer
