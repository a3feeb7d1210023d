// Package console runs one signed-in editing session for a restaurant.
//
// A Session ensures the restaurant document exists, keeps live views of
// the profile, gallery and passwords collections through three push
// subscriptions, and exposes the edit buffer together with the row-level
// operations that write straight to the store. Failures are classified as
// *OpError and reported through a Notifier; none of them ends the session.
package console
