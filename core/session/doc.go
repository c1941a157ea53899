// Package session keeps per-client server-side state across requests.
//
// A Store owns every Session, keyed by an opaque token that the client carries in
// a cookie. GetOrCreate either refreshes the session a token points at or mints a
// new one, and returns a Directive describing the cookie the client should hold:
//
//	store := session.New(session.WithTimeout(1800))
//	go store.Run(ctx) // periodic expiry sweep, returns when ctx is done
//
//	sess, directive, err := store.GetOrCreate(token, servletContext)
//	if err != nil {
//		return err
//	}
//	sess.SetAttribute("cart", cart)
//
// Tokens are 16 random bytes passed through a 128-bit BLAKE2b digest and rendered
// as 32 uppercase hex characters.
//
// Sessions idle for longer than their MaxInactiveInterval are removed by Sweep,
// which Run calls on a fixed interval. A request racing the sweep for the same
// token may lose its session; the next request simply gets a new one.
//
// All Store and Session methods are safe for concurrent use.
package session
