// Package cookie carries the session token between the client and the session store.
//
// ExtractToken reads the JSESSIONID cookie from a request; Bind turns a
// session.Directive into a Set-Cookie on the response. Bind runs on every request,
// for new and refreshed sessions alike, so the client cookie's Max-Age and Path
// always match the server-side session.
package cookie
