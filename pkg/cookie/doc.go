// Package cookie encodes JSON values into compact cookie tokens, optionally
// signs them with rotating keys, and reads them back while rejecting anything
// tampered or malformed.
//
// # Overview
//
// A token is the unpadded base64url form of the canonical JSON text of a
// Value. With a Signer configured, the token written to Set-Cookie also
// carries an authentication tag and incoming cookies are verified before
// they are decoded.
//
// Value is a closed set of JSON types: Null, Bool, Number, String, Array and
// Object. ValueOf and Unmarshal convert to and from ordinary Go values.
//
// # Architecture
//
// Codec is bound to the headers of one request. Create it with NewCodec or,
// more commonly, from a long-lived Manager:
//
//	signer, _ := keysign.New([][]byte{newKey, oldKey})
//	man := cookie.New(signer, cookie.WithSecure(true))
//
//	http.Handle("/", man.Middleware()(handler))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    c, _ := cookie.FromContext(r.Context())
//	    if v, ok := c.Get("prefs"); ok {
//	        _ = v
//	    }
//	    _ = c.Set(w.Header(), "prefs", cookie.Object{"theme": cookie.String("dark")})
//	}
//
// Set and Delete append Set-Cookie headers, so several cookies can be written
// in one response.
//
// # Error Handling
//
// Get and Decode never fail loudly: a missing cookie, invalid base64, invalid
// JSON and a bad signature all yield (nil, false). Every rejection except a
// missing cookie is logged at debug level with its reason when a logger is
// attached. Stringify and Set return ErrInvalidCookie or ErrTooLarge for
// cookies a browser would not accept.
//
// # Configuration
//
// Config is read from COOKIE_* environment variables via the config package:
//
//	cfg, err := cookie.LoadConfig()
//	man, err := cookie.NewFromConfig(cfg)
//
// COOKIE_SECRETS is a comma-separated list, newest first, and COOKIE_SIGNER
// selects hmac, cipher or securecookie (see package keysign).
package cookie
