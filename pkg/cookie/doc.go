// Package cookie writes and reads HTTP cookies with shared default
// attributes and optional HMAC signatures.
//
// A Manager is created from one or more secrets of at least 32 characters.
// The first secret signs new cookies and every secret is tried when a signed
// cookie is read, which allows rotating keys without logging visitors out.
//
//	mgr, err := cookie.New([]string{secret}, cookie.WithSecure(true))
//	if err != nil {
//		return err
//	}
//	mgr.SetSigned(w, "contact_session", token, cookie.WithMaxAge(3600))
//	token, err := mgr.GetSigned(r, "contact_session")
//
// Signed values are readable by the client. Only their integrity is protected.
package cookie
