package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the claim set embedded in every issued JWT.
//
// The custom "id" and "username" claims carry the authenticated identity so
// that downstream handlers never need a database round-trip to resolve the
// caller. The embedded [jwt.RegisteredClaims] provide the standard issuer,
// issued-at, and expiry claims validated during parsing.
type TokenClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Token pairs the parsed JWT with its compact serialized form.
//
// SignedString holds the base64url-encoded header.payload.signature string
// ready to be transmitted in HTTP headers or stored on the client side.
type Token struct {
	*jwt.Token   `json:"-"`
	Claims       TokenClaims `json:"-"`
	SignedString string      `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
