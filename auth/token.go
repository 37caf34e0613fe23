package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie issued at login by the OAuth
// callback, outside this service.
const CookieName = "auth-token"

// User is the authenticated profile carried inside the session token.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	User
	jwt.RegisteredClaims
}

// Verifier validates session tokens signed with the shared HS256 key.
type Verifier struct {
	key []byte
}

func NewVerifier(secret string) Verifier {
	return Verifier{key: []byte(secret)}
}

// VerifyToken parses and validates the signature and expiration of a JWT string.
func (v Verifier) VerifyToken(tokenString string) (*User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return v.key, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return &claims.User, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// UserFromRequest recovers the authenticated user from the session
// cookie. A missing or invalid token means an anonymous caller, never
// an error: submission falls back to IP identity.
func (v Verifier) UserFromRequest(r *http.Request) *User {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	user, err := v.VerifyToken(cookie.Value)
	if err != nil {
		return nil
	}
	return user
}
