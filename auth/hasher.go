package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Purpose labels keep the email and IP hash spaces disjoint, so the
// same raw string hashed for both purposes never lands in one bucket.
const (
	purposeEmail = "email"
	purposeIP    = "ip"
)

// Hasher derives pseudonymous keys from raw identifiers with a keyed
// one-way digest. The secret is process-wide and supplied at startup.
type Hasher struct {
	key []byte
}

func NewHasher(secret string) Hasher {
	return Hasher{key: []byte(secret)}
}

// HashEmail returns the pseudonymous key for an email address.
func (h Hasher) HashEmail(email string) string {
	return h.hash(purposeEmail, email)
}

// HashIP returns the pseudonymous key for a network address.
func (h Hasher) HashIP(ip string) string {
	return h.hash(purposeIP, ip)
}

func (h Hasher) hash(purpose, value string) string {
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(purpose))
	mac.Write([]byte{0})
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}
