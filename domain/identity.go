package domain

// Identity is the pseudonymized actor behind a submission.
// EmailHash and IPHash are keyed digests; at most one is used as the
// rate-limit bucket key, email preferred.
type Identity struct {
	EmailHash string
	IPHash    string
}

// Key returns the bucket key, preferring the email hash.
// Empty when no identity was supplied at all.
func (i Identity) Key() string {
	if i.EmailHash != "" {
		return i.EmailHash
	}
	return i.IPHash
}
