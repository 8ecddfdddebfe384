package eveapi

import "net/url"

// Key is the credential pair issued by the account management site.
type Key struct {
	// KeyID is the numeric key identifier.
	KeyID string
	// VCode is the verification code string.
	VCode string
}

// buildQuery renders the query string for one request. Parameters with
// empty values are dropped entirely rather than sent empty, and the
// credential pair is injected only when a key is given.
func buildQuery(key *Key, params map[string]string) url.Values {
	query := url.Values{}
	if key != nil {
		query.Set("keyID", key.KeyID)
		query.Set("vCode", key.VCode)
	}
	for name, value := range params {
		if value == "" {
			continue
		}
		query.Set(name, value)
	}
	return query
}
