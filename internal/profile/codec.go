package profile

import (
	"fmt"
	"net/url"

	json "github.com/goccy/go-json"
)

// Encode serializes the profile to a URL-safe string for the
// step-to-step handoff. Every field, including non-ASCII name
// characters and an empty Sex, survives a round trip through Decode.
func Encode(p Profile) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	return url.QueryEscape(string(raw)), nil
}

// Decode reverses Encode. The wizard controls both ends of the
// handoff, so a failure here is an invariant violation, not user
// error.
func Decode(s string) (Profile, error) {
	raw, err := url.QueryUnescape(s)
	if err != nil {
		return Profile{}, fmt.Errorf("unescape profile payload: %w", err)
	}
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Profile{}, fmt.Errorf("unmarshal profile payload: %w", err)
	}
	return p, nil
}
