package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// UserProfile is the user-info object returned by the identity provider.
// Its fields are not interpreted; it is persisted and restored verbatim.
type UserProfile map[string]interface{}

// ParseUserProfile decodes a single JSON object. Numbers are kept as
// json.Number so large integer IDs survive a round trip.
func ParseUserProfile(data []byte) (UserProfile, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var profile UserProfile
	if err := dec.Decode(&profile); err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile is not a JSON object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after the profile object")
	}
	return profile, nil
}

// Marshal encodes the profile back to JSON
func (p UserProfile) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

func (p UserProfile) ID() string {
	return p.str("id", "sub")
}

func (p UserProfile) Name() string {
	return p.str("name", "login")
}

func (p UserProfile) Email() string {
	return p.str("email")
}

// DisplayName returns the best human readable label for the profile
func (p UserProfile) DisplayName() string {
	if name := p.Name(); name != "" {
		return name
	}
	if email := p.Email(); email != "" {
		return email
	}
	if id := p.ID(); id != "" {
		return "user " + id
	}
	return "signed in"
}

func (p UserProfile) str(keys ...string) string {
	for _, k := range keys {
		switch v := p[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}
