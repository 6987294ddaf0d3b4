package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Project is a portfolio entry shown on the projects panel.
// Projects are append-only: they are never updated or deleted.
type Project struct {
	ID           string       `json:"_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Link         string       `json:"link"`
	Technologies Technologies `json:"technologies"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Technologies is the ordered list of technology tags attached to a project.
// It always encodes as a JSON array and decodes from either an array of
// strings or a single comma-separated string.
type Technologies []string

// MarshalJSON encodes a nil list as [] rather than null.
func (t Technologies) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// UnmarshalJSON accepts ["a","b"], "a, b" or null.
// Numbers and booleans are cast to their string form, inside or outside an array.
func (t *Technologies) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err == nil {
		list := make(Technologies, len(items))
		for i, item := range items {
			s, err := scalarString(item)
			if err != nil {
				return fmt.Errorf("technologies[%d]: %w", i, err)
			}
			list[i] = s
		}
		*t = list
		return nil
	}

	raw, err := scalarString(data)
	if err != nil {
		return fmt.Errorf("technologies must be a string array or a comma-separated string: %w", err)
	}
	*t = ParseTechnologies(raw)
	return nil
}

// ParseTechnologies splits a comma-separated list and trims each token.
// Empty tokens are kept, so "" yields [""].
func ParseTechnologies(raw string) Technologies {
	parts := strings.Split(raw, ",")
	out := make(Technologies, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}
