package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Text is a string field that also accepts JSON numbers and booleans,
// storing their literal text. null decodes as "".
type Text string

// UnmarshalJSON casts scalar JSON values to their string form.
func (t *Text) UnmarshalJSON(data []byte) error {
	s, err := scalarString(data)
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

// scalarString returns the string form of a JSON scalar.
// Objects and arrays are rejected.
func scalarString(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", fmt.Errorf("empty JSON value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case 'n':
		return "", nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	case '{', '[':
		return "", fmt.Errorf("cannot cast JSON %s to string", kindOf(data[0]))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return "", err
		}
		f, err := n.Float64()
		if err != nil {
			return n.String(), nil
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
}

func kindOf(c byte) string {
	if c == '{' {
		return "object"
	}
	return "array"
}
