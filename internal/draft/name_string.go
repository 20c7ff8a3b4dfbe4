package draft

import (
	"encoding/json"
	"fmt"
)

// NameString is a string field that tolerates clients sending a richer object
// (e.g. {"id": "...", "name": "Engineering"}) where a plain name is expected.
// Whatever shape arrives, only the string survives into the draft; the
// coercion happens at the JSON boundary, never at read time.
type NameString string

func (n NameString) String() string {
	return string(n)
}

func (n *NameString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = NameString(s)
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case map[string]any:
		// name dulu, lalu title; objek tanpa keduanya tidak membawa nama
		if name, ok := val["name"].(string); ok && name != "" {
			*n = NameString(name)
			return nil
		}
		if title, ok := val["title"].(string); ok && title != "" {
			*n = NameString(title)
			return nil
		}
		*n = ""
		return nil
	case nil:
		*n = ""
		return nil
	default:
		// scalar (number/bool): coerce ke string
		*n = NameString(fmt.Sprint(val))
		return nil
	}
}

func (n NameString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}
