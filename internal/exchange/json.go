package exchange

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
)

const jsonIndent = "    "

// ToJSON renders v as indented JSON.
func ToJSON(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// ParseJSON decodes a JSON document into a generic map.
func ParseJSON(b []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return m, nil
}

// WriteJSONFile writes v to path with the same indentation as ToJSON.
func WriteJSONFile(path string, v any) error {
	b, err := ToJSON(v)
	if err != nil {
		return err
	}
	return writeFile(path, append(b, '\n'))
}

func writeFile(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// ReadJSONFile decodes the file at path into v.
func ReadJSONFile(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("json unmarshal %s: %w", path, err)
	}
	return nil
}

// ToMap converts v to the generic map form used by the XML helpers.
func ToMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return ParseJSON(b)
}

// JSONRoundTrip writes p to path, reads it back and fails when the two differ.
func JSONRoundTrip(path string, p Profile) (Profile, error) {
	if err := WriteJSONFile(path, p); err != nil {
		return Profile{}, err
	}
	var back Profile
	if err := ReadJSONFile(path, &back); err != nil {
		return Profile{}, err
	}
	if diff := cmp.Diff(p, back); diff != "" {
		return back, fmt.Errorf("json round trip mismatch (-want +got):\n%s", diff)
	}
	return back, nil
}
