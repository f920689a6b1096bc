package github

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// parseLanguageKeys extracts the key sequence from a language byte-count
// object, preserving the order keys appear in the payload. Go maps do not
// keep key order, so the object is walked token by token and the byte-count
// values are discarded.
func parseLanguageKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	languages := []string{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", keyTok)
		}
		languages = append(languages, key)

		var count json.RawMessage
		if err := dec.Decode(&count); err != nil {
			return nil, err
		}
	}

	return languages, nil
}
