// filepath: internal/repository/jsonutil.go
package repository

import "encoding/json"

// ParseStringList decodes a JSON array of strings, returning fallback on
// empty or malformed input. Used for the tags column, where historic rows
// may hold junk.
func ParseStringList(text string, fallback []string) []string {
	if text == "" {
		return fallback
	}
	var out []string
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return fallback
	}
	return out
}

// StringifyJSON encodes a value for storage in a TEXT column. Unencodable
// values degrade to the JSON null sentinel instead of failing the write.
func StringifyJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
