// filepath: internal/repository/jsonutil_test.go
package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStringList(t *testing.T) {
	fallback := []string{}

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"valid list", `["beach","sunset"]`, []string{"beach", "sunset"}},
		{"empty list", `[]`, []string{}},
		{"empty string", "", []string{}},
		{"malformed json", "not json", []string{}},
		{"wrong type", `{"a":1}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStringList(tt.input, fallback))
		})
	}
}

func TestStringifyJSON(t *testing.T) {
	assert.Equal(t, `["a","b"]`, StringifyJSON([]string{"a", "b"}))
	assert.Equal(t, `{"k":"v"}`, StringifyJSON(map[string]string{"k": "v"}))
	assert.Equal(t, "null", StringifyJSON(nil))
}

func TestTagsRoundTrip(t *testing.T) {
	tags := []string{"anniversary", "dinner", "2026"}
	encoded := StringifyJSON(tags)
	decoded := ParseStringList(encoded, []string{})
	assert.Equal(t, tags, decoded)
}
