package sam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantNS    string
		expectErr bool
	}{
		{"no separator", "directory", "directory", "", false},
		{"one separator", "dirs::directory", "directory", "dirs", false},
		{"two separators", "a::b::c", "", "", true},
		{"empty name", "", "", "", true},
		{"invalid chars", "dir-ectory", "", "", true},
		{"empty namespace", "::name", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseIdentifier(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, id.Name)
			assert.Equal(t, tt.wantNS, id.Namespace)
		})
	}
}

func TestParseIdentifierWithDefaultNamespace(t *testing.T) {
	id, err := ParseIdentifierWithDefaultNamespace("directory", "dirs")
	require.NoError(t, err)
	assert.Equal(t, "dirs", id.Namespace)

	id2, err := ParseIdentifierWithDefaultNamespace("other::directory", "dirs")
	require.NoError(t, err)
	assert.Equal(t, "other", id2.Namespace, "explicit namespace should win over default")
}

func TestIdentifierEquality(t *testing.T) {
	unnamespaced := NewIdentifier("directory")
	namespaced := NewIdentifierWithNamespace("directory", "dirs")
	assert.NotEqual(t, namespaced, unnamespaced)
	assert.Equal(t, unnamespaced, NewIdentifier("directory"))
}

func TestIdentifierString(t *testing.T) {
	assert.Equal(t, "directory", NewIdentifier("directory").String())
	assert.Equal(t, "dirs::directory", NewIdentifierWithNamespace("directory", "dirs").String())
}
