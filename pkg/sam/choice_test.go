package sam

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoiceEqual(t *testing.T) {
	a := NewChoice("main")
	b := NewChoiceWithDescription("main", "default branch")
	assert.True(t, a.Equal(b), "choices with the same value but different descriptions must be equal")
	assert.False(t, a.Equal(NewChoice("dev")))
}

func TestParseChoiceStream(t *testing.T) {
	input := "main\tdefault branch\ndev\n\nfeature/x\t\n"
	choices, err := ParseChoiceStream(strings.NewReader(input))
	require.NoError(t, err)

	want := []Choice{
		NewChoiceWithDescription("main", "default branch"),
		NewChoice("dev"),
		NewChoiceWithDescription("feature/x", ""),
	}
	assert.Equal(t, want, choices)
}

func TestParseChoiceStreamIgnoresEmptyValue(t *testing.T) {
	choices, err := ParseChoiceStream(strings.NewReader("\tsome description\nreal-value\n"))
	require.NoError(t, err)
	require.Len(t, choices, 1)
	assert.Equal(t, "real-value", choices[0].Value)
}
