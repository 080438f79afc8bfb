package sam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, s string) Identifier {
	t.Helper()
	id, err := ParseIdentifier(s)
	require.NoError(t, err)
	return id
}

func TestAliasCollectionExpandsReferences(t *testing.T) {
	// An alias referencing another is expanded to the referenced alias's
	// own (already expanded) template.
	build := NewAlias(mustID(t, "build"), "build the project", "go build ./...")
	release := NewAlias(mustID(t, "release"), "build then tag", "[[ build ]] && git tag v1")

	collection, err := NewAliasCollection([]Alias{build, release})
	require.NoError(t, err)

	got, err := collection.Get(mustID(t, "release"))
	require.NoError(t, err)
	assert.Equal(t, "go build ./... && git tag v1", got.Template())
	assert.False(t, containsAliasRef(got.Template()), "expanded template must not still contain an alias reference")
}

func TestAliasCollectionExpandsTransitively(t *testing.T) {
	a := NewAlias(mustID(t, "a"), "", "echo a")
	b := NewAlias(mustID(t, "b"), "", "[[ a ]] && echo b")
	c := NewAlias(mustID(t, "c"), "", "[[ b ]] && echo c")

	collection, err := NewAliasCollection([]Alias{c, b, a})
	require.NoError(t, err)

	got, err := collection.Get(mustID(t, "c"))
	require.NoError(t, err)
	assert.Equal(t, "echo a && echo b && echo c", got.Template())
}

func TestAliasCollectionMissingDependency(t *testing.T) {
	// A reference to an unknown alias is rejected at construction.
	a := NewAlias(mustID(t, "a"), "", "[[ missing ]]")
	_, err := NewAliasCollection([]Alias{a})
	require.Error(t, err)
	missingErr, ok := err.(*MissingDependencyError)
	require.True(t, ok, "got %T", err)
	assert.Equal(t, mustID(t, "a"), missingErr.Owner)
	assert.Equal(t, mustID(t, "missing"), missingErr.Missing)
}

func TestAliasCollectionDetectsDirectCycle(t *testing.T) {
	// An alias cannot (transitively) reference itself.
	a := NewAlias(mustID(t, "a"), "", "[[ b ]]")
	b := NewAlias(mustID(t, "b"), "", "[[ a ]]")
	_, err := NewAliasCollection([]Alias{a, b})
	require.Error(t, err)
	_, ok := err.(*CycleDetectedError)
	assert.True(t, ok, "got %T", err)
}

func TestAliasCollectionDetectsSelfCycle(t *testing.T) {
	a := NewAlias(mustID(t, "a"), "", "[[ a ]]")
	_, err := NewAliasCollection([]Alias{a})
	require.Error(t, err)
	_, ok := err.(*CycleDetectedError)
	assert.True(t, ok, "got %T", err)
}

func TestAliasCollectionGetNotFound(t *testing.T) {
	collection, err := NewAliasCollection(nil)
	require.NoError(t, err)
	_, err = collection.Get(mustID(t, "nope"))
	_, ok := err.(*AliasNotFoundError)
	assert.True(t, ok, "got %T", err)
}

func TestAliasCollectionNamespacedReference(t *testing.T) {
	base := NewAlias(NewIdentifierWithNamespace("checkout", "git"), "", "git checkout")
	wrapper := NewAlias(mustID(t, "co"), "", "[[ git::checkout ]] {{ branch }}")

	collection, err := NewAliasCollection([]Alias{base, wrapper})
	require.NoError(t, err)
	got, err := collection.Get(mustID(t, "co"))
	require.NoError(t, err)
	assert.Equal(t, "git checkout {{ branch }}", got.Template())
}

func TestAliasCollectionIdentifiersAndDescriptionsSorted(t *testing.T) {
	a := NewAlias(mustID(t, "zebra"), "z desc", "echo z")
	b := NewAlias(mustID(t, "apple"), "a desc", "echo a")

	collection, err := NewAliasCollection([]Alias{a, b})
	require.NoError(t, err)

	ids := collection.Identifiers()
	require.Len(t, ids, 2)
	assert.Equal(t, mustID(t, "apple"), ids[0])
	assert.Equal(t, mustID(t, "zebra"), ids[1])

	descs := collection.Descriptions()
	assert.Equal(t, []string{"a desc", "z desc"}, descs)
}
