package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for HeuristicNamer:
// - Declaration-like kinds get their first surviving token as the name
// - Punctuation and keyword tokens are stripped before picking
// - Punctuation-only text fails with ErrNameExtraction
// - Non-declaration kinds are named after their grammatical role
// - Substring stripping mangles identifiers embedding a keyword (known
//   limitation, pinned so a future fix shows up as a test change)

func TestHeuristicNamer_StripsDeclarationTokens(t *testing.T) {
	t.Parallel()

	namer := HeuristicNamer{}

	name, err := namer.NameFor("identifier", "fn foo(x: i32)")
	require.NoError(t, err)
	assert.Equal(t, "foo", name)

	name, err = namer.NameFor("struct_item", "pub struct User { id: u64 }")
	require.NoError(t, err)
	assert.Equal(t, "User", name)

	name, err = namer.NameFor("enum_item", "enum Role { Admin }")
	require.NoError(t, err)
	assert.Equal(t, "Role", name)
}

func TestHeuristicNamer_FailsWhenNothingSurvives(t *testing.T) {
	t.Parallel()

	namer := HeuristicNamer{}

	_, err := namer.NameFor("identifier", "##")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameExtraction)

	_, err = namer.NameFor("identifier", "{ } ( )")
	assert.ErrorIs(t, err, ErrNameExtraction)
}

func TestHeuristicNamer_OtherKindsKeepTheirRole(t *testing.T) {
	t.Parallel()

	namer := HeuristicNamer{}

	name, err := namer.NameFor("block", "{ let x = 1; }")
	require.NoError(t, err)
	assert.Equal(t, "block", name)

	name, err = namer.NameFor("string_literal", "\"hello\"")
	require.NoError(t, err)
	assert.Equal(t, "string_literal", name)
}

// Stripping is literal substring replacement, not tokenization: an
// identifier that embeds a stripped keyword gets mangled.
func TestHeuristicNamer_SubstringStrippingAmbiguity(t *testing.T) {
	t.Parallel()

	namer := HeuristicNamer{}

	name, err := namer.NameFor("function_item", "fn fnord() {}")
	require.NoError(t, err)
	assert.Equal(t, "ord", name)
}
