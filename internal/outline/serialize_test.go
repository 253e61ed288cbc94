package outline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the serializer:
// - Encode/Decode/Encode is byte-identical (idempotence)
// - Children decode back into the right variant by shape alone
// - Empty child lists encode as [], never null
// - The always-absent parsingError field is emitted as an explicit null

func sampleFile() *File {
	return &File{
		Type: "file",
		Name: "src/lib.rs",
		LocationSpan: LocationSpan{
			Start: Point{1, 0},
			End:   Point{9, 1},
		},
		FooterSpan: SentinelSpan(),
		Children: Nodes{
			&Container{
				Type: "function_item",
				Name: "new",
				LocationSpan: LocationSpan{
					Start: Point{3, 0},
					End:   Point{5, 1},
				},
				HeaderSpan: CharSpan{20, 64},
				FooterSpan: SentinelSpan(),
				Children: Nodes{
					&Terminal{
						Type: "identifier",
						Name: "new",
						LocationSpan: LocationSpan{
							Start: Point{3, 3},
							End:   Point{3, 6},
						},
						Span: CharSpan{23, 26},
					},
				},
			},
			&Terminal{
				Type: "use_declaration",
				Name: "use_declaration",
				LocationSpan: LocationSpan{
					Start: Point{1, 0},
					End:   Point{1, 30},
				},
				Span: CharSpan{0, 30},
			},
		},
	}
}

func TestEncodeDecode_RoundTripIsByteIdentical(t *testing.T) {
	t.Parallel()

	first, err := Encode(sampleFile())
	require.NoError(t, err)

	decoded, err := Decode(first)
	require.NoError(t, err)

	second, err := Encode(decoded)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestDecode_DiscriminatesVariantsByShape(t *testing.T) {
	t.Parallel()

	doc, err := Encode(sampleFile())
	require.NoError(t, err)

	decoded, err := Decode(doc)
	require.NoError(t, err)
	require.Len(t, decoded.Children, 2)

	container, ok := decoded.Children[0].(*Container)
	require.True(t, ok, "node with children decodes as Container")
	assert.Equal(t, "new", container.Name)
	require.Len(t, container.Children, 1)
	_, ok = container.Children[0].(*Terminal)
	assert.True(t, ok)

	terminal, ok := decoded.Children[1].(*Terminal)
	require.True(t, ok, "node without children decodes as Terminal")
	assert.Equal(t, CharSpan{0, 30}, terminal.Span)
}

func TestEncode_EmptyChildrenAndNullError(t *testing.T) {
	t.Parallel()

	file := &File{
		Type:       "file",
		Name:       "empty.rs",
		FooterSpan: SentinelSpan(),
	}

	doc, err := Encode(file)
	require.NoError(t, err)

	text := string(doc)
	assert.Contains(t, text, `"children": []`)
	assert.Contains(t, text, `"parsingError": null`)
	assert.NotContains(t, text, `"children": null`)
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestEncode_FieldNamesMatchWireFormat(t *testing.T) {
	t.Parallel()

	doc, err := Encode(sampleFile())
	require.NoError(t, err)

	text := string(doc)
	for _, field := range []string{
		`"type"`, `"name"`, `"locationSpan"`, `"start"`, `"end"`,
		`"headerSpan"`, `"footerSpan"`, `"span"`,
		`"parsingErrorsDetected"`, `"children"`, `"parsingError"`,
	} {
		assert.Contains(t, text, field)
	}
}
