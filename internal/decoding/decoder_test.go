package decoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRoutesByFormat(t *testing.T) {
	r := NewRegistry()

	result, err := r.Decode([]byte("plain text body"), "txt")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "plain text body", result.Text)

	// Format tags are case-insensitive.
	result, err = r.Decode([]byte("# Heading"), "MD")
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestRegistryUnknownFormat(t *testing.T) {
	r := NewRegistry()

	_, err := r.Decode([]byte("data"), "xlsx")
	require.Error(t, err)

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "xlsx", unsupported.Format)
}

func TestPlainTextDecoder(t *testing.T) {
	tests := []struct {
		name         string
		input        []byte
		expected     string
		wantErr      bool
		wantWarnings bool
	}{
		{
			name:     "normalizes line endings",
			input:    []byte("line one\r\nline two\rline three"),
			expected: "line one\nline two\nline three",
		},
		{
			name:         "strips control characters",
			input:        []byte("hello\x00world\x07"),
			expected:     "helloworld",
			wantWarnings: true,
		},
		{
			name:     "keeps tabs and newlines",
			input:    []byte("a\tb\nc"),
			expected: "a\tb\nc",
		},
		{
			name:    "rejects invalid utf8",
			input:   []byte{0xff, 0xfe, 0xfd},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PlainText{}.Decode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var decodeErr *DecodeError
				assert.ErrorAs(t, err, &decodeErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Text)
			if tt.wantWarnings {
				assert.NotEmpty(t, result.Warnings)
			}
		})
	}
}

func TestHTMLDecoder(t *testing.T) {
	html := `<html><head><style>p { color: red }</style></head><body>
<nav>Site menu</nav>
<h1>Jane Doe</h1>
<p>Backend engineer.</p>
<ul><li>Go</li><li>Python</li></ul>
<script>alert("hi")</script>
<footer>footer text</footer>
</body></html>`

	result, err := HTML{}.Decode([]byte(html))
	require.NoError(t, err)
	assert.True(t, result.Success)

	assert.Contains(t, result.Text, "Jane Doe")
	assert.Contains(t, result.Text, "Backend engineer.")
	assert.Contains(t, result.Text, "Go")
	assert.NotContains(t, result.Text, "alert")
	assert.NotContains(t, result.Text, "Site menu")
	assert.NotContains(t, result.Text, "footer text")
	assert.NotContains(t, result.Text, "color: red")
}

func TestHTMLDecoderEmptyDocument(t *testing.T) {
	_, err := HTML{}.Decode([]byte("<html><body></body></html>"))
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
