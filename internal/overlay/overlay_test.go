package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"Hi/there",
		"a&b=c",
		"100% legit",
		"emoji caption 🎉 über naïve",
		"multi\nline\ttext",
		"trailing spaces   ",
		"+/=%",
	}
	for _, s := range cases {
		got, err := DecodeText(EncodeText(s))
		require.NoError(t, err, "decode %q", s)
		assert.Equal(t, s, got)
	}
}

func TestEncodeText_Empty(t *testing.T) {
	assert.Equal(t, "", EncodeText(""))
}

func TestEncodeText_PercentEncodesPadding(t *testing.T) {
	// "Hi/there" -> SGkvdGhlcmU= ; '=' must become %3D, '/' inside
	// base64 output stays literal.
	assert.Equal(t, "SGkvdGhlcmU%3D", EncodeText("Hi/there"))
	assert.NotContains(t, EncodeText("caption with = and +"), "=")
}

func TestTransformURL_EmptyCaptionUnchanged(t *testing.T) {
	u := "https://ik.imagekit.io/demo/photos/cat.jpg"
	assert.Equal(t, u, TransformURL(u, ""))
}

func TestTransformURL_InsertsDirectiveAfterEndpoint(t *testing.T) {
	got := TransformURL("https://ik.imagekit.io/demo/photos/cat.jpg", "Hi/there")
	want := "https://ik.imagekit.io/demo/tr:l-text,ie-SGkvdGhlcmU%3D,ly-N20,lx-20,fs-100,co-white,bg-000000A0,l-end/photos/cat.jpg"
	assert.Equal(t, want, got)
}

func TestTransformURL_KeepsRemainderPath(t *testing.T) {
	got := TransformURL("https://ik.imagekit.io/demo/a/b/c.png", "x")
	require.True(t, strings.HasSuffix(got, "/a/b/c.png"), "got %q", got)
	require.True(t, strings.HasPrefix(got, "https://ik.imagekit.io/demo/tr:l-text,"), "got %q", got)
}

func TestTransformURL_DegenerateURLsUnchanged(t *testing.T) {
	// Too few path components to split into endpoint + file path:
	// transformation is skipped instead of emitting a malformed URL.
	cases := []string{
		"https://ik.imagekit.io",
		"https://ik.imagekit.io/",
		"https://ik.imagekit.io/demo",
		"not a url at all",
		"foo/bar",
	}
	for _, u := range cases {
		assert.Equal(t, u, TransformURL(u, "caption"), "url %q", u)
	}
}

// Double application is out of contract; this pins the current
// behavior (a second directive lands after the endpoint segment) so
// an accidental change is at least visible.
func TestTransformURL_DoubleApplicationInsertsTwice(t *testing.T) {
	once := TransformURL("https://ik.imagekit.io/demo/cat.jpg", "hey")
	twice := TransformURL(once, "hey")
	assert.NotEqual(t, once, twice)
	assert.Equal(t, 2, strings.Count(twice, "tr:l-text,"))
}
