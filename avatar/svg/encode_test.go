package svg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traPtitech/avatars/avatar/geom"
)

func testDocument() *Document {
	return &Document{
		Size:   80,
		Canvas: 36,
		Mask:   Mask{ID: "mask-abc", Radius: 72},
		Body: []*Node{
			Rect(0, 0, 36, 36, "#FFFFFF"),
			Group(A("transform", "translate(1 2)")).Add(
				Path(geom.NewPath().MoveTo(15, 19).CurveTo(2, 1, 4, 1, 6, 0), "none", A("stroke", "#000000")).Labeled("mouth"),
				Rect(14, 14, 1.5, 2, "#000000", A("rx", "1")).Labeled("eye"),
				Rect(20, 14, 1.5, 2, "#000000", A("rx", "1")).Labeled("eye"),
			),
		},
		Defs: []*Node{
			El("linearGradient", A("id", "g-1")).Add(
				El("stop", A("stop-color", "#111111")),
			),
		},
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	out := string(Bytes(testDocument()))
	assert.Contains(t, out, `viewBox="0 0 36 36"`)
	assert.Contains(t, out, `width="80"`)
	assert.Contains(t, out, `height="80"`)
	assert.Contains(t, out, `<mask id="mask-abc"`)
	assert.Contains(t, out, `rx="72"`)
	assert.Contains(t, out, `mask="url(#mask-abc)"`)
	assert.Contains(t, out, `<defs>`)
	assert.Contains(t, out, `<stop stop-color="#111111"/>`)
	assert.NotContains(t, out, "<title>")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))

	// 同じ入力なら同じ出力
	assert.Equal(t, out, string(Bytes(testDocument())))
}

func TestEncode_Title(t *testing.T) {
	t.Parallel()

	d := testDocument()
	d.Titled = true
	d.Title = `<script>alert("x")</script>`
	out := string(Bytes(d))
	assert.Contains(t, out, "<title>&lt;script&gt;")
	assert.NotContains(t, out, "<script>")
}

func TestEncode_SquareMask(t *testing.T) {
	t.Parallel()

	d := testDocument()
	d.Mask.Radius = 0
	out := string(Bytes(d))
	assert.NotContains(t, out, "rx=\"72\"")
}

func TestEncode_EscapesAttributes(t *testing.T) {
	t.Parallel()

	d := testDocument()
	d.Body = append(d.Body, Rect(0, 0, 1, 1, `var(--x)" onload="evil`))
	out := string(Bytes(d))
	assert.NotContains(t, out, `" onload="`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestEncode_WriteError(t *testing.T) {
	t.Parallel()

	err := Encode(failingWriter{}, testDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestDocument_FindByLabel(t *testing.T) {
	t.Parallel()

	d := testDocument()
	assert.Len(t, d.FindByLabel("eye"), 2)
	assert.Len(t, d.FindByLabel("mouth"), 1)
	assert.Empty(t, d.FindByLabel("nose"))
}

func TestDocument_Colors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"#111111", "#FFFFFF", "#000000"}, testDocument().Colors())
}

func TestNode_Attr(t *testing.T) {
	t.Parallel()

	n := Circle(1, 2, 3, "#fff")
	v, ok := n.Attr("r")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	_, ok = n.Attr("rx")
	assert.False(t, ok)
}
