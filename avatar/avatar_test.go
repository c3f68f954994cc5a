package avatar

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traPtitech/avatars/avatar/palette"
	"github.com/traPtitech/avatars/avatar/svg"
)

var update = flag.Bool("update", false, "update golden digests in testdata")

func render(o Options) string {
	return string(svg.Bytes(Render(o)))
}

func TestParseVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Variant
	}{
		{"marble", Marble},
		{"beam", Beam},
		{"BEAM", Beam},
		{" ring ", Ring},
		{"fractal", Fractal},
		{"pepe", Pepe},
		{"anime", Anime},
		{"geometric", Beam},
		{"abstract", Bauhaus},
		{"unknown", Marble},
		{"", Marble},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseVariant(tt.in))
		})
	}
}

func TestVariants(t *testing.T) {
	t.Parallel()

	vs := Variants()
	require.Len(t, vs, 11)
	for _, v := range vs {
		assert.Equal(t, v, ParseVariant(v.String()))
		b, err := v.MarshalText()
		require.NoError(t, err)
		var u Variant
		require.NoError(t, u.UnmarshalText(b))
		assert.Equal(t, v, u)
	}
	assert.Equal(t, "marble", Variant(-1).String())
	assert.Equal(t, "marble", Variant(100).String())
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 120.0, ParseSize("120"))
	assert.Equal(t, 40.5, ParseSize(" 40.5 "))
	assert.Equal(t, 64.0, ParseSize("64px"))
	assert.Equal(t, 80.0, ParseSize("abc"))
	assert.Equal(t, 80.0, ParseSize("-3"))
	assert.Equal(t, 80.0, ParseSize("0"))
	assert.Equal(t, 80.0, ParseSize("NaN"))
	assert.Equal(t, 80.0, ParseSize(""))
}

func TestOptions_Normalize(t *testing.T) {
	t.Parallel()

	o := Options{}.Normalize()
	assert.Equal(t, DefaultName, o.Name)
	assert.Equal(t, Marble, o.Variant)
	assert.Equal(t, palette.Default, o.Colors)
	assert.Equal(t, 80.0, o.Size)

	o = Options{}.WithName("").Normalize()
	assert.Equal(t, "", o.Name)

	o = Options{Name: "x", Variant: Variant(42), Size: -1, Colors: []string{"", "#fff"}}.Normalize()
	assert.Equal(t, "x", o.Name)
	assert.Equal(t, Marble, o.Variant)
	assert.Equal(t, 80.0, o.Size)
	assert.Equal(t, []string{"#fff"}, o.Colors)
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			t.Parallel()
			o := Options{Name: "Alice", Variant: v, Colors: palette.Default, Size: 80, Title: true}
			assert.Equal(t, render(o), render(o))
			assert.NotEqual(t, render(o), render(o.WithName("Bob")))
		})
	}
}

func TestRender_Beam(t *testing.T) {
	t.Parallel()

	d := Render(Options{Name: "John Doe", Variant: Beam, Size: 80})
	assert.Equal(t, 80.0, d.Size)
	assert.Equal(t, 36, d.Canvas)
	assert.Len(t, d.FindByLabel("mouth"), 1)
	assert.Len(t, d.FindByLabel("eye"), 2)

	out := string(svg.Bytes(d))
	assert.Contains(t, out, `width="80"`)
	assert.Contains(t, out, `height="80"`)
	assert.Contains(t, out, `viewBox="0 0 36 36"`)
}

func TestRender_CanvasSizes(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		want := 80
		switch v {
		case Ring:
			want = 90
		case Beam:
			want = 36
		}
		d := Render(Options{Variant: v, Size: 512})
		assert.Equal(t, want, d.Canvas, v.String())
		assert.Equal(t, 512.0, d.Size, v.String())
	}
}

func TestRender_FractalUniqueness(t *testing.T) {
	t.Parallel()

	a := render(Options{Name: "UnitedHealth Group", Variant: Fractal})
	b := render(Options{Name: "Mastercard", Variant: Fractal})
	assert.NotEqual(t, a, b)
}

func TestRender_EmptyPalette(t *testing.T) {
	t.Parallel()

	d := Render(Options{Name: "X", Colors: []string{}})
	assert.Contains(t, d.Colors(), palette.Default[0])

	for _, v := range Variants() {
		assert.NotPanics(t, func() {
			Render(Options{Name: "X", Variant: v, Colors: []string{"", ""}})
		})
	}
}

func TestRender_EmptyName(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		o := Options{Variant: v, Title: true}.WithName("")
		d := Render(o)
		assert.Equal(t, "", d.Title)
		assert.Equal(t, render(o), render(o))
	}
}

func TestRender_Title(t *testing.T) {
	t.Parallel()

	out := render(Options{Name: "Test", Title: true})
	assert.Contains(t, out, "<title>Test</title>")

	out = render(Options{Name: "Test"})
	assert.NotContains(t, out, "<title>")

	out = render(Options{Name: `</title><script>alert(1)</script>`, Title: true})
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRender_Mask(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		round := Render(Options{Name: "Alice", Variant: v})
		assert.GreaterOrEqual(t, round.Mask.Radius, float64(round.Canvas)/2, v.String())

		square := Render(Options{Name: "Alice", Variant: v, Square: true})
		assert.Zero(t, square.Mask.Radius, v.String())
		assert.NotContains(t, string(svg.Bytes(square)), `rx="`+strconv.Itoa(square.Canvas*2)+`"`)
	}
}

func TestRender_LongName(t *testing.T) {
	t.Parallel()

	name := strings.Repeat("abcdefghij", 10000)
	for _, v := range Variants() {
		assert.NotEmpty(t, render(Options{Name: name, Variant: v}))
	}
}

func TestSource(t *testing.T) {
	t.Parallel()

	img := Source(Options{Name: "Alice"})
	assert.NotNil(t, img.Document)
	assert.Empty(t, img.URL)

	img = Source(Options{Name: "Alice", Endpoint: "https://example.com/api/v1/avatar"})
	assert.Nil(t, img.Document)
	assert.Equal(t,
		"https://example.com/api/v1/avatar?name=Alice&variant=marble&size=80&title=false&colors=92A1C6%2C146A7C%2CF0AB3D%2CC271B4%2CC20D90",
		img.URL)
}

func TestImageURL(t *testing.T) {
	t.Parallel()

	u := ImageURL("/avatar?v=1", Options{
		Name:    "John Doe",
		Variant: Beam,
		Colors:  []string{"#fff", "000"},
		Size:    ParseSize("40"),
		Title:   true,
		Square:  true,
	})
	assert.Equal(t, "/avatar?v=1&name=John+Doe&variant=beam&size=40&title=true&colors=fff%2C000&square=true", u)
}

// goldenNames ゴールデンテストで使う名前
var goldenNames = []string{"", "Clara Barton", "John Doe", "Alice", "Bob", "UnitedHealth Group", "Mastercard", "😀", "<b>"}

func goldenDigests() map[string]string {
	res := map[string]string{}
	for _, v := range Variants() {
		for _, name := range goldenNames {
			for _, colors := range [][]string{palette.Default, palette.Shadcn} {
				o := Options{Variant: v, Colors: colors, Title: true}.WithName(name)
				key := v.String() + "/" + name + "/" + colors[0]
				res[key] = strconv.FormatUint(xxhash.Sum64String(render(o)), 16)
			}
		}
	}
	return res
}

func TestRender_Golden(t *testing.T) {
	t.Parallel()

	path := filepath.Join("testdata", "golden.json")
	got := goldenDigests()

	if *update {
		b, err := json.MarshalIndent(got, "", "  ")
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll("testdata", 0o755))
		require.NoError(t, os.WriteFile(path, b, 0o644))
		t.Logf("updated %d golden digests", len(got))
		return
	}

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var want map[string]string
	require.NoError(t, json.Unmarshal(b, &want))
	require.NotEmpty(t, want)
	for k, v := range want {
		if assert.Contains(t, got, k) {
			assert.Equal(t, v, got[k], k)
		}
	}
}
