package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	svgo "github.com/ajstarks/svgo"

	"github.com/traPtitech/avatars/avatar/geom"
)

// ContentType SVGのMIMEタイプ
const ContentType = "image/svg+xml"

// errWriter 最初の書き込みエラーを記録するWriter
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Encode dをSVGとしてwに書き出します
func Encode(w io.Writer, d *Document) error {
	ew := &errWriter{w: w}
	canvas := svgo.New(ew)

	c := strconv.Itoa(d.Canvas)
	canvas.Startraw(
		`viewBox="0 0 `+c+` `+c+`"`,
		`fill="none"`,
		`role="img"`,
		`width="`+geom.Num(d.Size)+`"`,
		`height="`+geom.Num(d.Size)+`"`,
	)
	if d.Titled {
		canvas.Title(d.Title)
	}

	maskAttrs := []string{`maskUnits="userSpaceOnUse"`}
	canvas.Mask(d.Mask.ID, 0, 0, d.Canvas, d.Canvas, maskAttrs...)
	rectAttrs := []string{`fill="#FFFFFF"`}
	if d.Mask.Radius > 0 {
		rectAttrs = append(rectAttrs, `rx="`+geom.Num(d.Mask.Radius)+`"`)
	}
	canvas.Rect(0, 0, d.Canvas, d.Canvas, rectAttrs...)
	canvas.MaskEnd()

	canvas.Group(`mask="url(#` + escapeAttr(d.Mask.ID) + `)"`)
	for _, n := range d.Body {
		writeNode(ew, n, 1)
	}
	canvas.Gend()

	if len(d.Defs) > 0 {
		canvas.Def()
		for _, n := range d.Defs {
			writeNode(ew, n, 1)
		}
		canvas.DefEnd()
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("failed to encode svg: %w", ew.err)
	}
	return nil
}

// Bytes dをSVGにエンコードしたバイト列を返します
func Bytes(d *Document) []byte {
	var buf bytes.Buffer
	// bytes.Bufferへの書き込みは失敗しない
	_ = Encode(&buf, d)
	return buf.Bytes()
}

func writeNode(w io.Writer, n *Node, depth int) {
	for range depth {
		io.WriteString(w, "  ")
	}
	io.WriteString(w, "<"+n.Name)
	for _, a := range n.Attrs {
		io.WriteString(w, " "+a.Key+`="`+escapeAttr(a.Value)+`"`)
	}
	if len(n.Children) == 0 && n.Text == "" {
		io.WriteString(w, "/>\n")
		return
	}
	io.WriteString(w, ">")
	if n.Text != "" {
		_ = xml.EscapeText(w, []byte(n.Text))
	}
	if len(n.Children) > 0 {
		io.WriteString(w, "\n")
		for _, c := range n.Children {
			writeNode(w, c, depth+1)
		}
		for range depth {
			io.WriteString(w, "  ")
		}
	}
	io.WriteString(w, "</"+n.Name+">\n")
}

func escapeAttr(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
