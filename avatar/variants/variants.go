// Package variants アバターの各スタイルの生成器
//
// 生成器は全て純粋関数で、同じParamsからは常に同じドキュメントを返します。
// 生成器内で使っているseedのオフセット値を変更すると、既存の全てのアバターの見た目が変わります。
package variants

import (
	"github.com/traPtitech/avatars/avatar/palette"
	"github.com/traPtitech/avatars/avatar/seed"
	"github.com/traPtitech/avatars/avatar/svg"
)

// Params 生成器の入力
type Params struct {
	Name   string
	Colors []string
	Size   float64
	Title  bool
	Square bool
}

// Generator アバター生成器
type Generator func(p Params) *svg.Document

// frame 生成器共通の下準備
type frame struct {
	variant string
	name    string
	// n 名前から導出したseed
	n      uint64
	colors []string
	doc    *svg.Document
}

func newFrame(p Params, variant string, canvas int) *frame {
	colors := palette.Normalize(p.Colors)
	f := &frame{
		variant: variant,
		name:    p.Name,
		n:       uint64(seed.HashCode(p.Name)),
		colors:  colors,
	}
	f.doc = &svg.Document{
		Size:   p.Size,
		Canvas: canvas,
		Titled: p.Title,
		Title:  p.Name,
		Mask:   svg.Mask{ID: f.id("mask")},
	}
	if !p.Square {
		f.doc.Mask.Radius = float64(canvas * 2)
	}
	return f
}

// id ドキュメント内要素の一意なIDを返します
func (f *frame) id(suffix string) string {
	return seed.GenerateID(f.name, f.variant+"-"+suffix)
}

// color seed nでパレットから色を選びます
func (f *frame) color(n uint64) string {
	return seed.RandomColor(n, f.colors, len(f.colors))
}

// distinct seed nでcと異なる色をパレットから選びます。選べない場合はcの文字色を返します
func (f *frame) distinct(n uint64, c string) string {
	var others []string
	for _, x := range f.colors {
		if x != c {
			others = append(others, x)
		}
	}
	if len(others) == 0 {
		return palette.ContrastSafe(c, palette.White)
	}
	return seed.RandomColor(n, others, len(others))
}

func (f *frame) body(ns ...*svg.Node) {
	for _, n := range ns {
		if n != nil {
			f.doc.Body = append(f.doc.Body, n)
		}
	}
}

func (f *frame) defs(ns ...*svg.Node) {
	f.doc.Defs = append(f.doc.Defs, ns...)
}

func url(id string) string {
	return "url(#" + id + ")"
}
