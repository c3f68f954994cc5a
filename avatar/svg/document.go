// Package svg アバターのベクター画像ドキュメントとそのシリアライザ
package svg

import (
	"github.com/traPtitech/avatars/avatar/geom"
)

// Attr 要素の属性。出力順を保つためmapではなくスライスで持ちます
type Attr struct {
	Key   string
	Value string
}

// A 文字列の属性を生成します
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// F 数値の属性を生成します
func F(key string, value float64) Attr {
	return Attr{Key: key, Value: geom.Num(value)}
}

// Node ドキュメントの要素
type Node struct {
	// Name 要素名 (rect, path, circle, ...)
	Name     string
	Attrs    []Attr
	Children []*Node
	// Text 要素のテキスト内容。エスケープして出力されます
	Text string
	// Label 出力されない意味付けのタグ ("mouth", "eye", ...)
	Label string
}

// El 要素を生成します
func El(name string, attrs ...Attr) *Node {
	return &Node{Name: name, Attrs: attrs}
}

// Rect rect要素を生成します
func Rect(x, y, w, h float64, fill string, attrs ...Attr) *Node {
	return El("rect", append([]Attr{F("x", x), F("y", y), F("width", w), F("height", h), A("fill", fill)}, attrs...)...)
}

// Circle circle要素を生成します
func Circle(cx, cy, r float64, fill string, attrs ...Attr) *Node {
	return El("circle", append([]Attr{F("cx", cx), F("cy", cy), F("r", r), A("fill", fill)}, attrs...)...)
}

// Ellipse ellipse要素を生成します
func Ellipse(cx, cy, rx, ry float64, fill string, attrs ...Attr) *Node {
	return El("ellipse", append([]Attr{F("cx", cx), F("cy", cy), F("rx", rx), F("ry", ry), A("fill", fill)}, attrs...)...)
}

// Path path要素を生成します
func Path(d *geom.Path, fill string, attrs ...Attr) *Node {
	return El("path", append([]Attr{A("d", d.String()), A("fill", fill)}, attrs...)...)
}

// RawPath 固定のパスデータからpath要素を生成します
func RawPath(d string, fill string, attrs ...Attr) *Node {
	return El("path", append([]Attr{A("d", d), A("fill", fill)}, attrs...)...)
}

// Group g要素を生成します
func Group(attrs ...Attr) *Node {
	return El("g", attrs...)
}

// Add 子要素を追加してnを返します
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Set 属性を追加してnを返します
func (n *Node) Set(attrs ...Attr) *Node {
	n.Attrs = append(n.Attrs, attrs...)
	return n
}

// Labeled Labelを設定してnを返します
func (n *Node) Labeled(label string) *Node {
	n.Label = label
	return n
}

// Attr keyの属性値を返します
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Mask キャンバス全体を覆うクリッピングマスク
type Mask struct {
	ID string
	// Radius 角丸の半径。0の場合は角丸にしません
	Radius float64
}

// Document ベクター画像ドキュメント
type Document struct {
	// Size 出力するwidth/height
	Size float64
	// Canvas 内部座標系の一辺の長さ (viewBox)
	Canvas int
	// Titled trueの場合Titleをtitle要素として埋め込みます
	Titled bool
	Title  string
	Mask   Mask
	// Defs グラデーション、フィルター、パターン等
	Defs []*Node
	// Body マスクされた描画要素
	Body []*Node
}

// Walk ドキュメント内の全要素を深さ優先で訪問します
func (d *Document) Walk(fn func(n *Node)) {
	var walk func(ns []*Node)
	walk = func(ns []*Node) {
		for _, n := range ns {
			fn(n)
			walk(n.Children)
		}
	}
	walk(d.Defs)
	walk(d.Body)
}

// FindByLabel labelが付いた要素を全て返します
func (d *Document) FindByLabel(label string) []*Node {
	var res []*Node
	d.Walk(func(n *Node) {
		if n.Label == label {
			res = append(res, n)
		}
	})
	return res
}

// Colors fill, stroke, stop-colorに使われている色を出現順に重複なく返します
func (d *Document) Colors() []string {
	var (
		res  []string
		seen = map[string]struct{}{}
	)
	d.Walk(func(n *Node) {
		for _, a := range n.Attrs {
			switch a.Key {
			case "fill", "stroke", "stop-color", "flood-color":
			default:
				continue
			}
			if a.Value == "none" || a.Value == "" {
				continue
			}
			if _, ok := seen[a.Value]; !ok {
				seen[a.Value] = struct{}{}
				res = append(res, a.Value)
			}
		}
	})
	return res
}
