package variants

import (
	"github.com/traPtitech/avatars/avatar/geom"
	"github.com/traPtitech/avatars/avatar/palette"
	"github.com/traPtitech/avatars/avatar/seed"
	"github.com/traPtitech/avatars/avatar/svg"
)

const beamSize = 36

type beamFace struct {
	wrapperColor      string
	faceColor         string
	backgroundColor   string
	wrapperTranslateX float64
	wrapperTranslateY float64
	wrapperRotate     float64
	wrapperScale      float64
	isMouthOpen       bool
	isCircle          bool
	eyeSpread         float64
	mouthSpread       float64
	faceRotate        float64
	faceTranslateX    float64
	faceTranslateY    float64
}

func newBeamFace(f *frame) beamFace {
	n := f.n
	wrapperColor := f.color(n)

	preTranslateX := seed.Unit(n, 10, 1)
	wrapperTranslateX := float64(preTranslateX)
	if preTranslateX < 5 {
		wrapperTranslateX += beamSize / 9
	}
	preTranslateY := seed.Unit(n, 10, 2)
	wrapperTranslateY := float64(preTranslateY)
	if preTranslateY < 5 {
		wrapperTranslateY += beamSize / 9
	}

	face := beamFace{
		wrapperColor:      wrapperColor,
		faceColor:         palette.ContrastSafe(wrapperColor),
		backgroundColor:   f.color(n + 13),
		wrapperTranslateX: wrapperTranslateX,
		wrapperTranslateY: wrapperTranslateY,
		wrapperRotate:     float64(seed.Unit(n, 360, 0)),
		wrapperScale:      1 + float64(seed.Unit(n, beamSize/12, 0))/10,
		isMouthOpen:       seed.Boolean(n, 2),
		isCircle:          seed.Boolean(n, 1),
		eyeSpread:         float64(seed.Unit(n, 5, 0)),
		mouthSpread:       float64(seed.Unit(n, 3, 0)),
		faceRotate:        float64(seed.Unit(n, 10, 3)),
	}
	if wrapperTranslateX > beamSize/6 {
		face.faceTranslateX = wrapperTranslateX / 2
	} else {
		face.faceTranslateX = float64(seed.Unit(n, 8, 1))
	}
	if wrapperTranslateY > beamSize/6 {
		face.faceTranslateY = wrapperTranslateY / 2
	} else {
		face.faceTranslateY = float64(seed.Unit(n, 7, 2))
	}
	return face
}

// Beam 回転した四角形の上に目と口を描いた顔
func Beam(p Params) *svg.Document {
	f := newFrame(p, "beam", beamSize)
	d := newBeamFace(f)

	rx := float64(beamSize / 6)
	if d.isCircle {
		rx = beamSize
	}
	wrapper := svg.Rect(0, 0, beamSize, beamSize, d.wrapperColor,
		svg.A("transform", geom.Transform{}.
			Translate(d.wrapperTranslateX, d.wrapperTranslateY).
			Rotate(d.wrapperRotate, beamSize/2, beamSize/2).
			Scale(d.wrapperScale).String()),
		svg.F("rx", rx),
	).Labeled("body")

	mouthY := 19 + d.mouthSpread
	var mouth *svg.Node
	if d.isMouthOpen {
		mouth = svg.Path(geom.NewPath().MoveTo(15, mouthY).CurveTo(17, mouthY+1, 19, mouthY+1, 21, mouthY), "none",
			svg.A("stroke", d.faceColor),
			svg.A("stroke-linecap", "round"),
		)
	} else {
		mouth = svg.Path(geom.NewPath().MoveTo(13, mouthY).ArcTo(1, 0.75, 0, false, false, 23, mouthY), d.faceColor)
	}

	face := svg.Group(svg.A("transform", geom.Transform{}.
		Translate(d.faceTranslateX, d.faceTranslateY).
		Rotate(d.faceRotate, beamSize/2, beamSize/2).String()),
	).Labeled("face").Add(
		mouth.Labeled("mouth"),
		svg.Rect(14-d.eyeSpread, 14, 1.5, 2, d.faceColor, svg.A("rx", "1"), svg.A("stroke", "none")).Labeled("eye"),
		svg.Rect(20+d.eyeSpread, 14, 1.5, 2, d.faceColor, svg.A("rx", "1"), svg.A("stroke", "none")).Labeled("eye"),
	)

	f.body(
		svg.Rect(0, 0, beamSize, beamSize, d.backgroundColor),
		wrapper,
		face,
	)
	return f.doc
}
