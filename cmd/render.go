package cmd

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/traPtitech/avatars/avatar"
	"github.com/traPtitech/avatars/avatar/palette"
	"github.com/traPtitech/avatars/avatar/svg"
	"github.com/traPtitech/avatars/service/imaging"
)

// renderCommand アバター画像を1枚生成するコマンド
func renderCommand() *cobra.Command {
	var (
		name    string
		variant string
		size    string
		colors  []string
		title   bool
		square  bool
		format  string
		out     string
	)

	cmd := cobra.Command{
		Use:   "render",
		Short: "Render an avatar image",
		Run: func(cmd *cobra.Command, _ []string) {
			logger := getCLILogger()
			defer logger.Sync()

			f, ok := imaging.ParseFormat(format)
			if !ok {
				logger.Fatal("unknown format", zap.String("format", format))
			}

			o := avatar.Options{
				Variant: avatar.ParseVariant(variant),
				Colors:  colorFlags(colors),
				Size:    avatar.ParseSize(size),
				Title:   title,
				Square:  square,
			}
			if cmd.Flags().Changed("name") {
				o = o.WithName(name)
			}

			b, err := renderImage(cmd.Context(), o, f)
			if err != nil {
				logger.Fatal("failed to render avatar", zap.Error(err))
			}

			var w io.Writer = os.Stdout
			if out != "" && out != "-" {
				file, err := os.Create(out)
				if err != nil {
					logger.Fatal("failed to create output file", zap.Error(err))
				}
				defer file.Close()
				w = file
			}
			if _, err := w.Write(b); err != nil {
				logger.Fatal("failed to write avatar", zap.Error(err))
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&name, "name", "n", avatar.DefaultName, "name to derive the avatar from")
	flags.StringVarP(&variant, "variant", "v", avatar.Marble.String(), fmt.Sprintf("variant (%s)", strings.Join(lo.Map(avatar.Variants(), func(v avatar.Variant, _ int) string { return v.String() }), ", ")))
	flags.StringVarP(&size, "size", "s", "", "image size")
	flags.StringSliceVar(&colors, "colors", nil, "comma separated palette colors")
	flags.BoolVar(&title, "title", false, "embed the name as a title element")
	flags.BoolVar(&square, "square", false, "do not clip the image to a circle")
	flags.StringVarP(&format, "format", "f", string(imaging.FormatSVG), "output format (svg, png, webp)")
	flags.StringVarP(&out, "out", "o", "", "output file path (default: stdout)")

	return &cmd
}

// colorFlags --colorsの値から空の色を除き、#の無いhex色に#を補います
func colorFlags(colors []string) []string {
	return lo.FilterMap(colors, func(c string, _ int) (string, bool) {
		c = strings.TrimSpace(c)
		return palette.WithHash(c), c != ""
	})
}

// renderImage SVGはエンジンで、ラスター形式は設定された変換器で生成します
func renderImage(ctx context.Context, o avatar.Options, f imaging.Format) ([]byte, error) {
	data := svg.Bytes(avatar.Render(o))
	if !f.Raster() {
		return data, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	p := imaging.NewProcessor(provideImageProcessorConfig(&c))
	return p.Rasterize(ctx, data, max(1, int(math.Round(o.Normalize().Size))), f)
}
