package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// imageMagickTimeout 1回の変換の制限時間
const imageMagickTimeout = 5 * time.Second

// imageMagickRasterizer ImageMagickによる変換器
type imageMagickRasterizer struct {
	execPath string
}

func (imageMagickRasterizer) name() string {
	return "imagemagick"
}

// rasterize srcをimagemagickで変換します。5秒以内に変換できなかった場合はエラーとなります
func (m imageMagickRasterizer) rasterize(ctx context.Context, src []byte, size int, format Format) ([]byte, error) {
	if len(m.execPath) == 0 {
		return nil, ErrImageMagickUnavailable
	}
	if !format.Raster() {
		return nil, ErrUnsupportedFormat
	}

	c, cancel := context.WithTimeout(ctx, imageMagickTimeout)
	defer cancel()
	cmd := exec.CommandContext(c, m.execPath,
		"-background", "none",
		"svg:-",
		"-resize", fmt.Sprintf("%dx%d", size, size),
		format.Ext()+":-",
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	b, err := cmdPipe(cmd, bytes.NewReader(src))
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSVG, bytes.TrimSpace(stderr.Bytes()))
		}
		return nil, err
	}
	if len(b) == 0 {
		return nil, ErrInvalidSVG
	}
	return b, nil
}

func cmdPipe(cmd *exec.Cmd, input io.Reader) (output []byte, err error) {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	go func() {
		defer stdin.Close()
		_, _ = io.Copy(stdin, input)
	}()

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	b := &bytes.Buffer{}
	_, _ = io.Copy(b, stdout)

	return b.Bytes(), cmd.Wait()
}
