package gowire3d

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/sync/errgroup"
)

// EncodeImage writes img in the format named by ext (".png", ".bmp",
// ".tif" or ".tiff").
func EncodeImage(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported image format %q", ext)
}

// SaveImage picks the encoder from the file extension.
func SaveImage(fileName string, img image.Image) (err error) {
	ext := filepath.Ext(fileName)
	if ext == "" {
		return fmt.Errorf("no image format for %s", fileName)
	}
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", fileName, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("could not write %s: %w", fileName, cerr)
		}
	}()
	if err := EncodeImage(f, ext, img); err != nil {
		return fmt.Errorf("could not encode %s: %w", fileName, err)
	}
	return nil
}

// FrameName inserts a zero-padded frame index before the extension:
// out.png -> out_003.png. A single frame keeps the name unchanged.
func FrameName(fileName string, frame, frames int) string {
	if frames <= 1 {
		return fileName
	}
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(fileName, ext), frame, ext)
}

// RenderTurntable renders frames views of base rotated about Y in equal
// steps over a full turn. Frames render concurrently, at most workers at a
// time, each with its own Rasterizer.
func RenderTurntable(ctx context.Context, base *Mesh, frames, workers int, job RenderJob) ([]*image.RGBA, error) {
	if base == nil {
		return nil, ErrNoMesh
	}
	if frames < 1 {
		return nil, fmt.Errorf("turntable needs at least one frame, got %d", frames)
	}
	out := make([]*image.RGBA, frames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			j := job
			j.Mesh = base.RotateAboutY(2 * math.Pi * float64(i) / float64(frames))
			img, err := j.Render()
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			out[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
