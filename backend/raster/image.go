package raster

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	graphics "github.com/gogpu/gg-graphics"
)

// Image is a decoded image ready to be drawn by a Backend.
type Image struct {
	buf *gg.ImageBuf
}

var _ graphics.Image = (*Image)(nil)

// NewImage converts img for drawing.
func NewImage(img image.Image) *Image {
	return &Image{buf: gg.ImageBufFromImage(img)}
}

// Width returns the width in pixels.
func (i *Image) Width() int { return i.buf.Width() }

// Height returns the height in pixels.
func (i *Image) Height() int { return i.buf.Height() }

// imageBuf returns the pixel buffer behind img.
func imageBuf(img graphics.Image) (*gg.ImageBuf, error) {
	switch v := img.(type) {
	case *Image:
		if v == nil || v.buf == nil {
			return nil, fmt.Errorf("%w: nil image", graphics.ErrInvalidArgument)
		}
		return v.buf, nil
	case image.Image:
		return gg.ImageBufFromImage(v), nil
	case nil:
		return nil, fmt.Errorf("%w: nil image", graphics.ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("%w: image type %T", graphics.ErrUnsupported, img)
	}
}
