package texture

import (
	"image"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// BuildMipChain downsamples img into a full CPU-side mip pyramid,
// returned as a Levels source ready for upload. It is the software
// alternative to automatic generation for hosts that want box-free
// filtering or need mips for non-power-of-two textures under WebGL1,
// where the hardware path is unavailable.
//
// maxLevels caps the chain length; 0 means the full chain down to 1×1.
func BuildMipChain(img image.Image, maxLevels int) Levels {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	n := MipLevelCount(w, h)
	if maxLevels > 0 && maxLevels < n {
		n = maxLevels
	}
	chain := make(Levels, 0, n)
	chain = append(chain, ImageData{Image: img})
	for level := 1; level < n; level++ {
		lw, lh := w>>level, h>>level
		if lw < 1 {
			lw = 1
		}
		if lh < 1 {
			lh = 1
		}
		chain = append(chain, ImageData{Image: imaging.Resize(img, lw, lh, imaging.Lanczos)})
	}
	return chain
}

// imageBytes converts any decoded image to tightly packed 8-bit RGBA
// bytes with non-premultiplied alpha, the layout the transfer calls
// expect. Images already in that layout with no row padding pass
// through without a copy.
func imageBytes(img image.Image) (pix []byte, w, h int) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	if n, ok := img.(*image.NRGBA); ok && n.Stride == 4*w {
		return n.Pix, w, h
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst.Pix, w, h
}
