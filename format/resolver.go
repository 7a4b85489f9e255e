package format

import (
	"fmt"

	"github.com/sakitam-gis/luma.gl/features"
	"github.com/sakitam-gis/luma.gl/gl"
)

// ToGLFormat translates a portable format to the native internal-format
// enum for the given API generation.
//
// This is the most load-bearing function in the package: every
// allocation and every upload depends on it succeeding first. It fails
// with ErrUnsupportedFormat when the selected generation has no slot for
// the format; it never substitutes a fallback.
func ToGLFormat(f Format, api gl.API) (gl.Enum, error) {
	d, ok := table[f]
	if !ok {
		return gl.None, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	e := d.GLFormatV1
	if api == gl.WebGL2 {
		e = d.GLFormat
	}
	if e == gl.None {
		return gl.None, fmt.Errorf("%w: %q on %s", ErrUnsupportedFormat, f, api)
	}
	return e, nil
}

// FromGLFormat translates a native internal-format enum back to the
// portable format it belongs to.
//
// The translation is lossy by design: unsized WebGL1 aliases shared by
// several rows (RGBA, RGB, ...) have no unambiguous portable format and
// fail with ErrUnknownFormat, as does any enum the table does not know.
func FromGLFormat(e gl.Enum) (Format, error) {
	f, ok := reverse[e]
	if !ok {
		return "", fmt.Errorf("%w: 0x%04x", ErrUnknownFormat, uint32(e))
	}
	return f, nil
}

// IsSupported reports whether the live context can express the format.
//
// The native-slot check runs before the capability check: a format with
// no native representation in the active generation is unsupported
// regardless of which extensions are present.
func IsSupported(ctx gl.Context, f Format) bool {
	d, ok := table[f]
	if !ok {
		return false
	}
	if _, err := ToGLFormat(f, ctx.API()); err != nil {
		return false
	}
	if d.RequiredCap == "" {
		return true
	}
	return features.Has(ctx, d.RequiredCap)
}

// CapabilitySupport answers the full capability question for one format
// on one live context.
//
// Renderable and Filterable require base support plus the descriptor's
// declared capability gate; rows without a gate infer the answer from
// signedness alone (signed formats are never filterable or renderable by
// default). Blendable and Storable are always false; see
// [Support.Blendable].
func CapabilitySupport(ctx gl.Context, f Format) Support {
	d, ok := table[f]
	if !ok {
		return Support{}
	}
	s := Support{Supported: IsSupported(ctx, f)}
	if !s.Supported {
		return s
	}
	if d.FilterCap != "" {
		s.Filterable = features.Has(ctx, d.FilterCap)
	} else {
		s.Filterable = !d.Signed
	}
	if d.RenderCap != "" {
		s.Renderable = features.Has(ctx, d.RenderCap)
	} else {
		s.Renderable = !d.Signed
	}
	return s
}

// Transfer returns the pixel-transfer parameters for a format under one
// API generation: the internal format for the allocation call, the
// source channel layout, and the component type.
//
// Depth/stencil formats report DataType gl.None — an explicit sentinel,
// never a default, because callers branch on its presence. Under WebGL1
// the half-float component type is rewritten to the OES extension enum.
func Transfer(f Format, api gl.API) (TransferParams, error) {
	d, ok := table[f]
	if !ok {
		return TransferParams{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	internal, err := ToGLFormat(f, api)
	if err != nil {
		return TransferParams{}, err
	}
	p := TransferParams{
		InternalFormat: internal,
		DataFormat:     d.DataFormat,
		DataType:       d.DataType,
	}
	if d.DepthStencil() {
		p.DataType = gl.None
		return p, nil
	}
	if api == gl.WebGL1 && p.DataType == gl.HALF_FLOAT {
		p.DataType = gl.HALF_FLOAT_OES
	}
	return p, nil
}

// Attachment returns the attachment point of a depth/stencil format.
// Color formats fail with ErrNotDepthStencil.
func Attachment(f Format) (AttachmentPoint, error) {
	d, ok := table[f]
	if !ok {
		return AttachmentNone, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if d.Attachment == AttachmentNone {
		return AttachmentNone, fmt.Errorf("%w: %q", ErrNotDepthStencil, f)
	}
	return d.Attachment, nil
}
