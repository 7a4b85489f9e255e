package format

import (
	"github.com/sakitam-gis/luma.gl/features"
	"github.com/sakitam-gis/luma.gl/gl"
)

// AttachmentPoint is the depth/stencil slot a format binds to when used
// as an off-screen render target attachment.
type AttachmentPoint uint8

const (
	// AttachmentNone marks a color format.
	AttachmentNone AttachmentPoint = iota
	// AttachmentDepth binds to the depth attachment.
	AttachmentDepth
	// AttachmentStencil binds to the stencil attachment.
	AttachmentStencil
	// AttachmentDepthStencil binds to the combined depth/stencil attachment.
	AttachmentDepthStencil
)

// Family tags the compressed block family a format belongs to.
type Family string

const (
	FamilyNone Family = ""
	FamilyBC   Family = "bc"
	FamilyETC2 Family = "etc2"
	FamilyASTC Family = "astc"
)

// Descriptor is one row of the format table.
//
// The schema is fixed: optional attributes use explicit zero-value
// sentinels (gl.None for absent enums, "" for absent capabilities)
// rather than loosely present fields, and the whole table is validated
// at process start instead of discovered lazily at use time.
type Descriptor struct {
	// GLFormat is the sized internal format for the newer generation.
	// gl.None when the format is not expressible there.
	GLFormat gl.Enum

	// GLFormatV1 is the internal format the older generation's transfer
	// calls accept. gl.None when the format has no WebGL1 backing.
	// Unsized aliases (RGBA, RGB, DEPTH_COMPONENT, ...) are legal here
	// and shared between rows; see sharedV1Aliases.
	GLFormatV1 gl.Enum

	// DataFormat is the source channel layout for pixel transfers.
	DataFormat gl.Enum

	// DataType is the source component type for pixel transfers.
	// Depth/stencil rows carry their native transfer type here, but
	// TransferParams reports gl.None for them; callers branch on that
	// sentinel, never on a defaulted value.
	DataType gl.Enum

	// BytesPerTexel is the byte size of one texel; 0 for block formats.
	BytesPerTexel uint8

	// Channels is the color channel count.
	Channels uint8

	// Signed marks signed-integer and signed-normalized formats.
	// Signed formats are never filterable.
	Signed bool

	// Compressed marks block formats; Family names the block family and
	// BlockWidth/BlockHeight/BytesPerBlock give its geometry.
	Compressed    bool
	Family        Family
	BlockWidth    uint8
	BlockHeight   uint8
	BytesPerBlock uint8

	// RequiredCap gates base support of the format ("" = none).
	RequiredCap features.Capability

	// FilterCap gates LINEAR filtering. When empty, filterability is
	// inferred from Signed (unsigned formats default to filterable).
	FilterCap features.Capability

	// RenderCap gates use as a render attachment. When empty,
	// renderability is inferred from Signed.
	RenderCap features.Capability

	// Attachment is the depth/stencil attachment point, or AttachmentNone
	// for color formats.
	Attachment AttachmentPoint

	// Renderbuffer marks formats that may back a renderbuffer allocation.
	Renderbuffer bool
}

// V2Only reports whether the format is expressible only under the newer
// generation.
func (d Descriptor) V2Only() bool {
	return d.GLFormat != gl.None && d.GLFormatV1 == gl.None
}

// PortableOnly reports whether the format has no native backing in
// either generation; requesting it natively fails.
func (d Descriptor) PortableOnly() bool {
	return d.GLFormat == gl.None && d.GLFormatV1 == gl.None
}

// DepthStencil reports whether the format binds to a depth or stencil
// attachment point.
func (d Descriptor) DepthStencil() bool {
	return d.Attachment != AttachmentNone
}

// LevelByteLength returns the byte length of one mip level of the given
// dimensions, honoring block geometry for compressed formats.
func (d Descriptor) LevelByteLength(width, height, depth int) int {
	if depth < 1 {
		depth = 1
	}
	if d.Compressed {
		bw, bh := int(d.BlockWidth), int(d.BlockHeight)
		blocksX := (width + bw - 1) / bw
		blocksY := (height + bh - 1) / bh
		return blocksX * blocksY * depth * int(d.BytesPerBlock)
	}
	return width * height * depth * int(d.BytesPerTexel)
}

// Support is the capability answer for one format on one live context.
type Support struct {
	Supported  bool
	Renderable bool
	Filterable bool

	// Blendable and Storable are always false: blend and storage-texture
	// capability tracking is a known limitation of this table, preserved
	// as such rather than silently guessed at.
	Blendable bool
	Storable  bool
}

// TransferParams are the pixel-transfer parameters for one format under
// one API generation.
type TransferParams struct {
	// InternalFormat is the native enum passed to the allocation call.
	InternalFormat gl.Enum

	// DataFormat is the source channel layout.
	DataFormat gl.Enum

	// DataType is the source component type. gl.None for depth/stencil
	// formats, which have no caller-visible component type.
	DataType gl.Enum
}
