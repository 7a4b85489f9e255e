package format

import (
	"fmt"

	"github.com/sakitam-gis/luma.gl/features"
	"github.com/sakitam-gis/luma.gl/gl"
)

// table maps every portable format to its descriptor. Built once,
// validated by init, never mutated at runtime.
var table = map[Format]Descriptor{
	// 8-bit color.
	R8Unorm: {
		GLFormat: gl.R8, DataFormat: gl.RED, DataType: gl.UNSIGNED_BYTE,
		BytesPerTexel: 1, Channels: 1, Renderbuffer: true,
	},
	R8Snorm: {
		GLFormat: gl.R8_SNORM, DataFormat: gl.RED, DataType: gl.BYTE,
		BytesPerTexel: 1, Channels: 1, Signed: true,
	},
	R8Uint: {
		GLFormat: gl.R8UI, DataFormat: gl.RED_INTEGER, DataType: gl.UNSIGNED_BYTE,
		BytesPerTexel: 1, Channels: 1, Renderbuffer: true,
	},
	R8Sint: {
		GLFormat: gl.R8I, DataFormat: gl.RED_INTEGER, DataType: gl.BYTE,
		BytesPerTexel: 1, Channels: 1, Signed: true, Renderbuffer: true,
	},
	RG8Unorm: {
		GLFormat: gl.RG8, DataFormat: gl.RG, DataType: gl.UNSIGNED_BYTE,
		BytesPerTexel: 2, Channels: 2, Renderbuffer: true,
	},
	RG8Snorm: {
		GLFormat: gl.RG8_SNORM, DataFormat: gl.RG, DataType: gl.BYTE,
		BytesPerTexel: 2, Channels: 2, Signed: true,
	},
	RG8Uint: {
		GLFormat: gl.RG8UI, DataFormat: gl.RG_INTEGER, DataType: gl.UNSIGNED_BYTE,
		BytesPerTexel: 2, Channels: 2, Renderbuffer: true,
	},
	RG8Sint: {
		GLFormat: gl.RG8I, DataFormat: gl.RG_INTEGER, DataType: gl.BYTE,
		BytesPerTexel: 2, Channels: 2, Signed: true, Renderbuffer: true,
	},
	RGBA8Unorm: {
		GLFormat: gl.RGBA8, GLFormatV1: gl.RGBA,
		DataFormat: gl.RGBA, DataType: gl.UNSIGNED_BYTE,
		BytesPerTexel: 4, Channels: 4, Renderbuffer: true,
	},
	RGBA8UnormSrgb: {
		GLFormat: gl.SRGB8_ALPHA8, GLFormatV1: gl.SRGB_ALPHA_EXT,
		DataFormat: gl.RGBA, DataType: gl.UNSIGNED_BYTE,
		BytesPerTexel: 4, Channels: 4,
		RequiredCap: features.SRGBTexture, Renderbuffer: true,
	},
	RGBA8Snorm: {
		GLFormat: gl.RGBA8_SNORM, DataFormat: gl.RGBA, DataType: gl.BYTE,
		BytesPerTexel: 4, Channels: 4, Signed: true,
	},
	RGBA8Uint: {
		GLFormat: gl.RGBA8UI, DataFormat: gl.RGBA_INTEGER, DataType: gl.UNSIGNED_BYTE,
		BytesPerTexel: 4, Channels: 4, Renderbuffer: true,
	},
	RGBA8Sint: {
		GLFormat: gl.RGBA8I, DataFormat: gl.RGBA_INTEGER, DataType: gl.BYTE,
		BytesPerTexel: 4, Channels: 4, Signed: true, Renderbuffer: true,
	},
	BGRA8Unorm: {
		// Portable-only: no native slot in either generation.
		DataFormat: gl.RGBA, DataType: gl.UNSIGNED_BYTE,
		BytesPerTexel: 4, Channels: 4,
	},

	// 16-bit color.
	R16Uint: {
		GLFormat: gl.R16UI, DataFormat: gl.RED_INTEGER, DataType: gl.UNSIGNED_SHORT,
		BytesPerTexel: 2, Channels: 1, Renderbuffer: true,
	},
	R16Sint: {
		GLFormat: gl.R16I, DataFormat: gl.RED_INTEGER, DataType: gl.SHORT,
		BytesPerTexel: 2, Channels: 1, Signed: true, Renderbuffer: true,
	},
	R16Float: {
		GLFormat: gl.R16F, DataFormat: gl.RED, DataType: gl.HALF_FLOAT,
		BytesPerTexel: 2, Channels: 1,
		RequiredCap: features.TextureFloat16,
		FilterCap:   features.Float16Filterable,
		RenderCap:   features.Float16Renderable,
	},
	RG16Uint: {
		GLFormat: gl.RG16UI, DataFormat: gl.RG_INTEGER, DataType: gl.UNSIGNED_SHORT,
		BytesPerTexel: 4, Channels: 2, Renderbuffer: true,
	},
	RG16Sint: {
		GLFormat: gl.RG16I, DataFormat: gl.RG_INTEGER, DataType: gl.SHORT,
		BytesPerTexel: 4, Channels: 2, Signed: true, Renderbuffer: true,
	},
	RG16Float: {
		GLFormat: gl.RG16F, DataFormat: gl.RG, DataType: gl.HALF_FLOAT,
		BytesPerTexel: 4, Channels: 2,
		RequiredCap: features.TextureFloat16,
		FilterCap:   features.Float16Filterable,
		RenderCap:   features.Float16Renderable,
	},
	RGBA16Uint: {
		GLFormat: gl.RGBA16UI, DataFormat: gl.RGBA_INTEGER, DataType: gl.UNSIGNED_SHORT,
		BytesPerTexel: 8, Channels: 4, Renderbuffer: true,
	},
	RGBA16Sint: {
		GLFormat: gl.RGBA16I, DataFormat: gl.RGBA_INTEGER, DataType: gl.SHORT,
		BytesPerTexel: 8, Channels: 4, Signed: true, Renderbuffer: true,
	},
	RGBA16Float: {
		GLFormat: gl.RGBA16F, GLFormatV1: gl.RGBA,
		DataFormat: gl.RGBA, DataType: gl.HALF_FLOAT,
		BytesPerTexel: 8, Channels: 4,
		RequiredCap: features.TextureFloat16,
		FilterCap:   features.Float16Filterable,
		RenderCap:   features.Float16Renderable,
	},

	// 32-bit color.
	R32Uint: {
		GLFormat: gl.R32UI, DataFormat: gl.RED_INTEGER, DataType: gl.UNSIGNED_INT,
		BytesPerTexel: 4, Channels: 1, Renderbuffer: true,
	},
	R32Sint: {
		GLFormat: gl.R32I, DataFormat: gl.RED_INTEGER, DataType: gl.INT,
		BytesPerTexel: 4, Channels: 1, Signed: true, Renderbuffer: true,
	},
	R32Float: {
		GLFormat: gl.R32F, DataFormat: gl.RED, DataType: gl.FLOAT,
		BytesPerTexel: 4, Channels: 1,
		RequiredCap: features.TextureFloat32,
		FilterCap:   features.Float32Filterable,
		RenderCap:   features.Float32Renderable,
	},
	RG32Uint: {
		GLFormat: gl.RG32UI, DataFormat: gl.RG_INTEGER, DataType: gl.UNSIGNED_INT,
		BytesPerTexel: 8, Channels: 2, Renderbuffer: true,
	},
	RG32Sint: {
		GLFormat: gl.RG32I, DataFormat: gl.RG_INTEGER, DataType: gl.INT,
		BytesPerTexel: 8, Channels: 2, Signed: true, Renderbuffer: true,
	},
	RG32Float: {
		GLFormat: gl.RG32F, DataFormat: gl.RG, DataType: gl.FLOAT,
		BytesPerTexel: 8, Channels: 2,
		RequiredCap: features.TextureFloat32,
		FilterCap:   features.Float32Filterable,
		RenderCap:   features.Float32Renderable,
	},
	RGBA32Uint: {
		GLFormat: gl.RGBA32UI, DataFormat: gl.RGBA_INTEGER, DataType: gl.UNSIGNED_INT,
		BytesPerTexel: 16, Channels: 4, Renderbuffer: true,
	},
	RGBA32Sint: {
		GLFormat: gl.RGBA32I, DataFormat: gl.RGBA_INTEGER, DataType: gl.INT,
		BytesPerTexel: 16, Channels: 4, Signed: true, Renderbuffer: true,
	},
	RGBA32Float: {
		GLFormat: gl.RGBA32F, GLFormatV1: gl.RGBA,
		DataFormat: gl.RGBA, DataType: gl.FLOAT,
		BytesPerTexel: 16, Channels: 4,
		RequiredCap: features.TextureFloat32,
		FilterCap:   features.Float32Filterable,
		RenderCap:   features.Float32Renderable,
	},

	// Packed color.
	RGB10A2Unorm: {
		GLFormat: gl.RGB10_A2, DataFormat: gl.RGBA, DataType: gl.UNSIGNED_INT_2_10_10_10_REV,
		BytesPerTexel: 4, Channels: 4, Renderbuffer: true,
	},
	RGB10A2Uint: {
		GLFormat: gl.RGB10_A2UI, DataFormat: gl.RGBA_INTEGER, DataType: gl.UNSIGNED_INT_2_10_10_10_REV,
		BytesPerTexel: 4, Channels: 4, Renderbuffer: true,
	},
	RG11B10Ufloat: {
		GLFormat: gl.R11F_G11F_B10F, DataFormat: gl.RGB, DataType: gl.UNSIGNED_INT_10F_11F_11F_REV,
		BytesPerTexel: 4, Channels: 3,
		RenderCap: features.Float32Renderable,
	},
	RGB9E5Ufloat: {
		GLFormat: gl.RGB9_E5, DataFormat: gl.RGB, DataType: gl.UNSIGNED_INT_5_9_9_9_REV,
		BytesPerTexel: 4, Channels: 3,
	},

	// Older-generation formats.
	RGB8UnormWebGL: {
		GLFormat: gl.RGB8, GLFormatV1: gl.RGB,
		DataFormat: gl.RGB, DataType: gl.UNSIGNED_BYTE,
		BytesPerTexel: 3, Channels: 3, Renderbuffer: true,
	},
	RGB565UnormWebGL: {
		GLFormat: gl.RGB565, GLFormatV1: gl.RGB,
		DataFormat: gl.RGB, DataType: gl.UNSIGNED_SHORT_5_6_5,
		BytesPerTexel: 2, Channels: 3, Renderbuffer: true,
	},
	RGBA4UnormWebGL: {
		GLFormat: gl.RGBA4, GLFormatV1: gl.RGBA,
		DataFormat: gl.RGBA, DataType: gl.UNSIGNED_SHORT_4_4_4_4,
		BytesPerTexel: 2, Channels: 4, Renderbuffer: true,
	},
	RGB5A1UnormWebGL: {
		GLFormat: gl.RGB5_A1, GLFormatV1: gl.RGBA,
		DataFormat: gl.RGBA, DataType: gl.UNSIGNED_SHORT_5_5_5_1,
		BytesPerTexel: 2, Channels: 4, Renderbuffer: true,
	},

	// Depth and stencil.
	Stencil8: {
		GLFormat: gl.STENCIL_INDEX8,
		BytesPerTexel: 1, Channels: 1,
		Attachment: AttachmentStencil, Renderbuffer: true,
	},
	Depth16Unorm: {
		GLFormat: gl.DEPTH_COMPONENT16, GLFormatV1: gl.DEPTH_COMPONENT,
		DataFormat: gl.DEPTH_COMPONENT, DataType: gl.UNSIGNED_SHORT,
		BytesPerTexel: 2, Channels: 1,
		RequiredCap: features.DepthTexture,
		Attachment:  AttachmentDepth, Renderbuffer: true,
	},
	Depth24Plus: {
		GLFormat: gl.DEPTH_COMPONENT24, GLFormatV1: gl.DEPTH_COMPONENT,
		DataFormat: gl.DEPTH_COMPONENT, DataType: gl.UNSIGNED_INT,
		BytesPerTexel: 4, Channels: 1,
		RequiredCap: features.DepthTexture,
		Attachment:  AttachmentDepth, Renderbuffer: true,
	},
	Depth32Float: {
		GLFormat: gl.DEPTH_COMPONENT32F,
		DataFormat: gl.DEPTH_COMPONENT, DataType: gl.FLOAT,
		BytesPerTexel: 4, Channels: 1,
		RequiredCap: features.DepthTexture,
		Attachment:  AttachmentDepth, Renderbuffer: true,
	},
	Depth24PlusStencil8: {
		GLFormat: gl.DEPTH24_STENCIL8, GLFormatV1: gl.DEPTH_STENCIL,
		DataFormat: gl.DEPTH_STENCIL, DataType: gl.UNSIGNED_INT_24_8,
		BytesPerTexel: 4, Channels: 2,
		RequiredCap: features.DepthTexture,
		Attachment:  AttachmentDepthStencil, Renderbuffer: true,
	},
	Depth32FloatStencil8: {
		GLFormat: gl.DEPTH32F_STENCIL8,
		DataFormat: gl.DEPTH_STENCIL, DataType: gl.FLOAT_32_UNSIGNED_INT_24_8_REV,
		BytesPerTexel: 5, Channels: 2,
		RequiredCap: features.DepthTexture,
		Attachment:  AttachmentDepthStencil, Renderbuffer: true,
	},

	// BC family.
	BC1RGBAUnorm:     bcRow(gl.COMPRESSED_RGBA_S3TC_DXT1_EXT, 4, 8, false),
	BC1RGBAUnormSrgb: bcRow(gl.COMPRESSED_SRGB_ALPHA_S3TC_DXT1_EXT, 4, 8, false),
	BC2RGBAUnorm:     bcRow(gl.COMPRESSED_RGBA_S3TC_DXT3_EXT, 4, 16, false),
	BC2RGBAUnormSrgb: bcRow(gl.COMPRESSED_SRGB_ALPHA_S3TC_DXT3_EXT, 4, 16, false),
	BC3RGBAUnorm:     bcRow(gl.COMPRESSED_RGBA_S3TC_DXT5_EXT, 4, 16, false),
	BC3RGBAUnormSrgb: bcRow(gl.COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT, 4, 16, false),
	BC4RUnorm:        bcRow(gl.COMPRESSED_RED_RGTC1_EXT, 1, 8, false),
	BC4RSnorm:        bcRow(gl.COMPRESSED_SIGNED_RED_RGTC1_EXT, 1, 8, true),
	BC5RGUnorm:       bcRow(gl.COMPRESSED_RED_GREEN_RGTC2_EXT, 2, 16, false),
	BC5RGSnorm:       bcRow(gl.COMPRESSED_SIGNED_RED_GREEN_RGTC2_EXT, 2, 16, true),
	BC6HRGBUfloat:    bcRow(gl.COMPRESSED_RGB_BPTC_UNSIGNED_FLOAT_EXT, 3, 16, false),
	BC6HRGBFloat:     bcRow(gl.COMPRESSED_RGB_BPTC_SIGNED_FLOAT_EXT, 3, 16, true),
	BC7RGBAUnorm:     bcRow(gl.COMPRESSED_RGBA_BPTC_UNORM_EXT, 4, 16, false),
	BC7RGBAUnormSrgb: bcRow(gl.COMPRESSED_SRGB_ALPHA_BPTC_UNORM_EXT, 4, 16, false),

	// ETC2/EAC family.
	ETC2RGB8Unorm:       etc2Row(gl.COMPRESSED_RGB8_ETC2, 3, 8, false),
	ETC2RGB8UnormSrgb:   etc2Row(gl.COMPRESSED_SRGB8_ETC2, 3, 8, false),
	ETC2RGB8A1Unorm:     etc2Row(gl.COMPRESSED_RGB8_PUNCHTHROUGH_ALPHA1_ETC2, 4, 8, false),
	ETC2RGB8A1UnormSrgb: etc2Row(gl.COMPRESSED_SRGB8_PUNCHTHROUGH_ALPHA1_ETC2, 4, 8, false),
	ETC2RGBA8Unorm:      etc2Row(gl.COMPRESSED_RGBA8_ETC2_EAC, 4, 16, false),
	ETC2RGBA8UnormSrgb:  etc2Row(gl.COMPRESSED_SRGB8_ALPHA8_ETC2_EAC, 4, 16, false),
	EACR11Unorm:         etc2Row(gl.COMPRESSED_R11_EAC, 1, 8, false),
	EACR11Snorm:         etc2Row(gl.COMPRESSED_SIGNED_R11_EAC, 1, 8, true),
	EACRG11Unorm:        etc2Row(gl.COMPRESSED_RG11_EAC, 2, 16, false),
	EACRG11Snorm:        etc2Row(gl.COMPRESSED_SIGNED_RG11_EAC, 2, 16, true),

	// ASTC family. Always 16 bytes per block; geometry varies.
	ASTC4x4Unorm:       astcRow(gl.COMPRESSED_RGBA_ASTC_4x4_KHR, 4, 4),
	ASTC4x4UnormSrgb:   astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_4x4_KHR, 4, 4),
	ASTC5x4Unorm:       astcRow(gl.COMPRESSED_RGBA_ASTC_5x4_KHR, 5, 4),
	ASTC5x4UnormSrgb:   astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_5x4_KHR, 5, 4),
	ASTC5x5Unorm:       astcRow(gl.COMPRESSED_RGBA_ASTC_5x5_KHR, 5, 5),
	ASTC5x5UnormSrgb:   astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_5x5_KHR, 5, 5),
	ASTC6x5Unorm:       astcRow(gl.COMPRESSED_RGBA_ASTC_6x5_KHR, 6, 5),
	ASTC6x5UnormSrgb:   astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_6x5_KHR, 6, 5),
	ASTC6x6Unorm:       astcRow(gl.COMPRESSED_RGBA_ASTC_6x6_KHR, 6, 6),
	ASTC6x6UnormSrgb:   astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_6x6_KHR, 6, 6),
	ASTC8x5Unorm:       astcRow(gl.COMPRESSED_RGBA_ASTC_8x5_KHR, 8, 5),
	ASTC8x5UnormSrgb:   astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_8x5_KHR, 8, 5),
	ASTC8x6Unorm:       astcRow(gl.COMPRESSED_RGBA_ASTC_8x6_KHR, 8, 6),
	ASTC8x6UnormSrgb:   astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_8x6_KHR, 8, 6),
	ASTC8x8Unorm:       astcRow(gl.COMPRESSED_RGBA_ASTC_8x8_KHR, 8, 8),
	ASTC8x8UnormSrgb:   astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_8x8_KHR, 8, 8),
	ASTC10x5Unorm:      astcRow(gl.COMPRESSED_RGBA_ASTC_10x5_KHR, 10, 5),
	ASTC10x5UnormSrgb:  astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_10x5_KHR, 10, 5),
	ASTC10x6Unorm:      astcRow(gl.COMPRESSED_RGBA_ASTC_10x6_KHR, 10, 6),
	ASTC10x6UnormSrgb:  astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_10x6_KHR, 10, 6),
	ASTC10x8Unorm:      astcRow(gl.COMPRESSED_RGBA_ASTC_10x8_KHR, 10, 8),
	ASTC10x8UnormSrgb:  astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_10x8_KHR, 10, 8),
	ASTC10x10Unorm:     astcRow(gl.COMPRESSED_RGBA_ASTC_10x10_KHR, 10, 10),
	ASTC10x10UnormSrgb: astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_10x10_KHR, 10, 10),
	ASTC12x10Unorm:     astcRow(gl.COMPRESSED_RGBA_ASTC_12x10_KHR, 12, 10),
	ASTC12x10UnormSrgb: astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_12x10_KHR, 12, 10),
	ASTC12x12Unorm:     astcRow(gl.COMPRESSED_RGBA_ASTC_12x12_KHR, 12, 12),
	ASTC12x12UnormSrgb: astcRow(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_12x12_KHR, 12, 12),
}

// bcRow builds a BC family row. BC enums are identical in both
// generations; the extensions define them for WebGL1 too.
func bcRow(e gl.Enum, channels uint8, bytesPerBlock uint8, signed bool) Descriptor {
	return Descriptor{
		GLFormat: e, GLFormatV1: e,
		Channels: channels, Signed: signed,
		Compressed: true, Family: FamilyBC,
		BlockWidth: 4, BlockHeight: 4, BytesPerBlock: bytesPerBlock,
		RequiredCap: features.TextureCompressionBC,
	}
}

func etc2Row(e gl.Enum, channels uint8, bytesPerBlock uint8, signed bool) Descriptor {
	return Descriptor{
		GLFormat: e, GLFormatV1: e,
		Channels: channels, Signed: signed,
		Compressed: true, Family: FamilyETC2,
		BlockWidth: 4, BlockHeight: 4, BytesPerBlock: bytesPerBlock,
		RequiredCap: features.TextureCompressionETC2,
	}
}

func astcRow(e gl.Enum, blockW, blockH uint8) Descriptor {
	return Descriptor{
		GLFormat: e, GLFormatV1: e,
		Channels: 4,
		Compressed: true, Family: FamilyASTC,
		BlockWidth: blockW, BlockHeight: blockH, BytesPerBlock: 16,
		RequiredCap: features.TextureCompressionASTC,
	}
}

// sharedV1Aliases are the unsized WebGL1 internal formats that several
// rows legitimately share (the older generation distinguishes them by
// component type, not internal format). They are excluded from the
// reverse mapping: translating one of them back to a portable format
// would be ambiguous, so FromGLFormat fails loudly on them instead.
var sharedV1Aliases = map[gl.Enum]bool{
	gl.RGBA:            true,
	gl.RGB:             true,
	gl.LUMINANCE:       true,
	gl.DEPTH_COMPONENT: true,
	gl.DEPTH_STENCIL:   true,
}

// portableOnly are the formats that deliberately carry no native slot:
// they exist for portability of format names and upload via a swizzled
// data path. Every other row must claim at least one internal format,
// which validate enforces.
var portableOnly = map[Format]bool{
	BGRA8Unorm: true,
}

// reverse maps native enums back to portable formats. Built by init
// after validation guarantees uniqueness.
var reverse map[gl.Enum]Format

func init() {
	if err := validate(); err != nil {
		// A broken table is a programmer error in static data; there is
		// no caller that could recover from it.
		panic(err)
	}
}

// validate checks the whole table exhaustively at process start: every
// row must have at least one native slot or be explicitly portable-only,
// and every reverse-mapped enum must be claimed by exactly one row.
// It also builds the reverse mapping.
func validate() error {
	reverse = make(map[gl.Enum]Format, len(table))
	claim := func(e gl.Enum, f Format) error {
		if prev, ok := reverse[e]; ok {
			return fmt.Errorf("format: enum 0x%04x claimed by both %q and %q", uint32(e), prev, f)
		}
		reverse[e] = f
		return nil
	}
	for f, d := range table {
		if d.PortableOnly() && !portableOnly[f] {
			return fmt.Errorf("format: %q has no native slot", f)
		}
		if d.Compressed && (d.BlockWidth == 0 || d.BlockHeight == 0 || d.BytesPerBlock == 0) {
			return fmt.Errorf("format: %q missing block geometry", f)
		}
		if !d.Compressed && !d.PortableOnly() && d.BytesPerTexel == 0 {
			return fmt.Errorf("format: %q missing texel size", f)
		}
		if d.GLFormat != gl.None {
			if err := claim(d.GLFormat, f); err != nil {
				return err
			}
		}
		if d.GLFormatV1 != gl.None && d.GLFormatV1 != d.GLFormat && !sharedV1Aliases[d.GLFormatV1] {
			if err := claim(d.GLFormatV1, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Lookup returns the descriptor for a portable format.
func Lookup(f Format) (Descriptor, bool) {
	d, ok := table[f]
	return d, ok
}

// All returns every portable format in the table. Order is unspecified.
func All() []Format {
	fs := make([]Format, 0, len(table))
	for f := range table {
		fs = append(fs, f)
	}
	return fs
}
