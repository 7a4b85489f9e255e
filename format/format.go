// Package format defines the portable texture format model and the
// resolver that translates it to native enums per API generation.
//
// A Format is a stable, version-agnostic identifier (lowercase,
// hyphenated, e.g. "rgba8unorm", "bc1-rgba-unorm"). It is the wire
// contract between this module and every caller: adding a format means
// adding one table row, never changing an existing string's meaning.
//
// The table is static, validated once at process start and immutable
// thereafter. Resolution failures are typed errors naming the offending
// format or enum; the resolver never falls back to a default format,
// because masking an unsupported format produces visually wrong (not
// absent) output, which is worse than a hard failure.
package format

import "errors"

// Resolver errors.
var (
	// ErrUnsupportedFormat is returned when a format has no native slot
	// for the active API generation.
	ErrUnsupportedFormat = errors.New("format: not supported by this API generation")

	// ErrUnknownFormat is returned when a native enum has no reverse
	// mapping in the table.
	ErrUnknownFormat = errors.New("format: unknown native enum")

	// ErrNotDepthStencil is returned when an attachment-point query is
	// made against a color format.
	ErrNotDepthStencil = errors.New("format: not a depth/stencil format")
)

// Format is a portable texture format identifier.
type Format string

// 8-bit color formats.
const (
	R8Unorm        Format = "r8unorm"
	R8Snorm        Format = "r8snorm"
	R8Uint         Format = "r8uint"
	R8Sint         Format = "r8sint"
	RG8Unorm       Format = "rg8unorm"
	RG8Snorm       Format = "rg8snorm"
	RG8Uint        Format = "rg8uint"
	RG8Sint        Format = "rg8sint"
	RGBA8Unorm     Format = "rgba8unorm"
	RGBA8UnormSrgb Format = "rgba8unorm-srgb"
	RGBA8Snorm     Format = "rgba8snorm"
	RGBA8Uint      Format = "rgba8uint"
	RGBA8Sint      Format = "rgba8sint"

	// BGRA8Unorm is portable-only: it has no GL backing in either
	// generation and requesting it natively fails with
	// ErrUnsupportedFormat.
	BGRA8Unorm Format = "bgra8unorm"
)

// 16- and 32-bit color formats.
const (
	R16Uint     Format = "r16uint"
	R16Sint     Format = "r16sint"
	R16Float    Format = "r16float"
	R32Uint     Format = "r32uint"
	R32Sint     Format = "r32sint"
	R32Float    Format = "r32float"
	RG16Uint    Format = "rg16uint"
	RG16Sint    Format = "rg16sint"
	RG16Float   Format = "rg16float"
	RG32Uint    Format = "rg32uint"
	RG32Sint    Format = "rg32sint"
	RG32Float   Format = "rg32float"
	RGBA16Uint  Format = "rgba16uint"
	RGBA16Sint  Format = "rgba16sint"
	RGBA16Float Format = "rgba16float"
	RGBA32Uint  Format = "rgba32uint"
	RGBA32Sint  Format = "rgba32sint"
	RGBA32Float Format = "rgba32float"
)

// Packed color formats.
const (
	RGB10A2Unorm  Format = "rgb10a2unorm"
	RGB10A2Uint   Format = "rgb10a2uint"
	RG11B10Ufloat Format = "rg11b10ufloat"
	RGB9E5Ufloat  Format = "rgb9e5ufloat"
)

// Formats carried over from the older generation; not part of the
// portable core set, hence the -webgl suffix.
const (
	RGB8UnormWebGL   Format = "rgb8unorm-webgl"
	RGB565UnormWebGL Format = "rgb565unorm-webgl"
	RGBA4UnormWebGL  Format = "rgba4unorm-webgl"
	RGB5A1UnormWebGL Format = "rgb5a1unorm-webgl"
)

// Depth and stencil formats.
const (
	Stencil8             Format = "stencil8"
	Depth16Unorm         Format = "depth16unorm"
	Depth24Plus          Format = "depth24plus"
	Depth32Float         Format = "depth32float"
	Depth24PlusStencil8  Format = "depth24plus-stencil8"
	Depth32FloatStencil8 Format = "depth32float-stencil8"
)

// BC (S3TC/RGTC/BPTC) compressed formats.
const (
	BC1RGBAUnorm     Format = "bc1-rgba-unorm"
	BC1RGBAUnormSrgb Format = "bc1-rgba-unorm-srgb"
	BC2RGBAUnorm     Format = "bc2-rgba-unorm"
	BC2RGBAUnormSrgb Format = "bc2-rgba-unorm-srgb"
	BC3RGBAUnorm     Format = "bc3-rgba-unorm"
	BC3RGBAUnormSrgb Format = "bc3-rgba-unorm-srgb"
	BC4RUnorm        Format = "bc4-r-unorm"
	BC4RSnorm        Format = "bc4-r-snorm"
	BC5RGUnorm       Format = "bc5-rg-unorm"
	BC5RGSnorm       Format = "bc5-rg-snorm"
	BC6HRGBUfloat    Format = "bc6h-rgb-ufloat"
	BC6HRGBFloat     Format = "bc6h-rgb-float"
	BC7RGBAUnorm     Format = "bc7-rgba-unorm"
	BC7RGBAUnormSrgb Format = "bc7-rgba-unorm-srgb"
)

// ETC2/EAC compressed formats.
const (
	ETC2RGB8Unorm       Format = "etc2-rgb8unorm"
	ETC2RGB8UnormSrgb   Format = "etc2-rgb8unorm-srgb"
	ETC2RGB8A1Unorm     Format = "etc2-rgb8a1unorm"
	ETC2RGB8A1UnormSrgb Format = "etc2-rgb8a1unorm-srgb"
	ETC2RGBA8Unorm      Format = "etc2-rgba8unorm"
	ETC2RGBA8UnormSrgb  Format = "etc2-rgba8unorm-srgb"
	EACR11Unorm         Format = "eac-r11unorm"
	EACR11Snorm         Format = "eac-r11snorm"
	EACRG11Unorm        Format = "eac-rg11unorm"
	EACRG11Snorm        Format = "eac-rg11snorm"
)

// ASTC compressed formats.
const (
	ASTC4x4Unorm       Format = "astc-4x4-unorm"
	ASTC4x4UnormSrgb   Format = "astc-4x4-unorm-srgb"
	ASTC5x4Unorm       Format = "astc-5x4-unorm"
	ASTC5x4UnormSrgb   Format = "astc-5x4-unorm-srgb"
	ASTC5x5Unorm       Format = "astc-5x5-unorm"
	ASTC5x5UnormSrgb   Format = "astc-5x5-unorm-srgb"
	ASTC6x5Unorm       Format = "astc-6x5-unorm"
	ASTC6x5UnormSrgb   Format = "astc-6x5-unorm-srgb"
	ASTC6x6Unorm       Format = "astc-6x6-unorm"
	ASTC6x6UnormSrgb   Format = "astc-6x6-unorm-srgb"
	ASTC8x5Unorm       Format = "astc-8x5-unorm"
	ASTC8x5UnormSrgb   Format = "astc-8x5-unorm-srgb"
	ASTC8x6Unorm       Format = "astc-8x6-unorm"
	ASTC8x6UnormSrgb   Format = "astc-8x6-unorm-srgb"
	ASTC8x8Unorm       Format = "astc-8x8-unorm"
	ASTC8x8UnormSrgb   Format = "astc-8x8-unorm-srgb"
	ASTC10x5Unorm      Format = "astc-10x5-unorm"
	ASTC10x5UnormSrgb  Format = "astc-10x5-unorm-srgb"
	ASTC10x6Unorm      Format = "astc-10x6-unorm"
	ASTC10x6UnormSrgb  Format = "astc-10x6-unorm-srgb"
	ASTC10x8Unorm      Format = "astc-10x8-unorm"
	ASTC10x8UnormSrgb  Format = "astc-10x8-unorm-srgb"
	ASTC10x10Unorm     Format = "astc-10x10-unorm"
	ASTC10x10UnormSrgb Format = "astc-10x10-unorm-srgb"
	ASTC12x10Unorm     Format = "astc-12x10-unorm"
	ASTC12x10UnormSrgb Format = "astc-12x10-unorm-srgb"
	ASTC12x12Unorm     Format = "astc-12x12-unorm"
	ASTC12x12UnormSrgb Format = "astc-12x12-unorm-srgb"
)
