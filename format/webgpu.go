package format

import "github.com/gogpu/gputypes"

// Bridging to the WebGPU-style format vocabulary used by the gogpu
// ecosystem. Only the formats gputypes names are mapped; everything else
// reports TextureFormatUndefined, which callers already treat as "no
// interop available" rather than an error.

// ToGPUType converts a portable format to its gputypes equivalent.
func ToGPUType(f Format) gputypes.TextureFormat {
	switch f {
	case R8Unorm:
		return gputypes.TextureFormatR8Unorm
	case RGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm
	case BGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm
	case Depth24PlusStencil8:
		return gputypes.TextureFormatDepth24PlusStencil8
	default:
		return gputypes.TextureFormatUndefined
	}
}

// FromGPUType converts a gputypes format to the portable identifier.
// The empty Format is returned for formats without a mapping.
func FromGPUType(tf gputypes.TextureFormat) Format {
	switch tf {
	case gputypes.TextureFormatR8Unorm:
		return R8Unorm
	case gputypes.TextureFormatRGBA8Unorm:
		return RGBA8Unorm
	case gputypes.TextureFormatBGRA8Unorm:
		return BGRA8Unorm
	case gputypes.TextureFormatDepth24PlusStencil8:
		return Depth24PlusStencil8
	default:
		return ""
	}
}
