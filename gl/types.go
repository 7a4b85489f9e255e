package gl

// Enum is a native GL enumerated constant.
type Enum uint32

// None is the zero Enum. The format resolver reports it as the explicit
// "no component type" sentinel for depth/stencil formats.
const None Enum = 0

// Texture is a native texture object handle.
type Texture struct {
	V uint
}

// Valid reports whether the handle refers to an allocated texture object.
func (t Texture) Valid() bool { return t.V != 0 }

// Buffer is a native buffer object handle.
type Buffer struct {
	V uint
}

// Valid reports whether the handle refers to an allocated buffer object.
func (b Buffer) Valid() bool { return b.V != 0 }

// API identifies the generation of the live context.
//
// WebGL1 is the older, extension-gated generation; WebGL2 is the newer
// generation where many optional features are baseline.
type API int

const (
	// WebGL1 is the OpenGL ES 2.0 based generation.
	WebGL1 API = 1
	// WebGL2 is the OpenGL ES 3.0 based generation.
	WebGL2 API = 2
)

// String returns the conventional name of the API generation.
func (a API) String() string {
	switch a {
	case WebGL1:
		return "webgl1"
	case WebGL2:
		return "webgl2"
	default:
		return "unknown"
	}
}
