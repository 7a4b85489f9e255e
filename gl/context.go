package gl

// Context is the contract the host windowing/context layer must implement.
//
// luma never creates a context; it receives one from the host, mirroring
// the device-sharing model of GPU frameworks. Implementations wrap either
// a WebGL1 or a WebGL2 context; API reports which.
//
// Every method except Run is invoked on the goroutine that owns the
// native context: synchronous texture operations issue GL calls on the
// caller's goroutine, and deferred uploads re-enter through Run. Run is
// the only method that must tolerate being called from any goroutine.
type Context interface {
	// API reports the generation of the live context.
	API() API

	// Run executes fn on the goroutine that owns the native context. The
	// upload pipeline calls it from a background goroutine when a
	// deferred source resolves; hosts with a single context-owning loop
	// queue fn there. Implementations whose underlying context is safe
	// from any goroutine may execute fn directly.
	Run(fn func())

	// GetExtension acquires the named extension and reports whether it is
	// available. Acquisition must be idempotent: once an extension loads
	// it stays loaded for the lifetime of the context, so repeated calls
	// return the same answer and may be served from a cache.
	GetExtension(name string) bool

	// Texture handle lifecycle.
	CreateTexture() Texture
	DeleteTexture(t Texture)

	// State required around transfer calls.
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	TexParameteri(target, pname Enum, param int)
	PixelStorei(pname Enum, param int)

	// BindBuffer binds b to a buffer bind point. The upload pipeline uses
	// it only for PIXEL_UNPACK_BUFFER, and always pairs a bind with an
	// unbind (zero handle) on every exit path.
	BindBuffer(target Enum, b Buffer)

	// Uncompressed transfer calls. A nil data slice allocates storage with
	// undefined contents. The sub-image variants write into storage that
	// is already specified for the level; the pipeline uses them for
	// every write into immutable (TexStorage) allocations and for region
	// writes. The offset variants read texels from the buffer currently
	// bound to PIXEL_UNPACK_BUFFER (WebGL2 only).
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte)
	TexSubImage2D(target Enum, level, x, y, width, height int, format, ty Enum, data []byte)
	TexImage3D(target Enum, level int, internalFormat Enum, width, height, depth int, format, ty Enum, data []byte)
	TexSubImage3D(target Enum, level, x, y, z, width, height, depth int, format, ty Enum, data []byte)
	TexImage2DOffset(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, offset int)
	TexImage3DOffset(target Enum, level int, internalFormat Enum, width, height, depth int, format, ty Enum, offset int)
	TexSubImage2DOffset(target Enum, level, x, y, width, height int, format, ty Enum, offset int)
	TexSubImage3DOffset(target Enum, level, x, y, z, width, height, depth int, format, ty Enum, offset int)

	// Compressed transfer calls. Data is raw block bytes.
	CompressedTexImage2D(target Enum, level int, internalFormat Enum, width, height int, data []byte)
	CompressedTexSubImage2D(target Enum, level, x, y, width, height int, internalFormat Enum, data []byte)
	CompressedTexImage3D(target Enum, level int, internalFormat Enum, width, height, depth int, data []byte)
	CompressedTexSubImage3D(target Enum, level, x, y, z, width, height, depth int, internalFormat Enum, data []byte)

	// Immutable storage allocation (WebGL2 only).
	TexStorage2D(target Enum, levels int, internalFormat Enum, width, height int)
	TexStorage3D(target Enum, levels int, internalFormat Enum, width, height, depth int)

	// GenerateMipmap builds the mip pyramid for the texture bound to target.
	GenerateMipmap(target Enum)
}
