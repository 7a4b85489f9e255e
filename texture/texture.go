// Package texture owns GPU texture resources and their upload pipeline.
//
// A Texture wraps exactly one native texture object for its whole
// lifetime and drives uploads from four source shapes: CPU texel bytes,
// decoded images, previously-staged GPU buffer regions, and the empty
// allocation. Format translation and capability checks are delegated to
// the format and features packages; the host supplies the live context
// via the gl.Context interface.
//
// Lifecycle:
//  1. Create via New. The native handle is allocated synchronously; a
//     deferred data source resolves in the background and re-enters the
//     upload path when it lands.
//  2. Ready() reports whether at least one full upload has completed;
//     render submission skips textures that are not yet ready.
//  3. Upload/Resize/SetSampler mutate the resource in place.
//  4. Destroy releases the handle. Destroy is idempotent and safe to
//     call while a deferred source is still resolving.
package texture

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"

	luma "github.com/sakitam-gis/luma.gl"
	"github.com/sakitam-gis/luma.gl/format"
	"github.com/sakitam-gis/luma.gl/gl"
)

// Texture errors.
var (
	// ErrUnsupportedDimension is returned when a dimension kind the GL
	// family cannot express (1D, cube-array) is requested.
	ErrUnsupportedDimension = errors.New("texture: unsupported dimension kind")

	// ErrUnsupportedOperation is returned when an operation requires the
	// newer API generation (3D/array textures, GPU-buffer sources).
	ErrUnsupportedOperation = errors.New("texture: operation requires WebGL2")

	// ErrInvalidImageData is returned when an upload source is not a
	// shape the target dimension kind accepts.
	ErrInvalidImageData = errors.New("texture: invalid upload source")

	// ErrTextureDestroyed is returned when operating on a destroyed
	// texture.
	ErrTextureDestroyed = errors.New("texture: texture has been destroyed")

	// ErrNilContext is returned when creating a texture without a context.
	ErrNilContext = errors.New("texture: context is nil")
)

// Kind is the dimension kind of a texture. It is fixed at construction:
// once a native texture is first bound to a target, the target is
// permanent for the handle's lifetime (a hardware constraint, not a
// policy choice).
type Kind int

const (
	// Kind2D is a plain two-dimensional texture.
	Kind2D Kind = iota
	// Kind2DArray is a layered 2D texture (WebGL2 only).
	Kind2DArray
	// KindCube is a six-faced cube map.
	KindCube
	// Kind3D is a volumetric texture (WebGL2 only).
	Kind3D
	// Kind1D exists only to be rejected: the GL family has no 1D target.
	Kind1D
	// KindCubeArray exists only to be rejected: no cube-array target.
	KindCubeArray
)

// String returns the conventional name of the kind.
func (k Kind) String() string {
	switch k {
	case Kind2D:
		return "2d"
	case Kind2DArray:
		return "2d-array"
	case KindCube:
		return "cube"
	case Kind3D:
		return "3d"
	case Kind1D:
		return "1d"
	case KindCubeArray:
		return "cube-array"
	default:
		return "unknown"
	}
}

// target returns the native bind target for the kind.
func (k Kind) target() gl.Enum {
	switch k {
	case Kind2DArray:
		return gl.TEXTURE_2D_ARRAY
	case KindCube:
		return gl.TEXTURE_CUBE_MAP
	case Kind3D:
		return gl.TEXTURE_3D
	default:
		return gl.TEXTURE_2D
	}
}

// needsV2 reports whether the kind is expressible only under WebGL2.
func (k Kind) needsV2() bool {
	return k == Kind2DArray || k == Kind3D
}

// state is the lifecycle phase of a texture resource.
type state int

const (
	stateConstructed state = iota
	stateAllocating
	stateUploading
	stateReady
	stateDestroyed
)

// Descriptor describes a texture to create.
type Descriptor struct {
	// Label is an optional debug name.
	Label string

	// Kind is the dimension kind. Kind1D and KindCubeArray are rejected.
	Kind Kind

	// Format is the portable texture format.
	Format format.Format

	// Size is the texture dimensions. Zero width/height default to 1
	// (the size may not be knowable yet when Data is deferred); zero
	// DepthOrArrayLayers defaults to 1.
	Size gputypes.Extent3D

	// MipLevels is the mip level count. Zero derives it: the full chain
	// when GenerateMipmaps is set, otherwise 1.
	MipLevels int

	// GenerateMipmaps requests automatic mip generation after upload.
	GenerateMipmaps bool

	// Sampler holds the attached sampler settings. Nil uses defaults.
	Sampler *SamplerParams

	// Data is the initial upload source. Nil allocates empty storage,
	// which is a valid terminal state for later partial writes.
	Data Source
}

// nextID hands out opaque texture ids.
var nextID atomic.Uint64

// Texture is one GPU texture resource.
//
// Texture is safe for concurrent use; a deferred source resolution may
// complete on another goroutine while the owner keeps calling into the
// resource. The GL traffic of a deferred upload is marshaled back onto
// the context-owning goroutine via Context.Run, and all GL calls happen
// under the texture's lock, so they never interleave for a single
// resource and uploads issued in sequence apply in order. No ordering
// is guaranteed across distinct textures.
type Texture struct {
	id    uint64
	label string
	ctx   gl.Context

	// Immutable after construction.
	kind   Kind
	fmt    format.Format
	desc   format.Descriptor
	target gl.Enum

	mu      sync.Mutex
	handle  gl.Texture
	width   int
	height  int
	depth   int
	levels  int
	sampler SamplerParams
	genMips bool
	state   state

	// immutable is set once the handle's storage has been allocated with
	// TexStorage2D/3D. Immutable storage cannot be respecified: all later
	// writes must go through the sub-image calls.
	immutable bool

	// ready flips to true after the first successful full upload and is
	// read lock-free by the render submission path.
	ready atomic.Bool
}

// New creates a texture resource on ctx.
//
// The dimension kind and format are validated before any native handle
// is allocated, so a rejected request leaks nothing. Construction never
// blocks on a deferred data source: the handle is allocated with a
// best-effort size (1×1 when the source hides it) and the upload runs
// when the source resolves.
func New(ctx gl.Context, desc *Descriptor) (*Texture, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if desc == nil {
		return nil, fmt.Errorf("texture: descriptor is nil")
	}
	switch desc.Kind {
	case Kind1D, KindCubeArray:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDimension, desc.Kind)
	}
	if desc.Kind.needsV2() && ctx.API() != gl.WebGL2 {
		return nil, fmt.Errorf("%w: %s textures", ErrUnsupportedOperation, desc.Kind)
	}
	fd, ok := format.Lookup(desc.Format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", format.ErrUnsupportedFormat, desc.Format)
	}
	if _, err := format.ToGLFormat(desc.Format, ctx.API()); err != nil {
		return nil, err
	}

	width := int(desc.Size.Width)
	height := int(desc.Size.Height)
	depth := int(desc.Size.DepthOrArrayLayers)
	// An image source's intrinsic size is authoritative over the
	// caller's stated size; read it now when it is already at hand.
	if img, ok := desc.Data.(ImageData); ok && img.Image != nil {
		b := img.Image.Bounds()
		width, height = b.Dx(), b.Dy()
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if depth < 1 {
		depth = 1
	}

	t := &Texture{
		id:      nextID.Add(1),
		label:   desc.Label,
		ctx:     ctx,
		kind:    desc.Kind,
		fmt:     desc.Format,
		desc:    fd,
		target:  desc.Kind.target(),
		width:   width,
		height:  height,
		depth:   depth,
		genMips: desc.GenerateMipmaps,
		state:   stateConstructed,
	}
	t.levels = desc.MipLevels
	if t.levels < 1 {
		t.levels = 1
		if desc.GenerateMipmaps {
			t.levels = MipLevelCount(width, height)
		}
	}
	if desc.Sampler != nil {
		t.sampler = *desc.Sampler
	}

	t.mu.Lock()
	t.allocateLocked()
	data := desc.Data
	if hasDeferred(data) {
		// Resolve in the background and re-enter the upload path. A
		// Destroy racing the resolution makes the landing a no-op.
		t.mu.Unlock()
		go t.resolveAndUpload(data)
		return t, nil
	}
	err := t.uploadLocked(data)
	t.mu.Unlock()
	if err != nil {
		t.Destroy()
		return nil, err
	}
	return t, nil
}

// allocateLocked creates the native handle and applies sampler state.
// Callers hold t.mu.
func (t *Texture) allocateLocked() {
	t.state = stateAllocating
	t.immutable = false
	t.handle = t.ctx.CreateTexture()
	t.ctx.ActiveTexture(gl.TEXTURE0)
	t.ctx.BindTexture(t.target, t.handle)
	t.applySamplerLocked()
	luma.Logger().Debug("texture allocated",
		"id", t.id, "label", t.label, "kind", t.kind.String(),
		"format", string(t.fmt), "width", t.width, "height", t.height)
}

// resolveAndUpload runs on its own goroutine for deferred sources. Only
// the source resolution happens here; the GL traffic re-enters the
// context-owning goroutine through ctx.Run.
func (t *Texture) resolveAndUpload(src Source) {
	resolved, err := resolveSource(src)
	if err != nil {
		luma.Logger().Warn("texture source resolution failed",
			"id", t.id, "label", t.label, "error", err)
		return
	}
	t.ctx.Run(func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.state == stateDestroyed {
			// The handle is gone; the resolved data has nowhere to land.
			return
		}
		if err := t.uploadLocked(resolved); err != nil {
			luma.Logger().Warn("texture upload failed",
				"id", t.id, "label", t.label, "error", err)
		}
	})
}

// Upload writes new contents into the texture. The source must already
// suit the texture's dimension kind; deferred sources are resolved
// first, blocking the caller (use New's Data field for fire-and-forget
// resolution).
func (t *Texture) Upload(src Source) error {
	resolved, err := resolveSource(src)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == stateDestroyed {
		return ErrTextureDestroyed
	}
	return t.uploadLocked(resolved)
}

// Resize discards the texture contents and reinitializes storage at the
// new size with the same format. Resizing to the current size is a
// no-op: no native allocation occurs. Prior contents are intentionally
// discarded, matching storage reallocation semantics.
func (t *Texture) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("texture: invalid resize %dx%d", width, height)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == stateDestroyed {
		return ErrTextureDestroyed
	}
	if width == t.width && height == t.height {
		return nil
	}
	t.ctx.DeleteTexture(t.handle)
	t.ready.Store(false)
	t.width, t.height = width, height
	if t.genMips {
		t.levels = MipLevelCount(width, height)
	}
	t.allocateLocked()
	return t.uploadLocked(nil)
}

// SetSampler attaches or replaces the sampler settings. The settings bag
// is forwarded to the native parameter calls; under WebGL1 with
// non-power-of-two dimensions the values are coerced to the legal
// subset, with a diagnostic.
func (t *Texture) SetSampler(p SamplerParams) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == stateDestroyed {
		return ErrTextureDestroyed
	}
	t.sampler = p
	t.ctx.BindTexture(t.target, t.handle)
	t.applySamplerLocked()
	return nil
}

// Destroy releases the native handle. Destroy is idempotent and safe to
// call at any lifecycle phase, including while a deferred source is
// still resolving; destruction is never a failure path.
func (t *Texture) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == stateDestroyed {
		return
	}
	t.state = stateDestroyed
	t.ready.Store(false)
	if t.handle.Valid() {
		t.ctx.DeleteTexture(t.handle)
		t.handle = gl.Texture{}
	}
}

// Ready reports whether at least one full upload has completed. The
// render submission path reads it to skip half-loaded textures.
func (t *Texture) Ready() bool { return t.ready.Load() }

// ID returns the opaque resource id.
func (t *Texture) ID() uint64 { return t.id }

// Label returns the debug label.
func (t *Texture) Label() string { return t.label }

// Kind returns the dimension kind.
func (t *Texture) Kind() Kind { return t.kind }

// Format returns the portable format.
func (t *Texture) Format() format.Format { return t.fmt }

// Width returns the level-0 width in texels.
func (t *Texture) Width() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width
}

// Height returns the level-0 height in texels.
func (t *Texture) Height() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.height
}

// Depth returns the depth or array layer count.
func (t *Texture) Depth() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.depth
}

// MipLevels returns the mip level count.
func (t *Texture) MipLevels() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.levels
}

// Handle returns the native handle, or the zero handle after Destroy.
func (t *Texture) Handle() gl.Texture {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.handle
}

// Sampler returns the attached sampler settings.
func (t *Texture) Sampler() SamplerParams {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sampler
}

// npotRestricted reports whether the older generation's power-of-two
// restrictions apply to this texture.
func (t *Texture) npotRestricted() bool {
	return t.ctx.API() == gl.WebGL1 && (!isPOT(t.width) || !isPOT(t.height))
}

// isPOT reports whether n is a power of two.
func isPOT(n int) bool { return n > 0 && n&(n-1) == 0 }

// MipLevelCount returns the number of levels in a full mip chain for
// the given level-0 size.
func MipLevelCount(width, height int) int {
	n := 1
	for width > 1 || height > 1 {
		width >>= 1
		height >>= 1
		n++
	}
	return n
}
