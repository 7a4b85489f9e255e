package texture

import (
	"fmt"
	"image"
	"sync"

	"github.com/sakitam-gis/luma.gl/gl"
)

// Buffer is the contract a staged GPU buffer must satisfy to serve as an
// upload source. The pipeline treats it as an opaque byte source; it
// never reads the contents CPU-side.
type Buffer interface {
	// GLBuffer returns the native buffer handle.
	GLBuffer() gl.Buffer
	// Len returns the byte length of the buffer.
	Len() int
}

// Face identifies one cube map face.
type Face int

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// faceCount is the number of faces a cube upload must supply.
const faceCount = 6

// target returns the face-specific native target. The six face enums
// are consecutive starting at TEXTURE_CUBE_MAP_POSITIVE_X.
func (f Face) target() gl.Enum {
	return gl.TEXTURE_CUBE_MAP_POSITIVE_X + gl.Enum(f)
}

// String returns the conventional face name.
func (f Face) String() string {
	switch f {
	case FacePosX:
		return "+x"
	case FaceNegX:
		return "-x"
	case FacePosY:
		return "+y"
	case FaceNegY:
		return "-y"
	case FacePosZ:
		return "+z"
	case FaceNegZ:
		return "-z"
	default:
		return "?"
	}
}

// Source is the tagged union of upload data shapes. Exactly one variant
// is active per upload call; the dispatcher is exhaustive over the tags
// instead of probing values at runtime. A nil Source requests an empty
// allocation, which still counts as a completed upload.
//
// The legal shapes are fixed: a single leaf source ([Bytes], [ImageData],
// [BufferRegion]), a per-mip-level array ([Levels]), a per-face map
// ([CubeFaces]), or a [Deferred] wrapper around any of them. Resolution
// recurses over exactly these shapes and nothing else.
type Source interface {
	isSource()
}

// Bytes is CPU texel data for one level. The declared size is the
// destination region within the level, defaulting to the whole level;
// X, Y and Z place the region's origin. A region must lie inside the
// level's extent. For compressed formats Pix holds raw block bytes.
type Bytes struct {
	Pix    []byte
	Width  int
	Height int
	// Depth is the depth or layer count for 3D/array uploads; 0 means
	// the full destination depth.
	Depth int
	// X, Y, Z are the texel origin of the destination region.
	X, Y, Z int
}

func (Bytes) isSource() {}

// ImageData is a decoded image source. Its intrinsic size is
// authoritative: the upload reads the bounds from the image, not from
// the caller's stated dimensions.
type ImageData struct {
	Image image.Image
}

func (ImageData) isSource() {}

// BufferRegion sources texels from a staged GPU buffer (WebGL2 only).
// The buffer is bound to the pixel-transfer bind point for the duration
// of the call and unconditionally unbound afterwards.
type BufferRegion struct {
	Buffer Buffer
	// Offset is the byte offset of level data within the buffer.
	Offset int
}

func (BufferRegion) isSource() {}

// Levels supplies one source per mip level, level 0 first.
type Levels []Source

func (Levels) isSource() {}

// CubeFaces supplies one source per cube face. All six faces must be
// present; faces may independently be single- or multi-level.
type CubeFaces map[Face]Source

func (CubeFaces) isSource() {}

// Deferred wraps a source that is not available yet. Fetch runs off the
// construction path; the texture stays alive but not ready until it
// lands.
type Deferred struct {
	Fetch func() (Source, error)
}

func (Deferred) isSource() {}

// hasDeferred reports whether any Deferred wrapper occurs in the
// source's known shapes.
func hasDeferred(src Source) bool {
	switch s := src.(type) {
	case Deferred:
		return true
	case Levels:
		for _, lv := range s {
			if hasDeferred(lv) {
				return true
			}
		}
	case CubeFaces:
		for _, fs := range s {
			if hasDeferred(fs) {
				return true
			}
		}
	}
	return false
}

// resolveSource runs the single recursive resolution pass over the
// union's known shapes. Leaf sources pass through unchanged. Cube faces
// resolve in parallel and the call returns only once every face has
// landed, so no partially-resolved cube ever reaches the bind stage.
func resolveSource(src Source) (Source, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case Bytes, ImageData, BufferRegion:
		return s, nil
	case Deferred:
		if s.Fetch == nil {
			return nil, fmt.Errorf("%w: deferred source without fetch", ErrInvalidImageData)
		}
		inner, err := s.Fetch()
		if err != nil {
			return nil, err
		}
		return resolveSource(inner)
	case Levels:
		out := make(Levels, len(s))
		for i, lv := range s {
			r, err := resolveSource(lv)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case CubeFaces:
		return resolveCubeFaces(s)
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidImageData, src)
	}
}

// resolveCubeFaces resolves all six faces concurrently before returning.
func resolveCubeFaces(faces CubeFaces) (Source, error) {
	if len(faces) != faceCount {
		return nil, fmt.Errorf("%w: cube upload requires %d faces, got %d",
			ErrInvalidImageData, faceCount, len(faces))
	}
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		out  = make(CubeFaces, faceCount)
		errs []error
	)
	for face, fs := range faces {
		wg.Add(1)
		go func(face Face, fs Source) {
			defer wg.Done()
			r, err := resolveSource(fs)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("face %s: %w", face, err))
				return
			}
			out[face] = r
		}(face, fs)
	}
	wg.Wait()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return out, nil
}
