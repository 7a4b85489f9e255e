package texture

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogpu/gputypes"

	luma "github.com/sakitam-gis/luma.gl"
	"github.com/sakitam-gis/luma.gl/format"
	"github.com/sakitam-gis/luma.gl/gl"
)

// =============================================================================
// Mock Types for Testing
// =============================================================================

// fakeContext is a test double for gl.Context. It records call counts
// and the parameter state the pipeline sets, so tests can verify the
// native traffic without a live context.
type fakeContext struct {
	api        gl.API
	extensions map[string]bool

	// run intercepts Run callbacks when set; nil executes them inline.
	run func(fn func())

	mu              sync.Mutex
	nextHandle      uint
	created         atomic.Int32
	deleted         atomic.Int32
	texImage2D      int32
	texSubImage2D   int32
	texImage3D      int32
	texSubImage3D   int32
	texStorage2D    int32
	texStorage3D    int32
	compressed2D    int32
	compressedSub2D int32
	compressed3D    int32
	compressedSub3D int32
	offset2D        int32
	offsetSub2D     int32
	offset3D        int32
	offsetSub3D     int32
	genMipmaps      int32
	boundBuffers    []gl.Buffer
	params          map[gl.Enum]int
}

func newFakeContext(api gl.API) *fakeContext {
	return &fakeContext{
		api:        api,
		extensions: map[string]bool{},
		params:     map[gl.Enum]int{},
	}
}

func (c *fakeContext) API() gl.API { return c.api }

func (c *fakeContext) Run(fn func()) {
	if c.run != nil {
		c.run(fn)
		return
	}
	fn()
}

func (c *fakeContext) GetExtension(name string) bool { return c.extensions[name] }

func (c *fakeContext) CreateTexture() gl.Texture {
	c.created.Add(1)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextHandle++
	return gl.Texture{V: c.nextHandle}
}

func (c *fakeContext) DeleteTexture(gl.Texture) { c.deleted.Add(1) }

func (c *fakeContext) ActiveTexture(gl.Enum)           {}
func (c *fakeContext) BindTexture(gl.Enum, gl.Texture) {}

func (c *fakeContext) TexParameteri(_, pname gl.Enum, param int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params[pname] = param
}

func (c *fakeContext) PixelStorei(gl.Enum, int) {}

func (c *fakeContext) BindBuffer(_ gl.Enum, b gl.Buffer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.boundBuffers = append(c.boundBuffers, b)
}

func (c *fakeContext) TexImage2D(_ gl.Enum, _ int, _ gl.Enum, _, _ int, _, _ gl.Enum, _ []byte) {
	atomic.AddInt32(&c.texImage2D, 1)
}

func (c *fakeContext) TexSubImage2D(gl.Enum, int, int, int, int, int, gl.Enum, gl.Enum, []byte) {
	atomic.AddInt32(&c.texSubImage2D, 1)
}

func (c *fakeContext) TexImage3D(_ gl.Enum, _ int, _ gl.Enum, _, _, _ int, _, _ gl.Enum, _ []byte) {
	atomic.AddInt32(&c.texImage3D, 1)
}

func (c *fakeContext) TexSubImage3D(gl.Enum, int, int, int, int, int, int, int, gl.Enum, gl.Enum, []byte) {
	atomic.AddInt32(&c.texSubImage3D, 1)
}

func (c *fakeContext) TexImage2DOffset(_ gl.Enum, _ int, _ gl.Enum, _, _ int, _, _ gl.Enum, _ int) {
	atomic.AddInt32(&c.offset2D, 1)
}

func (c *fakeContext) TexImage3DOffset(_ gl.Enum, _ int, _ gl.Enum, _, _, _ int, _, _ gl.Enum, _ int) {
	atomic.AddInt32(&c.offset3D, 1)
}

func (c *fakeContext) TexSubImage2DOffset(_ gl.Enum, _, _, _, _, _ int, _, _ gl.Enum, _ int) {
	atomic.AddInt32(&c.offsetSub2D, 1)
}

func (c *fakeContext) TexSubImage3DOffset(_ gl.Enum, _, _, _, _, _, _, _ int, _, _ gl.Enum, _ int) {
	atomic.AddInt32(&c.offsetSub3D, 1)
}

func (c *fakeContext) CompressedTexImage2D(_ gl.Enum, _ int, _ gl.Enum, _, _ int, _ []byte) {
	atomic.AddInt32(&c.compressed2D, 1)
}

func (c *fakeContext) CompressedTexSubImage2D(gl.Enum, int, int, int, int, int, gl.Enum, []byte) {
	atomic.AddInt32(&c.compressedSub2D, 1)
}

func (c *fakeContext) CompressedTexImage3D(_ gl.Enum, _ int, _ gl.Enum, _, _, _ int, _ []byte) {
	atomic.AddInt32(&c.compressed3D, 1)
}

func (c *fakeContext) CompressedTexSubImage3D(_ gl.Enum, _, _, _, _, _, _, _ int, _ gl.Enum, _ []byte) {
	atomic.AddInt32(&c.compressedSub3D, 1)
}

func (c *fakeContext) TexStorage2D(_ gl.Enum, _ int, _ gl.Enum, _, _ int) {
	atomic.AddInt32(&c.texStorage2D, 1)
}

func (c *fakeContext) TexStorage3D(_ gl.Enum, _ int, _ gl.Enum, _, _, _ int) {
	atomic.AddInt32(&c.texStorage3D, 1)
}

func (c *fakeContext) GenerateMipmap(gl.Enum) { atomic.AddInt32(&c.genMipmaps, 1) }

func (c *fakeContext) param(pname gl.Enum) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params[pname]
}

func (c *fakeContext) lastBoundBuffer() (gl.Buffer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.boundBuffers) == 0 {
		return gl.Buffer{}, false
	}
	return c.boundBuffers[len(c.boundBuffers)-1], true
}

// fakeBuffer is a test double for the Buffer upload source.
type fakeBuffer struct {
	handle gl.Buffer
	size   int
}

func (b *fakeBuffer) GLBuffer() gl.Buffer { return b.handle }
func (b *fakeBuffer) Len() int            { return b.size }

// warnCounter is a slog.Handler that counts warning records.
type warnCounter struct {
	warns atomic.Int32
}

func (h *warnCounter) Enabled(context.Context, slog.Level) bool { return true }

func (h *warnCounter) Handle(_ context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.warns.Add(1)
	}
	return nil
}

func (h *warnCounter) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *warnCounter) WithGroup(string) slog.Handler      { return h }

// captureWarnings installs a counting logger for the test's duration.
func captureWarnings(t *testing.T) *warnCounter {
	t.Helper()
	h := &warnCounter{}
	luma.SetLogger(slog.New(h))
	t.Cleanup(func() { luma.SetLogger(nil) })
	return h
}

// waitReady polls until the texture reports ready or the deadline hits.
func waitReady(t *testing.T, tex *Texture) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !tex.Ready() {
		if time.Now().After(deadline) {
			t.Fatal("texture never became ready")
		}
		time.Sleep(time.Millisecond)
	}
}

func rgbaBytes(w, h int) []byte { return make([]byte, w*h*4) }

// =============================================================================
// Construction
// =============================================================================

func TestNew_BytesUpload(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Label:  "checker",
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 2, Height: 2},
		Data:   Bytes{Pix: rgbaBytes(2, 2)},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !tex.Ready() {
		t.Error("Ready() = false, want true after synchronous upload")
	}
	if got := ctx.created.Load(); got != 1 {
		t.Errorf("textures created = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&ctx.texImage2D); got != 1 {
		t.Errorf("TexImage2D calls = %d, want 1", got)
	}
	if tex.Width() != 2 || tex.Height() != 2 {
		t.Errorf("size = %dx%d, want 2x2", tex.Width(), tex.Height())
	}
}

func TestNew_EmptyAllocationIsReady(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 16, Height: 16},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !tex.Ready() {
		t.Error("Ready() = false, want true for empty allocation")
	}
	if got := atomic.LoadInt32(&ctx.texStorage2D); got != 1 {
		t.Errorf("TexStorage2D calls = %d, want 1", got)
	}
}

func TestNew_EmptyAllocationWebGL1(t *testing.T) {
	ctx := newFakeContext(gl.WebGL1)
	_, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 16, Height: 16},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.texStorage2D); got != 0 {
		t.Errorf("TexStorage2D calls = %d, want 0 on WebGL1", got)
	}
	if got := atomic.LoadInt32(&ctx.texImage2D); got != 1 {
		t.Errorf("TexImage2D calls = %d, want 1", got)
	}
}

func TestNew_RejectsUnsupportedKinds(t *testing.T) {
	for _, kind := range []Kind{Kind1D, KindCubeArray} {
		ctx := newFakeContext(gl.WebGL2)
		_, err := New(ctx, &Descriptor{
			Kind:   kind,
			Format: format.RGBA8Unorm,
			Size:   gputypes.Extent3D{Width: 4, Height: 4},
		})
		if !errors.Is(err, ErrUnsupportedDimension) {
			t.Errorf("New(%s) error = %v, want ErrUnsupportedDimension", kind, err)
		}
		if got := ctx.created.Load(); got != 0 {
			t.Errorf("New(%s) created %d textures, want 0", kind, got)
		}
	}
}

func TestNew_3DRequiresWebGL2(t *testing.T) {
	ctx := newFakeContext(gl.WebGL1)
	_, err := New(ctx, &Descriptor{
		Kind:   Kind3D,
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 4, Height: 4, DepthOrArrayLayers: 4},
	})
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("New error = %v, want ErrUnsupportedOperation", err)
	}
	if got := ctx.created.Load(); got != 0 {
		t.Errorf("textures created = %d, want 0", got)
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	_, err := New(ctx, &Descriptor{
		Format: format.Format("totally-made-up"),
		Size:   gputypes.Extent3D{Width: 4, Height: 4},
	})
	if !errors.Is(err, format.ErrUnsupportedFormat) {
		t.Errorf("New error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestNew_WrongByteLength(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	_, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 4, Height: 4},
		Data:   Bytes{Pix: make([]byte, 7)},
	})
	if !errors.Is(err, ErrInvalidImageData) {
		t.Errorf("New error = %v, want ErrInvalidImageData", err)
	}
	// The failed construction must not leak the allocated handle.
	if created, deleted := ctx.created.Load(), ctx.deleted.Load(); created != deleted {
		t.Errorf("created = %d, deleted = %d, want equal", created, deleted)
	}
}

func TestNew_ImageSizeAuthoritative(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 1, Height: 1},
		Data:   ImageData{Image: img},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tex.Width() != 8 || tex.Height() != 4 {
		t.Errorf("size = %dx%d, want 8x4 from image bounds", tex.Width(), tex.Height())
	}
}

func TestNew_ImageRequiresByteFormat(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	_, err := New(ctx, &Descriptor{
		Format: format.RGBA32Float,
		Size:   gputypes.Extent3D{Width: 2, Height: 2},
		Data:   ImageData{Image: img},
	})
	if !errors.Is(err, ErrInvalidImageData) {
		t.Errorf("New error = %v, want ErrInvalidImageData for float format", err)
	}
}

func TestNew_NilContext(t *testing.T) {
	_, err := New(nil, &Descriptor{Format: format.RGBA8Unorm})
	if !errors.Is(err, ErrNilContext) {
		t.Errorf("New error = %v, want ErrNilContext", err)
	}
}

// =============================================================================
// Lifecycle
// =============================================================================

func TestTexture_Destroy_Idempotent(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 4, Height: 4},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	tex.Destroy()
	tex.Destroy()
	tex.Destroy()
	if got := ctx.deleted.Load(); got != 1 {
		t.Errorf("textures deleted = %d, want 1", got)
	}
	if tex.Ready() {
		t.Error("Ready() = true after Destroy, want false")
	}
	if tex.Handle().Valid() {
		t.Error("Handle() still valid after Destroy")
	}
}

func TestTexture_UploadAfterDestroy(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 2, Height: 2},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	tex.Destroy()
	if err := tex.Upload(Bytes{Pix: rgbaBytes(2, 2)}); !errors.Is(err, ErrTextureDestroyed) {
		t.Errorf("Upload error = %v, want ErrTextureDestroyed", err)
	}
	if err := tex.Resize(8, 8); !errors.Is(err, ErrTextureDestroyed) {
		t.Errorf("Resize error = %v, want ErrTextureDestroyed", err)
	}
}

func TestTexture_Resize_SameSizeNoop(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 8, Height: 8},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := tex.Resize(8, 8); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if got := ctx.created.Load(); got != 1 {
		t.Errorf("textures created = %d, want 1 (same-size resize must not reallocate)", got)
	}
	if got := ctx.deleted.Load(); got != 0 {
		t.Errorf("textures deleted = %d, want 0", got)
	}
}

func TestTexture_Resize_Reallocates(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 8, Height: 8},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := tex.Resize(16, 16); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if got := ctx.created.Load(); got != 2 {
		t.Errorf("textures created = %d, want 2", got)
	}
	if got := ctx.deleted.Load(); got != 1 {
		t.Errorf("textures deleted = %d, want 1", got)
	}
	if tex.Width() != 16 || tex.Height() != 16 {
		t.Errorf("size = %dx%d, want 16x16", tex.Width(), tex.Height())
	}
	if !tex.Ready() {
		t.Error("Ready() = false after resize, want true")
	}
}

// =============================================================================
// Mip generation and NPOT
// =============================================================================

func TestTexture_NPOTMipmapsDisabled(t *testing.T) {
	warns := captureWarnings(t)
	ctx := newFakeContext(gl.WebGL1)
	tex, err := New(ctx, &Descriptor{
		Format:          format.RGBA8Unorm,
		Size:            gputypes.Extent3D{Width: 3, Height: 1},
		GenerateMipmaps: true,
		Data:            Bytes{Pix: rgbaBytes(3, 1)},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !tex.Ready() {
		t.Error("Ready() = false, want true (NPOT degrades, never fails)")
	}
	if got := atomic.LoadInt32(&ctx.genMipmaps); got != 0 {
		t.Errorf("GenerateMipmap calls = %d, want 0 for NPOT on WebGL1", got)
	}
	if got := warns.warns.Load(); got != 1 {
		t.Errorf("warnings = %d, want exactly 1", got)
	}
}

func TestTexture_POTMipmapsGenerated(t *testing.T) {
	ctx := newFakeContext(gl.WebGL1)
	_, err := New(ctx, &Descriptor{
		Format:          format.RGBA8Unorm,
		Size:            gputypes.Extent3D{Width: 4, Height: 4},
		GenerateMipmaps: true,
		Data:            Bytes{Pix: rgbaBytes(4, 4)},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.genMipmaps); got != 1 {
		t.Errorf("GenerateMipmap calls = %d, want 1", got)
	}
}

func TestTexture_ManualLevelsWithGenMipsWarns(t *testing.T) {
	warns := captureWarnings(t)
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Format:          format.RGBA8Unorm,
		Size:            gputypes.Extent3D{Width: 4, Height: 4},
		MipLevels:       3,
		GenerateMipmaps: true,
		Data: Levels{
			Bytes{Pix: rgbaBytes(4, 4)},
			Bytes{Pix: rgbaBytes(2, 2)},
			Bytes{Pix: rgbaBytes(1, 1)},
		},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !tex.Ready() {
		t.Error("Ready() = false, want true (the request still proceeds)")
	}
	if got := warns.warns.Load(); got != 1 {
		t.Errorf("warnings = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&ctx.texImage2D); got != 3 {
		t.Errorf("TexImage2D calls = %d, want 3", got)
	}
}

func TestTexture_ImageResizeReappliesSampler(t *testing.T) {
	warns := captureWarnings(t)
	ctx := newFakeContext(gl.WebGL1)
	tex, err := New(ctx, &Descriptor{
		Format:          format.RGBA8Unorm,
		Size:            gputypes.Extent3D{Width: 4, Height: 4},
		GenerateMipmaps: true,
		Data:            Bytes{Pix: rgbaBytes(4, 4)},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := ctx.param(gl.TEXTURE_WRAP_S); got != int(gl.REPEAT) {
		t.Fatalf("TEXTURE_WRAP_S = 0x%04x, want REPEAT while power-of-two", got)
	}

	// Adopting a non-power-of-two image size must re-derive the sampler
	// defaults for the new extent, not leave the old ones behind.
	img := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	if err := tex.Upload(ImageData{Image: img}); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if tex.Width() != 5 || tex.Height() != 3 {
		t.Errorf("size = %dx%d, want 5x3 from image bounds", tex.Width(), tex.Height())
	}
	if got := ctx.param(gl.TEXTURE_WRAP_S); got != int(gl.CLAMP_TO_EDGE) {
		t.Errorf("TEXTURE_WRAP_S = 0x%04x, want CLAMP_TO_EDGE after NPOT adoption", got)
	}
	if got := ctx.param(gl.TEXTURE_MIN_FILTER); got != int(gl.LINEAR) {
		t.Errorf("TEXTURE_MIN_FILTER = 0x%04x, want LINEAR after NPOT adoption", got)
	}
	if got := atomic.LoadInt32(&ctx.genMipmaps); got != 1 {
		t.Errorf("GenerateMipmap calls = %d, want 1 (only the power-of-two upload)", got)
	}
	// The mip-generation skip is the only diagnostic; the sampler
	// defaults re-derive silently.
	if got := warns.warns.Load(); got != 1 {
		t.Errorf("warnings = %d, want 1", got)
	}
}

// =============================================================================
// Deferred sources
// =============================================================================

func TestTexture_DeferredSource(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	release := make(chan struct{})
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 2, Height: 2},
		Data: Deferred{Fetch: func() (Source, error) {
			<-release
			return Bytes{Pix: rgbaBytes(2, 2)}, nil
		}},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tex.Ready() {
		t.Error("Ready() = true before deferred source resolved, want false")
	}
	close(release)
	waitReady(t, tex)
}

func TestTexture_CubeDeferredFacesAllOrNothing(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	release := make(chan struct{})
	faces := CubeFaces{}
	for f := FacePosX; f <= FaceNegZ; f++ {
		faces[f] = Deferred{Fetch: func() (Source, error) {
			<-release
			return Bytes{Pix: rgbaBytes(4, 4)}, nil
		}}
	}
	tex, err := New(ctx, &Descriptor{
		Kind:   KindCube,
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 4, Height: 4},
		Data:   faces,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tex.Ready() {
		t.Error("Ready() = true before any face resolved, want false")
	}
	if got := atomic.LoadInt32(&ctx.texImage2D); got != 0 {
		t.Errorf("TexImage2D calls = %d before faces resolved, want 0", got)
	}
	close(release)
	waitReady(t, tex)
	if got := atomic.LoadInt32(&ctx.texImage2D); got != 6 {
		t.Errorf("TexImage2D calls = %d, want 6 (one per face)", got)
	}
}

func TestTexture_DeferredUploadRunsOnContext(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	queued := make(chan func(), 1)
	ctx.run = func(fn func()) { queued <- fn }
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 2, Height: 2},
		Data: Deferred{Fetch: func() (Source, error) {
			return Bytes{Pix: rgbaBytes(2, 2)}, nil
		}},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	var fn func()
	select {
	case fn = <-queued:
	case <-time.After(2 * time.Second):
		t.Fatal("deferred upload never reached Run")
	}
	// No transfer call may happen before the host executes the queued
	// callback on the context-owning goroutine.
	if got := atomic.LoadInt32(&ctx.texImage2D); got != 0 {
		t.Fatalf("TexImage2D calls = %d before Run callback executed, want 0", got)
	}
	if tex.Ready() {
		t.Fatal("Ready() = true before Run callback executed, want false")
	}
	fn()
	if got := atomic.LoadInt32(&ctx.texImage2D); got != 1 {
		t.Errorf("TexImage2D calls = %d after Run callback, want 1", got)
	}
	if !tex.Ready() {
		t.Error("Ready() = false after Run callback, want true")
	}
}

func TestTexture_DestroyDuringDeferred(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	release := make(chan struct{})
	done := make(chan struct{})
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 2, Height: 2},
		Data: Deferred{Fetch: func() (Source, error) {
			defer close(done)
			<-release
			return Bytes{Pix: rgbaBytes(2, 2)}, nil
		}},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	tex.Destroy()
	close(release)
	<-done
	// Give the landing goroutine time to observe the destroyed state.
	time.Sleep(10 * time.Millisecond)
	if tex.Ready() {
		t.Error("Ready() = true after Destroy raced the deferred upload, want false")
	}
	if got := ctx.deleted.Load(); got != 1 {
		t.Errorf("textures deleted = %d, want 1", got)
	}
}

// =============================================================================
// Buffer sources
// =============================================================================

func TestTexture_BufferRegionUnbinds(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	buf := &fakeBuffer{handle: gl.Buffer{V: 7}, size: 4 * 4 * 4}
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 4, Height: 4},
		Data:   BufferRegion{Buffer: buf},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !tex.Ready() {
		t.Error("Ready() = false, want true")
	}
	if got := atomic.LoadInt32(&ctx.offset2D); got != 1 {
		t.Errorf("TexImage2DOffset calls = %d, want 1", got)
	}
	last, ok := ctx.lastBoundBuffer()
	if !ok {
		t.Fatal("no BindBuffer calls recorded")
	}
	if last.Valid() {
		t.Errorf("last bound buffer = %v, want zero handle (unbind)", last)
	}
}

func TestTexture_BufferRegionRequiresWebGL2(t *testing.T) {
	ctx := newFakeContext(gl.WebGL1)
	buf := &fakeBuffer{handle: gl.Buffer{V: 7}, size: 64}
	_, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 4, Height: 4},
		Data:   BufferRegion{Buffer: buf},
	})
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("New error = %v, want ErrUnsupportedOperation", err)
	}
}

func TestTexture_BufferRegionOutOfRange(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	buf := &fakeBuffer{handle: gl.Buffer{V: 7}, size: 8}
	_, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 4, Height: 4},
		Data:   BufferRegion{Buffer: buf},
	})
	if !errors.Is(err, ErrInvalidImageData) {
		t.Errorf("New error = %v, want ErrInvalidImageData", err)
	}
}

// =============================================================================
// 3D and array textures
// =============================================================================

func TestTexture_3DUpload(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Kind:   Kind3D,
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 4, Height: 4, DepthOrArrayLayers: 4},
		Data:   Bytes{Pix: make([]byte, 4*4*4*4)},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !tex.Ready() {
		t.Error("Ready() = false, want true")
	}
	if got := atomic.LoadInt32(&ctx.texImage3D); got != 1 {
		t.Errorf("TexImage3D calls = %d, want 1", got)
	}
}

func TestTexture_ArrayEmptyAllocation(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Kind:   Kind2DArray,
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 8, Height: 8, DepthOrArrayLayers: 3},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.texStorage3D); got != 1 {
		t.Errorf("TexStorage3D calls = %d, want 1", got)
	}
	if tex.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", tex.Depth())
	}
}

// =============================================================================
// Compressed formats
// =============================================================================

func TestTexture_CompressedUpload(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	// 8x8 BC1: 2x2 blocks of 8 bytes.
	_, err := New(ctx, &Descriptor{
		Format: format.BC1RGBAUnorm,
		Size:   gputypes.Extent3D{Width: 8, Height: 8},
		Data:   Bytes{Pix: make([]byte, 4*8)},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.compressed2D); got != 1 {
		t.Errorf("CompressedTexImage2D calls = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&ctx.texImage2D); got != 0 {
		t.Errorf("TexImage2D calls = %d, want 0 for compressed format", got)
	}
}

func TestTexture_CompressedWrongBlockBytes(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	_, err := New(ctx, &Descriptor{
		Format: format.BC1RGBAUnorm,
		Size:   gputypes.Extent3D{Width: 8, Height: 8},
		Data:   Bytes{Pix: make([]byte, 10)},
	})
	if !errors.Is(err, ErrInvalidImageData) {
		t.Errorf("New error = %v, want ErrInvalidImageData", err)
	}
}

// =============================================================================
// Immutable storage and partial writes
// =============================================================================

func TestTexture_WriteAfterEmptyAllocationUsesSubImage(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 4, Height: 4},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.texStorage2D); got != 1 {
		t.Fatalf("TexStorage2D calls = %d, want 1", got)
	}
	// Storage allocated with TexStorage is immutable: a later write must
	// not attempt to respecify the level.
	if err := tex.Upload(Bytes{Pix: rgbaBytes(4, 4)}); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.texSubImage2D); got != 1 {
		t.Errorf("TexSubImage2D calls = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&ctx.texImage2D); got != 0 {
		t.Errorf("TexImage2D calls = %d, want 0 into immutable storage", got)
	}
	if got := atomic.LoadInt32(&ctx.texStorage2D); got != 1 {
		t.Errorf("TexStorage2D calls = %d after upload, want still 1", got)
	}
}

func TestTexture_RegionWrite(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 8, Height: 8},
		Data:   Bytes{Pix: rgbaBytes(8, 8)},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := tex.Upload(Bytes{Pix: rgbaBytes(2, 2), Width: 2, Height: 2, X: 4, Y: 4}); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.texSubImage2D); got != 1 {
		t.Errorf("TexSubImage2D calls = %d, want 1 for region write", got)
	}
	if got := atomic.LoadInt32(&ctx.texImage2D); got != 1 {
		t.Errorf("TexImage2D calls = %d, want 1 (only the full initial upload)", got)
	}
}

func TestTexture_RegionWriteOutOfBounds(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 8, Height: 8},
		Data:   Bytes{Pix: rgbaBytes(8, 8)},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	err = tex.Upload(Bytes{Pix: rgbaBytes(2, 2), Width: 2, Height: 2, X: 7, Y: 7})
	if !errors.Is(err, ErrInvalidImageData) {
		t.Errorf("Upload error = %v, want ErrInvalidImageData for region outside level", err)
	}
}

func TestTexture_WriteAfterEmptyAllocation3D(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Kind:   Kind2DArray,
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 4, Height: 4, DepthOrArrayLayers: 2},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.texStorage3D); got != 1 {
		t.Fatalf("TexStorage3D calls = %d, want 1", got)
	}
	if err := tex.Upload(Bytes{Pix: make([]byte, 4*4*2*4)}); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.texSubImage3D); got != 1 {
		t.Errorf("TexSubImage3D calls = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&ctx.texImage3D); got != 0 {
		t.Errorf("TexImage3D calls = %d, want 0 into immutable storage", got)
	}
}

func TestTexture_CompressedWriteAfterEmptyAllocation(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Format: format.BC1RGBAUnorm,
		Size:   gputypes.Extent3D{Width: 8, Height: 8},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// 8x8 BC1: 2x2 blocks of 8 bytes.
	if err := tex.Upload(Bytes{Pix: make([]byte, 4*8)}); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.compressedSub2D); got != 1 {
		t.Errorf("CompressedTexSubImage2D calls = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&ctx.compressed2D); got != 0 {
		t.Errorf("CompressedTexImage2D calls = %d, want 0 into immutable storage", got)
	}
}

func TestTexture_CompressedArrayWriteAfterEmptyAllocation(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Kind:   Kind2DArray,
		Format: format.BC1RGBAUnorm,
		Size:   gputypes.Extent3D{Width: 8, Height: 8, DepthOrArrayLayers: 2},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := tex.Upload(Bytes{Pix: make([]byte, 2*4*8)}); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.compressedSub3D); got != 1 {
		t.Errorf("CompressedTexSubImage3D calls = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&ctx.compressed3D); got != 0 {
		t.Errorf("CompressedTexImage3D calls = %d, want 0 into immutable storage", got)
	}
}

func TestTexture_BufferRegionIntoImmutableStorage(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 4, Height: 4},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	buf := &fakeBuffer{handle: gl.Buffer{V: 7}, size: 4 * 4 * 4}
	if err := tex.Upload(BufferRegion{Buffer: buf}); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.offsetSub2D); got != 1 {
		t.Errorf("TexSubImage2DOffset calls = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&ctx.offset2D); got != 0 {
		t.Errorf("TexImage2DOffset calls = %d, want 0 into immutable storage", got)
	}
	last, ok := ctx.lastBoundBuffer()
	if !ok {
		t.Fatal("no BindBuffer calls recorded")
	}
	if last.Valid() {
		t.Errorf("last bound buffer = %v, want zero handle (unbind)", last)
	}
}

func TestTexture_BufferRegionIntoImmutable3D(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Kind:   Kind3D,
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 2, Height: 2, DepthOrArrayLayers: 2},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	buf := &fakeBuffer{handle: gl.Buffer{V: 9}, size: 2 * 2 * 2 * 4}
	if err := tex.Upload(BufferRegion{Buffer: buf}); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.offsetSub3D); got != 1 {
		t.Errorf("TexSubImage3DOffset calls = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&ctx.offset3D); got != 0 {
		t.Errorf("TexImage3DOffset calls = %d, want 0 into immutable storage", got)
	}
}

func TestTexture_ImageIntoImmutableStorage(t *testing.T) {
	ctx := newFakeContext(gl.WebGL2)
	tex, err := New(ctx, &Descriptor{
		Format: format.RGBA8Unorm,
		Size:   gputypes.Extent3D{Width: 4, Height: 4},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Same-size image writes through the sub-image call.
	if err := tex.Upload(ImageData{Image: image.NewNRGBA(image.Rect(0, 0, 4, 4))}); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if got := atomic.LoadInt32(&ctx.texSubImage2D); got != 1 {
		t.Errorf("TexSubImage2D calls = %d, want 1", got)
	}
	// A different-size image cannot fit the immutable allocation: the
	// handle is replaced and storage respecified at the new size.
	if err := tex.Upload(ImageData{Image: image.NewNRGBA(image.Rect(0, 0, 8, 8))}); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if created, deleted := ctx.created.Load(), ctx.deleted.Load(); created != 2 || deleted != 1 {
		t.Errorf("created = %d, deleted = %d, want 2 and 1 after size adoption", created, deleted)
	}
	if tex.Width() != 8 || tex.Height() != 8 {
		t.Errorf("size = %dx%d, want 8x8 from image bounds", tex.Width(), tex.Height())
	}
	if got := atomic.LoadInt32(&ctx.texImage2D); got != 1 {
		t.Errorf("TexImage2D calls = %d, want 1 for the respecified level", got)
	}
}

// =============================================================================
// Helpers
// =============================================================================

func TestMipLevelCount(t *testing.T) {
	cases := []struct {
		w, h, want int
	}{
		{1, 1, 1},
		{2, 2, 2},
		{4, 4, 3},
		{256, 256, 9},
		{8, 2, 4},
		{3, 1, 2},
	}
	for _, tc := range cases {
		if got := MipLevelCount(tc.w, tc.h); got != tc.want {
			t.Errorf("MipLevelCount(%d, %d) = %d, want %d", tc.w, tc.h, got, tc.want)
		}
	}
}
