// Package features detects optional capabilities of a live GL context.
//
// A Capability names an abstract feature ("can filter float32 textures",
// "supports the BC compressed family") independent of how the context
// provides it. Each capability is backed by a version-branching predicate:
// under WebGL2 it may be baseline (always available) or gated by
// extensions; under WebGL1 it degrades to one or more named extensions,
// all of which must load.
//
// The registry is static, built once and never mutated. Predicates never
// panic and never fail open: an unrecognized capability name is reported
// as unsupported so callers probing a format's optional capabilities
// cannot crash.
package features

import (
	"slices"
	"sync"

	"github.com/sakitam-gis/luma.gl/gl"
)

// Capability is the name of an optional context feature.
type Capability string

// Known capabilities.
const (
	// TextureFloat32 allows creating float32 color textures.
	TextureFloat32 Capability = "texture-float32"
	// TextureFloat16 allows creating float16 color textures.
	TextureFloat16 Capability = "texture-float16"
	// Float32Filterable allows LINEAR filtering of float32 textures.
	Float32Filterable Capability = "float32-filterable-linear"
	// Float16Filterable allows LINEAR filtering of float16 textures.
	Float16Filterable Capability = "float16-filterable-linear"
	// Float32Renderable allows float32 color attachments.
	Float32Renderable Capability = "float32-renderable"
	// Float16Renderable allows float16 color attachments.
	Float16Renderable Capability = "float16-renderable"
	// DepthTexture allows sampling depth and depth/stencil textures.
	DepthTexture Capability = "depth-texture"
	// SRGBTexture allows sRGB-encoded texture formats.
	SRGBTexture Capability = "srgb-texture"
	// TextureNorm16 allows 16-bit normalized texture formats.
	TextureNorm16 Capability = "texture-norm16"
	// TextureCompressionBC covers the whole BC1-BC7 family.
	TextureCompressionBC Capability = "texture-compression-bc"
	// TextureCompressionETC2 covers the ETC2/EAC family.
	TextureCompressionETC2 Capability = "texture-compression-etc2"
	// TextureCompressionASTC covers the ASTC LDR family.
	TextureCompressionASTC Capability = "texture-compression-astc"
	// AnisotropicFiltering allows TEXTURE_MAX_ANISOTROPY_EXT.
	AnisotropicFiltering Capability = "texture-filter-anisotropic"
)

// requirement describes how one capability is satisfied per generation.
// An empty extension list means the capability cannot be satisfied on
// that generation at all (short of v2Baseline).
type requirement struct {
	// v2Baseline marks the capability as unconditionally available
	// under WebGL2.
	v2Baseline bool
	// v1Exts are the extensions that must ALL load under WebGL1.
	v1Exts []string
	// v2Exts are the extensions that must ALL load under WebGL2 when
	// the capability is not baseline there.
	v2Exts []string
}

// registry is built once at process start and immutable thereafter.
var registry = map[Capability]requirement{
	TextureFloat32: {
		v2Baseline: true,
		v1Exts:     []string{"OES_texture_float"},
	},
	TextureFloat16: {
		v2Baseline: true,
		v1Exts:     []string{"OES_texture_half_float"},
	},
	Float32Filterable: {
		v1Exts: []string{"OES_texture_float", "OES_texture_float_linear"},
		v2Exts: []string{"OES_texture_float_linear"},
	},
	Float16Filterable: {
		v2Baseline: true,
		v1Exts:     []string{"OES_texture_half_float", "OES_texture_half_float_linear"},
	},
	Float32Renderable: {
		v1Exts: []string{"OES_texture_float", "WEBGL_color_buffer_float"},
		v2Exts: []string{"EXT_color_buffer_float"},
	},
	Float16Renderable: {
		v1Exts: []string{"OES_texture_half_float", "EXT_color_buffer_half_float"},
		v2Exts: []string{"EXT_color_buffer_half_float"},
	},
	DepthTexture: {
		v2Baseline: true,
		v1Exts:     []string{"WEBGL_depth_texture"},
	},
	SRGBTexture: {
		v2Baseline: true,
		v1Exts:     []string{"EXT_sRGB"},
	},
	TextureNorm16: {
		v2Exts: []string{"EXT_texture_norm16"},
	},
	TextureCompressionBC: {
		v1Exts: []string{
			"WEBGL_compressed_texture_s3tc",
			"WEBGL_compressed_texture_s3tc_srgb",
			"EXT_texture_compression_rgtc",
			"EXT_texture_compression_bptc",
		},
		v2Exts: []string{
			"WEBGL_compressed_texture_s3tc",
			"WEBGL_compressed_texture_s3tc_srgb",
			"EXT_texture_compression_rgtc",
			"EXT_texture_compression_bptc",
		},
	},
	TextureCompressionETC2: {
		v1Exts: []string{"WEBGL_compressed_texture_etc"},
		v2Exts: []string{"WEBGL_compressed_texture_etc"},
	},
	TextureCompressionASTC: {
		v1Exts: []string{"WEBGL_compressed_texture_astc"},
		v2Exts: []string{"WEBGL_compressed_texture_astc"},
	},
	AnisotropicFiltering: {
		v1Exts: []string{"EXT_texture_filter_anisotropic"},
		v2Exts: []string{"EXT_texture_filter_anisotropic"},
	},
}

// Has reports whether the live context satisfies the capability.
//
// Unknown capability names report false rather than failing, so a format
// descriptor may reference an optional capability without every caller
// guarding the lookup. Extension acquisition through ctx.GetExtension is
// idempotent, so Has may be called repeatedly at no extra cost beyond
// the lookup itself.
func Has(ctx gl.Context, c Capability) bool {
	req, ok := registry[c]
	if !ok {
		return false
	}
	exts := req.v1Exts
	if ctx.API() == gl.WebGL2 {
		if req.v2Baseline {
			return true
		}
		exts = req.v2Exts
	}
	if len(exts) == 0 {
		return false
	}
	for _, e := range exts {
		if !ctx.GetExtension(e) {
			return false
		}
	}
	return true
}

// All returns every capability the registry knows about, sorted by name.
func All() []Capability {
	caps := make([]Capability, 0, len(registry))
	for c := range registry {
		caps = append(caps, c)
	}
	slices.Sort(caps)
	return caps
}

// Supported filters the registry against the live context and returns the
// capability set it satisfies, sorted by name. This is a full pass over
// the registry; use a Detector to memoize the answer per context.
func Supported(ctx gl.Context) []Capability {
	var caps []Capability
	for _, c := range All() {
		if Has(ctx, c) {
			caps = append(caps, c)
		}
	}
	return caps
}

// Detector memoizes capability detection for one context.
//
// Extension objects, once acquired, are stable for the lifetime of their
// context, so the supported set is computed exactly once and shared
// read-only afterwards. Detector is safe for concurrent use.
type Detector struct {
	ctx  gl.Context
	once sync.Once
	caps []Capability
	set  map[Capability]bool
}

// NewDetector creates a Detector bound to ctx.
func NewDetector(ctx gl.Context) *Detector {
	return &Detector{ctx: ctx}
}

func (d *Detector) detect() {
	d.once.Do(func() {
		d.caps = Supported(d.ctx)
		d.set = make(map[Capability]bool, len(d.caps))
		for _, c := range d.caps {
			d.set[c] = true
		}
	})
}

// Supported returns the memoized capability set. The returned slice is
// shared; callers must not mutate it.
func (d *Detector) Supported() []Capability {
	d.detect()
	return d.caps
}

// Has reports whether the context satisfies the capability, answering
// from the memoized set.
func (d *Detector) Has(c Capability) bool {
	d.detect()
	return d.set[c]
}
