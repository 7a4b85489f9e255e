package texture

import (
	luma "github.com/sakitam-gis/luma.gl"
	"github.com/sakitam-gis/luma.gl/features"
	"github.com/sakitam-gis/luma.gl/gl"
)

// SamplerParams is the settings bag attached to a texture. Zero values
// pick defaults: linear magnification, mip-aware linear minification,
// repeat wrapping (clamp-to-edge when the older generation's
// power-of-two restrictions apply).
type SamplerParams struct {
	MinFilter gl.Enum
	MagFilter gl.Enum
	WrapS     gl.Enum
	WrapT     gl.Enum
	// WrapR applies to 3D textures only.
	WrapR gl.Enum
	// MaxAnisotropy above 1 enables anisotropic filtering when the
	// extension is present; it is ignored otherwise.
	MaxAnisotropy int
}

// mipFilter reports whether e is a minification filter that reads from
// mip levels above zero.
func mipFilter(e gl.Enum) bool {
	switch e {
	case gl.NEAREST_MIPMAP_NEAREST, gl.LINEAR_MIPMAP_NEAREST,
		gl.NEAREST_MIPMAP_LINEAR, gl.LINEAR_MIPMAP_LINEAR:
		return true
	}
	return false
}

// applySamplerLocked forwards the sampler settings to the native
// parameter calls for the currently bound texture. Callers hold t.mu
// and have bound t.target.
//
// Under WebGL1 a non-power-of-two texture only supports clamp-to-edge
// wrapping and non-mipmapped minification. Defaults are computed inside
// that legal subset; explicitly requested values outside it are coerced
// to it, and the coercion is reported once per application, never
// silently.
func (t *Texture) applySamplerLocked() {
	p := t.sampler
	npot := t.npotRestricted()
	mipped := t.levels > 1 || t.genMips
	if npot {
		mipped = false
	}

	coerced := false

	min := p.MinFilter
	if min == gl.None {
		min = gl.LINEAR
		if mipped {
			min = gl.LINEAR_MIPMAP_LINEAR
		}
	} else if npot && mipFilter(min) {
		min = gl.LINEAR
		coerced = true
	}

	mag := p.MagFilter
	if mag == gl.None {
		mag = gl.LINEAR
	}

	wrap := func(e gl.Enum) gl.Enum {
		if e == gl.None {
			if npot {
				return gl.CLAMP_TO_EDGE
			}
			return gl.REPEAT
		}
		if npot && e != gl.CLAMP_TO_EDGE {
			coerced = true
			return gl.CLAMP_TO_EDGE
		}
		return e
	}
	ws, wt := wrap(p.WrapS), wrap(p.WrapT)

	if coerced {
		luma.Logger().Warn("sampler parameters coerced for non-power-of-two texture under WebGL1",
			"id", t.id, "label", t.label, "width", t.width, "height", t.height)
	}

	t.ctx.TexParameteri(t.target, gl.TEXTURE_MIN_FILTER, int(min))
	t.ctx.TexParameteri(t.target, gl.TEXTURE_MAG_FILTER, int(mag))
	t.ctx.TexParameteri(t.target, gl.TEXTURE_WRAP_S, int(ws))
	t.ctx.TexParameteri(t.target, gl.TEXTURE_WRAP_T, int(wt))
	if t.kind == Kind3D || t.kind == Kind2DArray {
		wr := wrap(p.WrapR)
		t.ctx.TexParameteri(t.target, gl.TEXTURE_WRAP_R, int(wr))
	}
	if p.MaxAnisotropy > 1 && features.Has(t.ctx, features.AnisotropicFiltering) {
		t.ctx.TexParameteri(t.target, gl.TEXTURE_MAX_ANISOTROPY_EXT, p.MaxAnisotropy)
	}
}
