package texture

import (
	"fmt"

	luma "github.com/sakitam-gis/luma.gl"
	"github.com/sakitam-gis/luma.gl/format"
	"github.com/sakitam-gis/luma.gl/gl"
)

// uploadLocked drives one full upload of src into the texture. The
// source must already be resolved (no Deferred wrappers). Callers hold
// t.mu and have validated that the texture is not destroyed.
//
// On success the texture transitions to ready; a failed upload leaves
// the resource alive in its previous phase.
func (t *Texture) uploadLocked(src Source) error {
	if t.state == stateDestroyed {
		return ErrTextureDestroyed
	}
	wasReady := t.ready.Load()
	t.state = stateUploading

	t.ctx.ActiveTexture(gl.TEXTURE0)
	t.ctx.BindTexture(t.target, t.handle)

	var err error
	switch t.kind {
	case KindCube:
		err = t.uploadCube(src)
	case Kind3D, Kind2DArray:
		err = t.upload3D(src)
	default:
		err = t.upload2D(src)
	}
	if err != nil {
		if wasReady {
			t.state = stateReady
		} else {
			t.state = stateAllocating
		}
		return err
	}

	t.generateMipmapsLocked()
	t.state = stateReady
	t.ready.Store(true)
	return nil
}

// transferParams returns the native parameters for this texture's
// format under the live generation. Unlike format.Transfer, the
// component type of depth/stencil formats is kept: the transfer call
// itself needs it even though callers of the public resolver do not.
func (t *Texture) transferParams() (internal, dataFormat, dataType gl.Enum, err error) {
	internal, err = format.ToGLFormat(t.fmt, t.ctx.API())
	if err != nil {
		return 0, 0, 0, err
	}
	dataFormat, dataType = t.desc.DataFormat, t.desc.DataType
	if t.ctx.API() == gl.WebGL1 && dataType == gl.HALF_FLOAT {
		dataType = gl.HALF_FLOAT_OES
	}
	return internal, dataFormat, dataType, nil
}

// levelSize returns the texel dimensions of one mip level.
func (t *Texture) levelSize(level int) (w, h int) {
	w, h = t.width>>level, t.height>>level
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// levelDepth returns the depth extent of one mip level: shrinking for
// volumes, constant for array layers.
func (t *Texture) levelDepth(level int) int {
	if t.kind != Kind3D {
		return t.depth
	}
	d := t.depth >> level
	if d < 1 {
		d = 1
	}
	return d
}

// upload2D handles the plain 2D dimension kind.
func (t *Texture) upload2D(src Source) error {
	switch s := src.(type) {
	case nil:
		return t.allocEmpty2D(t.target)
	case Bytes:
		return t.writeLevel2D(t.target, 0, s)
	case ImageData:
		return t.writeImage2D(t.target, s, true)
	case Levels:
		return t.writeLevels2D(t.target, s)
	case BufferRegion:
		return t.writeBuffer2D(t.target, s)
	default:
		return fmt.Errorf("%w: %T for %s texture", ErrInvalidImageData, src, t.kind)
	}
}

// allocEmpty2D allocates storage with undefined contents. The newer
// generation gets immutable storage in one call; the older one sizes
// each level explicitly.
func (t *Texture) allocEmpty2D(target gl.Enum) error {
	internal, df, dt, err := t.transferParams()
	if err != nil {
		return err
	}
	if t.ctx.API() == gl.WebGL2 && target == gl.TEXTURE_2D {
		if !t.immutable {
			// Immutable storage cannot be respecified; a repeated empty
			// allocation keeps the existing storage.
			t.ctx.TexStorage2D(target, t.levels, internal, t.width, t.height)
			t.immutable = true
		}
		return nil
	}
	for level := 0; level < t.levels; level++ {
		w, h := t.levelSize(level)
		t.ctx.TexImage2D(target, level, internal, w, h, df, dt, nil)
	}
	return nil
}

// writeLevels2D iterates manual mip levels in order. Combining manual
// levels with automatic mip generation is contradictory (the generated
// chain overwrites the supplied levels); it draws a diagnostic but the
// request still proceeds.
func (t *Texture) writeLevels2D(target gl.Enum, levels Levels) error {
	if len(levels) > 1 && t.genMips {
		luma.Logger().Warn("manual mip levels combined with automatic mipmap generation; generated mips will overwrite supplied levels",
			"id", t.id, "label", t.label, "levels", len(levels))
	}
	for i, lv := range levels {
		switch s := lv.(type) {
		case Bytes:
			if err := t.writeLevel2D(target, i, s); err != nil {
				return err
			}
		case ImageData:
			if err := t.writeImage2D(target, s, i == 0); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %T as mip level %d", ErrInvalidImageData, lv, i)
		}
	}
	return nil
}

// writeLevel2D transfers CPU bytes into one level. The declared region
// is checked against the destination level, and the byte length against
// the format's texel or block arithmetic.
//
// Writes into immutable (TexStorage) allocations and writes covering
// less than the full level go through the sub-image calls; only a
// full-level write into mutable storage may respecify the level.
func (t *Texture) writeLevel2D(target gl.Enum, level int, s Bytes) error {
	internal, df, dt, err := t.transferParams()
	if err != nil {
		return err
	}
	lw, lh := t.levelSize(level)
	w, h := s.Width, s.Height
	if w == 0 && h == 0 {
		w, h = lw, lh
	}
	if s.X < 0 || s.Y < 0 || w < 1 || h < 1 || s.X+w > lw || s.Y+h > lh {
		return fmt.Errorf("%w: level %d region %dx%d at (%d,%d) outside %dx%d",
			ErrInvalidImageData, level, w, h, s.X, s.Y, lw, lh)
	}
	if want := t.desc.LevelByteLength(w, h, 1); len(s.Pix) != want {
		return fmt.Errorf("%w: level %d expects %d bytes, got %d",
			ErrInvalidImageData, level, want, len(s.Pix))
	}
	sub := t.immutable || s.X != 0 || s.Y != 0 || w != lw || h != lh
	if t.desc.Compressed {
		if sub {
			t.ctx.CompressedTexSubImage2D(target, level, s.X, s.Y, w, h, internal, s.Pix)
		} else {
			t.ctx.CompressedTexImage2D(target, level, internal, w, h, s.Pix)
		}
		return nil
	}
	t.ctx.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if sub {
		t.ctx.TexSubImage2D(target, level, s.X, s.Y, w, h, df, dt, s.Pix)
		return nil
	}
	t.ctx.TexImage2D(target, level, internal, w, h, df, dt, s.Pix)
	return nil
}

// writeImage2D transfers a decoded image. The image's intrinsic size is
// authoritative; for the main 2D target it resizes the texture to
// match before writing.
func (t *Texture) writeImage2D(target gl.Enum, s ImageData, level0 bool) error {
	if s.Image == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImageData)
	}
	if t.desc.Compressed || t.desc.DataFormat != gl.RGBA || t.desc.DataType != gl.UNSIGNED_BYTE {
		return fmt.Errorf("%w: image sources require an 8-bit RGBA format, have %q",
			ErrInvalidImageData, t.fmt)
	}
	internal, df, dt, err := t.transferParams()
	if err != nil {
		return err
	}
	pix, w, h := imageBytes(s.Image)
	if level0 && target == gl.TEXTURE_2D && (w != t.width || h != t.height) {
		t.adoptSizeLocked(w, h)
	}
	t.ctx.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	level := 0
	if !level0 {
		// Non-zero levels keep the caller-declared pyramid; the image
		// size still wins for its own level.
		level = levelForSize(t.width, t.height, w, h)
	}
	if t.immutable {
		lw, lh := t.levelSize(level)
		if w != lw || h != lh {
			return fmt.Errorf("%w: level %d expects %dx%d, got %dx%d image",
				ErrInvalidImageData, level, lw, lh, w, h)
		}
		t.ctx.TexSubImage2D(target, level, 0, 0, w, h, df, dt, pix)
		return nil
	}
	t.ctx.TexImage2D(target, level, internal, w, h, df, dt, pix)
	return nil
}

// adoptSizeLocked resizes the texture to an image's intrinsic size and
// brings dependent state back in line: the mip pyramid is recomputed
// for automatic generation, sampler defaults are re-derived for the new
// extent, and immutable storage (fixed at its old size) is replaced
// with a fresh handle. Callers hold t.mu and have bound t.target.
func (t *Texture) adoptSizeLocked(w, h int) {
	t.width, t.height = w, h
	if t.genMips {
		t.levels = MipLevelCount(w, h)
	}
	if t.immutable {
		t.ctx.DeleteTexture(t.handle)
		t.allocateLocked()
		return
	}
	t.applySamplerLocked()
}

// writeBuffer2D sources level 0 from a staged GPU buffer. The buffer is
// bound to the pixel-transfer bind point only for the duration of the
// call; the unbind runs on every exit path so no transfer-bind-point
// state leaks into unrelated calls.
func (t *Texture) writeBuffer2D(target gl.Enum, s BufferRegion) error {
	if t.ctx.API() != gl.WebGL2 {
		return fmt.Errorf("%w: GPU buffer sources", ErrUnsupportedOperation)
	}
	if s.Buffer == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidImageData)
	}
	internal, df, dt, err := t.transferParams()
	if err != nil {
		return err
	}
	want := t.desc.LevelByteLength(t.width, t.height, 1)
	if s.Offset < 0 || s.Offset+want > s.Buffer.Len() {
		return fmt.Errorf("%w: buffer region [%d,%d) outside buffer of %d bytes",
			ErrInvalidImageData, s.Offset, s.Offset+want, s.Buffer.Len())
	}
	t.ctx.BindBuffer(gl.PIXEL_UNPACK_BUFFER, s.Buffer.GLBuffer())
	defer t.ctx.BindBuffer(gl.PIXEL_UNPACK_BUFFER, gl.Buffer{})
	if t.immutable {
		t.ctx.TexSubImage2DOffset(target, 0, 0, 0, t.width, t.height, df, dt, s.Offset)
		return nil
	}
	t.ctx.TexImage2DOffset(target, 0, internal, t.width, t.height, df, dt, s.Offset)
	return nil
}

// uploadCube handles the cube dimension kind. Face sources were already
// resolved in full before this point, so faces bind all-or-nothing.
func (t *Texture) uploadCube(src Source) error {
	switch s := src.(type) {
	case nil:
		for face := FacePosX; face <= FaceNegZ; face++ {
			if err := t.allocEmpty2D(face.target()); err != nil {
				return err
			}
		}
		return nil
	case CubeFaces:
		for face := FacePosX; face <= FaceNegZ; face++ {
			if _, ok := s[face]; !ok {
				return fmt.Errorf("%w: cube upload missing face %s", ErrInvalidImageData, face)
			}
		}
		for face := FacePosX; face <= FaceNegZ; face++ {
			if err := t.uploadFace(face, s[face]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %T for cube texture", ErrInvalidImageData, src)
	}
}

// uploadFace writes one cube face, which may itself carry one or many
// levels.
func (t *Texture) uploadFace(face Face, src Source) error {
	target := face.target()
	switch s := src.(type) {
	case nil:
		return t.allocEmpty2D(target)
	case Bytes:
		return t.writeLevel2D(target, 0, s)
	case ImageData:
		return t.writeImage2D(target, s, true)
	case Levels:
		return t.writeLevels2D(target, s)
	default:
		return fmt.Errorf("%w: %T for cube face %s", ErrInvalidImageData, src, face)
	}
}

// upload3D handles volumes and 2D arrays (newer generation only).
func (t *Texture) upload3D(src Source) error {
	if t.ctx.API() != gl.WebGL2 {
		return fmt.Errorf("%w: %s textures", ErrUnsupportedOperation, t.kind)
	}
	internal, df, dt, err := t.transferParams()
	if err != nil {
		return err
	}
	switch s := src.(type) {
	case nil:
		if !t.immutable {
			t.ctx.TexStorage3D(t.target, t.levels, internal, t.width, t.height, t.depth)
			t.immutable = true
		}
		return nil
	case Bytes:
		return t.writeLevel3D(0, s, internal, df, dt)
	case Levels:
		if len(s) > 1 && t.genMips {
			luma.Logger().Warn("manual mip levels combined with automatic mipmap generation; generated mips will overwrite supplied levels",
				"id", t.id, "label", t.label, "levels", len(s))
		}
		for i, lv := range s {
			b, ok := lv.(Bytes)
			if !ok {
				return fmt.Errorf("%w: %T as mip level %d", ErrInvalidImageData, lv, i)
			}
			if err := t.writeLevel3D(i, b, internal, df, dt); err != nil {
				return err
			}
		}
		return nil
	case BufferRegion:
		if s.Buffer == nil {
			return fmt.Errorf("%w: nil buffer", ErrInvalidImageData)
		}
		want := t.desc.LevelByteLength(t.width, t.height, t.depth)
		if s.Offset < 0 || s.Offset+want > s.Buffer.Len() {
			return fmt.Errorf("%w: buffer region [%d,%d) outside buffer of %d bytes",
				ErrInvalidImageData, s.Offset, s.Offset+want, s.Buffer.Len())
		}
		t.ctx.BindBuffer(gl.PIXEL_UNPACK_BUFFER, s.Buffer.GLBuffer())
		defer t.ctx.BindBuffer(gl.PIXEL_UNPACK_BUFFER, gl.Buffer{})
		if t.immutable {
			t.ctx.TexSubImage3DOffset(t.target, 0, 0, 0, 0, t.width, t.height, t.depth, df, dt, s.Offset)
			return nil
		}
		t.ctx.TexImage3DOffset(t.target, 0, internal, t.width, t.height, t.depth, df, dt, s.Offset)
		return nil
	default:
		return fmt.Errorf("%w: %T for %s texture", ErrInvalidImageData, src, t.kind)
	}
}

// writeLevel3D transfers CPU bytes into one level of a volume or array.
// The same routing as writeLevel2D applies: immutable storage and
// sub-region writes go through the sub-image calls.
func (t *Texture) writeLevel3D(level int, s Bytes, internal, df, dt gl.Enum) error {
	lw, lh := t.levelSize(level)
	ld := t.levelDepth(level)
	w, h, d := s.Width, s.Height, s.Depth
	if w == 0 && h == 0 {
		w, h = lw, lh
	}
	if d == 0 {
		d = ld
	}
	if s.X < 0 || s.Y < 0 || s.Z < 0 || w < 1 || h < 1 || d < 1 ||
		s.X+w > lw || s.Y+h > lh || s.Z+d > ld {
		return fmt.Errorf("%w: level %d region %dx%dx%d at (%d,%d,%d) outside %dx%dx%d",
			ErrInvalidImageData, level, w, h, d, s.X, s.Y, s.Z, lw, lh, ld)
	}
	if want := t.desc.LevelByteLength(w, h, d); len(s.Pix) != want {
		return fmt.Errorf("%w: level %d expects %d bytes, got %d",
			ErrInvalidImageData, level, want, len(s.Pix))
	}
	sub := t.immutable || s.X != 0 || s.Y != 0 || s.Z != 0 || w != lw || h != lh || d != ld
	if t.desc.Compressed {
		if sub {
			t.ctx.CompressedTexSubImage3D(t.target, level, s.X, s.Y, s.Z, w, h, d, internal, s.Pix)
		} else {
			t.ctx.CompressedTexImage3D(t.target, level, internal, w, h, d, s.Pix)
		}
		return nil
	}
	t.ctx.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if sub {
		t.ctx.TexSubImage3D(t.target, level, s.X, s.Y, s.Z, w, h, d, df, dt, s.Pix)
		return nil
	}
	t.ctx.TexImage3D(t.target, level, internal, w, h, d, df, dt, s.Pix)
	return nil
}

// generateMipmapsLocked runs automatic mip generation when requested
// and legal. Under the older generation non-power-of-two textures
// cannot have mipmaps; the degradation is never silent at this level.
func (t *Texture) generateMipmapsLocked() {
	if !t.genMips {
		return
	}
	if t.npotRestricted() {
		luma.Logger().Warn("mipmap generation disabled for non-power-of-two texture under WebGL1",
			"id", t.id, "label", t.label, "width", t.width, "height", t.height)
		return
	}
	t.ctx.GenerateMipmap(t.target)
}

// levelForSize returns the mip level whose extent matches w×h in a
// pyramid with the given level-0 size, or 0 if none does.
func levelForSize(w0, h0, w, h int) int {
	for level := 0; ; level++ {
		lw, lh := w0>>level, h0>>level
		if lw < 1 {
			lw = 1
		}
		if lh < 1 {
			lh = 1
		}
		if lw == w && lh == h {
			return level
		}
		if lw == 1 && lh == 1 {
			return 0
		}
	}
}
