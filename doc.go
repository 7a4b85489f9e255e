// Package luma manages hardware texture resources across the two WebGL
// generations behind one portable format model and one upload pipeline.
//
// # Overview
//
// Graphics code that targets both WebGL1 and WebGL2 has to answer the same
// three questions over and over: can this context express the texture format
// I want (and with which native enums), which optional capabilities
// (filtering, rendering, compressed families) does the context actually
// have, and how do I move bytes from a CPU slice, an image, or a staged GPU
// buffer into texture storage without tripping over mip levels, cube faces
// and power-of-two rules. luma answers them once, in one place:
//
//   - format/ holds the portable format table and the resolver that
//     translates portable identifiers to native enums per API generation.
//   - features/ detects optional capabilities, branching on the context
//     generation and falling back to named extensions.
//   - texture/ owns the texture resource lifecycle and the multi-source
//     upload pipeline built on top of the two packages above.
//   - gl/ defines the native enum constants and the Context interface the
//     host windowing/context layer must implement.
//
// The root package carries cross-cutting concerns only: the shared
// [Logger]/[SetLogger] pair used by every sub-package for diagnostics.
//
// # Quick Start
//
//	ctx := ... // host-provided gl.Context
//	tex, err := texture.New(ctx, &texture.Descriptor{
//		Kind:   texture.Kind2D,
//		Format: format.RGBA8Unorm,
//		Size:   gputypes.Extent3D{Width: 256, Height: 256, DepthOrArrayLayers: 1},
//		Data:   texture.ImageData{Image: img},
//	})
//
// Logging is silent by default; call luma.SetLogger(slog.Default()) to see
// degradation diagnostics such as NPOT mipmap disabling.
package luma
