package gl

// Native enum values, named as in the GL specifications.
const (
	// Texture targets.
	TEXTURE_2D                  Enum = 0x0de1
	TEXTURE_2D_ARRAY            Enum = 0x8c1a
	TEXTURE_3D                  Enum = 0x806f
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE_CUBE_MAP_NEGATIVE_X Enum = 0x8516
	TEXTURE_CUBE_MAP_POSITIVE_Y Enum = 0x8517
	TEXTURE_CUBE_MAP_NEGATIVE_Y Enum = 0x8518
	TEXTURE_CUBE_MAP_POSITIVE_Z Enum = 0x8519
	TEXTURE_CUBE_MAP_NEGATIVE_Z Enum = 0x851a

	// Buffer bind points.
	PIXEL_UNPACK_BUFFER Enum = 0x88ec

	// Texture units.
	TEXTURE0 Enum = 0x84c0

	// Texture parameters.
	TEXTURE_MAG_FILTER         Enum = 0x2800
	TEXTURE_MIN_FILTER         Enum = 0x2801
	TEXTURE_WRAP_S             Enum = 0x2802
	TEXTURE_WRAP_T             Enum = 0x2803
	TEXTURE_WRAP_R             Enum = 0x8072
	TEXTURE_BASE_LEVEL         Enum = 0x813c
	TEXTURE_MAX_LEVEL          Enum = 0x813d
	TEXTURE_MAX_ANISOTROPY_EXT Enum = 0x84fe

	// Filter values.
	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_NEAREST  Enum = 0x2701
	NEAREST_MIPMAP_LINEAR  Enum = 0x2702
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703

	// Wrap values.
	REPEAT          Enum = 0x2901
	CLAMP_TO_EDGE   Enum = 0x812f
	MIRRORED_REPEAT Enum = 0x8370

	// Pixel store parameters.
	UNPACK_ALIGNMENT               Enum = 0x0cf5
	UNPACK_FLIP_Y_WEBGL            Enum = 0x9240
	UNPACK_PREMULTIPLY_ALPHA_WEBGL Enum = 0x9241

	// Context queries.
	VERSION                   Enum = 0x1f02
	EXTENSIONS                Enum = 0x1f03
	MAX_TEXTURE_SIZE          Enum = 0x0d33
	MAX_CUBE_MAP_TEXTURE_SIZE Enum = 0x851c

	// Transfer (external) formats.
	ALPHA           Enum = 0x1906
	RED             Enum = 0x1903
	RG              Enum = 0x8227
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	LUMINANCE       Enum = 0x1909
	LUMINANCE_ALPHA Enum = 0x190a
	RED_INTEGER     Enum = 0x8d94
	RG_INTEGER      Enum = 0x8228
	RGB_INTEGER     Enum = 0x8d98
	RGBA_INTEGER    Enum = 0x8d99
	DEPTH_COMPONENT Enum = 0x1902
	DEPTH_STENCIL   Enum = 0x84f9

	// Component types.
	BYTE                           Enum = 0x1400
	UNSIGNED_BYTE                  Enum = 0x1401
	SHORT                          Enum = 0x1402
	UNSIGNED_SHORT                 Enum = 0x1403
	INT                            Enum = 0x1404
	UNSIGNED_INT                   Enum = 0x1405
	FLOAT                          Enum = 0x1406
	HALF_FLOAT                     Enum = 0x140b
	HALF_FLOAT_OES                 Enum = 0x8d61
	UNSIGNED_SHORT_4_4_4_4         Enum = 0x8033
	UNSIGNED_SHORT_5_5_5_1         Enum = 0x8034
	UNSIGNED_SHORT_5_6_5           Enum = 0x8363
	UNSIGNED_INT_2_10_10_10_REV    Enum = 0x8368
	UNSIGNED_INT_10F_11F_11F_REV   Enum = 0x8c3b
	UNSIGNED_INT_5_9_9_9_REV       Enum = 0x8c3e
	UNSIGNED_INT_24_8              Enum = 0x84fa
	FLOAT_32_UNSIGNED_INT_24_8_REV Enum = 0x8dad

	// Sized internal formats, 8-bit channels.
	R8           Enum = 0x8229
	R8_SNORM     Enum = 0x8f94
	R8UI         Enum = 0x8232
	R8I          Enum = 0x8231
	RG8          Enum = 0x822b
	RG8_SNORM    Enum = 0x8f95
	RG8UI        Enum = 0x8238
	RG8I         Enum = 0x8237
	RGB8         Enum = 0x8051
	SRGB8        Enum = 0x8c41
	RGB565       Enum = 0x8d62
	RGBA4        Enum = 0x8056
	RGB5_A1      Enum = 0x8057
	RGBA8        Enum = 0x8058
	SRGB8_ALPHA8 Enum = 0x8c43
	RGBA8_SNORM  Enum = 0x8f97
	RGBA8UI      Enum = 0x8d7c
	RGBA8I       Enum = 0x8d8e

	// Sized internal formats, 16/32-bit channels.
	R16UI    Enum = 0x8234
	R16I     Enum = 0x8233
	R32UI    Enum = 0x8236
	R32I     Enum = 0x8235
	R16F     Enum = 0x822d
	R32F     Enum = 0x822e
	RG16UI   Enum = 0x823a
	RG16I    Enum = 0x8239
	RG32UI   Enum = 0x823c
	RG32I    Enum = 0x823b
	RG16F    Enum = 0x822f
	RG32F    Enum = 0x8230
	RGBA16UI Enum = 0x8d76
	RGBA16I  Enum = 0x8d88
	RGBA32UI Enum = 0x8d70
	RGBA32I  Enum = 0x8d82
	RGBA16F  Enum = 0x881a
	RGBA32F  Enum = 0x8814

	// Packed internal formats.
	RGB10_A2       Enum = 0x8059
	RGB10_A2UI     Enum = 0x906f
	R11F_G11F_B10F Enum = 0x8c3a
	RGB9_E5        Enum = 0x8c3d

	// EXT_sRGB (WebGL1).
	SRGB_ALPHA_EXT Enum = 0x8c42

	// Depth and stencil internal formats.
	DEPTH_COMPONENT16  Enum = 0x81a5
	DEPTH_COMPONENT24  Enum = 0x81a6
	DEPTH_COMPONENT32F Enum = 0x8cac
	DEPTH24_STENCIL8   Enum = 0x88f0
	DEPTH32F_STENCIL8  Enum = 0x8cad
	STENCIL_INDEX8     Enum = 0x8d48

	// WEBGL_compressed_texture_s3tc / _s3tc_srgb.
	COMPRESSED_RGB_S3TC_DXT1_EXT        Enum = 0x83f0
	COMPRESSED_RGBA_S3TC_DXT1_EXT       Enum = 0x83f1
	COMPRESSED_RGBA_S3TC_DXT3_EXT       Enum = 0x83f2
	COMPRESSED_RGBA_S3TC_DXT5_EXT       Enum = 0x83f3
	COMPRESSED_SRGB_S3TC_DXT1_EXT       Enum = 0x8c4c
	COMPRESSED_SRGB_ALPHA_S3TC_DXT1_EXT Enum = 0x8c4d
	COMPRESSED_SRGB_ALPHA_S3TC_DXT3_EXT Enum = 0x8c4e
	COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT Enum = 0x8c4f

	// EXT_texture_compression_rgtc.
	COMPRESSED_RED_RGTC1_EXT              Enum = 0x8dbb
	COMPRESSED_SIGNED_RED_RGTC1_EXT       Enum = 0x8dbc
	COMPRESSED_RED_GREEN_RGTC2_EXT        Enum = 0x8dbd
	COMPRESSED_SIGNED_RED_GREEN_RGTC2_EXT Enum = 0x8dbe

	// EXT_texture_compression_bptc.
	COMPRESSED_RGBA_BPTC_UNORM_EXT         Enum = 0x8e8c
	COMPRESSED_SRGB_ALPHA_BPTC_UNORM_EXT   Enum = 0x8e8d
	COMPRESSED_RGB_BPTC_SIGNED_FLOAT_EXT   Enum = 0x8e8e
	COMPRESSED_RGB_BPTC_UNSIGNED_FLOAT_EXT Enum = 0x8e8f

	// WEBGL_compressed_texture_etc.
	COMPRESSED_R11_EAC                        Enum = 0x9270
	COMPRESSED_SIGNED_R11_EAC                 Enum = 0x9271
	COMPRESSED_RG11_EAC                       Enum = 0x9272
	COMPRESSED_SIGNED_RG11_EAC                Enum = 0x9273
	COMPRESSED_RGB8_ETC2                      Enum = 0x9274
	COMPRESSED_SRGB8_ETC2                     Enum = 0x9275
	COMPRESSED_RGB8_PUNCHTHROUGH_ALPHA1_ETC2  Enum = 0x9276
	COMPRESSED_SRGB8_PUNCHTHROUGH_ALPHA1_ETC2 Enum = 0x9277
	COMPRESSED_RGBA8_ETC2_EAC                 Enum = 0x9278
	COMPRESSED_SRGB8_ALPHA8_ETC2_EAC          Enum = 0x9279

	// WEBGL_compressed_texture_astc.
	COMPRESSED_RGBA_ASTC_4x4_KHR           Enum = 0x93b0
	COMPRESSED_RGBA_ASTC_5x4_KHR           Enum = 0x93b1
	COMPRESSED_RGBA_ASTC_5x5_KHR           Enum = 0x93b2
	COMPRESSED_RGBA_ASTC_6x5_KHR           Enum = 0x93b3
	COMPRESSED_RGBA_ASTC_6x6_KHR           Enum = 0x93b4
	COMPRESSED_RGBA_ASTC_8x5_KHR           Enum = 0x93b5
	COMPRESSED_RGBA_ASTC_8x6_KHR           Enum = 0x93b6
	COMPRESSED_RGBA_ASTC_8x8_KHR           Enum = 0x93b7
	COMPRESSED_RGBA_ASTC_10x5_KHR          Enum = 0x93b8
	COMPRESSED_RGBA_ASTC_10x6_KHR          Enum = 0x93b9
	COMPRESSED_RGBA_ASTC_10x8_KHR          Enum = 0x93ba
	COMPRESSED_RGBA_ASTC_10x10_KHR         Enum = 0x93bb
	COMPRESSED_RGBA_ASTC_12x10_KHR         Enum = 0x93bc
	COMPRESSED_RGBA_ASTC_12x12_KHR         Enum = 0x93bd
	COMPRESSED_SRGB8_ALPHA8_ASTC_4x4_KHR   Enum = 0x93d0
	COMPRESSED_SRGB8_ALPHA8_ASTC_5x4_KHR   Enum = 0x93d1
	COMPRESSED_SRGB8_ALPHA8_ASTC_5x5_KHR   Enum = 0x93d2
	COMPRESSED_SRGB8_ALPHA8_ASTC_6x5_KHR   Enum = 0x93d3
	COMPRESSED_SRGB8_ALPHA8_ASTC_6x6_KHR   Enum = 0x93d4
	COMPRESSED_SRGB8_ALPHA8_ASTC_8x5_KHR   Enum = 0x93d5
	COMPRESSED_SRGB8_ALPHA8_ASTC_8x6_KHR   Enum = 0x93d6
	COMPRESSED_SRGB8_ALPHA8_ASTC_8x8_KHR   Enum = 0x93d7
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x5_KHR  Enum = 0x93d8
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x6_KHR  Enum = 0x93d9
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x8_KHR  Enum = 0x93da
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x10_KHR Enum = 0x93db
	COMPRESSED_SRGB8_ALPHA8_ASTC_12x10_KHR Enum = 0x93dc
	COMPRESSED_SRGB8_ALPHA8_ASTC_12x12_KHR Enum = 0x93dd
)
