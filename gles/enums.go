package gles

// Enum values of the OpenGL ES 3.0 headers.
const (
	// Buffers
	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000
	FALSE              = 0
	TRUE               = 1

	// Primitives
	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_LOOP      = 0x0002
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006

	// Blending
	ZERO                     = 0
	ONE                      = 1
	SRC_COLOR                = 0x0300
	ONE_MINUS_SRC_COLOR      = 0x0301
	SRC_ALPHA                = 0x0302
	ONE_MINUS_SRC_ALPHA      = 0x0303
	DST_ALPHA                = 0x0304
	ONE_MINUS_DST_ALPHA      = 0x0305
	DST_COLOR                = 0x0306
	ONE_MINUS_DST_COLOR      = 0x0307
	SRC_ALPHA_SATURATE       = 0x0308
	FUNC_ADD                 = 0x8006
	BLEND_EQUATION           = 0x8009
	BLEND_EQUATION_RGB       = 0x8009
	BLEND_EQUATION_ALPHA     = 0x883D
	FUNC_SUBTRACT            = 0x800A
	FUNC_REVERSE_SUBTRACT    = 0x800B
	MIN                      = 0x8007
	MAX                      = 0x8008
	BLEND_DST_RGB            = 0x80C8
	BLEND_SRC_RGB            = 0x80C9
	BLEND_DST_ALPHA          = 0x80CA
	BLEND_SRC_ALPHA          = 0x80CB
	CONSTANT_COLOR           = 0x8001
	ONE_MINUS_CONSTANT_COLOR = 0x8002
	CONSTANT_ALPHA           = 0x8003
	ONE_MINUS_CONSTANT_ALPHA = 0x8004
	BLEND_COLOR              = 0x8005

	// Buffer objects
	ARRAY_BUFFER                 = 0x8892
	ELEMENT_ARRAY_BUFFER         = 0x8893
	ARRAY_BUFFER_BINDING         = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING = 0x8895
	STREAM_DRAW                  = 0x88E0
	STREAM_READ                  = 0x88E1
	STREAM_COPY                  = 0x88E2
	STATIC_DRAW                  = 0x88E4
	STATIC_READ                  = 0x88E5
	STATIC_COPY                  = 0x88E6
	DYNAMIC_DRAW                 = 0x88E8
	DYNAMIC_READ                 = 0x88E9
	DYNAMIC_COPY                 = 0x88EA
	BUFFER_SIZE                  = 0x8764
	BUFFER_USAGE                 = 0x8765
	PIXEL_PACK_BUFFER            = 0x88EB
	PIXEL_UNPACK_BUFFER          = 0x88EC
	COPY_READ_BUFFER             = 0x8F36
	COPY_WRITE_BUFFER            = 0x8F37
	UNIFORM_BUFFER               = 0x8A11
	TRANSFORM_FEEDBACK_BUFFER    = 0x8C8E
	BUFFER_MAPPED                = 0x88BC
	BUFFER_MAP_POINTER           = 0x88BD
	BUFFER_ACCESS_FLAGS          = 0x911F
	BUFFER_MAP_LENGTH            = 0x9120
	BUFFER_MAP_OFFSET            = 0x9121
	MAP_READ_BIT                 = 0x0001
	MAP_WRITE_BIT                = 0x0002
	MAP_INVALIDATE_RANGE_BIT     = 0x0004
	MAP_INVALIDATE_BUFFER_BIT    = 0x0008
	MAP_FLUSH_EXPLICIT_BIT       = 0x0010
	MAP_UNSYNCHRONIZED_BIT       = 0x0020

	// Faces and capabilities
	FRONT                         = 0x0404
	BACK                          = 0x0405
	FRONT_AND_BACK                = 0x0408
	CW                            = 0x0900
	CCW                           = 0x0901
	CULL_FACE                     = 0x0B44
	DEPTH_TEST                    = 0x0B71
	STENCIL_TEST                  = 0x0B90
	DITHER                        = 0x0BD0
	BLEND                         = 0x0BE2
	SCISSOR_TEST                  = 0x0C11
	POLYGON_OFFSET_FILL           = 0x8037
	SAMPLE_ALPHA_TO_COVERAGE      = 0x809E
	SAMPLE_COVERAGE               = 0x80A0
	RASTERIZER_DISCARD            = 0x8C89
	PRIMITIVE_RESTART_FIXED_INDEX = 0x8D69

	// Errors
	NO_ERROR                      = 0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	// State queries
	LINE_WIDTH                     = 0x0B21
	VIEWPORT                       = 0x0BA2
	SCISSOR_BOX                    = 0x0C10
	COLOR_CLEAR_VALUE              = 0x0C22
	COLOR_WRITEMASK                = 0x0C23
	UNPACK_ALIGNMENT               = 0x0CF5
	PACK_ALIGNMENT                 = 0x0D05
	MAX_TEXTURE_SIZE               = 0x0D33
	MAX_VIEWPORT_DIMS              = 0x0D3A
	SUBPIXEL_BITS                  = 0x0D50
	RED_BITS                       = 0x0D52
	GREEN_BITS                     = 0x0D53
	BLUE_BITS                      = 0x0D54
	ALPHA_BITS                     = 0x0D55
	DEPTH_BITS                     = 0x0D56
	STENCIL_BITS                   = 0x0D57
	TEXTURE_BINDING_2D             = 0x8069
	SAMPLE_BUFFERS                 = 0x80A8
	SAMPLES                        = 0x80A9
	NUM_COMPRESSED_TEXTURE_FORMATS = 0x86A2
	COMPRESSED_TEXTURE_FORMATS     = 0x86A3
	MAJOR_VERSION                  = 0x821B
	MINOR_VERSION                  = 0x821C
	NUM_EXTENSIONS                 = 0x821D

	// Hints
	DONT_CARE                       = 0x1100
	FASTEST                         = 0x1101
	NICEST                          = 0x1102
	GENERATE_MIPMAP_HINT            = 0x8192
	FRAGMENT_SHADER_DERIVATIVE_HINT = 0x8B8B

	// Data types
	BYTE                           = 0x1400
	UNSIGNED_BYTE                  = 0x1401
	SHORT                          = 0x1402
	UNSIGNED_SHORT                 = 0x1403
	INT                            = 0x1404
	UNSIGNED_INT                   = 0x1405
	FLOAT                          = 0x1406
	FIXED                          = 0x140C
	HALF_FLOAT                     = 0x140B
	UNSIGNED_SHORT_4_4_4_4         = 0x8033
	UNSIGNED_SHORT_5_5_5_1         = 0x8034
	UNSIGNED_SHORT_5_6_5           = 0x8363
	UNSIGNED_INT_2_10_10_10_REV    = 0x8368
	UNSIGNED_INT_24_8              = 0x84FA
	UNSIGNED_INT_10F_11F_11F_REV   = 0x8C3B
	UNSIGNED_INT_5_9_9_9_REV       = 0x8C3E
	FLOAT_32_UNSIGNED_INT_24_8_REV = 0x8DAD
	INT_2_10_10_10_REV             = 0x8D9F

	// Pixel formats
	DEPTH_COMPONENT    = 0x1902
	RED                = 0x1903
	ALPHA              = 0x1906
	RGB                = 0x1907
	RGBA               = 0x1908
	LUMINANCE          = 0x1909
	LUMINANCE_ALPHA    = 0x190A
	RG                 = 0x8227
	RG_INTEGER         = 0x8228
	RED_INTEGER        = 0x8D94
	RGB_INTEGER        = 0x8D98
	RGBA_INTEGER       = 0x8D99
	DEPTH_STENCIL      = 0x84F9
	R8                 = 0x8229
	RG8                = 0x822B
	R16F               = 0x822D
	R32F               = 0x822E
	RG16F              = 0x822F
	RG32F              = 0x8230
	RGB8               = 0x8051
	RGBA4              = 0x8056
	RGB5_A1            = 0x8057
	RGBA8              = 0x8058
	RGB10_A2           = 0x8059
	SRGB8              = 0x8C41
	SRGB8_ALPHA8       = 0x8C43
	RGBA32F            = 0x8814
	RGB32F             = 0x8815
	RGBA16F            = 0x881A
	RGB16F             = 0x881B
	R11F_G11F_B10F     = 0x8C3A
	RGB9_E5            = 0x8C3D
	RGB565             = 0x8D62
	DEPTH_COMPONENT16  = 0x81A5
	DEPTH_COMPONENT24  = 0x81A6
	DEPTH_COMPONENT32F = 0x8CAC
	DEPTH24_STENCIL8   = 0x88F0
	DEPTH32F_STENCIL8  = 0x8CAD
	STENCIL_INDEX8     = 0x8D48

	// Shaders
	FRAGMENT_SHADER                  = 0x8B30
	VERTEX_SHADER                    = 0x8B31
	MAX_VERTEX_ATTRIBS               = 0x8869
	MAX_VERTEX_UNIFORM_VECTORS       = 0x8DFB
	MAX_VARYING_VECTORS              = 0x8DFC
	MAX_COMBINED_TEXTURE_IMAGE_UNITS = 0x8B4D
	MAX_VERTEX_TEXTURE_IMAGE_UNITS   = 0x8B4C
	MAX_TEXTURE_IMAGE_UNITS          = 0x8872
	MAX_FRAGMENT_UNIFORM_VECTORS     = 0x8DFD
	SHADER_TYPE                      = 0x8B4F
	DELETE_STATUS                    = 0x8B80
	COMPILE_STATUS                   = 0x8B81
	LINK_STATUS                      = 0x8B82
	VALIDATE_STATUS                  = 0x8B83
	INFO_LOG_LENGTH                  = 0x8B84
	ATTACHED_SHADERS                 = 0x8B85
	ACTIVE_UNIFORMS                  = 0x8B86
	ACTIVE_UNIFORM_MAX_LENGTH        = 0x8B87
	SHADER_SOURCE_LENGTH             = 0x8B88
	ACTIVE_ATTRIBUTES                = 0x8B89
	ACTIVE_ATTRIBUTE_MAX_LENGTH      = 0x8B8A
	SHADING_LANGUAGE_VERSION         = 0x8B8C
	CURRENT_PROGRAM                  = 0x8B8D
	SHADER_COMPILER                  = 0x8DFA
	SHADER_BINARY_FORMATS            = 0x8DF8
	NUM_SHADER_BINARY_FORMATS        = 0x8DF9
	PROGRAM_BINARY_LENGTH            = 0x8741
	NUM_PROGRAM_BINARY_FORMATS       = 0x87FE
	PROGRAM_BINARY_FORMATS           = 0x87FF
	PROGRAM_BINARY_RETRIEVABLE_HINT  = 0x8257
	LOW_FLOAT                        = 0x8DF0
	MEDIUM_FLOAT                     = 0x8DF1
	HIGH_FLOAT                       = 0x8DF2
	LOW_INT                          = 0x8DF3
	MEDIUM_INT                       = 0x8DF4
	HIGH_INT                         = 0x8DF5

	// Comparison and stencil
	NEVER     = 0x0200
	LESS      = 0x0201
	EQUAL     = 0x0202
	LEQUAL    = 0x0203
	GREATER   = 0x0204
	NOTEQUAL  = 0x0205
	GEQUAL    = 0x0206
	ALWAYS    = 0x0207
	KEEP      = 0x1E00
	REPLACE   = 0x1E01
	INCR      = 0x1E02
	DECR      = 0x1E03
	INVERT    = 0x150A
	INCR_WRAP = 0x8507
	DECR_WRAP = 0x8508

	// Strings
	VENDOR     = 0x1F00
	RENDERER   = 0x1F01
	VERSION    = 0x1F02
	EXTENSIONS = 0x1F03

	// Textures
	NEAREST                     = 0x2600
	LINEAR                      = 0x2601
	NEAREST_MIPMAP_NEAREST      = 0x2700
	LINEAR_MIPMAP_NEAREST       = 0x2701
	NEAREST_MIPMAP_LINEAR       = 0x2702
	LINEAR_MIPMAP_LINEAR        = 0x2703
	TEXTURE_MAG_FILTER          = 0x2800
	TEXTURE_MIN_FILTER          = 0x2801
	TEXTURE_WRAP_S              = 0x2802
	TEXTURE_WRAP_T              = 0x2803
	TEXTURE_WRAP_R              = 0x8072
	TEXTURE_MIN_LOD             = 0x813A
	TEXTURE_MAX_LOD             = 0x813B
	TEXTURE_BASE_LEVEL          = 0x813C
	TEXTURE_MAX_LEVEL           = 0x813D
	TEXTURE_COMPARE_MODE        = 0x884C
	TEXTURE_COMPARE_FUNC        = 0x884D
	COMPARE_REF_TO_TEXTURE      = 0x884E
	TEXTURE_SWIZZLE_R           = 0x8E42
	TEXTURE_SWIZZLE_G           = 0x8E43
	TEXTURE_SWIZZLE_B           = 0x8E44
	TEXTURE_SWIZZLE_A           = 0x8E45
	TEXTURE_IMMUTABLE_FORMAT    = 0x912F
	TEXTURE_IMMUTABLE_LEVELS    = 0x82DF
	TEXTURE                     = 0x1702
	TEXTURE_2D                  = 0x0DE1
	TEXTURE_3D                  = 0x806F
	TEXTURE_2D_ARRAY            = 0x8C1A
	TEXTURE_CUBE_MAP            = 0x8513
	TEXTURE_BINDING_CUBE_MAP    = 0x8514
	TEXTURE_CUBE_MAP_POSITIVE_X = 0x8515
	TEXTURE_CUBE_MAP_NEGATIVE_X = 0x8516
	TEXTURE_CUBE_MAP_POSITIVE_Y = 0x8517
	TEXTURE_CUBE_MAP_NEGATIVE_Y = 0x8518
	TEXTURE_CUBE_MAP_POSITIVE_Z = 0x8519
	TEXTURE_CUBE_MAP_NEGATIVE_Z = 0x851A
	MAX_CUBE_MAP_TEXTURE_SIZE   = 0x851C
	MAX_3D_TEXTURE_SIZE         = 0x8073
	MAX_ARRAY_TEXTURE_LAYERS    = 0x88FF
	REPEAT                      = 0x2901
	CLAMP_TO_EDGE               = 0x812F
	MIRRORED_REPEAT             = 0x8370
	TEXTURE0                    = 0x84C0
	TEXTURE1                    = 0x84C1
	TEXTURE2                    = 0x84C2
	TEXTURE3                    = 0x84C3
	TEXTURE4                    = 0x84C4
	TEXTURE5                    = 0x84C5
	TEXTURE6                    = 0x84C6
	TEXTURE7                    = 0x84C7
	ACTIVE_TEXTURE              = 0x84E0

	// Uniform types
	FLOAT_VEC2        = 0x8B50
	FLOAT_VEC3        = 0x8B51
	FLOAT_VEC4        = 0x8B52
	INT_VEC2          = 0x8B53
	INT_VEC3          = 0x8B54
	INT_VEC4          = 0x8B55
	BOOL              = 0x8B56
	BOOL_VEC2         = 0x8B57
	BOOL_VEC3         = 0x8B58
	BOOL_VEC4         = 0x8B59
	FLOAT_MAT2        = 0x8B5A
	FLOAT_MAT3        = 0x8B5B
	FLOAT_MAT4        = 0x8B5C
	SAMPLER_2D        = 0x8B5E
	SAMPLER_3D        = 0x8B5F
	SAMPLER_CUBE      = 0x8B60
	SAMPLER_2D_SHADOW = 0x8B62
	SAMPLER_2D_ARRAY  = 0x8DC1

	// Vertex arrays
	VERTEX_ATTRIB_ARRAY_ENABLED        = 0x8622
	VERTEX_ATTRIB_ARRAY_SIZE           = 0x8623
	VERTEX_ATTRIB_ARRAY_STRIDE         = 0x8624
	VERTEX_ATTRIB_ARRAY_TYPE           = 0x8625
	CURRENT_VERTEX_ATTRIB              = 0x8626
	VERTEX_ATTRIB_ARRAY_NORMALIZED     = 0x886A
	VERTEX_ATTRIB_ARRAY_POINTER        = 0x8645
	VERTEX_ATTRIB_ARRAY_BUFFER_BINDING = 0x889F
	VERTEX_ATTRIB_ARRAY_INTEGER        = 0x88FD
	VERTEX_ATTRIB_ARRAY_DIVISOR        = 0x88FE
	VERTEX_ARRAY_BINDING               = 0x85B5

	// Framebuffers
	FRAMEBUFFER                               = 0x8D40
	RENDERBUFFER                              = 0x8D41
	READ_FRAMEBUFFER                          = 0x8CA8
	DRAW_FRAMEBUFFER                          = 0x8CA9
	COLOR_ATTACHMENT0                         = 0x8CE0
	DEPTH_ATTACHMENT                          = 0x8D00
	STENCIL_ATTACHMENT                        = 0x8D20
	DEPTH_STENCIL_ATTACHMENT                  = 0x821A
	FRAMEBUFFER_COMPLETE                      = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DIMENSIONS         = 0x8CD9
	FRAMEBUFFER_UNSUPPORTED                   = 0x8CDD
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        = 0x8D56
	FRAMEBUFFER_BINDING                       = 0x8CA6
	RENDERBUFFER_BINDING                      = 0x8CA7
	MAX_RENDERBUFFER_SIZE                     = 0x84E8
	MAX_COLOR_ATTACHMENTS                     = 0x8CDF
	MAX_DRAW_BUFFERS                          = 0x8824
	MAX_SAMPLES                               = 0x8D57
	DRAW_BUFFER0                              = 0x8825
	READ_BUFFER                               = 0x0C02
	NONE                                      = 0
	COLOR                                     = 0x1800
	DEPTH                                     = 0x1801
	STENCIL                                   = 0x1802

	// Queries and sync
	ANY_SAMPLES_PASSED                    = 0x8C2F
	ANY_SAMPLES_PASSED_CONSERVATIVE       = 0x8D6A
	TRANSFORM_FEEDBACK_PRIMITIVES_WRITTEN = 0x8C88
	QUERY_RESULT                          = 0x8866
	QUERY_RESULT_AVAILABLE                = 0x8867
	CURRENT_QUERY                         = 0x8865
	SYNC_GPU_COMMANDS_COMPLETE            = 0x9117
	SYNC_FLUSH_COMMANDS_BIT               = 0x00000001
	ALREADY_SIGNALED                      = 0x911A
	TIMEOUT_EXPIRED                       = 0x911B
	CONDITION_SATISFIED                   = 0x911C
	WAIT_FAILED                           = 0x911D
	OBJECT_TYPE                           = 0x9112
	SYNC_CONDITION                        = 0x9113
	SYNC_STATUS                           = 0x9114
	SYNC_FLAGS                            = 0x9115
	SYNC_FENCE                            = 0x9116
	SIGNALED                              = 0x9119
	UNSIGNALED                            = 0x9118

	// Transform feedback and uniform blocks
	TRANSFORM_FEEDBACK            = 0x8E22
	INTERLEAVED_ATTRIBS           = 0x8C8C
	SEPARATE_ATTRIBS              = 0x8C8D
	TRANSFORM_FEEDBACK_BINDING    = 0x8E25
	TRANSFORM_FEEDBACK_PAUSED     = 0x8E23
	TRANSFORM_FEEDBACK_ACTIVE     = 0x8E24
	UNIFORM_BLOCK_INDEX           = 0x8A3A
	UNIFORM_OFFSET                = 0x8A3B
	UNIFORM_BLOCK_DATA_SIZE       = 0x8A40
	UNIFORM_BLOCK_BINDING         = 0x8A3F
	UNIFORM_BLOCK_ACTIVE_UNIFORMS = 0x8A42
	ACTIVE_UNIFORM_BLOCKS         = 0x8A36
	MAX_UNIFORM_BUFFER_BINDINGS   = 0x8A2F
	MAX_UNIFORM_BLOCK_SIZE        = 0x8A30
	INVALID_INDEX                 = 0xFFFFFFFF
)
