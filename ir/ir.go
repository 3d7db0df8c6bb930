package ir

// Module represents one compilation stage's program in IR form.
//
// The IR is produced by an external front end (parser and type checker)
// and consumed by analysis passes such as binding resolution. Objects are
// stored in arenas on the Module and referenced by handle; a handle is
// stable for the lifetime of the Module and unique within its arena.
type Module struct {
	// Types holds all type definitions
	Types []Type

	// GlobalVariables holds module-scope variables
	GlobalVariables []GlobalVariable

	// Functions holds all function definitions
	Functions []Function

	// EntryPoints holds shader entry points
	EntryPoints []EntryPoint
}

// EntryPoint represents a shader entry point.
type EntryPoint struct {
	Name     string
	Stage    ShaderStage
	Function FunctionHandle
}

// ShaderStage represents a shader stage.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
	StageCompute
)

// String returns the lowercase stage name.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// Handle types for referencing IR objects
type (
	TypeHandle           uint32
	FunctionHandle       uint32
	GlobalVariableHandle uint32
	ExpressionHandle     uint32
)

// GlobalVariable represents a module-scope variable.
//
// A variable's GlobalVariableHandle is its identity: unique across the
// whole program and stable across traversals.
type GlobalVariable struct {
	Name   string
	Space  AddressSpace
	Layout ResourceLayout
	Type   TypeHandle
}

// ResourceLayout carries the explicit layout qualifiers of a resource
// variable as written in source. Group and Binding are independently
// optional: either may be written without the other, and nil means the
// qualifier was not written.
type ResourceLayout struct {
	// Group is the descriptor set number, or nil if unspecified.
	Group *uint32

	// Binding is the binding slot, or nil if unspecified.
	Binding *uint32
}

// HasGroup reports whether an explicit descriptor set was written.
func (l ResourceLayout) HasGroup() bool { return l.Group != nil }

// HasBinding reports whether an explicit binding slot was written.
func (l ResourceLayout) HasBinding() bool { return l.Binding != nil }

// AddressSpace represents memory address spaces.
type AddressSpace uint8

const (
	SpaceFunction AddressSpace = iota
	SpacePrivate
	SpaceWorkGroup
	SpaceUniform
	SpaceStorage
	SpacePushConstant
	SpaceHandle
)

// IsResource reports whether variables in this space are externally bound
// resources (uniform buffers, storage buffers, textures, samplers, images)
// that need a binding slot and descriptor set.
func (s AddressSpace) IsResource() bool {
	switch s {
	case SpaceUniform, SpaceStorage, SpaceHandle:
		return true
	default:
		return false
	}
}

// Type represents a type in the IR.
type Type struct {
	Name  string
	Inner TypeInner
}

// TypeInner represents the inner type kind.
type TypeInner interface {
	typeInner()
}

// ScalarType represents scalar types.
type ScalarType struct {
	Kind  ScalarKind
	Width uint8 // in bytes
}

func (ScalarType) typeInner() {}

// ScalarKind represents scalar type kinds.
type ScalarKind uint8

const (
	ScalarSint  ScalarKind = iota // Signed integer
	ScalarUint                    // Unsigned integer
	ScalarFloat                   // Floating point
	ScalarBool                    // Boolean
)

// VectorType represents vector types.
type VectorType struct {
	Size   VectorSize
	Scalar ScalarType
}

func (VectorType) typeInner() {}

// VectorSize represents vector sizes.
type VectorSize uint8

const (
	Vec2 VectorSize = 2
	Vec3 VectorSize = 3
	Vec4 VectorSize = 4
)

// ArrayType represents array types.
type ArrayType struct {
	Base   TypeHandle
	Size   *uint32 // nil for runtime-sized arrays
	Stride uint32
}

func (ArrayType) typeInner() {}

// StructType represents struct types.
type StructType struct {
	Members []StructMember
	Span    uint32 // Size in bytes
}

func (StructType) typeInner() {}

// StructMember represents a struct member.
type StructMember struct {
	Name   string
	Type   TypeHandle
	Offset uint32
}

// SamplerType represents sampler types.
type SamplerType struct {
	Comparison bool
}

func (SamplerType) typeInner() {}

// ImageType represents image/texture types.
type ImageType struct {
	Dim          ImageDimension
	Arrayed      bool
	Class        ImageClass
	Multisampled bool
}

func (ImageType) typeInner() {}

// ImageDimension represents image dimensions.
type ImageDimension uint8

const (
	Dim1D ImageDimension = iota
	Dim2D
	Dim3D
	DimCube
)

// ImageClass represents image classification.
type ImageClass uint8

const (
	ImageClassSampled ImageClass = iota
	ImageClassDepth
	ImageClassStorage
)

// Function represents a function definition.
//
// Expressions form the function's expression arena; Body is a tree of
// statements referencing them. A function appearing in the arena is not
// necessarily reachable from an entry point.
type Function struct {
	Name        string
	Expressions []Expression
	Body        Block
}
