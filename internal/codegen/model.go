// Package codegen turns a finite enumeration type into direct-storage
// support code: a default-value function, a Domain descriptor mapping the
// declared variants to [0, N), named storage aliases and constructors. The
// fixedmapgen command is a thin CLI over Extract and Emit.
package codegen

import "fmt"

// ImportPath is the import path of the library package referenced by
// generated code when the target package is not the library itself.
const ImportPath = "github.com/llxisdsh/fixedmap"

// Enum is the extracted shape of one finite enumeration: a defined integer
// type and its declared constants, in declaration order.
type Enum struct {
	// PackageName is the name of the package the type is declared in;
	// generated code is emitted into the same package.
	PackageName string
	// InLibrary is true when the target package is the library package
	// itself, in which case generated code drops the import and the
	// package qualifier.
	InLibrary bool
	// Type is the enumeration type's name.
	Type string
	// Variants holds the declared constants of Type, declaration order.
	Variants []Variant
	// Contiguous is true when the variant values ascend by exactly one
	// in declaration order, allowing the range-check Index form instead
	// of a switch.
	Contiguous bool
}

// Variant is one declared constant of the enumeration.
type Variant struct {
	Name string
	// Value is the constant's exact value, used for injectivity checks
	// and contiguity detection.
	Value int64
}

// A DefinitionError reports a key type whose shape cannot be bound to
// direct storage. It is raised at generation time, before any instance of
// the type can exist; the offending declaration never reaches a running
// program.
type DefinitionError struct {
	// Type is the name of the rejected type.
	Type string
	// Reason says why the shape is unsatisfiable.
	Reason string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("fixedmapgen: type %s cannot use direct storage: %s", e.Type, e.Reason)
}
