package codegen

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

// Source is the loaded package data extraction works on. The command fills
// it from a packages.Load result via FromPackage; tests build it directly
// with go/parser and go/types.
type Source struct {
	Fset      *token.FileSet
	Syntax    []*ast.File
	Types     *types.Package
	TypesInfo *types.Info
}

// FromPackage adapts a loaded package. The package must have been loaded
// with at least NeedSyntax, NeedTypes and NeedTypesInfo.
func FromPackage(pkg *packages.Package) Source {
	return Source{
		Fset:      pkg.Fset,
		Syntax:    pkg.Syntax,
		Types:     pkg.Types,
		TypesInfo: pkg.TypesInfo,
	}
}

// Extract locates typeName in src, validates that its shape supports direct
// storage, and returns its variants in declaration order. Unsatisfiable
// shapes produce a *DefinitionError.
func Extract(src Source, typeName string) (*Enum, error) {
	obj := src.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil, errors.Errorf("type %s not found in package %s", typeName, src.Types.Name())
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, &DefinitionError{Type: typeName, Reason: "not a type declaration"}
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, &DefinitionError{Type: typeName, Reason: "not a defined type"}
	}
	switch named.Underlying().(type) {
	case *types.Struct, *types.Interface:
		return nil, &DefinitionError{Type: typeName, Reason: "struct and interface shapes carry payload data; only payload-free enumerations bind to direct storage"}
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil, &DefinitionError{Type: typeName, Reason: "underlying type is not an integer"}
	}

	enum := &Enum{
		PackageName: src.Types.Name(),
		InLibrary:   src.Types.Path() == ImportPath,
		Type:        typeName,
	}

	// Collect the type's constants in declaration order. Syntax files come
	// back from the loader in a stable order, and const specs preserve
	// source order within a file.
	seen := make(map[string]string)
	representable := true
	for _, file := range src.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			for _, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, name := range vs.Names {
					if name.Name == "_" {
						continue
					}
					c, ok := src.TypesInfo.Defs[name].(*types.Const)
					if !ok || !types.Identical(c.Type(), named) {
						continue
					}
					exact := c.Val().ExactString()
					if prev, dup := seen[exact]; dup {
						return nil, &DefinitionError{
							Type:   typeName,
							Reason: "variants " + prev + " and " + name.Name + " share the value " + exact + "; the variant-to-index mapping must be injective",
						}
					}
					seen[exact] = name.Name
					value, ok := constant.Int64Val(c.Val())
					if !ok {
						// Out of int64 range: the range-check Index
						// form cannot hold the value, so the emitter
						// must fall back to the switch form.
						representable = false
					}
					enum.Variants = append(enum.Variants, Variant{Name: name.Name, Value: value})
				}
			}
		}
	}

	if len(enum.Variants) == 0 {
		return nil, &DefinitionError{Type: typeName, Reason: "no declared variants"}
	}

	enum.Contiguous = representable
	for i := 1; enum.Contiguous && i < len(enum.Variants); i++ {
		if enum.Variants[i].Value != enum.Variants[i-1].Value+1 {
			enum.Contiguous = false
			break
		}
	}
	return enum, nil
}
