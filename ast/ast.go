package ast

// Kind identifies what a declaration cursor refers to.
type Kind int

const (
	Invalid Kind = iota
	StructDecl
	UnionDecl
	EnumDecl
	TypedefDecl
	FuncDecl
	VarDecl
	FieldDecl
	MacroDef
	Namespace
)

// TypeKind classifies the underlying type of a declaration.
type TypeKind int

const (
	TypeInvalid TypeKind = iota
	TypeBuiltin
	TypeRecord
	TypeEnum
	TypePointer
	TypeFunc
	TypeElaborated
	TypeTypedef
)

// Type is the underlying type of a declaration as the walker spells it.
type Type struct {
	Spelling string   `json:"spelling"`
	Kind     TypeKind `json:"kind"`
}

// Node is one declaration cursor delivered by the external AST walker.
// The translator only ever reads it; identity-relevant fields are the
// spelling, the kinds and the structural hash, never the value's address.
type Node struct {
	Spelling       string `json:"spelling"`
	Kind           Kind   `json:"kind"`
	UnderlyingType Type   `json:"underlyingType"`
	StructuralHash uint64 `json:"structuralHash"`
	MangledName    string `json:"mangledName"`
	FuncMacro      bool   `json:"funcMacro,omitempty"`
}

// IsAggregate reports whether the node declares a struct, union or enum.
func (n Node) IsAggregate() bool {
	switch n.Kind {
	case StructDecl, UnionDecl, EnumDecl:
		return true
	}
	return false
}

// IsAnonymous reports whether the node has no spelling of its own.
func (n Node) IsAnonymous() bool {
	return n.Spelling == ""
}
