package ast

import "rill/internal/source"

// File is the root of a parsed source file.
type File struct {
	FileID source.FileID
	Decls  []*Decl
}
