package ast

// Inspect visits every declaration in the file depth-first: a declaration
// before its nested declarations, siblings in source order. The visit
// order is deterministic, which keeps diagnostic output stable.
func Inspect(file *File, visit func(*Decl)) {
	if file == nil {
		return
	}
	for _, d := range file.Decls {
		inspectDecl(d, visit)
	}
}

func inspectDecl(d *Decl, visit func(*Decl)) {
	if d == nil {
		return
	}
	visit(d)
	for _, nested := range d.Decls {
		inspectDecl(nested, visit)
	}
}
