package pythonast

// Usage indicates whether an expression was being evaluated, assigned, deleted, or imported.
// In the following examples, "x" will have Usage=Evaluate:
//    print(x)
//    another = x
//    x.y = 3           <-- "x" is loaded even though "x.y" is being assigned to
//    x += 1            <-- the target of an augmented assignment is read first
// In the following examples, "x" will have Usage=Assign:
//    x = 3
//    def foo(x): pass
//    x, y = something()
//    for x in y: pass
// In the following examples, "x" will have Usage=Delete:
//    del x
// In the following examples, "x" will have Usage=Import:
//    import x
//    from somepackage import x as y
type Usage int

const (
	// Invalid Usage
	Invalid Usage = iota
	// Evaluate is for expressions that are being evaluated
	Evaluate
	// Assign is for expressions that are being assigned to
	Assign
	// Delete is for expressions that are being deleted
	Delete
	// Import is for expressions that are being imported
	Import
)

func (u Usage) String() string {
	switch u {
	case Evaluate:
		return "Evaluate"
	case Assign:
		return "Assign"
	case Delete:
		return "Delete"
	case Import:
		return "Import"
	default:
		return "Invalid"
	}
}

// GetUsage returns the Usage for the given Expr
func GetUsage(expr Expr) Usage {
	if IsNil(expr) {
		return Invalid
	}

	switch expr := expr.(type) {
	case *NameExpr:
		return expr.Usage
	case *AttributeExpr:
		return expr.Usage
	case *TupleExpr:
		return expr.Usage
	case *ListExpr:
		return expr.Usage
	default:
		return Evaluate
	}
}

// AccessDirection is the direction in which a reference touches its binding,
// which selects the accessor of a managed property.
type AccessDirection int

const (
	// Read is a plain load
	Read AccessDirection = iota
	// Write is an assignment, including the target of an augmented assignment
	Write
	// Del is a deletion
	Del
)

func (d AccessDirection) String() string {
	switch d {
	case Write:
		return "write"
	case Del:
		return "delete"
	default:
		return "read"
	}
}

// DirectionOf computes the access direction of a reference. The parent is the
// node directly containing the reference and may be nil.
func DirectionOf(ref ReferenceExpr, parent Node) AccessDirection {
	if aug, ok := parent.(*AugAssignStmt); ok && aug.Target == Expr(ref) {
		return Write
	}
	switch ref.RefUsage() {
	case Assign:
		return Write
	case Delete:
		return Del
	default:
		return Read
	}
}
