package pythonast

import "strings"

// DottedName gets the dotted name for a chain of attribute accesses rooted at
// a name, as in "a.b.c". The second result is false if any qualifier is not a
// name or an attribute access.
func DottedName(e Expr) (string, bool) {
	var parts []string
	for {
		switch x := e.(type) {
		case *NameExpr:
			parts = append(parts, x.Ident.Literal)
			for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
				parts[i], parts[j] = parts[j], parts[i]
			}
			return strings.Join(parts, "."), true
		case *AttributeExpr:
			parts = append(parts, x.Attribute.Literal)
			e = x.Value
		case *DottedExpr:
			return x.Join(), true
		default:
			return "", false
		}
	}
}

// RootName gets the leftmost name in a chain of attribute accesses, or nil
func RootName(e Expr) *NameExpr {
	for {
		switch x := e.(type) {
		case *NameExpr:
			return x
		case *AttributeExpr:
			e = x.Value
		default:
			return nil
		}
	}
}
