package pythonast

import "fmt"

// CountNodes counts the number of nodes in an AST
func CountNodes(node Node) int {
	var count int
	InspectEdges(node, func(parent, child Node, field string) bool {
		if !IsNil(child) {
			count++
		}
		return true
	})
	return count
}

// ConstructParentTable creates a map from nodes to their parents.
// Nodecount is the number of nodes in the AST, which is used to pre-allocate
// the map. This parameter can be set to zero, in which case the map will grow
// automatically, but note that this will incur additional heap allocations.
func ConstructParentTable(node Node, nodecount int) map[Node]Node {
	parents := make(map[Node]Node, nodecount)
	InspectEdges(node, func(parent, child Node, field string) bool {
		if !IsNil(parent) && !IsNil(child) {
			parents[child] = parent
		}
		return true
	})
	return parents
}

type stmtTableVisitor struct {
	out  map[Expr]Stmt
	stmt Stmt
}

// Visit implements EdgeVisitor
func (v stmtTableVisitor) VisitEdge(parent, node Node, field string) (w EdgeVisitor) {
	if IsNil(node) {
		return nil
	}
	if stmt, ok := node.(Stmt); ok {
		return stmtTableVisitor{v.out, stmt}
	}
	if expr, ok := node.(Expr); ok && v.stmt != nil {
		v.out[expr] = v.stmt
	}
	return v
}

// ConstructStmtTable creates a map from expressions to the most deeply
// nested statement contain them.
// Nodecount is the number of nodes in the AST, which is used to pre-allocate
// the map. This parameter can be set to zero, in which case the map will grow
// automatically, but note that this will incur additional heap allocations.
func ConstructStmtTable(node Node, nodecount int) map[Expr]Stmt {
	out := make(map[Expr]Stmt, nodecount)
	WalkEdges(stmtTableVisitor{out, nil}, node)
	return out
}

// ConstructScopeTable creates a map from expressions to the deepest containing lexical scope, in which name resolution would begin.
// All names in the module have a well defined lexical scope.
// For other expressions, this is equivalent to the scope of a hypothetical name at the expression's position.
func ConstructScopeTable(mod *Module) map[Expr]Scope {
	temp := make(map[Node]Scope)

	out := make(map[Expr]Scope)

	InspectEdges(mod, func(parent, child Node, field string) bool {
		if parent == nil {
			// must be at module
			temp[mod] = mod
			return true
		}

		if child == nil {
			return false
		}

		var current Scope
		switch parent := parent.(type) {
		case *ClassDefStmt:
			switch field {
			case "Body":
				current = parent
			case "Name", "Args", "Decorators":
				// resolved in the scope that contains the class def
				current = temp[parent]
			default:
				panic(fmt.Errorf("unhandled class def field %s", field))
			}
		case *FunctionDefStmt:
			switch field {
			case "Name", "Decorators", "Annotation":
				current = temp[parent]
			case "Parameters", "Body":
				current = parent
			default:
				panic(fmt.Errorf("unhandled function def field %s", field))
			}
		case *LambdaExpr:
			current = parent
		case *Module:
			current = parent
		case *Parameter:
			switch field {
			case "Annotation", "Default":
				// the parameter itself was placed in the function scope above,
				// so go one level further out
				current = temp[temp[parent]]
			case "Name":
				current = temp[parent]
			default:
				panic(fmt.Errorf("unhandled field %s for %T", field, parent))
			}
		default:
			current = temp[parent]
		}

		temp[child] = current
		if expr, ok := child.(Expr); ok {
			out[expr] = current
		}
		return true
	})
	return out
}
