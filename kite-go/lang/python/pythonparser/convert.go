package pythonparser

import (
	"go/token"
	"strings"

	sitter "github.com/kiteco/go-tree-sitter"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-golib/errors"
)

// converter translates a tree-sitter concrete syntax tree into a pythonast tree.
// Usages are decided during conversion: targets of assignments, loops, parameters,
// definitions and deletions get Assign/Delete, import names get Import and
// everything else is Evaluate.
type converter struct {
	src      []byte
	cimports map[uint32]bool // rows on which "cimport" was rewritten to "import"
	errs     errors.Errors
}

func (c *converter) errorf(n *sitter.Node, format string, args ...interface{}) {
	p := n.StartPoint()
	args = append([]interface{}{p.Row + 1, p.Column + 1}, args...)
	c.errs = errors.Append(c.errs, errors.Errorf("%d:%d: "+format, args...))
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

func (c *converter) word(n *sitter.Node) *pythonast.Word {
	if n == nil {
		return &pythonast.Word{}
	}
	return &pythonast.Word{
		Begin:   token.Pos(n.StartByte()),
		End:     token.Pos(n.EndByte()),
		Literal: c.text(n),
	}
}

func begin(n *sitter.Node) token.Pos { return token.Pos(n.StartByte()) }

func end(n *sitter.Node) token.Pos { return token.Pos(n.EndByte()) }

func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// must converts a child the grammar requires, which is absent only in erroneous trees
func (c *converter) must(n, parent *sitter.Node) pythonast.Expr {
	if n == nil {
		return &pythonast.BadExpr{From: end(parent), To: end(parent)}
	}
	return c.expr(n)
}

// named returns the named children of n, skipping comments
func named(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.IsNamed() || child.Type() == "comment" {
			continue
		}
		out = append(out, child)
	}
	return out
}

// split groups the named children of n by the anonymous token that precedes
// them; children before any of the given tokens are keyed by "".
// Field lookups are not used because the grammar puts some fields on hidden
// nodes, for which the binding returns nil.
func split(n *sitter.Node, tokens ...string) map[string][]*sitter.Node {
	out := make(map[string][]*sitter.Node)
	var key string
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || child.Type() == "comment" {
			continue
		}
		if !child.IsNamed() {
			for _, tok := range tokens {
				if child.Type() == tok {
					key = tok
				}
			}
			continue
		}
		out[key] = append(out[key], child)
	}
	return out
}

func first(ns []*sitter.Node) *sitter.Node {
	if len(ns) == 0 {
		return nil
	}
	return ns[0]
}

func last(ns []*sitter.Node) *sitter.Node {
	if len(ns) == 0 {
		return nil
	}
	return ns[len(ns)-1]
}

// ofType returns the first named child of n with the given type
func ofType(n *sitter.Node, typ string) *sitter.Node {
	for _, child := range named(n) {
		if child.Type() == typ {
			return child
		}
	}
	return nil
}

// operator returns the first anonymous child of n
func (c *converter) operator(n *sitter.Node) *pythonast.Word {
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil && !child.IsNamed() {
			return c.word(child)
		}
	}
	return &pythonast.Word{Begin: begin(n), End: begin(n)}
}

// keyword finds the first anonymous child with the given text
func (c *converter) keyword(n *sitter.Node, kw string) *pythonast.Word {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child != nil && !child.IsNamed() && child.Type() == kw {
			return c.word(child)
		}
	}
	return &pythonast.Word{Begin: begin(n), End: begin(n), Literal: kw}
}

func (c *converter) name(n *sitter.Node, usage pythonast.Usage) *pythonast.NameExpr {
	return &pythonast.NameExpr{Ident: c.word(n), Usage: usage}
}

// -- statements

func (c *converter) module(root *sitter.Node) *pythonast.Module {
	return &pythonast.Module{
		Body:   c.stmts(root),
		EndPos: token.Pos(len(c.src)),
	}
}

func (c *converter) stmts(n *sitter.Node) []pythonast.Stmt {
	if n == nil {
		return nil
	}
	var out []pythonast.Stmt
	for _, child := range named(n) {
		if stmt := c.stmt(child); stmt != nil {
			out = append(out, stmt)
		}
	}
	return out
}

func (c *converter) bad(n *sitter.Node) *pythonast.BadStmt {
	return &pythonast.BadStmt{From: begin(n), To: end(n), Text: c.text(n)}
}

func (c *converter) stmt(n *sitter.Node) pythonast.Stmt {
	switch n.Type() {
	case "expression_statement":
		return c.exprStmt(n)
	case "print_statement", "exec_statement":
		return c.printStmt(n)
	case "pass_statement":
		return &pythonast.PassStmt{Pass: c.word(n)}
	case "return_statement":
		ret := &pythonast.ReturnStmt{Return: c.keyword(n, "return")}
		if vals := named(n); len(vals) > 0 {
			ret.Value = c.expr(vals[0])
		}
		return ret
	case "delete_statement":
		del := &pythonast.DelStmt{Del: c.keyword(n, "del")}
		for _, v := range named(n) {
			del.Targets = append(del.Targets, c.flatTargets(v, pythonast.Delete)...)
		}
		return del
	case "import_statement":
		return c.importStmt(n)
	case "import_from_statement":
		return c.importFromStmt(n)
	case "if_statement":
		return c.ifStmt(n)
	case "for_statement":
		return c.forStmt(n)
	case "while_statement":
		return c.whileStmt(n)
	case "function_definition":
		return c.funcDef(n, nil)
	case "class_definition":
		return c.classDef(n, nil)
	case "decorated_definition":
		return c.decorated(n)
	default:
		return c.bad(n)
	}
}

func (c *converter) exprStmt(n *sitter.Node) pythonast.Stmt {
	children := named(n)
	switch {
	case len(children) == 0:
		return c.bad(n)
	case len(children) > 1:
		tup := &pythonast.TupleExpr{From: begin(n), To: end(n), Usage: pythonast.Evaluate}
		for _, child := range children {
			tup.Elts = append(tup.Elts, c.expr(child))
		}
		return &pythonast.ExprStmt{Value: tup}
	}

	child := children[0]
	switch child.Type() {
	case "assignment":
		return c.assign(child)
	case "augmented_assignment":
		operands := named(child)
		if len(operands) < 2 {
			return c.bad(child)
		}
		return &pythonast.AugAssignStmt{
			Target: c.expr(operands[0]),
			Op:     c.operator(child),
			Value:  c.expr(last(operands)),
		}
	default:
		return &pythonast.ExprStmt{Value: c.expr(child)}
	}
}

// assign flattens chained assignments "a = b = value" into one statement
func (c *converter) assign(n *sitter.Node) pythonast.Stmt {
	stmt := &pythonast.AssignStmt{}
	for cur := n; cur != nil; {
		parts := split(cur, ":", "=")
		left := first(parts[""])
		if left == nil {
			return c.bad(n)
		}
		stmt.Targets = append(stmt.Targets, c.target(left, pythonast.Assign))
		if typ := first(parts[":"]); typ != nil && stmt.Annotation == nil {
			stmt.Annotation = c.expr(typ)
		}
		right := first(parts["="])
		if right == nil {
			break
		}
		if right.Type() == "assignment" {
			cur = right
			continue
		}
		stmt.Value = c.expr(right)
		break
	}
	return stmt
}

// printStmt converts the python 2 statement forms into calls
func (c *converter) printStmt(n *sitter.Node) pythonast.Stmt {
	kw := n.Child(0)
	if kw == nil {
		return c.bad(n)
	}
	call := &pythonast.CallExpr{
		Func:       c.name(kw, pythonast.Evaluate),
		RightParen: end(n),
	}
	for _, arg := range named(n) {
		if arg.Type() == "chevron" {
			continue
		}
		call.Args = append(call.Args, &pythonast.Argument{Value: c.expr(arg)})
	}
	return &pythonast.ExprStmt{Value: call}
}

// suite converts the statements following the ":" of a compound statement,
// up to any elif or else clause. The body is a block, or simple statements on
// the same line.
func (c *converter) suite(n *sitter.Node) []pythonast.Stmt {
	var out []pythonast.Stmt
	for _, child := range split(n, ":")[":"] {
		switch child.Type() {
		case "elif_clause", "else_clause", "except_clause", "finally_clause":
			return out
		case "block":
			out = append(out, c.stmts(child)...)
		default:
			if stmt := c.stmt(child); stmt != nil {
				out = append(out, stmt)
			}
		}
	}
	return out
}

// condition is the expression between the keyword and the ":"
func condition(n *sitter.Node) *sitter.Node {
	return first(split(n, ":")[""])
}

func (c *converter) elseBody(n *sitter.Node) []pythonast.Stmt {
	if clause := ofType(n, "else_clause"); clause != nil {
		return c.suite(clause)
	}
	return nil
}

func (c *converter) ifStmt(n *sitter.Node) pythonast.Stmt {
	stmt := &pythonast.IfStmt{
		If:     c.keyword(n, "if"),
		EndPos: end(n),
	}
	stmt.Branches = append(stmt.Branches, &pythonast.Branch{
		Condition: c.must(condition(n), n),
		Body:      c.suite(n),
	})
	for _, child := range named(n) {
		if child.Type() == "elif_clause" {
			stmt.Branches = append(stmt.Branches, &pythonast.Branch{
				Condition: c.must(condition(child), child),
				Body:      c.suite(child),
			})
		}
	}
	stmt.Else = c.elseBody(n)
	return stmt
}

func (c *converter) forStmt(n *sitter.Node) pythonast.Stmt {
	parts := split(n, "for", "in", ":")
	return &pythonast.ForStmt{
		For:      c.keyword(n, "for"),
		Targets:  c.flatTargets(first(parts["for"]), pythonast.Assign),
		Iterable: c.must(first(parts["in"]), n),
		Body:     c.suite(n),
		Else:     c.elseBody(n),
		EndPos:   end(n),
	}
}

func (c *converter) whileStmt(n *sitter.Node) pythonast.Stmt {
	return &pythonast.WhileStmt{
		While:     c.keyword(n, "while"),
		Condition: c.must(condition(n), n),
		Body:      c.suite(n),
		Else:      c.elseBody(n),
		EndPos:    end(n),
	}
}

func (c *converter) decorated(n *sitter.Node) pythonast.Stmt {
	var decorators []pythonast.Expr
	var def *sitter.Node
	for _, child := range named(n) {
		switch child.Type() {
		case "decorator":
			decorators = append(decorators, c.decorator(child))
		case "function_definition", "class_definition":
			def = child
		}
	}
	if def == nil {
		return c.bad(n)
	}
	if def.Type() == "class_definition" {
		return c.classDef(def, decorators)
	}
	return c.funcDef(def, decorators)
}

// decorator handles both "@expr" and the older "@dotted.name(args)" grammar shapes
func (c *converter) decorator(n *sitter.Node) pythonast.Expr {
	children := named(n)
	switch len(children) {
	case 0:
		return &pythonast.BadExpr{From: begin(n), To: end(n), Text: c.text(n)}
	case 1:
		return c.expr(children[0])
	}
	fn := c.expr(children[0])
	if args := children[1]; args.Type() == "argument_list" {
		return &pythonast.CallExpr{
			Func:       fn,
			Args:       c.arguments(args),
			RightParen: end(args),
		}
	}
	return fn
}

func (c *converter) funcDef(n *sitter.Node, decorators []pythonast.Expr) pythonast.Stmt {
	parts := split(n, "def", "->", ":")
	header := parts["def"]
	def := &pythonast.FunctionDefStmt{
		Def:        c.keyword(n, "def"),
		Decorators: decorators,
		Name:       c.name(first(header), pythonast.Assign),
		Parameters: c.parameters(ofType(n, "parameters")),
		Body:       c.suite(n),
		EndPos:     end(n),
	}
	if ret := first(parts["->"]); ret != nil {
		def.Annotation = c.expr(ret)
	}
	return def
}

func (c *converter) classDef(n *sitter.Node, decorators []pythonast.Expr) pythonast.Stmt {
	header := split(n, "class", ":")["class"]
	var bases *sitter.Node
	if len(header) > 1 && header[1].Type() == "argument_list" {
		bases = header[1]
	}
	return &pythonast.ClassDefStmt{
		Class:      c.keyword(n, "class"),
		Decorators: decorators,
		Name:       c.name(first(header), pythonast.Assign),
		Args:       c.arguments(bases),
		Body:       c.suite(n),
		EndPos:     end(n),
	}
}

func (c *converter) parameters(n *sitter.Node) []*pythonast.Parameter {
	if n == nil {
		return nil
	}
	var out []*pythonast.Parameter
	for _, child := range named(n) {
		if p := c.parameter(child); p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (c *converter) parameter(n *sitter.Node) *pythonast.Parameter {
	switch n.Type() {
	case "identifier", "keyword_identifier":
		return &pythonast.Parameter{Name: c.name(n, pythonast.Assign)}
	case "list_splat_pattern", "list_splat", "dictionary_splat_pattern", "dictionary_splat":
		children := named(n)
		if len(children) == 0 {
			return nil
		}
		p := c.parameter(children[0])
		if p == nil {
			return nil
		}
		if strings.HasPrefix(n.Type(), "list") {
			p.Vararg = true
		} else {
			p.Kwarg = true
		}
		return p
	case "typed_parameter":
		children := named(n)
		if len(children) == 0 {
			return nil
		}
		p := c.parameter(children[0])
		if p != nil {
			if typ := ofType(n, "type"); typ != nil {
				p.Annotation = c.expr(typ)
			}
		}
		return p
	case "default_parameter", "typed_default_parameter":
		parts := split(n, ":", "=")
		p := &pythonast.Parameter{
			Name:    c.name(first(parts[""]), pythonast.Assign),
			Default: c.must(first(parts["="]), n),
		}
		if typ := first(parts[":"]); typ != nil {
			p.Annotation = c.expr(typ)
		}
		return p
	default:
		// bare "*", "/" separators
		return nil
	}
}

// -- imports

func (c *converter) dotted(n *sitter.Node) *pythonast.DottedExpr {
	d := &pythonast.DottedExpr{}
	if n.Type() == "identifier" {
		d.Names = append(d.Names, c.name(n, pythonast.Import))
		return d
	}
	for _, child := range named(n) {
		if child.Type() == "identifier" {
			d.Names = append(d.Names, c.name(child, pythonast.Import))
		}
	}
	return d
}

func (c *converter) isCImport(n *sitter.Node) bool {
	return c.cimports[n.StartPoint().Row]
}

// cimportWord reconstructs the original keyword replaced by rewriteCImports
func (c *converter) cimportWord(n *sitter.Node) *pythonast.Word {
	w := c.keyword(n, "import")
	return &pythonast.Word{Begin: w.Begin, End: w.Begin + token.Pos(len(cimportKeyword)), Literal: cimportKeyword}
}

func (c *converter) dottedAsNames(n *sitter.Node) []*pythonast.DottedAsName {
	var names []*pythonast.DottedAsName
	for _, child := range named(n) {
		switch child.Type() {
		case "dotted_name":
			names = append(names, &pythonast.DottedAsName{External: c.dotted(child)})
		case "aliased_import":
			parts := split(child, "as")
			if len(parts[""]) == 0 || len(parts["as"]) == 0 {
				continue
			}
			names = append(names, &pythonast.DottedAsName{
				External: c.dotted(parts[""][0]),
				Internal: c.name(parts["as"][0], pythonast.Import),
			})
		}
	}
	return names
}

func (c *converter) importStmt(n *sitter.Node) pythonast.Stmt {
	if c.isCImport(n) {
		return &pythonast.CImportStmt{
			CImport: c.cimportWord(n),
			Names:   c.dottedAsNames(n),
		}
	}
	return &pythonast.ImportNameStmt{
		Import: c.keyword(n, "import"),
		Names:  c.dottedAsNames(n),
	}
}

func (c *converter) importFromStmt(n *sitter.Node) pythonast.Stmt {
	module := first(split(n, "from", "import")["from"])

	var dots int
	var pkg *pythonast.DottedExpr
	if module != nil {
		switch module.Type() {
		case "relative_import":
			for _, child := range named(module) {
				switch child.Type() {
				case "import_prefix":
					dots = strings.Count(c.text(child), ".")
				case "dotted_name":
					pkg = c.dotted(child)
				}
			}
		default:
			pkg = c.dotted(module)
		}
	}

	var names []*pythonast.ImportAsName
	var wildcard *pythonast.Word
	for _, child := range named(n) {
		if sameNode(child, module) {
			continue
		}
		switch child.Type() {
		case "dotted_name":
			d := c.dotted(child)
			if len(d.Names) > 0 {
				names = append(names, &pythonast.ImportAsName{External: d.Names[len(d.Names)-1]})
			}
		case "aliased_import":
			parts := split(child, "as")
			if len(parts[""]) == 0 || len(parts["as"]) == 0 {
				continue
			}
			d := c.dotted(parts[""][0])
			if len(d.Names) > 0 {
				names = append(names, &pythonast.ImportAsName{
					External: d.Names[len(d.Names)-1],
					Internal: c.name(parts["as"][0], pythonast.Import),
				})
			}
		case "wildcard_import":
			wildcard = c.word(child)
		}
	}

	if c.isCImport(n) {
		return &pythonast.FromCImportStmt{
			From:    c.keyword(n, "from"),
			Dots:    dots,
			Package: pkg,
			Names:   names,
			EndPos:  end(n),
		}
	}
	return &pythonast.ImportFromStmt{
		From:     c.keyword(n, "from"),
		Dots:     dots,
		Package:  pkg,
		Names:    names,
		Wildcard: wildcard,
		EndPos:   end(n),
	}
}

// -- expressions

func (c *converter) badExpr(n *sitter.Node) *pythonast.BadExpr {
	return &pythonast.BadExpr{From: begin(n), To: end(n), Text: c.text(n)}
}

// target converts an assignable expression, marking names and attributes with usage
func (c *converter) target(n *sitter.Node, usage pythonast.Usage) pythonast.Expr {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "identifier", "keyword_identifier":
		return c.name(n, usage)
	case "attribute":
		parts := split(n, ".")
		return &pythonast.AttributeExpr{
			Value:     c.must(first(parts[""]), n),
			Attribute: c.word(first(parts["."])),
			Usage:     usage,
		}
	case "expression_list", "pattern_list", "variables", "tuple", "tuple_pattern":
		children := named(n)
		if len(children) == 1 && n.ChildCount() == 1 {
			return c.target(children[0], usage)
		}
		tup := &pythonast.TupleExpr{From: begin(n), To: end(n), Usage: usage}
		for _, child := range children {
			tup.Elts = append(tup.Elts, c.target(child, usage))
		}
		return tup
	case "list", "list_pattern":
		list := &pythonast.ListExpr{From: begin(n), To: end(n), Usage: usage}
		for _, child := range named(n) {
			list.Values = append(list.Values, c.target(child, usage))
		}
		return list
	case "parenthesized_expression", "list_splat_pattern", "list_splat":
		if children := named(n); len(children) == 1 {
			return c.target(children[0], usage)
		}
		return c.badExpr(n)
	default:
		return c.expr(n)
	}
}

// flatTargets splits a top-level "a, b" target into its elements
func (c *converter) flatTargets(n *sitter.Node, usage pythonast.Usage) []pythonast.Expr {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "expression_list", "pattern_list", "variables":
		var out []pythonast.Expr
		for _, child := range named(n) {
			out = append(out, c.target(child, usage))
		}
		return out
	default:
		return []pythonast.Expr{c.target(n, usage)}
	}
}

func (c *converter) expr(n *sitter.Node) pythonast.Expr {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "identifier", "keyword_identifier", "none", "true", "false":
		return c.name(n, pythonast.Evaluate)
	case "attribute":
		return c.target(n, pythonast.Evaluate)
	case "dotted_name":
		var out pythonast.Expr
		for _, child := range named(n) {
			if out == nil {
				out = c.name(child, pythonast.Evaluate)
				continue
			}
			out = &pythonast.AttributeExpr{Value: out, Attribute: c.word(child), Usage: pythonast.Evaluate}
		}
		if out == nil {
			return c.badExpr(n)
		}
		return out
	case "call":
		children := named(n)
		call := &pythonast.CallExpr{
			Func:       c.must(first(children), n),
			RightParen: end(n),
		}
		if len(children) > 1 {
			call.Args = c.arguments(last(children))
		}
		return call
	case "integer", "float":
		return &pythonast.NumberExpr{Number: c.word(n)}
	case "string":
		return &pythonast.StringExpr{Strings: []*pythonast.Word{c.word(n)}}
	case "concatenated_string":
		s := &pythonast.StringExpr{}
		for _, child := range named(n) {
			s.Strings = append(s.Strings, c.word(child))
		}
		if len(s.Strings) == 0 {
			return c.badExpr(n)
		}
		return s
	case "tuple", "expression_list":
		// "x = c" has an expression_list of one element without a comma
		if children := named(n); n.Type() == "expression_list" && len(children) == 1 && n.ChildCount() == 1 {
			return c.expr(children[0])
		}
		tup := &pythonast.TupleExpr{From: begin(n), To: end(n), Usage: pythonast.Evaluate}
		for _, child := range named(n) {
			tup.Elts = append(tup.Elts, c.expr(child))
		}
		return tup
	case "list":
		list := &pythonast.ListExpr{From: begin(n), To: end(n), Usage: pythonast.Evaluate}
		for _, child := range named(n) {
			list.Values = append(list.Values, c.expr(child))
		}
		return list
	case "dictionary":
		dict := &pythonast.DictExpr{From: begin(n), To: end(n)}
		for _, child := range named(n) {
			if child.Type() != "pair" {
				continue
			}
			parts := split(child, ":")
			dict.Items = append(dict.Items, &pythonast.KeyValuePair{
				Key:   c.must(first(parts[""]), child),
				Value: c.must(first(parts[":"]), child),
			})
		}
		return dict
	case "binary_operator", "boolean_operator":
		operands := named(n)
		if len(operands) < 2 {
			return c.badExpr(n)
		}
		return &pythonast.BinaryExpr{
			Left:  c.expr(operands[0]),
			Op:    c.operator(n),
			Right: c.expr(last(operands)),
		}
	case "comparison_operator":
		children := named(n)
		if len(children) < 2 || n.ChildCount() < 3 {
			return c.badExpr(n)
		}
		return &pythonast.BinaryExpr{
			Left:  c.expr(children[0]),
			Op:    c.word(n.Child(1)),
			Right: c.expr(children[1]),
		}
	case "unary_operator":
		if arg := first(named(n)); arg != nil {
			switch arg.Type() {
			case "integer", "float":
				return &pythonast.NumberExpr{Number: c.word(n)}
			}
		}
		return c.badExpr(n)
	case "parenthesized_expression", "type":
		if children := named(n); len(children) == 1 {
			return c.expr(children[0])
		}
		return c.badExpr(n)
	case "lambda":
		lambda := &pythonast.LambdaExpr{
			Lambda:     begin(n),
			Parameters: c.parameters(ofType(n, "lambda_parameters")),
			Body:       c.expr(first(split(n, ":")[":"])),
		}
		if lambda.Body == nil {
			return c.badExpr(n)
		}
		return lambda
	default:
		return c.badExpr(n)
	}
}

func (c *converter) arguments(n *sitter.Node) []*pythonast.Argument {
	if n == nil {
		return nil
	}
	if n.Type() == "generator_expression" {
		return []*pythonast.Argument{{Value: c.badExpr(n)}}
	}
	var args []*pythonast.Argument
	for _, child := range named(n) {
		switch child.Type() {
		case "keyword_argument":
			parts := split(child, "=")
			args = append(args, &pythonast.Argument{
				Name:  &pythonast.NameExpr{Ident: c.word(first(parts[""]))},
				Value: c.must(first(parts["="]), child),
			})
		case "list_splat", "dictionary_splat":
			if inner := named(child); len(inner) == 1 {
				args = append(args, &pythonast.Argument{Value: c.expr(inner[0])})
			}
		default:
			args = append(args, &pythonast.Argument{Value: c.expr(child)})
		}
	}
	return args
}
