package filter

// nodeTypeTable is the fixed, exhaustive map from AST node type name to
// its options config path, per spec.md §4.4 (which names `literals.numeric
// -> NumericLiteral` as one of its own example entries). See DESIGN.md
// for the derivation of this 6+2+13+4 split (statements, loops,
// expressions, literals) and why BooleanLiteral/NullLiteral/
// BreakStatement are deliberately absent (they default to "keep").
var nodeTypeTable = map[string]string{
	// statements.* (6)
	"ExpressionStatement": "statements.expr",
	"VariableDeclaration": "statements.declare",
	"IfStatement":         "statements.if",
	"ReturnStatement":     "statements.return",
	"ThrowStatement":      "statements.throw",
	"TryStatement":        "statements.try",

	// loops.* (2)
	"ForStatement":   "loops.for",
	"WhileStatement": "loops.while",

	// expressions.* (13)
	"Identifier":              "expressions.identifier",
	"MemberExpression":        "expressions.member",
	"AssignmentExpression":    "expressions.assign",
	"UpdateExpression":        "expressions.update",
	"CallExpression":          "expressions.call",
	"NewExpression":           "expressions.new",
	"BinaryExpression":        "expressions.binary",
	"LogicalExpression":       "expressions.logical",
	"UnaryExpression":         "expressions.unary",
	"SequenceExpression":      "expressions.sequence",
	"ConditionalExpression":   "expressions.conditional",
	"ArrowFunctionExpression": "expressions.arrow",
	"FunctionExpression":      "expressions.function",

	// literals.* (4)
	"ArrayExpression":  "literals.array",
	"ObjectExpression": "literals.object",
	"NumericLiteral":   "literals.numeric",
	"StringLiteral":    "literals.string",
}

// NodeTypePath returns the options path a given AST type maps to, and
// whether the type is one of the filterable entries at all.
func NodeTypePath(nodeType string) (string, bool) {
	path, ok := nodeTypeTable[nodeType]
	return path, ok
}
