package ast

type NodeType string

const (
	NodeIdentifier      NodeType = "Identifier"
	NodeScalarLiteral   NodeType = "ScalarLiteral"
	NodeArrayLiteral    NodeType = "ArrayLiteral"
	NodeArrayByLength   NodeType = "ArrayByLength"
	NodeIndexExpression NodeType = "IndexExpression"
	NodeDeclaration     NodeType = "Declaration"
	NodeAssignment      NodeType = "Assignment"
	NodePrintStatement  NodeType = "PrintStatement"
	NodeSpecialCommand  NodeType = "SpecialCommand"
	NodeProgram         NodeType = "Program"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Literal interface {
	Expression
	literalNode()
}

type literalMarker struct{}

func (literalMarker) literalNode() {}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type ScalarLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value int64 `json:"value"`
}

func NewScalarLiteral(value int64) *ScalarLiteral {
	return &ScalarLiteral{nodeImpl: newNodeImpl(NodeScalarLiteral), Value: value}
}

// ArrayLiteral is the `1 | 2 | 3` form.
type ArrayLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Elements []int64 `json:"elements"`
}

func NewArrayLiteral(elements []int64) *ArrayLiteral {
	return &ArrayLiteral{nodeImpl: newNodeImpl(NodeArrayLiteral), Elements: elements}
}

// ArrayByLength is the `[n]` form; it evaluates to n zeros.
type ArrayByLength struct {
	nodeImpl
	expressionMarker
	literalMarker

	Length int64 `json:"length"`
}

func NewArrayByLength(length int64) *ArrayByLength {
	return &ArrayByLength{nodeImpl: newNodeImpl(NodeArrayByLength), Length: length}
}

// Expressions

// IndexExpression reads or writes positions of an array. A scalar index
// addresses one element (0 meaning the whole array); an array index is a slice.
type IndexExpression struct {
	nodeImpl
	expressionMarker

	Object *Identifier `json:"object"`
	Index  Literal     `json:"index"`
}

func NewIndexExpression(object *Identifier, index Literal) *IndexExpression {
	return &IndexExpression{nodeImpl: newNodeImpl(NodeIndexExpression), Object: object, Index: index}
}

// Statements

// Declaration binds Name to a fresh value. The width tag written in source
// is not retained.
type Declaration struct {
	nodeImpl
	statementMarker

	Name  *Identifier `json:"name"`
	Value Literal     `json:"value"`
}

func NewDeclaration(name *Identifier, value Literal) *Declaration {
	return &Declaration{nodeImpl: newNodeImpl(NodeDeclaration), Name: name, Value: value}
}

// Assignment writes Value into Target. Target is an Identifier or an
// IndexExpression; any Literal target is rejected before evaluation.
type Assignment struct {
	nodeImpl
	statementMarker

	Target Expression `json:"target"`
	Value  Literal    `json:"value"`
}

func NewAssignment(target Expression, value Literal) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Target: target, Value: value}
}

type PrintStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewPrintStatement(expr Expression) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement), Expression: expr}
}

type SpecialCommand struct {
	nodeImpl
	statementMarker

	Name string `json:"name"`
}

func NewSpecialCommand(name string) *SpecialCommand {
	return &SpecialCommand{nodeImpl: newNodeImpl(NodeSpecialCommand), Name: name}
}

// Program is a parsed source unit.
type Program struct {
	nodeImpl

	Filename string      `json:"filename,omitempty"`
	Body     []Statement `json:"body"`
}

func NewProgram(filename string, body []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Filename: filename, Body: body}
}
