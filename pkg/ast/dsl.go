package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Scalar(value int64) *ScalarLiteral {
	return NewScalarLiteral(value)
}

func Arr(elements ...int64) *ArrayLiteral {
	return NewArrayLiteral(elements)
}

func Zeros(length int64) *ArrayByLength {
	return NewArrayByLength(length)
}

func Idx(name string, index Literal) *IndexExpression {
	return NewIndexExpression(ID(name), index)
}

// Statement helpers.

func Decl(name string, value Literal) *Declaration {
	return NewDeclaration(ID(name), value)
}

func Assign(target Expression, value Literal) *Assignment {
	return NewAssignment(target, value)
}

func Print(expr Expression) *PrintStatement {
	return NewPrintStatement(expr)
}

func Test5G() *SpecialCommand {
	return NewSpecialCommand("test5g")
}

func Prog(body ...Statement) *Program {
	return NewProgram("", body)
}
