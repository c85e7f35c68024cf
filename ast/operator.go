// operator.go contains the operator tags attached to Unary and Binary
// nodes. Each one corresponds to a hand-rolled code-generator kernel;
// see the codegen package for the assembly fragment each produces.
//
// This follows the tagged-constant shape the teacher project used for
// its flat RPN instruction stream (one doc comment per operator,
// string-valued so the tag doubles as the operator's source spelling),
// generalized from a single byte per op to a short string since several
// of this language's operators - "==", "<=", "&&", "^^" and friends -
// are two characters wide.
package ast

// UnaryOp identifies a prefix operator.
type UnaryOp string

const (
	// OpNeg is arithmetic negation: computes 256-x (mod 256), i.e.
	// two's-complement negation of an 8-bit value.
	OpNeg UnaryOp = "-"

	// OpCompl is bitwise complement: x XOR 0xFF.
	OpCompl UnaryOp = "~"

	// OpNot is logical NOT: yields 1 if the operand is zero, else 0.
	// Distinct from OpCompl - see the code generator's notKernel.
	OpNot UnaryOp = "!"
)

// BinaryOp identifies an infix operator.
type BinaryOp string

const (
	// OpAdd is the sum of both operands, modulo 256.
	OpAdd BinaryOp = "+"

	// OpSub is the left operand minus the right, modulo 256.
	OpSub BinaryOp = "-"

	// OpAnd is the bitwise AND of both operands.
	OpAnd BinaryOp = "&"

	// OpOr is the bitwise OR of both operands.
	OpOr BinaryOp = "|"

	// OpXor is the bitwise XOR of both operands.
	OpXor BinaryOp = "^"

	// OpShl shifts the left operand left by the right operand's
	// value, 6502 ASL semantics (shifting by more than 7 yields 0).
	OpShl BinaryOp = "<<"

	// OpShr shifts the left operand right by the right operand's
	// value, 6502 LSR semantics.
	OpShr BinaryOp = ">>"

	// OpEq yields 1 if both operands are equal, else 0.
	OpEq BinaryOp = "=="

	// OpNeq yields 1 if the operands differ, else 0.
	OpNeq BinaryOp = "!="

	// OpLt yields 1 if the left operand is less than the right,
	// using unsigned comparison.
	OpLt BinaryOp = "<"

	// OpLe yields 1 if the left operand is less than or equal to
	// the right, using unsigned comparison.
	OpLe BinaryOp = "<="

	// OpGt yields 1 if the left operand is greater than the right,
	// using unsigned comparison.
	OpGt BinaryOp = ">"

	// OpGe yields 1 if the left operand is greater than or equal to
	// the right, using unsigned comparison.
	OpGe BinaryOp = ">="

	// OpLogAnd is short-circuit-shaped but both operands are always
	// evaluated (there are no side-effecting expressions in this
	// language besides input(), and the spec does not require
	// short-circuiting); yields 1 if both operands are nonzero.
	OpLogAnd BinaryOp = "&&"

	// OpLogOr yields 1 if either operand is nonzero.
	OpLogOr BinaryOp = "||"

	// OpLogXor yields 1 if exactly one operand is nonzero.
	OpLogXor BinaryOp = "^^"
)
