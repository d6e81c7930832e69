package asm

// OperandKind is the kind of an operand, selected by its prefix.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER  = OperandKind(0) // r
	OPERAND_IMMEDIATE = OperandKind(1) // #
	OPERAND_DIRECT    = OperandKind(2) // $
)

// Operand is a single parsed operand.
type Operand struct {
	Kind  OperandKind // Kind of operand.
	Value int64       // Register index, immediate value, or direct address.
	Token string      // Source text of the operand.
}

// Statement is a parsed line of source.
type Statement struct {
	LineNo   int       // 1-based line number.
	Line     string    // Source text of the line.
	Mnemonic string    // Lower case mnemonic.
	Operands []Operand // Operands, in source order.
}
