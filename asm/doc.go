// Package asm implements the recasm assembler pipeline.
//
// Each source line is parsed into a Statement, its addressing mode is
// resolved against an isa.Model, and it is encoded into a single word of
// the model's Layout. Lines are independent of each other: there are no
// labels, macros or sections, so an Assembler may encode lines on several
// workers and still produce words in source order.
//
// Operands are prefixed by their kind:
//
//	r3        register 3
//	#-12      immediate value
//	$0x1f0    direct address
//	#(1<<4)   constant expression, evaluated at assembly time
//
// Text following ';' is a comment.
package asm
