// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package codegen lowers IR nodes to machine instructions.
//
// Binary arithmetic keeps one operand in a single scratch floor cell.
// Comparisons are built from JUMPZ and JUMPN only; every condition
// branches to its target label when it is false, and falls through when
// it is true.
package codegen

import (
	"log"

	"github.com/ezrec/hrmc/hrm"
	"github.com/ezrec/hrmc/internal"
	"github.com/ezrec/hrmc/ir"
)

// loopExit is the label a break jumps to.
type loopExit struct {
	label *hrm.Label
	used  bool
}

// Generator emits the instructions for a program.
type Generator struct {
	Verbose bool  // If set, logs every statement generated.
	Scratch uint8 // Floor address reserved for arithmetic.

	code   []hrm.Instruction
	labels int
	loops  internal.Stack[*loopExit]
}

// NewGenerator creates a generator using a scratch address.
func NewGenerator(scratch uint8) *Generator {
	return &Generator{Scratch: scratch}
}

// Generate lowers top level nodes into a program.
func (g *Generator) Generate(nodes []ir.Node) (prog *hrm.Program, err error) {
	g.code = nil
	g.labels = 0
	g.loops.Reset()

	for _, node := range nodes {
		e, ok := ir.AsExpression(node)
		if !ok {
			err = &ErrNode{Node: node, Err: ErrInvalidStatement}
			return
		}

		if g.Verbose {
			log.Printf("codegen: %v\n", node)
		}

		err = g.expression(e)
		if err != nil {
			return
		}
	}

	prog = &hrm.Program{Instructions: g.code}
	return
}

func (g *Generator) emit(in ...hrm.Instruction) {
	g.code = append(g.code, in...)
}

// place numbers a label and emits its definition.
func (g *Generator) place(label *hrm.Label) (err error) {
	if g.labels >= hrm.LABEL_LIMIT {
		err = ErrLabelOverflow
		return
	}

	label.Index = g.labels
	g.labels++

	g.emit(hrm.MakeLabel(label))
	return
}

// reference resolves a value to a memory operand.
func reference(v ir.Value) (address uint8, indirect bool, err error) {
	ref, err := v.Reference()
	if err != nil {
		return
	}

	switch ref.Mode {
	case ir.REF_POINTER:
		address = ref.Address
	case ir.REF_POINTER_POINTER:
		address = ref.Address
		indirect = true
	default:
		err = ir.ErrNumberInsertion
	}

	return
}

// memory emits an instruction on the cell a value refers to.
func (g *Generator) memory(op hrm.Opcode, v ir.Value) (err error) {
	address, indirect, err := reference(v)
	if err != nil {
		err = &ErrNode{Node: v, Err: err}
		return
	}

	g.emit(hrm.MakeMemory(op, address, indirect))
	return
}

// usesScratch reports if evaluating an expression writes the scratch cell.
func usesScratch(e ir.Expression) bool {
	switch node := e.(type) {
	case *ir.Add, *ir.Subtract:
		return true
	case *ir.Output:
		return usesScratch(node.Argument)
	case *ir.Assign:
		return usesScratch(node.Source)
	}
	return false
}

// body emits a statement list.
func (g *Generator) body(body []ir.Expression) (err error) {
	for _, e := range body {
		err = g.expression(e)
		if err != nil {
			return
		}
	}
	return
}

// loop emits a loop body with a break target.
func (g *Generator) loop(exit *loopExit, body []ir.Expression) (err error) {
	g.loops.Push(exit)
	defer g.loops.Pop()

	return g.body(body)
}

// expression emits a node, leaving its value (if any) in the accumulator.
func (g *Generator) expression(e ir.Expression) (err error) {
	switch node := e.(type) {
	case *ir.Deref:
		err = g.memory(hrm.OP_COPYFROM, node)
	case *ir.Add:
		if usesScratch(node.Right) {
			err = &ErrNode{Node: node, Err: ErrScratchConflict}
			return
		}
		if err = g.expression(node.Left); err != nil {
			return
		}
		g.emit(hrm.MakeMemory(hrm.OP_COPYTO, g.Scratch, false))
		if err = g.expression(node.Right); err != nil {
			return
		}
		g.emit(hrm.MakeMemory(hrm.OP_ADD, g.Scratch, false))
	case *ir.Subtract:
		if usesScratch(node.Left) {
			err = &ErrNode{Node: node, Err: ErrScratchConflict}
			return
		}
		if err = g.expression(node.Right); err != nil {
			return
		}
		g.emit(hrm.MakeMemory(hrm.OP_COPYTO, g.Scratch, false))
		if err = g.expression(node.Left); err != nil {
			return
		}
		g.emit(hrm.MakeMemory(hrm.OP_SUB, g.Scratch, false))
	case *ir.Assign:
		if err = g.expression(node.Source); err != nil {
			return
		}
		err = g.memory(hrm.OP_COPYTO, node.Target)
	case *ir.Output:
		if err = g.expression(node.Argument); err != nil {
			return
		}
		g.emit(hrm.MakeOutbox())
	case *ir.Input:
		g.emit(hrm.MakeInbox())
	case *ir.Increment:
		err = g.memory(hrm.OP_BUMPUP, node.Target)
	case *ir.Decrement:
		err = g.memory(hrm.OP_BUMPDN, node.Target)
	case *ir.Loop:
		top := hrm.NewLabel()
		exit := &loopExit{label: hrm.NewLabel()}
		if err = g.place(top); err != nil {
			return
		}
		if err = g.loop(exit, node.Body); err != nil {
			return
		}
		g.emit(hrm.MakeJump(hrm.OP_JUMP, top))
		if exit.used {
			err = g.place(exit.label)
		}
	case *ir.While:
		top := hrm.NewLabel()
		bottom := hrm.NewLabel()
		if err = g.place(top); err != nil {
			return
		}
		if err = g.branch(node.Condition, bottom); err != nil {
			return
		}
		if err = g.loop(&loopExit{label: bottom}, node.Body); err != nil {
			return
		}
		g.emit(hrm.MakeJump(hrm.OP_JUMP, top))
		err = g.place(bottom)
	case *ir.If:
		end := hrm.NewLabel()
		if err = g.branch(node.Condition, end); err != nil {
			return
		}
		if err = g.body(node.Body); err != nil {
			return
		}
		err = g.place(end)
	case *ir.IfElse:
		otherwise := hrm.NewLabel()
		end := hrm.NewLabel()
		if err = g.branch(node.Condition, otherwise); err != nil {
			return
		}
		if err = g.body(node.Then); err != nil {
			return
		}
		g.emit(hrm.MakeJump(hrm.OP_JUMP, end))
		if err = g.place(otherwise); err != nil {
			return
		}
		if err = g.body(node.Else); err != nil {
			return
		}
		err = g.place(end)
	case *ir.Break:
		exit, ok := g.loops.Peek()
		if !ok {
			err = &ErrNode{Node: node, Err: ErrBreakOutsideLoop}
			return
		}
		exit.used = true
		g.emit(hrm.MakeJump(hrm.OP_JUMP, exit.label))
	default:
		err = &ErrNode{Node: e, Err: ErrInvalidStatement}
	}

	return
}

// branch emits a jump to target taken when cond is false.
func (g *Generator) branch(cond ir.Logical, target *hrm.Label) (err error) {
	cmp, ok := cond.(*ir.Compare)
	if !ok {
		err = &ErrNode{Node: cond, Err: ErrInvalidStatement}
		return
	}

	if err = g.expression(cmp.Operand); err != nil {
		return
	}

	jump := func(op hrm.Opcode, label *hrm.Label) {
		g.emit(hrm.MakeJump(op, label))
	}

	switch cmp.Test {
	case ir.IS_ZERO:
		skip := hrm.NewLabel()
		jump(hrm.OP_JUMPZ, skip)
		jump(hrm.OP_JUMP, target)
		err = g.place(skip)
	case ir.NOT_ZERO:
		jump(hrm.OP_JUMPZ, target)
	case ir.LESS_THAN_ZERO:
		skip := hrm.NewLabel()
		jump(hrm.OP_JUMPN, skip)
		jump(hrm.OP_JUMP, target)
		err = g.place(skip)
	case ir.GREATER_OR_EQUAL_TO_ZERO:
		jump(hrm.OP_JUMPN, target)
	case ir.GREATER_THAN_ZERO:
		jump(hrm.OP_JUMPZ, target)
		jump(hrm.OP_JUMPN, target)
	case ir.LESS_OR_EQUAL_TO_ZERO:
		skip := hrm.NewLabel()
		jump(hrm.OP_JUMPN, skip)
		jump(hrm.OP_JUMPZ, skip)
		jump(hrm.OP_JUMP, target)
		err = g.place(skip)
	default:
		err = &ErrNode{Node: cond, Err: ErrInvalidStatement}
	}

	return
}
