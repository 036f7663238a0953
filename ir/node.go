// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ir

import (
	"fmt"
)

// Number is a literal. It is only a Value; it cannot be emitted.
type Number struct {
	Value uint8
}

func (n *Number) Kind() Kind { return NUMBER }

func (n *Number) String() string { return fmt.Sprintf("%d", n.Value) }

// Reference of a literal is the literal itself.
func (n *Number) Reference() (Reference, error) {
	return Literal(n.Value), nil
}

// IsLiteralZero reports if the node is the literal 0.
func IsLiteralZero(n Node) bool {
	num, ok := n.(*Number)
	return ok && num.Value == 0
}

// Deref reads the memory cell its operand refers to.
type Deref struct {
	Operand Value
}

func (d *Deref) Kind() Kind   { return DEREF }
func (d *Deref) expression() {}

func (d *Deref) String() string { return "*" + d.Operand.String() }

// Reference of a dereference is a pointer when the operand is a literal,
// and a pointer-pointer when the operand is itself a direct dereference.
func (d *Deref) Reference() (ref Reference, err error) {
	switch operand := d.Operand.(type) {
	case *Number:
		return Pointer(operand.Value), nil
	case *Deref:
		var inner Reference
		inner, err = operand.Reference()
		if err != nil {
			return
		}
		if inner.Mode == REF_POINTER {
			return PointerPointer(inner.Address), nil
		}
	}

	err = ErrNumberInsertion
	return
}

// Add computes Left + Right.
type Add struct {
	Left  Expression
	Right Expression
}

func (a *Add) Kind() Kind   { return ADD }
func (a *Add) expression() {}

func (a *Add) String() string { return fmt.Sprintf("(%v + %v)", a.Left, a.Right) }

// Subtract computes Left - Right.
type Subtract struct {
	Left  Expression
	Right Expression
}

func (s *Subtract) Kind() Kind   { return SUBTRACT }
func (s *Subtract) expression() {}

func (s *Subtract) String() string { return fmt.Sprintf("(%v - %v)", s.Left, s.Right) }

// Assign stores Source into Target.
type Assign struct {
	Target Value
	Source Expression
}

func (a *Assign) Kind() Kind   { return ASSIGN }
func (a *Assign) expression() {}

func (a *Assign) String() string { return fmt.Sprintf("%v = %v", a.Target, a.Source) }

// Output sends its argument to the outbox.
type Output struct {
	Argument Expression
}

func (o *Output) Kind() Kind   { return OUTPUT }
func (o *Output) expression() {}

func (o *Output) String() string { return fmt.Sprintf("output(%v)", o.Argument) }

// Input takes the next inbox value.
type Input struct{}

func (i *Input) Kind() Kind   { return INPUT }
func (i *Input) expression() {}

func (i *Input) String() string { return "input()" }

// Loop repeats its body until a break.
type Loop struct {
	Body []Expression
}

func (l *Loop) Kind() Kind   { return LOOP }
func (l *Loop) expression() {}

func (l *Loop) String() string { return "loop " + listString(l.Body) }

// While repeats its body as long as its condition holds.
type While struct {
	Condition Logical
	Body      []Expression
}

func (w *While) Kind() Kind   { return WHILE }
func (w *While) expression() {}

func (w *While) String() string {
	return fmt.Sprintf("while (%v) %v", w.Condition, listString(w.Body))
}

// If runs its body when its condition holds.
type If struct {
	Condition Logical
	Body      []Expression
}

func (i *If) Kind() Kind   { return IF }
func (i *If) expression() {}

func (i *If) String() string {
	return fmt.Sprintf("if (%v) %v", i.Condition, listString(i.Body))
}

// IfElse runs Then when its condition holds, else Else.
type IfElse struct {
	Condition Logical
	Then      []Expression
	Else      []Expression
}

func (i *IfElse) Kind() Kind   { return IF_ELSE }
func (i *IfElse) expression() {}

func (i *IfElse) String() string {
	return fmt.Sprintf("if (%v) %v else %v", i.Condition, listString(i.Then), listString(i.Else))
}

// Increment bumps a memory cell up by one.
type Increment struct {
	Target Value
}

func (i *Increment) Kind() Kind   { return INCREMENT }
func (i *Increment) expression() {}

func (i *Increment) String() string { return fmt.Sprintf("%v++", i.Target) }

// Decrement bumps a memory cell down by one.
type Decrement struct {
	Target Value
}

func (d *Decrement) Kind() Kind   { return DECREMENT }
func (d *Decrement) expression() {}

func (d *Decrement) String() string { return fmt.Sprintf("%v--", d.Target) }

// Break leaves the innermost loop.
type Break struct{}

func (b *Break) Kind() Kind   { return BREAK }
func (b *Break) expression() {}

func (b *Break) String() string { return "break" }
