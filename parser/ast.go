/*
 * jsonmap
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

// Lhs
// ===

/*
Lhs is the left-hand side of a statement: something a right-hand expression
is bound to, or a marker for a no-op / anonymous position. It is a closed
sum type realized as an interface with one struct per kind, following the
design note that an explicit sum type is preferable here to a dynamically
dispatched base class.
*/
type Lhs interface {
	Pos() int
	lhsNode()
}

/*
NamedLhs binds the evaluated right-hand side to a key in the output object.
*/
type NamedLhs struct {
	pos  int
	Name string
}

/*
NoOpLhs arises from a stray end-of-statement marker; it contributes nothing
to the output.
*/
type NoOpLhs struct {
	pos int
}

/*
AnonymousLhs is used for the single-expression bracket body of Map: its
Rhs value is returned as-is, without being wrapped into a key/value pair.
*/
type AnonymousLhs struct {
	pos int
}

func (n NamedLhs) Pos() int     { return n.pos }
func (n NoOpLhs) Pos() int      { return n.pos }
func (n AnonymousLhs) Pos() int { return n.pos }

func (NamedLhs) lhsNode()     {}
func (NoOpLhs) lhsNode()      {}
func (AnonymousLhs) lhsNode() {}

// Rhs
// ===

/*
Rhs is the right-hand side of a statement: an expression that evaluates to
a JSON value. Like Lhs, this is a closed sum type.
*/
type Rhs interface {
	Pos() int
	rhsNode()
}

/*
NoOpRhs evaluates to nothing; it pairs with NoOpLhs.
*/
type NoOpRhs struct {
	pos int
}

/*
ValueLiteral is a double-quoted string literal.
*/
type ValueLiteral struct {
	pos   int
	Value string
}

/*
NumericLiteral is a bare word that parsed as a finite floating point number.
*/
type NumericLiteral struct {
	pos   int
	Value float64
}

/*
NullLiteral is the bare word "null".
*/
type NullLiteral struct {
	pos int
}

/*
Interpolation is a back-quoted string. The tokenizer recognizes it; the
evaluator rejects it with a NotImplemented error, per the spec's documented
open item.
*/
type Interpolation struct {
	pos     int
	Pattern string
}

/*
Reference resolves a dotted path against either the current scope, or, if
Global is set, the original input (the "universe").
*/
type Reference struct {
	pos    int
	Path   []Segment
	Global bool
}

/*
ListIndexReference is a reference that began with "&?". Its path segments
are integers rather than strings, and an empty path refers to "the current
item" of an enclosing Map.
*/
type ListIndexReference struct {
	pos    int
	Path   []Segment
	Global bool
}

/*
Array is an ordered list literal of right-hand-side expressions.
*/
type Array struct {
	pos      int
	Elements []Rhs
}

/*
Scope is an inline object: a nested statement list evaluated against the
current scope.
*/
type Scope struct {
	pos        int
	Statements []Statement
}

/*
Bind narrows the current scope to the object a reference resolves to, and
evaluates its body against that narrower scope.
*/
type Bind struct {
	pos       int
	Reference *Reference
	Body      []Statement
}

/*
Map evaluates its body once per element of Source, with the element as the
new scope, and collects the results into a list.
*/
type Map struct {
	pos    int
	Source Rhs // Array or Reference
	Body   []Statement
}

/*
Zip evaluates its body once per positional tuple across Sources (truncated
to the shortest), merging each tuple's per-source values into one scope.
*/
type Zip struct {
	pos     int
	Sources []Rhs // each Array or Reference
	Body    []Statement
}

func (n NoOpRhs) Pos() int            { return n.pos }
func (n ValueLiteral) Pos() int       { return n.pos }
func (n NumericLiteral) Pos() int     { return n.pos }
func (n NullLiteral) Pos() int        { return n.pos }
func (n Interpolation) Pos() int      { return n.pos }
func (n Reference) Pos() int          { return n.pos }
func (n ListIndexReference) Pos() int { return n.pos }
func (n Array) Pos() int              { return n.pos }
func (n Scope) Pos() int              { return n.pos }
func (n Bind) Pos() int               { return n.pos }
func (n Map) Pos() int                { return n.pos }
func (n Zip) Pos() int                { return n.pos }

func (NoOpRhs) rhsNode()            {}
func (ValueLiteral) rhsNode()       {}
func (NumericLiteral) rhsNode()     {}
func (NullLiteral) rhsNode()        {}
func (Interpolation) rhsNode()      {}
func (Reference) rhsNode()          {}
func (ListIndexReference) rhsNode() {}
func (Array) rhsNode()              {}
func (Scope) rhsNode()              {}
func (Bind) rhsNode()               {}
func (Map) rhsNode()                {}
func (Zip) rhsNode()                {}

// Statement
// =========

/*
Statement is a single top-level or nested unit: an Lhs bound to an Rhs.
*/
type Statement struct {
	Lhs Lhs
	Rhs Rhs
}
