/*
 * jsonmap
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"bytes"
	"fmt"
	"strings"
)

// AST equality
// ============

/*
EqualStatements compares two statement lists structurally, ignoring source
position, and reports the first difference found. It exists so tests can
assert on parser output without hand-writing a deep-equal for every node
kind.
*/
func EqualStatements(a, b []Statement) (bool, string) {
	return equalStatementList("program", a, b)
}

func equalStatementList(path string, a, b []Statement) (bool, string) {
	if len(a) != len(b) {
		return false, fmt.Sprintf("%s: statement count differs: %d vs %d\n%s", path, len(a), len(b), dumpBoth(a, b))
	}

	for i := range a {
		childPath := fmt.Sprintf("%s[%d]", path, i)
		if ok, msg := equalStatement(childPath, a[i], b[i]); !ok {
			return false, msg
		}
	}

	return true, ""
}

func equalStatement(path string, a, b Statement) (bool, string) {
	if ok, msg := equalLhs(path+".lhs", a.Lhs, b.Lhs); !ok {
		return false, msg
	}
	return equalRhs(path+".rhs", a.Rhs, b.Rhs)
}

func equalLhs(path string, a, b Lhs) (bool, string) {
	switch an := a.(type) {
	case NamedLhs:
		bn, ok := b.(NamedLhs)
		if !ok || an.Name != bn.Name {
			return false, fmt.Sprintf("%s: NamedLhs differs: %#v vs %#v", path, a, b)
		}
		return true, ""
	case NoOpLhs:
		if _, ok := b.(NoOpLhs); !ok {
			return false, fmt.Sprintf("%s: expected NoOpLhs, got %#v", path, b)
		}
		return true, ""
	case AnonymousLhs:
		if _, ok := b.(AnonymousLhs); !ok {
			return false, fmt.Sprintf("%s: expected AnonymousLhs, got %#v", path, b)
		}
		return true, ""
	}
	return false, fmt.Sprintf("%s: unrecognized Lhs kind %#v", path, a)
}

func equalRhs(path string, a, b Rhs) (bool, string) {
	switch an := a.(type) {
	case NoOpRhs:
		if _, ok := b.(NoOpRhs); !ok {
			return false, fmt.Sprintf("%s: expected NoOpRhs, got %#v", path, b)
		}
		return true, ""

	case ValueLiteral:
		bn, ok := b.(ValueLiteral)
		if !ok || an.Value != bn.Value {
			return false, fmt.Sprintf("%s: ValueLiteral differs: %#v vs %#v", path, a, b)
		}
		return true, ""

	case NumericLiteral:
		bn, ok := b.(NumericLiteral)
		if !ok || an.Value != bn.Value {
			return false, fmt.Sprintf("%s: NumericLiteral differs: %#v vs %#v", path, a, b)
		}
		return true, ""

	case NullLiteral:
		if _, ok := b.(NullLiteral); !ok {
			return false, fmt.Sprintf("%s: expected NullLiteral, got %#v", path, b)
		}
		return true, ""

	case Interpolation:
		bn, ok := b.(Interpolation)
		if !ok || an.Pattern != bn.Pattern {
			return false, fmt.Sprintf("%s: Interpolation differs: %#v vs %#v", path, a, b)
		}
		return true, ""

	case Reference:
		bn, ok := b.(Reference)
		if !ok || !equalPath(an.Path, bn.Path) || an.Global != bn.Global {
			return false, fmt.Sprintf("%s: Reference differs: %#v vs %#v", path, a, b)
		}
		return true, ""

	case ListIndexReference:
		bn, ok := b.(ListIndexReference)
		if !ok || !equalPath(an.Path, bn.Path) || an.Global != bn.Global {
			return false, fmt.Sprintf("%s: ListIndexReference differs: %#v vs %#v", path, a, b)
		}
		return true, ""

	case Array:
		bn, ok := b.(Array)
		if !ok {
			return false, fmt.Sprintf("%s: expected Array, got %#v", path, b)
		}
		if len(an.Elements) != len(bn.Elements) {
			return false, fmt.Sprintf("%s: Array length differs: %d vs %d", path, len(an.Elements), len(bn.Elements))
		}
		for i := range an.Elements {
			if ok, msg := equalRhs(fmt.Sprintf("%s[%d]", path, i), an.Elements[i], bn.Elements[i]); !ok {
				return false, msg
			}
		}
		return true, ""

	case Scope:
		bn, ok := b.(Scope)
		if !ok {
			return false, fmt.Sprintf("%s: expected Scope, got %#v", path, b)
		}
		return equalStatementList(path, an.Statements, bn.Statements)

	case Bind:
		bn, ok := b.(Bind)
		if !ok {
			return false, fmt.Sprintf("%s: expected Bind, got %#v", path, b)
		}
		if ok, msg := equalRhs(path+".reference", *an.Reference, *bn.Reference); !ok {
			return false, msg
		}
		return equalStatementList(path, an.Body, bn.Body)

	case Map:
		bn, ok := b.(Map)
		if !ok {
			return false, fmt.Sprintf("%s: expected Map, got %#v", path, b)
		}
		if ok, msg := equalRhs(path+".source", an.Source, bn.Source); !ok {
			return false, msg
		}
		return equalStatementList(path, an.Body, bn.Body)

	case Zip:
		bn, ok := b.(Zip)
		if !ok {
			return false, fmt.Sprintf("%s: expected Zip, got %#v", path, b)
		}
		if len(an.Sources) != len(bn.Sources) {
			return false, fmt.Sprintf("%s: Zip source count differs: %d vs %d", path, len(an.Sources), len(bn.Sources))
		}
		for i := range an.Sources {
			if ok, msg := equalRhs(fmt.Sprintf("%s.sources[%d]", path, i), an.Sources[i], bn.Sources[i]); !ok {
				return false, msg
			}
		}
		return equalStatementList(path, an.Body, bn.Body)
	}

	return false, fmt.Sprintf("%s: unrecognized Rhs kind %#v", path, a)
}

func equalPath(a, b []Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Dumping
// =======

/*
DumpStatements renders a statement list as an indented tree, for use in test
failure messages.
*/
func DumpStatements(stmts []Statement) string {
	var buf bytes.Buffer
	dumpStatementList(&buf, 0, stmts)
	return buf.String()
}

func dumpStatementList(buf *bytes.Buffer, indent int, stmts []Statement) {
	for _, stmt := range stmts {
		dumpStatement(buf, indent, stmt)
	}
}

func dumpStatement(buf *bytes.Buffer, indent int, stmt Statement) {
	pad := strings.Repeat("  ", indent)

	switch lhs := stmt.Lhs.(type) {
	case NamedLhs:
		buf.WriteString(fmt.Sprintf("%s%s =\n", pad, lhs.Name))
	case AnonymousLhs:
		buf.WriteString(fmt.Sprintf("%s<anonymous> =\n", pad))
	case NoOpLhs:
		buf.WriteString(fmt.Sprintf("%s<no-op>\n", pad))
		return
	}

	dumpRhs(buf, indent+1, stmt.Rhs)
}

func dumpRhs(buf *bytes.Buffer, indent int, rhs Rhs) {
	pad := strings.Repeat("  ", indent)

	switch n := rhs.(type) {
	case NoOpRhs:
		buf.WriteString(pad + "null (no-op)\n")
	case ValueLiteral:
		buf.WriteString(fmt.Sprintf("%sstring %q\n", pad, n.Value))
	case NumericLiteral:
		buf.WriteString(fmt.Sprintf("%snumber %v\n", pad, n.Value))
	case NullLiteral:
		buf.WriteString(pad + "null\n")
	case Interpolation:
		buf.WriteString(fmt.Sprintf("%sinterpolation `%s`\n", pad, n.Pattern))
	case Reference:
		buf.WriteString(fmt.Sprintf("%sreference %s\n", pad, describeReference(n.Path, n.Global)))
	case ListIndexReference:
		buf.WriteString(fmt.Sprintf("%slist-index-reference %s\n", pad, describeReference(n.Path, n.Global)))
	case Array:
		buf.WriteString(pad + "array\n")
		for _, el := range n.Elements {
			dumpRhs(buf, indent+1, el)
		}
	case Scope:
		buf.WriteString(pad + "scope\n")
		dumpStatementList(buf, indent+1, n.Statements)
	case Bind:
		buf.WriteString(fmt.Sprintf("%sbind %s\n", pad, describeReference(n.Reference.Path, n.Reference.Global)))
		dumpStatementList(buf, indent+1, n.Body)
	case Map:
		buf.WriteString(pad + "map\n")
		dumpRhs(buf, indent+1, n.Source)
		dumpStatementList(buf, indent+1, n.Body)
	case Zip:
		buf.WriteString(pad + "zip\n")
		for _, src := range n.Sources {
			dumpRhs(buf, indent+1, src)
		}
		dumpStatementList(buf, indent+1, n.Body)
	default:
		buf.WriteString(fmt.Sprintf("%s<unknown rhs %#v>\n", pad, rhs))
	}
}

func describeReference(path []Segment, global bool) string {
	var buf strings.Builder
	if global {
		buf.WriteString("!")
	}
	for i, seg := range path {
		if i > 0 {
			buf.WriteString(".")
		}
		if seg.IsIndex {
			buf.WriteString(fmt.Sprintf("%d", seg.Index))
		} else {
			buf.WriteString(seg.Name)
		}
	}
	return buf.String()
}

func dumpBoth(a, b []Statement) string {
	return "--- a ---\n" + DumpStatements(a) + "--- b ---\n" + DumpStatements(b)
}
