/*
 * jsonmap
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package eval

import (
	"github.com/jsonmap-lang/jsonmap/jmerr"
	"github.com/jsonmap-lang/jsonmap/parser"
)

/*
Evaluate walks stmts against input and returns the produced output value.
input is treated as both the initial scope and the universe; it is never
mutated.
*/
func Evaluate(stmts []parser.Statement, input interface{}) (interface{}, error) {
	return evalBody(NewContext(input), stmts)
}

/*
evalBody evaluates a statement list against ctx.Scope. A body consisting of
exactly one AnonymousLhs statement (the Map bracket-body shortcut) returns its Rhs value directly rather than
wrapping it in an object; everything else builds an *Object, preserving
statement order and skipping no-ops.
*/
func evalBody(ctx Context, stmts []parser.Statement) (interface{}, error) {
	if len(stmts) == 1 {
		if _, ok := stmts[0].Lhs.(parser.AnonymousLhs); ok {
			return evalRhs(ctx, stmts[0].Rhs)
		}
	}

	out := NewObject()

	for _, stmt := range stmts {
		switch lhs := stmt.Lhs.(type) {
		case parser.NoOpLhs:
			continue

		case parser.NamedLhs:
			val, err := evalRhs(ctx, stmt.Rhs)
			if err != nil {
				return nil, err
			}
			out.Set(lhs.Name, val)

		case parser.AnonymousLhs:
			val, err := evalRhs(ctx, stmt.Rhs)
			if err != nil {
				return nil, err
			}
			out.Set("", val)
		}
	}

	return out, nil
}

/*
evalRhs evaluates a single right-hand-side node against ctx.
*/
func evalRhs(ctx Context, rhs parser.Rhs) (interface{}, error) {
	switch n := rhs.(type) {
	case parser.NoOpRhs:
		return nil, nil

	case parser.ValueLiteral:
		return n.Value, nil

	case parser.NumericLiteral:
		return n.Value, nil

	case parser.NullLiteral:
		return nil, nil

	case parser.Interpolation:
		return nil, jmerr.NewEvaluationError(jmerr.NotImplemented, n.Pos(), "string interpolation is not implemented")

	case parser.Reference:
		root := ctx.Scope
		if n.Global {
			root = ctx.Universe
		}
		return resolve(root, n.Path, n.Pos())

	case parser.ListIndexReference:
		root := ctx.Scope
		if n.Global {
			root = ctx.Universe
		}
		return resolve(root, n.Path, n.Pos())

	case parser.Array:
		elements := make([]interface{}, 0, len(n.Elements))
		for _, el := range n.Elements {
			val, err := evalRhs(ctx, el)
			if err != nil {
				return nil, err
			}
			elements = append(elements, val)
		}
		return elements, nil

	case parser.Scope:
		return evalBody(ctx, n.Statements)

	case parser.Bind:
		return evalBind(ctx, n)

	case parser.Map:
		return evalMap(ctx, n)

	case parser.Zip:
		return evalZip(ctx, n)
	}

	return nil, jmerr.NewEvaluationError(jmerr.InvalidReference, rhs.Pos(), "unrecognized right-hand side node")
}

/*
evalBind resolves n.Reference against the current scope, requires it to be
an object, and evaluates the body with that object as the new scope.
*/
func evalBind(ctx Context, n parser.Bind) (interface{}, error) {
	root := ctx.Scope
	if n.Reference.Global {
		root = ctx.Universe
	}

	target, err := resolve(root, n.Reference.Path, n.Pos())
	if err != nil {
		return nil, err
	}

	if !isObjectValue(target) {
		return nil, jmerr.NewEvaluationError(jmerr.NotAnObject, n.Pos(), "bind target is not an object")
	}

	return evalBody(ctx.WithScope(target), n.Body)
}

/*
evalMap materializes n.Source into a sequence and evaluates the body once
per element, with that element as the new scope.
*/
func evalMap(ctx Context, n parser.Map) (interface{}, error) {
	seq, err := materializeSource(ctx, n.Source)
	if err != nil {
		return nil, err
	}

	results := make([]interface{}, 0, len(seq))
	for _, item := range seq {
		val, err := evalBody(ctx.WithScope(item), n.Body)
		if err != nil {
			return nil, err
		}
		results = append(results, val)
	}

	return results, nil
}

/*
evalZip materializes every source, normalizes and truncates them to tuples,
and evaluates the body once per tuple against the tuple's merged scope.
*/
func evalZip(ctx Context, n parser.Zip) (interface{}, error) {
	sources := make([][]interface{}, 0, len(n.Sources))
	for _, src := range n.Sources {
		seq, err := materializeSource(ctx, src)
		if err != nil {
			return nil, err
		}
		sources = append(sources, seq)
	}

	tuples := zipTuples(sources)

	results := make([]interface{}, 0, len(tuples))
	for _, tup := range tuples {
		val, err := evalBody(ctx.WithScope(tup), n.Body)
		if err != nil {
			return nil, err
		}
		results = append(results, val)
	}

	return results, nil
}

/*
materializeSource evaluates a Map/Zip source argument (already known by the
parser to be an Array literal or a Reference) and collates it into an
ordered sequence.
*/
func materializeSource(ctx Context, src parser.Rhs) ([]interface{}, error) {
	val, err := evalRhs(ctx, src)
	if err != nil {
		return nil, err
	}
	return collate(val, src.Pos())
}

func isObjectValue(v interface{}) bool {
	switch v.(type) {
	case map[string]interface{}, *Object:
		return true
	}
	return false
}
