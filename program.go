/*
 * jsonmap
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package jsonmap is the embedding surface of the jsonmap DSL: compile a
program once, then apply it to as many input documents as needed.

	prog, err := jsonmap.Compile(`foo = &bar;`)
	if err != nil {
		// a *jmerr.SyntaxError
	}
	out, err := prog.Apply(map[string]interface{}{"bar": "hello"})
	if err != nil {
		// a *jmerr.EvaluationError
	}

A compiled Program is immutable and holds no reference to any input it has
evaluated, so a single Program may be shared across goroutines and applied
concurrently to independent inputs.
*/
package jsonmap

import (
	"github.com/jsonmap-lang/jsonmap/eval"
	"github.com/jsonmap-lang/jsonmap/parser"
)

/*
Program is a parsed jsonmap source program, ready to be applied to input
documents.
*/
type Program struct {
	statements []parser.Statement
}

/*
Compile tokenizes and parses source, returning a Program that can be applied
to any number of inputs. Returns a *jmerr.SyntaxError on malformed input.
*/
func Compile(source string) (*Program, error) {
	statements, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return &Program{statements: statements}, nil
}

/*
Apply evaluates the program against input and returns the resulting JSON
value. input is never mutated. Returns a *jmerr.EvaluationError if any
reference, bind, map or zip fails to resolve.
*/
func (p *Program) Apply(input interface{}) (interface{}, error) {
	return eval.Evaluate(p.statements, input)
}

/*
Statements exposes the parsed AST for introspection or testing. The returned
slice shares the Program's backing array and must not be modified.
*/
func (p *Program) Statements() []parser.Statement {
	return p.statements
}
