/*
 * jsonmap
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package eval implements the jsonmap tree-walking evaluator: it walks a parsed
program against an input JSON value and produces an output JSON value.

Values are represented with the same shapes encoding/json-style decoders
produce: map[string]interface{} for objects, []interface{} for arrays,
string/float64/bool for scalars, and untyped nil for null. Output objects use
*Object instead of a bare map so that key insertion order survives
serialization; everything else is a plain Go value.
*/
package eval

/*
Context carries the two scopes every node evaluates against: the local Scope
(narrowed by Bind/Map/Zip as evaluation descends) and the Universe (the
original input, fixed for the entire evaluation and never shadowed). It is
passed by value, not through package-level state, so nested evaluation can
derive a narrower context without mutating the caller's.
*/
type Context struct {
	Scope    interface{}
	Universe interface{}
}

/*
NewContext builds the initial context for a top-level evaluation: both Scope
and Universe start out as the input document.
*/
func NewContext(input interface{}) Context {
	return Context{Scope: input, Universe: input}
}

/*
WithScope returns a copy of this context with a narrower Scope, leaving
Universe untouched. Used by Bind/Map/Zip to evaluate their body against a
resolved sub-value or collation element.
*/
func (c Context) WithScope(scope interface{}) Context {
	c.Scope = scope
	return c
}
