/*
 * jsonmap
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package eval

import (
	"bytes"
	"encoding/json"
)

/*
Object is an insertion-ordered JSON object. Every object the evaluator
produces is built statement-by-statement, and the spec requires that key
order in the output matches the textual order of the statements that
produced it — a plain Go map cannot promise that, so the evaluator builds
its own.
*/
type Object struct {
	keys   []string
	values map[string]interface{}
}

/*
NewObject returns an empty Object.
*/
func NewObject() *Object {
	return &Object{values: make(map[string]interface{})}
}

/*
Set assigns a value to a key, appending the key to the insertion order on
first use and overwriting the value (without moving its position) on
subsequent uses.
*/
func (o *Object) Set(key string, value interface{}) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

/*
Get looks up a key, reporting whether it was present.
*/
func (o *Object) Get(key string) (interface{}, bool) {
	v, ok := o.values[key]
	return v, ok
}

/*
Keys returns the object's keys in insertion order.
*/
func (o *Object) Keys() []string {
	return o.keys
}

/*
Len returns the number of keys in the object.
*/
func (o *Object) Len() int {
	return len(o.keys)
}

/*
Map returns an unordered map[string]interface{} snapshot of this object, for
callers that only need value access and not key order.
*/
func (o *Object) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(o.keys))
	for k, v := range o.values {
		m[k] = v
	}
	return m
}

/*
MarshalJSON renders the object preserving insertion order. Encoders that
honor the standard Marshaler interface (encoding/json, and shape-json's
Marshal/MarshalIndent, which checks for the identical interface) call this
instead of reflecting over the underlying map, and recurse into any nested
*Object the same way — which is what keeps key order intact all the way to
output.
*/
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyBytes, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valBytes, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valBytes)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
