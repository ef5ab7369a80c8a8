/*
 * jsonmap
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package eval

import "github.com/jsonmap-lang/jsonmap/jmerr"

/*
collate materializes a Map/Zip source argument (already evaluated to a Go
value) into an ordered sequence of elements. An array is used as-is; an
object iterates its values in the order returned by *Object's key order (or,
for a passthrough map[string]interface{} with no ordering guarantee, Go's
map iteration order); anything else is not iterable.
*/
func collate(value interface{}, offset int) ([]interface{}, error) {
	switch v := value.(type) {
	case []interface{}:
		return v, nil

	case *Object:
		out := make([]interface{}, 0, v.Len())
		for _, k := range v.Keys() {
			val, _ := v.Get(k)
			out = append(out, val)
		}
		return out, nil

	case map[string]interface{}:
		out := make([]interface{}, 0, len(v))
		for _, val := range v {
			out = append(out, val)
		}
		return out, nil
	}

	return nil, jmerr.NewEvaluationError(jmerr.NotIterable, offset, "map/zip source is not an array or object")
}

/*
isObjectElement reports whether v should be treated as already-keyed for
purposes of Zip normalization.
*/
func isObjectElement(v interface{}) bool {
	switch v.(type) {
	case map[string]interface{}, *Object:
		return true
	}
	return false
}

func asFieldMap(v interface{}) map[string]interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return t
	case *Object:
		return t.Map()
	}
	return nil
}

/*
sourceIsUniformObjects reports whether every element of one materialized
source sequence is an object. Normalization is a per-source decision, made
once over the whole sequence — not a per-element one — per the spec's Zip
normalization rule.
*/
func sourceIsUniformObjects(seq []interface{}) bool {
	if len(seq) == 0 {
		return false
	}
	for _, el := range seq {
		if !isObjectElement(el) {
			return false
		}
	}
	return true
}

/*
zipTuples truncates every materialized source to the shortest length and
returns, for each position, the merged scope for that tuple. A source whose
every element is an object contributes its fields directly at each position
(later sources override earlier ones on key collision); any other source
contributes its raw element at each position as an anonymous entry
addressable via &?.N, where N is that source's index among sources.
*/
func zipTuples(sources [][]interface{}) []*zipScope {
	shortest := -1
	for _, s := range sources {
		if shortest == -1 || len(s) < shortest {
			shortest = len(s)
		}
	}
	if shortest <= 0 {
		return nil
	}

	uniform := make([]bool, len(sources))
	for i, s := range sources {
		uniform[i] = sourceIsUniformObjects(s)
	}

	tuples := make([]*zipScope, shortest)
	for i := 0; i < shortest; i++ {
		merged := newZipScope()
		for si, s := range sources {
			el := s[i]
			if uniform[si] {
				for k, v := range asFieldMap(el) {
					merged.str[k] = v
				}
				continue
			}
			merged.idx[si] = el
		}
		tuples[i] = merged
	}

	return tuples
}
