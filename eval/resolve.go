/*
 * jsonmap
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package eval

import (
	"strconv"

	"github.com/jsonmap-lang/jsonmap/jmerr"
	"github.com/jsonmap-lang/jsonmap/parser"
)

/*
zipScope is the merged scope Zip evaluates its body against for one
positional tuple. Plain string keys come from sources whose every element is
an object; idx keys come from all other sources (see zipTuples) and are
addressed with
&?.N — a ListIndexReference whose sole segment is the zero-based index of
the source among the zip's Sources.

A single Go map can't hold both string and int keys without widening to
interface{} keys (which would make normal string field lookups fragile), so
the scope is modeled as the two sub-maps the design notes call for.
*/
type zipScope struct {
	str map[string]interface{}
	idx map[int]interface{}
}

func newZipScope() *zipScope {
	return &zipScope{str: map[string]interface{}{}, idx: map[int]interface{}{}}
}

/*
resolve walks path against root, following the spec's segment-resolution
rules. An empty path returns root itself — this is what makes a bare `&`
(whole current scope) and `&?` with no further segments (the current item of
an enclosing Map) both work without a special case at the call site.
*/
func resolve(root interface{}, path []parser.Segment, offset int) (interface{}, error) {
	cur := root

	for _, seg := range path {
		next, err := step(cur, seg, offset)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

func step(cur interface{}, seg parser.Segment, offset int) (interface{}, error) {
	switch v := cur.(type) {
	case map[string]interface{}:
		key := seg.Name
		if seg.IsIndex {
			key = strconv.Itoa(seg.Index)
		}
		val, ok := v[key]
		if !ok {
			return nil, jmerr.NewEvaluationError(jmerr.UnresolvedPath, offset, "no field %q in current scope", key)
		}
		return val, nil

	case []interface{}:
		idx := seg.Index
		if !seg.IsIndex {
			parsed, err := strconv.Atoi(seg.Name)
			if err != nil {
				return nil, jmerr.NewEvaluationError(jmerr.InvalidFieldIndex, offset, "segment %q is not a valid array index", seg.Name)
			}
			idx = parsed
		}
		if idx < 0 {
			idx += len(v)
		}
		if idx < 0 || idx >= len(v) {
			return nil, jmerr.NewEvaluationError(jmerr.InvalidFieldIndex, offset, "array index out of range")
		}
		return v[idx], nil

	case *Object:
		key := seg.Name
		if seg.IsIndex {
			key = strconv.Itoa(seg.Index)
		}
		val, ok := v.Get(key)
		if !ok {
			return nil, jmerr.NewEvaluationError(jmerr.UnresolvedPath, offset, "no field %q in current scope", key)
		}
		return val, nil

	case *zipScope:
		if seg.IsIndex {
			val, ok := v.idx[seg.Index]
			if !ok {
				return nil, jmerr.NewEvaluationError(jmerr.UnresolvedPath, offset, "no zip source at index %d", seg.Index)
			}
			return val, nil
		}
		val, ok := v.str[seg.Name]
		if !ok {
			return nil, jmerr.NewEvaluationError(jmerr.UnresolvedPath, offset, "no field %q in current scope", seg.Name)
		}
		return val, nil

	default:
		return nil, jmerr.NewEvaluationError(jmerr.InvalidFieldIndex, offset, "cannot index into a scalar value")
	}
}
