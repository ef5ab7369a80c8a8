/*
 * jsonmap
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"errors"
	"testing"

	"github.com/jsonmap-lang/jsonmap/jmerr"
)

func TestParseSimpleAssignment(t *testing.T) {
	got, err := Parse(`foo = "bar";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Statement{
		{Lhs: NamedLhs{Name: "foo"}, Rhs: ValueLiteral{Value: "bar"}},
	}

	if ok, msg := EqualStatements(want, got); !ok {
		t.Errorf("%s", msg)
	}
}

func TestParseColonAndCommaAreInterchangeable(t *testing.T) {
	a, err := Parse(`foo = "bar";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Parse(`foo : "bar",`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, msg := EqualStatements(a, b); !ok {
		t.Errorf("%s", msg)
	}
}

func TestParseTrailingTerminatorOptional(t *testing.T) {
	a, err := Parse(`foo = "bar";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Parse(`foo = "bar"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, msg := EqualStatements(a, b); !ok {
		t.Errorf("%s", msg)
	}
}

func TestParseNumericLiteral(t *testing.T) {
	got, err := Parse(`age = 42`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Statement{
		{Lhs: NamedLhs{Name: "age"}, Rhs: NumericLiteral{Value: 42}},
	}
	if ok, msg := EqualStatements(want, got); !ok {
		t.Errorf("%s", msg)
	}
}

func TestParseNull(t *testing.T) {
	got, err := Parse(`note = null;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Statement{
		{Lhs: NamedLhs{Name: "note"}, Rhs: NullLiteral{}},
	}
	if ok, msg := EqualStatements(want, got); !ok {
		t.Errorf("%s", msg)
	}
}

func TestParseArrayLiteral(t *testing.T) {
	got, err := Parse(`xs = ["a", "b", 3];`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Statement{
		{Lhs: NamedLhs{Name: "xs"}, Rhs: Array{Elements: []Rhs{
			ValueLiteral{Value: "a"},
			ValueLiteral{Value: "b"},
			NumericLiteral{Value: 3},
		}}},
		// An array Rhs does not consume the following ';', which is then
		// parsed as a stray terminator.
		{Lhs: NoOpLhs{}, Rhs: NoOpRhs{}},
	}
	if ok, msg := EqualStatements(want, got); !ok {
		t.Errorf("%s", msg)
	}
}

func TestParseNestedScope(t *testing.T) {
	got, err := Parse(`person = { name = "Ada"; age = 36; };`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Statement{
		{Lhs: NamedLhs{Name: "person"}, Rhs: Scope{Statements: []Statement{
			{Lhs: NamedLhs{Name: "name"}, Rhs: ValueLiteral{Value: "Ada"}},
			{Lhs: NamedLhs{Name: "age"}, Rhs: NumericLiteral{Value: 36}},
			// Numeric and scope Rhs do not consume the following ';', which
			// is then parsed as a stray terminator.
			{Lhs: NoOpLhs{}, Rhs: NoOpRhs{}},
		}}},
		{Lhs: NoOpLhs{}, Rhs: NoOpRhs{}},
	}
	if ok, msg := EqualStatements(want, got); !ok {
		t.Errorf("%s", msg)
	}
}

func TestParseBind(t *testing.T) {
	got, err := Parse(`foo = bind &bar { "first": &first, "second": &second.third, fourth: &!fourth }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref := Reference{Path: []Segment{{Name: "bar"}}}
	want := []Statement{
		{Lhs: NamedLhs{Name: "foo"}, Rhs: Bind{
			Reference: &ref,
			Body: []Statement{
				{Lhs: NamedLhs{Name: "first"}, Rhs: Reference{Path: []Segment{{Name: "first"}}}},
				{Lhs: NamedLhs{Name: "second"}, Rhs: Reference{Path: []Segment{{Name: "second"}, {Name: "third"}}}},
				{Lhs: NamedLhs{Name: "fourth"}, Rhs: Reference{Path: []Segment{{Name: "fourth"}}, Global: true}},
			},
		}},
	}
	if ok, msg := EqualStatements(want, got); !ok {
		t.Errorf("%s", msg)
	}
}

func TestParseMapOverReference(t *testing.T) {
	got, err := Parse(`student_first_names = map &students { name = &first_name; }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Statement{
		{Lhs: NamedLhs{Name: "student_first_names"}, Rhs: Map{
			Source: Reference{Path: []Segment{{Name: "students"}}},
			Body: []Statement{
				{Lhs: NamedLhs{Name: "name"}, Rhs: Reference{Path: []Segment{{Name: "first_name"}}}},
			},
		}},
	}
	if ok, msg := EqualStatements(want, got); !ok {
		t.Errorf("%s", msg)
	}
}

func TestParseMapBracketBody(t *testing.T) {
	got, err := Parse(`ages = map &students [&age]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Statement{
		{Lhs: NamedLhs{Name: "ages"}, Rhs: Map{
			Source: Reference{Path: []Segment{{Name: "students"}}},
			Body: []Statement{
				{Lhs: AnonymousLhs{}, Rhs: Reference{Path: []Segment{{Name: "age"}}}},
			},
		}},
	}
	if ok, msg := EqualStatements(want, got); !ok {
		t.Errorf("%s", msg)
	}
}

func TestParseMapBracketBodyRejectsMultipleExpressions(t *testing.T) {
	_, err := Parse(`ages = map &students [&age, &name]`)
	if !errors.Is(err, jmerr.NewSyntaxError(jmerr.InvalidAnonymousMapBody, 0, "")) {
		t.Errorf("got %v, want InvalidAnonymousMapBody", err)
	}
}

func TestParseMapBracketBodyRejectsEmpty(t *testing.T) {
	_, err := Parse(`ages = map &students []`)
	if !errors.Is(err, jmerr.NewSyntaxError(jmerr.InvalidAnonymousMapBody, 0, "")) {
		t.Errorf("got %v, want InvalidAnonymousMapBody", err)
	}
}

func TestParseZip(t *testing.T) {
	got, err := Parse(`pairs = zip &names &ages { name = &?.0; age = &?.1; }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Statement{
		{Lhs: NamedLhs{Name: "pairs"}, Rhs: Zip{
			Sources: []Rhs{
				Reference{Path: []Segment{{Name: "names"}}},
				Reference{Path: []Segment{{Name: "ages"}}},
			},
			Body: []Statement{
				{Lhs: NamedLhs{Name: "name"}, Rhs: ListIndexReference{Path: []Segment{{IsIndex: true, Index: 0}}}},
				{Lhs: NamedLhs{Name: "age"}, Rhs: ListIndexReference{Path: []Segment{{IsIndex: true, Index: 1}}}},
			},
		}},
	}
	if ok, msg := EqualStatements(want, got); !ok {
		t.Errorf("%s", msg)
	}
}

func TestParseZipRequiresAtLeastOneSource(t *testing.T) {
	_, err := Parse(`pairs = zip { x = null; }`)
	if !errors.Is(err, jmerr.NewSyntaxError(jmerr.InvalidCollectionArgument, 0, "")) {
		t.Errorf("got %v, want InvalidCollectionArgument", err)
	}
}

func TestParseBindRejectsNonReferenceTarget(t *testing.T) {
	_, err := Parse(`foo = bind "not a reference" { x = null; }`)
	if !errors.Is(err, jmerr.NewSyntaxError(jmerr.InvalidCollectionArgument, 0, "")) {
		t.Errorf("got %v, want InvalidCollectionArgument", err)
	}
}

func TestParseStrayTerminatorIsNoOp(t *testing.T) {
	got, err := Parse(`;;foo = "bar";;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 statements (2 no-ops, 1 assignment, 1 no-op), got %d", len(got))
	}
	if _, ok := got[0].Lhs.(NoOpLhs); !ok {
		t.Errorf("expected a no-op statement first, got %#v", got[0])
	}
}

func TestParseMissingAssignmentIsSyntaxError(t *testing.T) {
	_, err := Parse(`foo "bar";`)
	if !errors.Is(err, jmerr.NewSyntaxError(jmerr.MissingAssignment, 0, "")) {
		t.Errorf("got %v, want MissingAssignment", err)
	}
}

func TestParseMissingTerminatorIsSyntaxError(t *testing.T) {
	_, err := Parse(`foo = &bar fizz = &baz;`)
	if !errors.Is(err, jmerr.NewSyntaxError(jmerr.MissingTerminator, 0, "")) {
		t.Errorf("got %v, want MissingTerminator", err)
	}
}

func TestParseUnexpectedRightBrace(t *testing.T) {
	_, err := Parse(`foo = "bar"; }`)
	if !errors.Is(err, jmerr.NewSyntaxError(jmerr.UnexpectedRightBrace, 0, "")) {
		t.Errorf("got %v, want UnexpectedRightBrace", err)
	}
}

func TestParseUnknownKeyword(t *testing.T) {
	_, err := Parse(`foo = reduce &bar { x = null; }`)
	if !errors.Is(err, jmerr.NewSyntaxError(jmerr.UnknownKeyword, 0, "")) {
		t.Errorf("got %v, want UnknownKeyword", err)
	}
}

func TestParseUnterminatedScope(t *testing.T) {
	_, err := Parse(`foo = { bar = "baz";`)
	if !errors.Is(err, jmerr.NewSyntaxError(jmerr.UnexpectedEndOfInput, 0, "")) {
		t.Errorf("got %v, want UnexpectedEndOfInput", err)
	}
}

func TestParseInterpolationIsAcceptedButNotEvaluated(t *testing.T) {
	got, err := Parse("greeting = `hello ${name}`;")
	if err != nil {
		t.Fatalf("unexpected error parsing interpolation literal: %v", err)
	}
	want := []Statement{
		{Lhs: NamedLhs{Name: "greeting"}, Rhs: Interpolation{Pattern: "hello ${name}"}},
	}
	if ok, msg := EqualStatements(want, got); !ok {
		t.Errorf("%s", msg)
	}
}
