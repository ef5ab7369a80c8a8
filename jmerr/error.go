/*
Package jmerr defines the structured error types produced by the jsonmap
tokenizer, parser and evaluator. Every error carries a byte offset into the
original program source so a caller can render a line/column position.
*/
package jmerr

import "fmt"

/*
SyntaxErrorKind identifies the category of a SyntaxError.
*/
type SyntaxErrorKind int

/*
Syntax error kinds, raised during tokenization or parsing.
*/
const (
	InvalidEscapeSequence SyntaxErrorKind = iota
	UnexpectedCharacter
	UnexpectedEndOfInput
	InvalidLhs
	MissingAssignment
	MissingTerminator
	UnexpectedRightBrace
	UnknownKeyword
	InvalidCollectionArgument
	InvalidAnonymousMapBody
	IllegalGlobalMarker
)

var syntaxErrorKindNames = map[SyntaxErrorKind]string{
	InvalidEscapeSequence:    "InvalidEscapeSequence",
	UnexpectedCharacter:      "UnexpectedCharacter",
	UnexpectedEndOfInput:     "UnexpectedEndOfInput",
	InvalidLhs:               "InvalidLhs",
	MissingAssignment:        "MissingAssignment",
	MissingTerminator:        "MissingTerminator",
	UnexpectedRightBrace:     "UnexpectedRightBrace",
	UnknownKeyword:           "UnknownKeyword",
	InvalidCollectionArgument: "InvalidCollectionArgument",
	InvalidAnonymousMapBody:  "InvalidAnonymousMapBody",
	IllegalGlobalMarker:      "IllegalGlobalMarker",
}

/*
String returns the name of a SyntaxErrorKind.
*/
func (k SyntaxErrorKind) String() string {
	if name, ok := syntaxErrorKindNames[k]; ok {
		return name
	}
	return "UnknownSyntaxErrorKind"
}

/*
SyntaxError is raised during tokenization or parsing. It always carries the
byte offset in the source program at which the problem was detected.
*/
type SyntaxError struct {
	Kind   SyntaxErrorKind
	Offset int
	Msg    string
}

/*
NewSyntaxError creates a new SyntaxError. msg is formatted with fmt.Sprintf
when args are given, otherwise used as-is.
*/
func NewSyntaxError(kind SyntaxErrorKind, offset int, msg string, args ...interface{}) *SyntaxError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &SyntaxError{kind, offset, msg}
}

/*
Error returns a human-readable representation of this error.
*/
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

/*
Is allows comparing a SyntaxError against a sentinel of the same Kind via
errors.Is, ignoring Offset and Msg.
*/
func (e *SyntaxError) Is(target error) bool {
	other, ok := target.(*SyntaxError)
	return ok && other.Kind == e.Kind
}

/*
EvaluationErrorKind identifies the category of an EvaluationError.
*/
type EvaluationErrorKind int

/*
Evaluation error kinds, raised while applying a compiled program to input
data.
*/
const (
	UnresolvedPath EvaluationErrorKind = iota
	InvalidFieldIndex
	NotAnObject
	NotIterable
	InvalidReference
	NotImplemented
)

var evaluationErrorKindNames = map[EvaluationErrorKind]string{
	UnresolvedPath:    "UnresolvedPath",
	InvalidFieldIndex: "InvalidFieldIndex",
	NotAnObject:       "NotAnObject",
	NotIterable:       "NotIterable",
	InvalidReference:  "InvalidReference",
	NotImplemented:    "NotImplemented",
}

/*
String returns the name of an EvaluationErrorKind.
*/
func (k EvaluationErrorKind) String() string {
	if name, ok := evaluationErrorKindNames[k]; ok {
		return name
	}
	return "UnknownEvaluationErrorKind"
}

/*
EvaluationError is raised while applying a compiled program against input
data. Offset refers to the AST node whose evaluation failed.
*/
type EvaluationError struct {
	Kind   EvaluationErrorKind
	Offset int
	Msg    string
}

/*
NewEvaluationError creates a new EvaluationError. msg is formatted with
fmt.Sprintf when args are given, otherwise used as-is.
*/
func NewEvaluationError(kind EvaluationErrorKind, offset int, msg string, args ...interface{}) *EvaluationError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &EvaluationError{kind, offset, msg}
}

/*
Error returns a human-readable representation of this error.
*/
func (e *EvaluationError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

/*
Is allows comparing an EvaluationError against a sentinel of the same Kind
via errors.Is, ignoring Offset and Msg.
*/
func (e *EvaluationError) Is(target error) bool {
	other, ok := target.(*EvaluationError)
	return ok && other.Kind == e.Kind
}

/*
Locate converts a byte offset into source into a 1-based line and column.
This is the thin diagnostic helper the core deliberately keeps separate from
error construction: rendering is a presentation concern, not a core one.
*/
func Locate(source string, offset int) (line, column int) {
	line, column = 1, 1

	if offset > len(source) {
		offset = len(source)
	}

	for _, r := range source[:offset] {
		if r == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}

	return line, column
}
