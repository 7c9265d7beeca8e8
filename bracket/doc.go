// Package bracket implements the bracket-notation tree format used to
// feed trees into tedkit engines and tests:
//
//	TREE     := '{' LABEL CHILDREN '}'
//	CHILDREN := TREE*
//	LABEL    := any characters except unescaped '{' and '}';
//	            escape with '\{' '\}'
//
// This is an external-input-boundary contract (spec section 6): the
// parser is intentionally minimal — tokenise, validate balanced
// brackets, build a treeindex.Tree — and is not itself part of the
// algorithmic core.
package bracket
