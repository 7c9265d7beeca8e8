package bracket

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/tedkit/treeindex"
)

// parser holds the scanning state for one tree. Parsing uses an
// explicit stack of in-progress nodes rather than recursion, per the
// module's "no recursive DFS" design note, so a deeply nested input
// line never risks exhausting the goroutine stack.
type parser struct {
	data []byte
	pos  int
}

// ParseString parses a single bracket-notation tree from s.
func ParseString(s string) (*treeindex.Tree, error) {
	return (&parser{data: []byte(s)}).parseOne()
}

// Parse reads and parses a single bracket-notation tree from r.
func Parse(r io.Reader) (*treeindex.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return (&parser{data: data}).parseOne()
}

// ParseCollection reads one bracket-notation tree per non-blank line
// from r, in order, as required for join-pipeline input (spec section 6).
func ParseCollection(r io.Reader) ([]*treeindex.Tree, error) {
	var out []*treeindex.Tree
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tr, err := ParseString(line)
		if err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (p *parser) parseOne() (*treeindex.Tree, error) {
	p.skipTrailingWhitespace()
	tr, err := p.parseTree()
	if err != nil {
		return nil, err
	}
	p.skipTrailingWhitespace()
	if p.pos != len(p.data) {
		return nil, &ParseError{Pos: p.pos, Err: ErrTrailingInput}
	}

	return tr, nil
}

func (p *parser) skipTrailingWhitespace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// parseTree parses exactly one '{' LABEL CHILDREN '}' production using
// an explicit stack of open nodes.
func (p *parser) parseTree() (*treeindex.Tree, error) {
	if p.pos >= len(p.data) {
		return nil, &ParseError{Pos: p.pos, Err: ErrUnexpectedEOF}
	}
	if p.data[p.pos] == '}' {
		return nil, &ParseError{Pos: p.pos, Err: ErrUnmatchedCloseBrace}
	}
	if p.data[p.pos] != '{' {
		return nil, &ParseError{Pos: p.pos, Err: ErrExpectedOpenBrace}
	}

	var root *treeindex.Tree
	var stack []*treeindex.Tree

	for {
		if p.pos >= len(p.data) {
			return nil, &ParseError{Pos: p.pos, Err: ErrUnexpectedEOF}
		}

		switch p.data[p.pos] {
		case '{':
			p.pos++
			lbl := p.readLabel()
			node := &treeindex.Tree{Label: lbl}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			} else {
				root = node
			}
			stack = append(stack, node)

		case '}':
			p.pos++
			if len(stack) == 0 {
				return nil, &ParseError{Pos: p.pos - 1, Err: ErrUnmatchedCloseBrace}
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return root, nil
			}

		default:
			// Label text right after a '}' that closed a non-root node
			// (e.g. "{a{b}c}"): a label may only follow an opening
			// '{', so this is reported as a missing '{'.
			return nil, &ParseError{Pos: p.pos, Err: ErrExpectedOpenBrace}
		}
	}
}

// readLabel consumes label bytes up to (not including) the next
// unescaped '{' or '}', unescaping '\{' and '\}' into literal braces.
func (p *parser) readLabel() string {
	var sb strings.Builder
	for p.pos < len(p.data) {
		ch := p.data[p.pos]
		if ch == '\\' && p.pos+1 < len(p.data) && (p.data[p.pos+1] == '{' || p.data[p.pos+1] == '}') {
			sb.WriteByte(p.data[p.pos+1])
			p.pos += 2
			continue
		}
		if ch == '{' || ch == '}' {
			break
		}
		sb.WriteByte(ch)
		p.pos++
	}

	return sb.String()
}
