package bracket

import (
	"strings"

	"github.com/katalvlaran/tedkit/treeindex"
)

// Format renders t in bracket notation, escaping literal '{' and '}'
// bytes in labels so the result always round-trips through Parse.
func Format(t *treeindex.Tree) string {
	var sb strings.Builder
	writeTree(&sb, t)

	return sb.String()
}

func writeTree(sb *strings.Builder, t *treeindex.Tree) {
	sb.WriteByte('{')
	writeEscapedLabel(sb, t.Label)
	for _, c := range t.Children {
		writeTree(sb, c)
	}
	sb.WriteByte('}')
}

func writeEscapedLabel(sb *strings.Builder, label string) {
	for i := 0; i < len(label); i++ {
		switch label[i] {
		case '{':
			sb.WriteString(`\{`)
		case '}':
			sb.WriteString(`\}`)
		default:
			sb.WriteByte(label[i])
		}
	}
}
