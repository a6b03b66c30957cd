package strands

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Strand2Dot outputs the internal structure of a Link in Graphviz DOT format
// (for debugging purposes). Chunks are shown as boxes, linked from head to
// tail, with their byte offset and the start of their text.
func Strand2Dot(l *Link, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=LR;\n")
	nodelist, edgelist := "", ""
	nodelist += fmt.Sprintf("\t\"strand\" [label=\"%d bytes\\n%s\" %s];\n",
		l.Len(), l.Stats(), nodeDotStyles(false))
	var pos uint64
	cur := l.Chunks()
	for id := 1; cur.HasNext(); id++ {
		c, _ := cur.NextChunk()
		label := fmt.Sprintf("%d @%d\\n“%s”", c.Len(), pos, strstart(c.String()))
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(true))
		if id == 1 {
			edgelist += fmt.Sprintf("\t\"strand\" -> \"%d\" [label=head];\n", id)
		} else {
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", id-1, id)
		}
		if !cur.HasNext() {
			edgelist += fmt.Sprintf("\t\"strand\" -> \"%d\" [label=tail,style=dashed];\n", id)
		}
		pos += uint64(c.Len())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(ischunk bool) string {
	s := ",style=filled"
	if ischunk {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}

// strstart returns the first few runes of s, escaped for DOT labels.
func strstart(s string) string {
	const max = 10
	out := make([]byte, 0, 2*max)
	n := 0
	for _, r := range s {
		if n == max {
			return string(out) + "…"
		}
		switch r {
		case '"', '\\':
			out = append(out, '\\', byte(r))
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = utf8.AppendRune(out, r)
		}
		n++
	}
	return string(out)
}
