package phylo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/maxkphylo/mkerr"
)

// EmitOpt configures Newick emission.
type EmitOpt func(*emitOpts)

type emitOpts struct {
	withLengths bool
}

// WithEdgeLengths includes ":1.0" after every emitted edge.
func WithEdgeLengths() EmitOpt {
	return func(o *emitOpts) { o.withLengths = true }
}

// Emit serializes t as Newick text: post-order, internal nodes as
// "(child_1,...,child_n)[name]", leaves as the bare sample id, terminated by
// a semicolon.
func Emit(t *Tree, opts ...EmitOpt) string {
	o := &emitOpts{}
	for _, opt := range opts {
		opt(o)
	}
	var sb strings.Builder
	writeNode(&sb, t.Root, o)
	sb.WriteByte(';')
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node, o *emitOpts) {
	if n.IsLeaf() {
		sb.WriteString(n.Name)
		return
	}
	sb.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeNode(sb, c, o)
		if o.withLengths {
			sb.WriteString(":1.0")
		}
	}
	sb.WriteByte(')')
	sb.WriteString(n.Name)
}

// Parse reconstructs a tree from Newick text. Edge-length suffixes
// (":<number>") are accepted and discarded.
func Parse(text string) (*Tree, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, ";")
	p := &newickParser{s: text}
	node, err := p.parseSubtree()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, mkerr.BadInputFormat{Msg: fmt.Sprintf("trailing text in newick at offset %d", p.pos)}
	}
	return &Tree{Root: node, Samples: leafNames(node)}, nil
}

type newickParser struct {
	s   string
	pos int
}

func (p *newickParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t' || p.s[p.pos] == '\n') {
		p.pos++
	}
}

func (p *newickParser) parseSubtree() (*Node, error) {
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == '(' {
		p.pos++
		var children []*Node
		for {
			child, err := p.parseSubtree()
			if err != nil {
				return nil, err
			}
			if err := p.consumeEdgeLength(); err != nil {
				return nil, err
			}
			children = append(children, child)
			p.skipSpace()
			if p.pos >= len(p.s) {
				return nil, mkerr.BadInputFormat{Msg: "unterminated newick subtree"}
			}
			if p.s[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.s[p.pos] == ')' {
				p.pos++
				break
			}
			return nil, mkerr.BadInputFormat{Msg: fmt.Sprintf("expected ',' or ')' at offset %d", p.pos)}
		}
		name := p.parseLabel()
		return &Node{Name: name, Children: children}, nil
	}
	name := p.parseLabel()
	if name == "" {
		return nil, mkerr.BadInputFormat{Msg: fmt.Sprintf("expected label at offset %d", p.pos)}
	}
	return &Node{Name: name}, nil
}

func (p *newickParser) parseLabel() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ',', ')', '(', ':':
			return p.s[start:p.pos]
		}
		p.pos++
	}
	return p.s[start:p.pos]
}

func (p *newickParser) consumeEdgeLength() error {
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == ':' {
		p.pos++
		start := p.pos
		for p.pos < len(p.s) {
			switch p.s[p.pos] {
			case ',', ')':
				goto done
			}
			p.pos++
		}
	done:
		if _, err := strconv.ParseFloat(p.s[start:p.pos], 64); err != nil {
			return mkerr.BadInputFormat{Msg: fmt.Sprintf("bad edge length %q", p.s[start:p.pos])}
		}
	}
	return nil
}

func leafNames(n *Node) []string {
	if n.IsLeaf() {
		return []string{n.Name}
	}
	var out []string
	for _, c := range n.Children {
		out = append(out, leafNames(c)...)
	}
	return out
}
