package ini

import (
	"github.com/ConradIrwin/ini-go/syntax"
)

// cursor is a read position within a run of sibling nodes.
type cursor struct {
	nodes []syntax.Node
}

func (c *cursor) first() syntax.Node {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[0]
}

func (c *cursor) advance(n int) {
	c.nodes = c.nodes[min(n, len(c.nodes)):]
}

func (c *cursor) empty() bool {
	return len(c.nodes) == 0
}

// takeWhile returns the leading nodes matching keep and moves past them.
func (c *cursor) takeWhile(keep func(syntax.Node) bool) []syntax.Node {
	i := 0
	for i < len(c.nodes) && keep(c.nodes[i]) {
		i++
	}
	run := c.nodes[:i]
	c.advance(i)
	return run
}

func isPair(n syntax.Node) bool {
	_, ok := n.(*syntax.KeyValuePair)
	return ok
}

// findSection returns the first section among nodes whose name is name.
func findSection(nodes []syntax.Node, name string) *syntax.Section {
	for _, n := range nodes {
		if s, ok := n.(*syntax.Section); ok && s.Name() == name {
			return s
		}
	}
	return nil
}

// flatten turns a run of pairs into alternating key and value words.
// A pair without a value contributes an empty value word; a pair without
// a key contributes only its value, which leaves the run unbalanced.
func flatten(pairs []syntax.Node) []*syntax.Word {
	words := make([]*syntax.Word, 0, 2*len(pairs))
	for _, n := range pairs {
		kv := n.(*syntax.KeyValuePair)
		words = append(words, kv.Children()...)
		if kv.Key != nil && kv.Value == nil {
			words = append(words, &syntax.Word{ValuePos: kv.Key.End()})
		}
	}
	return words
}
