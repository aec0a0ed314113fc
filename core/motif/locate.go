package motif

import "strings"

// FindSites returns every start offset of motif in seq (overlaps included),
// each shifted by targetOffset.
func FindSites(seq, motif string, targetOffset int) []int {
	if motif == "" {
		return nil
	}
	var out []int
	for i := 0; ; {
		j := strings.Index(seq[i:], motif)
		if j < 0 {
			return out
		}
		out = append(out, i+j+targetOffset)
		i += j + 1
	}
}

/*
Locator scans a read once for every concrete motif with an Aho–Corasick
automaton, then reports sites grouped per motif in motif order, which is what
running FindSites for each motif and concatenating would give.
*/

// node is one state in the automaton.
type node struct {
	next [256]int // 0 => absent (root is state 0)
	fail int
	out  []int // motif indexes that end at this state
}

// Locator is immutable after NewLocator and safe for concurrent use.
type Locator struct {
	motifs []string
	offset int
	nodes  []node
}

// NewLocator builds the automaton for motifs; targetOffset is added to every site.
func NewLocator(motifs []string, targetOffset int) *Locator {
	l := &Locator{motifs: append([]string(nil), motifs...), offset: targetOffset}
	l.nodes = buildAC(l.motifs)
	return l
}

// Sites returns the target-base offsets of every motif occurrence in seq.
// Duplicates across motifs are kept.
func (l *Locator) Sites(seq string) []int {
	per := make([][]int, len(l.motifs))
	state := 0
	for i := 0; i < len(seq); i++ {
		b := seq[i]
		for state > 0 && l.nodes[state].next[b] == 0 {
			state = l.nodes[state].fail
		}
		if next := l.nodes[state].next[b]; next != 0 {
			state = next
		}
		for _, idx := range l.nodes[state].out {
			start := i - len(l.motifs[idx]) + 1
			per[idx] = append(per[idx], start+l.offset)
		}
	}
	var out []int
	for _, p := range per {
		out = append(out, p...)
	}
	return out
}

// buildAC constructs the automaton for all motifs' byte patterns.
func buildAC(motifs []string) []node {
	nodes := make([]node, 1) // state 0 = root

	// 1) Build trie edges
	for i, m := range motifs {
		if m == "" {
			continue
		}
		cur := 0
		for j := 0; j < len(m); j++ {
			b := m[j]
			if nodes[cur].next[b] == 0 {
				nodes = append(nodes, node{})
				nodes[cur].next[b] = len(nodes) - 1
			}
			cur = nodes[cur].next[b]
		}
		nodes[cur].out = append(nodes[cur].out, i)
	}

	// 2) BFS to set fail links and propagate outputs
	queue := make([]int, 0, len(nodes))
	for c := 0; c < 256; c++ {
		if child := nodes[0].next[c]; child != 0 {
			queue = append(queue, child)
		}
	}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for c := 0; c < 256; c++ {
			s := nodes[r].next[c]
			if s == 0 {
				continue
			}
			queue = append(queue, s)
			f := nodes[r].fail
			for f > 0 && nodes[f].next[c] == 0 {
				f = nodes[f].fail
			}
			if nodes[f].next[c] != 0 {
				f = nodes[f].next[c]
			}
			nodes[s].fail = f
			if len(nodes[f].out) > 0 {
				nodes[s].out = append(nodes[s].out, nodes[f].out...)
			}
		}
	}
	return nodes
}
