// Package clues keeps the clues a detective has collected as an ordered set.
package clues

import (
	"iter"
	"strings"
)

type node struct {
	text        string
	left, right *node
}

// Ledger is a binary search tree of clue texts ordered lexicographically. Inserting a text that is already present
// does nothing. The zero value is an empty ledger.
type Ledger struct {
	root *node
	size int
}

func New() *Ledger {
	return &Ledger{}
}

// Insert adds text and reports whether it was new.
func (l *Ledger) Insert(text string) bool {
	var inserted bool
	l.root, inserted = insert(l.root, text)
	if inserted {
		l.size++
	}
	return inserted
}

func insert(n *node, text string) (*node, bool) {
	if n == nil {
		return &node{text: text}, true
	}
	var inserted bool
	switch c := strings.Compare(text, n.text); {
	case c < 0:
		n.left, inserted = insert(n.left, text)
	case c > 0:
		n.right, inserted = insert(n.right, text)
	}
	return n, inserted
}

// Contains reports whether text has been collected.
func (l *Ledger) Contains(text string) bool {
	n := l.root
	for n != nil {
		switch c := strings.Compare(text, n.text); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of distinct clues.
func (l *Ledger) Len() int {
	return l.size
}

// All yields the clues in ascending order.
func (l *Ledger) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		inOrder(l.root, yield)
	}
}

func inOrder(n *node, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.text) && inOrder(n.right, yield)
}

// Texts returns the clues in ascending order.
func (l *Ledger) Texts() []string {
	texts := make([]string, 0, l.size)
	for text := range l.All() {
		texts = append(texts, text)
	}
	return texts
}

// CountMatching visits every clue once, pre-order, and counts those for which match returns true.
func (l *Ledger) CountMatching(match func(text string) bool) int {
	return countMatching(l.root, match)
}

func countMatching(n *node, match func(string) bool) int {
	if n == nil {
		return 0
	}
	count := 0
	if match(n.text) {
		count = 1
	}
	return count + countMatching(n.left, match) + countMatching(n.right, match)
}
