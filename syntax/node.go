package syntax

import "github.com/aledsdavies/alchemy/token"

// Flags records tree-level facts that must be checkable without a walk.
type Flags uint8

const (
	// FlagContainsDiagnostics is set when some child token/trivium/node of
	// this node carries a diagnostic (spec.md §3.3 invariant).
	FlagContainsDiagnostics Flags = 1 << iota
	// FlagIsMissing is set when every child token of this node is missing
	// (spec.md §3.3 invariant: missing propagates upward).
	FlagIsMissing
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// ChildKind tags what a Child actually holds.
type ChildKind uint8

const (
	ChildToken ChildKind = iota
	ChildNode
	ChildList
	ChildSeparatedList
)

// Child is one element of a Node's children: a scalar token, a single
// child node, a homogeneous list, or a separated list (spec.md §3.3).
type Child struct {
	ChildKind ChildKind
	Tok       token.Token
	Node      *Node
	List      *List
	Sep       *SeparatedList
}

func TokenChild(t token.Token) Child { return Child{ChildKind: ChildToken, Tok: t} }
func NodeChild(n *Node) Child        { return Child{ChildKind: ChildNode, Node: n} }
func ListChild(l *List) Child        { return Child{ChildKind: ChildList, List: l} }
func SepListChild(s *SeparatedList) Child {
	return Child{ChildKind: ChildSeparatedList, Sep: s}
}

// List is a homogeneous, unseparated list of nodes (e.g. a block's statements).
type List struct {
	Items []*Node
}

// SeparatedList alternates items and separator tokens. SeparatorCount is
// either len(Items)-1 or len(Items) when a trailing separator is permitted
// (spec.md §3.3 invariant).
type SeparatedList struct {
	Items      []*Node
	Separators []token.Token
}

// SeparatorCount reports the separator count; it does not check the
// invariant above.
func (s *SeparatedList) SeparatorCount() int { return len(s.Separators) }

// HasTrailingSeparator reports whether the list ends with a separator not
// followed by another item.
func (s *SeparatedList) HasTrailingSeparator() bool {
	return len(s.Items) > 0 && len(s.Separators) == len(s.Items)
}

// Valid reports whether the separator/item counts satisfy spec.md §3.3.
func (s *SeparatedList) Valid() bool {
	n := len(s.Items)
	return len(s.Separators) == n-1 || len(s.Separators) == n || (n == 0 && len(s.Separators) == 0)
}

// Node is a syntax tree node: a kind tag, the span of tokens it covers, a
// flags field, and its children (spec.md §3.3).
type Node struct {
	Kind         Kind
	FirstTokenID token.ID
	LastTokenID  token.ID
	Flags        Flags
	Children     []Child
}

// New builds a node from its children, computing FirstTokenID/LastTokenID
// and the Missing/ContainsDiagnostics flags from them. Children must be
// given in source order.
func New(kind Kind, children ...Child) *Node {
	n := &Node{Kind: kind, Children: children}
	first, firstSet := token.ID(0), false
	last := token.ID(0)
	allMissing := true
	anyChild := false
	for _, c := range children {
		cf, cl, cMissing, cErr, has := childSpan(c)
		if !has {
			continue
		}
		anyChild = true
		if !firstSet {
			first, firstSet = cf, true
		}
		last = cl
		if !cMissing {
			allMissing = false
		}
		if cErr {
			n.Flags |= FlagContainsDiagnostics
		}
	}
	n.FirstTokenID = first
	n.LastTokenID = last
	if anyChild && allMissing {
		n.Flags |= FlagIsMissing
	}
	return n
}

func childSpan(c Child) (first, last token.ID, missing, containsErr, ok bool) {
	switch c.ChildKind {
	case ChildToken:
		return c.Tok.ID, c.Tok.ID, c.Tok.IsMissing(), c.Tok.ContainsError(), true
	case ChildNode:
		if c.Node == nil {
			return 0, 0, true, false, false
		}
		return c.Node.FirstTokenID, c.Node.LastTokenID, c.Node.Flags.Has(FlagIsMissing), c.Node.Flags.Has(FlagContainsDiagnostics), true
	case ChildList:
		if c.List == nil || len(c.List.Items) == 0 {
			return 0, 0, true, false, false
		}
		firstN, lastN := c.List.Items[0], c.List.Items[len(c.List.Items)-1]
		anyErr := false
		allMiss := true
		for _, it := range c.List.Items {
			if !it.Flags.Has(FlagIsMissing) {
				allMiss = false
			}
			if it.Flags.Has(FlagContainsDiagnostics) {
				anyErr = true
			}
		}
		return firstN.FirstTokenID, lastN.LastTokenID, allMiss, anyErr, true
	case ChildSeparatedList:
		if c.Sep == nil || (len(c.Sep.Items) == 0 && len(c.Sep.Separators) == 0) {
			return 0, 0, true, false, false
		}
		// Determine true first/last across the interleaved items+separators.
		var firstTok, lastTok token.ID
		firstSet := false
		allMiss := true
		anyErr := false
		n := len(c.Sep.Items)
		for i := 0; i < n; i++ {
			it := c.Sep.Items[i]
			if !firstSet {
				firstTok, firstSet = it.FirstTokenID, true
			}
			lastTok = it.LastTokenID
			if !it.Flags.Has(FlagIsMissing) {
				allMiss = false
			}
			if it.Flags.Has(FlagContainsDiagnostics) {
				anyErr = true
			}
			if i < len(c.Sep.Separators) {
				sepTok := c.Sep.Separators[i]
				lastTok = sepTok.ID
				if !sepTok.IsMissing() {
					allMiss = false
				}
				if sepTok.ContainsError() {
					anyErr = true
				}
			}
		}
		if !firstSet && len(c.Sep.Separators) > 0 {
			firstTok = c.Sep.Separators[0].ID
			lastTok = c.Sep.Separators[len(c.Sep.Separators)-1].ID
		}
		return firstTok, lastTok, allMiss, anyErr, true
	}
	return 0, 0, true, false, false
}

// IsMissing reports whether every token under n is missing.
func (n *Node) IsMissing() bool { return n.Flags.Has(FlagIsMissing) }

// ContainsDiagnostics reports whether some descendant carries a diagnostic.
func (n *Node) ContainsDiagnostics() bool { return n.Flags.Has(FlagContainsDiagnostics) }
