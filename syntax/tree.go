package syntax

import (
	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/token"
)

// Tree is the immutable result of parsing a compilation unit (spec.md §3.4):
// the source bytes, the full token array (including the always-present
// trailing EOF token), cold per-token data, the root node, and diagnostics.
type Tree struct {
	Source      []byte
	Tokens      []token.Token
	Cold        []token.Cold
	Root        *Node
	Diagnostics []diagnostics.Diagnostic
}

// TokenAt returns the token with the given id.
func (t *Tree) TokenAt(id token.ID) token.Token { return t.Tokens[id] }

// ColdAt returns the cold data (trivia, literal value) for the given id.
func (t *Tree) ColdAt(id token.ID) token.Cold { return t.Cold[id] }

// TokenText returns the exact source text of a token (not its trivia).
func (t *Tree) TokenText(id token.ID) []byte {
	tok := t.Tokens[id]
	return t.Source[tok.Span.Start:tok.Span.End]
}

// Kind returns n's kind tag (spec.md §6.2).
func Kind_(n *Node) Kind { return n.Kind }

// Children returns n's children in source order (spec.md §6.2).
func Children(n *Node) []Child { return n.Children }

// FirstToken returns the id of n's first token.
func FirstToken(n *Node) token.ID { return n.FirstTokenID }

// LastToken returns the id of n's last token.
func LastToken(n *Node) token.ID { return n.LastTokenID }

// Span returns the byte range [start,end) a node covers in source, derived
// from its first and last token spans.
func (t *Tree) Span(n *Node) (start, end int) {
	first := t.Tokens[n.FirstTokenID]
	last := t.Tokens[n.LastTokenID]
	return int(first.Span.Start), int(last.Span.End)
}

// Walk visits every token id in source order, including the ids of tokens
// reachable only through n's descendants (an in-order traversal of the
// leaves). The callback returning false stops the walk early.
func Walk(n *Node, visit func(token.ID) bool) bool {
	for _, c := range n.Children {
		switch c.ChildKind {
		case ChildToken:
			if !visit(c.Tok.ID) {
				return false
			}
		case ChildNode:
			if c.Node != nil && !Walk(c.Node, visit) {
				return false
			}
		case ChildList:
			if c.List != nil {
				for _, it := range c.List.Items {
					if !Walk(it, visit) {
						return false
					}
				}
			}
		case ChildSeparatedList:
			if c.Sep != nil {
				n := len(c.Sep.Items)
				for i := 0; i < n; i++ {
					if !Walk(c.Sep.Items[i], visit) {
						return false
					}
					if i < len(c.Sep.Separators) {
						if !visit(c.Sep.Separators[i].ID) {
							return false
						}
					}
				}
			}
		}
	}
	return true
}

// Visitor is implemented by tree consumers that want a callback per node
// kind (spec.md §6.2). VisitDefault is called for any kind the visitor does
// not special-case; it must never fail the contract (no panics on unknown
// kinds). For KindVisitor the zero value is always safe: Visit with no
// handlers and no Default is a no-op.
type Visitor interface {
	VisitDefault(n *Node)
}

// KindVisitor lets a consumer register per-kind callbacks without writing a
// giant type switch; unregistered kinds fall through to Default.
type KindVisitor struct {
	Handlers map[Kind]func(*Node)
	Default  func(*Node)
}

// Visit dispatches n to its registered handler, or Default/no-op if none.
func (v *KindVisitor) Visit(n *Node) {
	if n == nil {
		return
	}
	if h, ok := v.Handlers[n.Kind]; ok && h != nil {
		h(n)
		return
	}
	if v.Default != nil {
		v.Default(n)
	}
}

// VisitChildren calls Visit on every node-shaped child of n (not tokens).
func (v *KindVisitor) VisitChildren(n *Node) {
	for _, c := range n.Children {
		switch c.ChildKind {
		case ChildNode:
			if c.Node != nil {
				v.Visit(c.Node)
			}
		case ChildList:
			if c.List != nil {
				for _, it := range c.List.Items {
					v.Visit(it)
				}
			}
		case ChildSeparatedList:
			if c.Sep != nil {
				for _, it := range c.Sep.Items {
					v.Visit(it)
				}
			}
		}
	}
}
