// Package der provides a read-only tree view over DER encoded ASN.1 data
package der

import (
	"bytes"
	"errors"
	"iter"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// MaxDepth limits the nesting of constructed elements
const MaxDepth = 32

const tagConstructed = 0x20

var (
	ErrMalformed    = errors.New("der: malformed element")
	ErrTrailingData = errors.New("der: trailing data")
	ErrTooDeep      = errors.New("der: nesting too deep")
)

// Node is a single decoded TLV element. Children of constructed elements are decoded eagerly.
// Byte slices returned by Value and Raw are shared with the tree and must not be modified.
type Node struct {
	tag      asn1.Tag
	raw      []byte
	value    []byte
	children []*Node
}

// Parse decodes exactly one DER element occupying the whole of data
func Parse(data []byte) (*Node, error) {
	src := cryptobyte.String(data)
	n, err := parseElement(&src, 0)
	if err != nil {
		return nil, err
	}
	if !src.Empty() {
		return nil, ErrTrailingData
	}
	return n, nil
}

func parseElement(src *cryptobyte.String, depth int) (*Node, error) {
	var (
		elem, content cryptobyte.String
		tag           asn1.Tag
	)
	if !src.ReadAnyASN1Element(&elem, &tag) {
		return nil, ErrMalformed
	}
	n := Node{
		tag: tag,
		raw: elem,
	}
	if !elem.ReadAnyASN1(&content, &tag) {
		return nil, ErrMalformed
	}
	n.value = content

	if tag&tagConstructed != 0 {
		if depth == MaxDepth {
			return nil, ErrTooDeep
		}
		for !content.Empty() {
			child, err := parseElement(&content, depth+1)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, child)
		}
	}
	return &n, nil
}

func (n *Node) Tag() asn1.Tag { return n.tag }

// Value returns the content octets
func (n *Node) Value() []byte { return n.value }

// Raw returns the complete encoding including the identifier and length octets
func (n *Node) Raw() []byte { return n.raw }

// Len returns the number of children
func (n *Node) Len() int { return len(n.children) }

// Child returns i-th child or nil if out of range
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *Node) Children() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, c := range n.children {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Clone returns a deep copy which shares no memory with n
func (n *Node) Clone() *Node {
	c, err := Parse(bytes.Clone(n.raw))
	if err != nil {
		// n itself was produced by Parse
		panic(err)
	}
	return c
}
