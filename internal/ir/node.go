package ir

// Source records where a node came from in its originating document: a
// byte span plus the originating block index and, where the structural
// IR does not model every attribute (figure attribute blocks above all),
// the verbatim text those attributes must be recovered from. Every node
// carries one; Figure additionally surfaces it as its documented
// "source of truth" for attribute fidelity (spec.md §3, §4.3).
type Source struct {
	StartOffset int
	EndOffset   int
	BlockIndex  int
	Raw         string
}

// Node is implemented by every concrete IR node type. ID and Hash
// follow spec.md I1–I3: ID depends only on
// (docID, kind, structural path); Hash depends only on the node's own
// fields, never on its children's hashes or ids.
type Node interface {
	ID() string
	Kind() Kind
	Hash() uint32
	Path() string
	Source() *Source
	Children() []Node
}

// base is embedded by every concrete node type and carries the fields
// common to all of them. It is not itself a Node; concrete types supply
// Kind/Children/Hash by combining base with their own fields.
type base struct {
	id     string
	path   string
	source Source
}

func (b *base) ID() string       { return b.id }
func (b *base) Path() string     { return b.path }
func (b *base) Source() *Source  { return &b.source }

// setIdentity assigns id and path to a node's base during construction.
// newBase calls this once per node with
// hashid.StableNodeID(docID, kind.String(), path).
func (b *base) setIdentity(id, path string, src Source) {
	b.id = id
	b.path = path
	b.source = src
}
