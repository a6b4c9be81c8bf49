// Package xmltree parses XML text into a normalized tree.
//
// The normalization rule is that every named child is an ordered list, even
// when the source document has exactly one (or zero) children of that tag.
// Project documents are wildly irregular about cardinality, and forcing list
// semantics at parse time means no downstream code ever branches on
// "one item or many". Trees are built fresh per document and never mutated
// after construction.
package xmltree
