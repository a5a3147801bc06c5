// Package syntax defines the token tree the line-wrap verifier operates on.
//
// A tree is an arena of nodes addressed by stable NodeID indices. Every
// structural relation (parent, children, siblings) is an index into the
// arena, so the tree is cycle-free from the ownership point of view while
// navigation stays O(1). Nodes carry a Kind tag, a 0-based source position
// and the literal token text.
//
// Trees are built once by a frontend and are read-only afterwards. Any
// number of readers may share a tree concurrently.
package syntax
