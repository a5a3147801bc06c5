// Package linewrap verifies the indentation of wrapped construct headers.
//
// A header is the part of a multi-line declaration or expression preceding
// its trailing body. The verifier collects the leftmost token of every line
// the header occupies, anchors the required indentation at the first line's
// token, and checks each continuation line against base + width, with three
// structural exceptions:
//
//   - continuation closers ("}", ")", array initializers) align with the
//     base column, not with continuation lines;
//   - the "if" half of a cascaded "} else if" is judged through its parent
//     else node, and the base column is anchored at the closing brace when
//     that brace shares the line with the construct;
//   - a run of annotation clauses preceding a declaration is judged first,
//     against the annotation marker's own column.
//
// The check is read-only and produces diagnostics through a diag.Sink in
// deterministic order: annotation entries first, then remaining lines in
// ascending order.
package linewrap
