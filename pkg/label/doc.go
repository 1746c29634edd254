// Package label turns a file's metadata snapshot into its display label.
//
// A label is built from an ordered list of extractors. Each extractor reads
// one metadata key and renders it either verbatim (raw) or as a formatted
// date. Empty results are dropped and the rest are joined with the
// configured separator, padded by a single space on each side:
//
//	list:      [{key: status, type: raw}, {key: due, type: date, format: "MMM D"}]
//	separator: "|"
//	snapshot:  {status: draft, due: 2024-05-07}
//	label:     "draft | May 7"
//
// Compilation never fails. Values that cannot be interpreted degrade to an
// empty string (raw) or to InvalidDate (date), so a single bad field never
// hides the rest of the label.
package label
