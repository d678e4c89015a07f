// Package match ranks identifiers by similarity.
//
// Key functions:
//   - NormalizeIdent: folds an identifier for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Similarity: edit distance scaled to [0, 1]
//   - Suggest: picks the closest names from a candidate list
package match
