// Package dictionary provides the immutable word lists the game engine plays
// over.
//
// The dictionary package implements:
//   - Construction from a raw word list with normalization and deduplication
//   - Fast exact membership testing
//   - Random word sampling through an injected random source
//   - Loading from plain text files (one word per line)
//   - An embedded default word list so the game runs with no files configured
//
// Core Types:
//
// Dictionary is an immutable set of lowercase words that all share one fixed
// length. It is built once (New, Load, or Default) and never mutated, which
// makes it safe to share read-only across any number of concurrent sessions.
//
// Normalization:
//
// Input words are lowercased and trimmed. Anything that is not exactly the
// configured length, or contains characters outside a-z, is silently dropped.
// Duplicates collapse to one entry. Construction fails when fewer than two
// words survive filtering, since the engine needs a distinct start/target
// pair to exist.
//
// Usage:
//
//	dict, err := dictionary.Load("dictionary.txt", 4)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	dict.Contains("sale") // true
//	word := dict.Sample(rng, "sale")
package dictionary
