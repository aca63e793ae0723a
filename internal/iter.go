package internal

import (
	"iter"
)

// MergeSeq2 yields the pairs of each sequence in turn, skipping any key
// already yielded by an earlier sequence.
func MergeSeq2[K comparable, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seen := make(map[K]bool)
		for _, seq := range seqs {
			for key, value := range seq {
				if seen[key] {
					continue
				}
				seen[key] = true
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
