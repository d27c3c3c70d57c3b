// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package internal holds helpers shared by the machine packages.
package internal

import (
	"iter"
)

// IterSeq2Concat yields each pair of every sequence, in order, stopping
// as soon as the consumer does.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// IterSeq2Pairs yields the given key, value pairs. keys and values must be
// the same length.
func IterSeq2Pairs[K any, V any](keys []K, values []V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n, key := range keys {
			if !yield(key, values[n]) {
				return
			}
		}
	}
}
