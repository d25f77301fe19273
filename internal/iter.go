package internal

import (
	"iter"
)

// IterZip combines parallel sequences into a sequence of rows. Row k holds the
// k-th value of every sequence, and iteration ends with the shortest sequence.
func IterZip[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}

		nexts := make([]func() (T, bool), len(seqs))
		for n, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[n] = next
		}

		for {
			row := make([]T, len(nexts))
			for n, next := range nexts {
				val, ok := next()
				if !ok {
					return
				}
				row[n] = val
			}
			if !yield(row) {
				return // Stop if the consumer stops
			}
		}
	}
}
