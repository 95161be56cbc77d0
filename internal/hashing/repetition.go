package hashing

// Repetitions records the hash of every position reached in a game, so
// the number of times the current position has occurred can be read
// after each move and rewound on takeback.
type Repetitions struct {
	hashes []uint64
	counts map[uint64]int
}

// NewRepetitions starts a record at the given initial position hash.
func NewRepetitions(initial uint64) *Repetitions {
	r := &Repetitions{}
	r.Reset(initial)
	return r
}

// Reset clears the record and starts again from initial.
func (r *Repetitions) Reset(initial uint64) {
	r.hashes = r.hashes[:0]
	r.counts = make(map[uint64]int)
	r.Push(initial)
}

// Push records a newly reached position.
func (r *Repetitions) Push(h uint64) {
	r.hashes = append(r.hashes, h)
	r.counts[h]++
}

// Pop forgets the most recent position. The initial position is never
// removed.
func (r *Repetitions) Pop() {
	if len(r.hashes) <= 1 {
		return
	}
	last := r.hashes[len(r.hashes)-1]
	r.hashes = r.hashes[:len(r.hashes)-1]
	if r.counts[last]--; r.counts[last] == 0 {
		delete(r.counts, last)
	}
}

// Current returns how many times the latest position has occurred,
// counting itself.
func (r *Repetitions) Current() int {
	return r.counts[r.hashes[len(r.hashes)-1]]
}

// Len returns the number of positions recorded.
func (r *Repetitions) Len() int {
	return len(r.hashes)
}
