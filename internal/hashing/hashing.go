// Package hashing counts repeated positions for the repetition draw rules.
package hashing

// PositionCounter tracks how often each position signature has occurred.
type PositionCounter struct {
	// hashTable buckets signatures by their hash code
	hashTable map[uint64][]positionEntry
	// maxCount is the highest count seen so far
	maxCount int
}

type positionEntry struct {
	signature string
	count     int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{
		hashTable: make(map[uint64][]positionEntry),
	}
}

// Add records one occurrence of signature and returns its new count.
func (p *PositionCounter) Add(signature string) int {
	hash := hashSignature(signature)
	bucket := p.hashTable[hash]
	for i := range bucket {
		if bucket[i].signature == signature {
			bucket[i].count++
			p.observe(bucket[i].count)
			return bucket[i].count
		}
	}
	p.hashTable[hash] = append(bucket, positionEntry{signature: signature, count: 1})
	p.observe(1)
	return 1
}

// Count returns how often signature has been recorded.
func (p *PositionCounter) Count(signature string) int {
	for _, e := range p.hashTable[hashSignature(signature)] {
		if e.signature == signature {
			return e.count
		}
	}
	return 0
}

// MaxCount returns the highest occurrence count of any signature.
func (p *PositionCounter) MaxCount() int {
	return p.maxCount
}

func (p *PositionCounter) observe(n int) {
	if n > p.maxCount {
		p.maxCount = n
	}
}

// hashSignature creates a hash code from a position signature.
func hashSignature(signature string) uint64 {
	var hash uint64
	multiplier := uint64(31)
	for i := 0; i < len(signature); i++ {
		hash = hash*multiplier + uint64(signature[i])
	}
	return hash
}
