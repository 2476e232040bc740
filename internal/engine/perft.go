package engine

// Perft counts the leaf nodes of the legal move tree depth plies deep.
// Known counts for reference positions make it the standard check of move
// generation.
func (b *Board) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, sq := range b.used[b.turn] {
		p := b.pieces[sq]
		for _, m := range b.pseudoMoves(p) {
			if !b.isLegal(p, m) {
				continue
			}
			if depth == 1 {
				nodes++
				continue
			}
			b.apply(p, m)
			nodes += b.Perft(depth - 1)
			b.unmake()
		}
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move, keyed by
// the move in long-algebraic form.
func (b *Board) PerftDivide(depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, sq := range b.used[b.turn] {
		p := b.pieces[sq]
		for _, m := range b.pseudoMoves(p) {
			if !b.isLegal(p, m) {
				continue
			}
			b.apply(p, m)
			e := b.history[len(b.history)-1]
			result[e.LAN()] = b.Perft(depth - 1)
			b.unmake()
		}
	}
	return result
}
