package generator

import "github.com/tidwall/btree"

// moveIndex holds the set of currently playable reverse moves under two
// synchronized orderings: by identity, for existence checks and removal,
// and by (cost, identity), for rank-based selection among the cheapest
// available moves. The two trees always contain exactly the same moves.
//
// tiers caches the number of stored moves at each cost level so that
// counting moves cheaper than a bound is O(1); uniform selection within
// a cost tier is a single indexed lookup on the cost ordering.
type moveIndex struct {
	byMove *btree.BTreeG[Move]
	byCost *btree.BTreeG[Move]
	tiers  [MaxMoveCost + 1]int
}

func newMoveIndex() *moveIndex {
	// Generation is single-threaded; skip the trees' internal locking.
	opts := btree.Options{NoLocks: true}
	return &moveIndex{
		byMove: btree.NewBTreeGOptions(identityLess, opts),
		byCost: btree.NewBTreeGOptions(costLess, opts),
	}
}

// reconcile folds a freshly recomputed candidate into the index.
// playable reports whether the move is currently legal on the grid;
// when false m.Cost is ignored. The stored set changes only when the
// recomputation disagrees with it, so reconcile is idempotent.
func (idx *moveIndex) reconcile(m Move, playable bool) {
	existing, found := idx.byMove.Get(m)
	if !playable {
		if found {
			idx.remove(existing)
		}
		return
	}
	if found {
		if existing.Cost == m.Cost {
			return
		}
		// Cost participates in the byCost sort key, so the stale
		// entry must come out before the corrected one goes in.
		idx.remove(existing)
	}
	idx.byMove.Set(m)
	idx.byCost.Set(m)
	idx.tiers[m.Cost]++
}

// remove deletes a stored move from both orderings. m must carry the
// cost it was stored with.
func (idx *moveIndex) remove(m Move) {
	idx.byMove.Delete(m)
	idx.byCost.Delete(m)
	idx.tiers[m.Cost]--
}

// countBelow returns the number of stored moves with cost strictly less
// than the bound, i.e. the rank of the first move at that cost level in
// the cost ordering.
func (idx *moveIndex) countBelow(cost int) int {
	n := 0
	for c := 0; c < cost && c <= MaxMoveCost; c++ {
		n += idx.tiers[c]
	}
	return n
}

// at returns the move at the given rank in the cost ordering.
func (idx *moveIndex) at(rank int) (Move, bool) {
	return idx.byCost.GetAt(rank)
}

// size returns the number of stored moves.
func (idx *moveIndex) size() int {
	return idx.byMove.Len()
}
