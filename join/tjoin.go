package join

import "sort"

// tjoinBucket is one (key, tree ids) leaf of a TJoinIndex stage.
type tjoinBucket struct {
	key int
	ids []int
}

// ancBucket is one descendants-stage entry: an ancestor count paired
// with its right-left-stage buckets, both kept sorted by key so
// lookups can binary-search a starting point the way the original's
// std::map::lower_bound does.
type ancBucket struct {
	anc int
	rl  []tjoinBucket
}

type descBucket struct {
	desc int
	anc  []ancBucket
}

// TJoinIndex is the three-stage inverted list keyed first by label
// id, then by descendant count, then by ancestor count, then by
// right-left count (the count of nodes that are neither ancestor nor
// descendant of the indexed node), grounded on
// lookup/index/two_stage_inverted_list_impl.h's TwoStageInvertedList —
// renamed to reflect the three nested stages it actually walks
// (descendants, ancestors, right-left), rather than the "two stage"
// name left over from an earlier revision of that file.
type TJoinIndex struct {
	perLabel map[int32][]descBucket
}

// NewTJoinIndex returns an empty, ready-to-Build TJoinIndex.
func NewTJoinIndex() *TJoinIndex {
	return &TJoinIndex{perLabel: make(map[int32][]descBucket)}
}

// Build indexes every LabelSetElement of every set in the collection.
// setSizes[s] is the total node count of the tree that produced
// sets[s], used to derive each element's right-left count.
func (ix *TJoinIndex) Build(sets [][]LabelSetElement, setSizes []int) {
	ix.perLabel = make(map[int32][]descBucket)

	for s, set := range sets {
		for _, e := range set {
			rl := setSizes[s] - e.Descendants - e.Ancestors - 1
			ix.insert(e.LabelID, e.Descendants, e.Ancestors, rl, s)
		}
	}
}

func (ix *TJoinIndex) insert(labelID int32, desc, anc, rl, treeID int) {
	descs := ix.perLabel[labelID]
	di := sort.Search(len(descs), func(i int) bool { return descs[i].desc >= desc })
	if di == len(descs) || descs[di].desc != desc {
		descs = append(descs, descBucket{})
		copy(descs[di+1:], descs[di:])
		descs[di] = descBucket{desc: desc}
	}

	ancs := descs[di].anc
	ai := sort.Search(len(ancs), func(i int) bool { return ancs[i].anc >= anc })
	if ai == len(ancs) || ancs[ai].anc != anc {
		ancs = append(ancs, ancBucket{})
		copy(ancs[ai+1:], ancs[ai:])
		ancs[ai] = ancBucket{anc: anc}
	}

	rls := ancs[ai].rl
	ri := sort.Search(len(rls), func(i int) bool { return rls[i].key >= rl })
	if ri == len(rls) || rls[ri].key != rl {
		rls = append(rls, tjoinBucket{})
		copy(rls[ri+1:], rls[ri:])
		rls[ri] = tjoinBucket{key: rl}
	}
	rls[ri].ids = append(rls[ri].ids, treeID)

	ancs[ai].rl = rls
	descs[di].anc = ancs
	ix.perLabel[labelID] = descs
}

// Lookup returns every tree id whose posting for labelID has
// descendant/ancestor/right-left counts within threshold of
// (descendants, ancestors, treeSize-descendants-ancestors-1),
// narrowing the threshold budget stage by stage exactly as
// two_stage_inverted_list_impl.h's lookup does (descendants first,
// then ancestors, then right-left, each stage's remaining budget
// reduced by the previous stage's |difference|).
func (ix *TJoinIndex) Lookup(labelID int32, descendants, ancestors, treeSize int, threshold int) []int {
	rightLeft := treeSize - descendants - ancestors - 1
	candidates := make(map[int]bool)

	descs := ix.perLabel[labelID]
	startDesc := descendants - threshold
	if startDesc < 0 {
		startDesc = 0
	}
	di := sort.Search(len(descs), func(i int) bool { return descs[i].desc >= startDesc })
	for ; di < len(descs); di++ {
		budget1 := threshold - abs(descendants-descs[di].desc)
		if budget1 < 0 {
			continue
		}

		startAnc := ancestors - budget1
		if startAnc < 0 {
			startAnc = 0
		}
		ancs := descs[di].anc
		ai := sort.Search(len(ancs), func(i int) bool { return ancs[i].anc >= startAnc })
		for ; ai < len(ancs); ai++ {
			budget2 := budget1 - abs(ancestors-ancs[ai].anc)
			if budget2 < 0 {
				continue
			}

			startRL := rightLeft - budget2
			if startRL < 0 {
				startRL = 0
			}
			rls := ancs[ai].rl
			ri := sort.Search(len(rls), func(i int) bool { return rls[i].key >= startRL })
			for ; ri < len(rls); ri++ {
				if budget2-abs(rightLeft-rls[ri].key) < 0 {
					continue
				}
				for _, id := range rls[ri].ids {
					candidates[id] = true
				}
			}
		}
	}

	out := make([]int, 0, len(candidates))
	for id := range candidates {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
