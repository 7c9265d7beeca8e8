package treeindex

import (
	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/label"
)

// frame is an explicit-stack work item for the postorder indexing
// pass. Using a slice-backed stack instead of recursion means a
// pathologically deep tree never exhausts the goroutine stack (design
// notes: "Recursive DFS indexing -> explicit stack").
type frame struct {
	node       *Tree
	depth      int
	preL       int
	childIdx   int
	isLeftmost bool
	isRight    bool
	childIDs   []int
}

// IndexTree populates idx with every array described in index.go for
// the tree rooted at root, interning labels through dict and pricing
// subtree delete/insert costs through cm. idx is reset and fully
// (re)allocated to root's size; callers typically pass a freshly
// zero-valued *Index.
//
// Complexity: O(n) time (linear passes: node count, postorder,
// right-to-left), O(n) extra space for the explicit stacks.
func IndexTree(idx *Index, root *Tree, dict *label.Dictionary, cm costmodel.Model) error {
	if root == nil {
		return ErrNilTree
	}
	if dict == nil {
		return ErrNilDictionary
	}
	if cm == nil {
		return ErrNilCostModel
	}

	n := root.Size()
	built := newIndex(n)
	preLNode := make([]*Tree, n)

	nextPre := 0
	nextPost := 0

	rootFrame := &frame{node: root, depth: 0, preL: 0, isLeftmost: true, isRight: true}
	preLNode[0] = root
	nextPre++

	stack := []*frame{rootFrame}
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.childIdx < len(top.node.Children) {
			child := top.node.Children[top.childIdx]
			pos := top.childIdx
			top.childIdx++

			childPreL := nextPre
			nextPre++
			preLNode[childPreL] = child

			stack = append(stack, &frame{
				node:       child,
				depth:      top.depth + 1,
				preL:       childPreL,
				isLeftmost: pos == 0,
				isRight:    pos == len(top.node.Children)-1,
			})
			continue
		}

		// All children processed: finalize top in postorder.
		stack = stack[:len(stack)-1]
		pid := nextPost
		nextPost++

		labelID := dict.Insert(top.node.Label)

		built.Parent[pid] = -1
		built.Depth[pid] = top.depth
		built.LabelID[pid] = labelID
		built.NodeType[pid] = top.node.Type
		if top.childIDs == nil {
			top.childIDs = []int{}
		}
		built.Children[pid] = top.childIDs
		built.PreL_to_PostL[top.preL] = pid
		built.PostL_to_PreL[pid] = top.preL
		built.TypeLeft[top.preL] = top.isLeftmost
		built.TypeRight[top.preL] = top.isRight

		if top.node.Type == TypeKey && len(top.childIDs) != 1 {
			return ErrMalformedKeyNode
		}

		delCost := cm.Del(labelID)
		insCost := cm.Ins(labelID)
		if delCost < 0 || insCost < 0 {
			return ErrNegativeCost
		}

		size := 1
		maxDepth := top.depth
		subDel := delCost
		subIns := insCost
		for _, c := range top.childIDs {
			size += built.Size[c]
			if built.SubtreeMaxDepth[c] > maxDepth {
				maxDepth = built.SubtreeMaxDepth[c]
			}
			subDel += built.SubtreeDelCost[c]
			subIns += built.SubtreeInsCost[c]
			built.Parent[c] = pid
		}
		built.Size[pid] = size
		built.SubtreeMaxDepth[pid] = maxDepth
		built.SubtreeDelCost[pid] = subDel
		built.SubtreeInsCost[pid] = subIns

		if len(top.childIDs) == 0 {
			built.LLD[pid] = pid
			built.LCH[pid] = -1
		} else {
			built.LLD[pid] = built.LLD[top.childIDs[0]]
			built.LCH[pid] = built.LLD[pid]

			firstChild := top.childIDs[0]
			lastChild := top.childIDs[len(top.childIDs)-1]
			heaviestChild := firstChild
			for _, c := range top.childIDs[1:] {
				if built.Size[c] > built.Size[heaviestChild] {
					heaviestChild = c
				}
			}
			built.CostLeft[pid] = built.CostLeft[firstChild] + (size - built.Size[firstChild])
			built.CostRight[pid] = built.CostRight[lastChild] + (size - built.Size[lastChild])
			built.CostAll[pid] = built.CostAll[heaviestChild] + (size - built.Size[heaviestChild])
		}

		isRootNode := len(stack) == 0
		built.IsKeyRoot[pid] = isRootNode || !top.isLeftmost

		for built.Depth[pid] >= len(built.DepthIndex) {
			built.DepthIndex = append(built.DepthIndex, nil)
		}
		built.DepthIndex[built.Depth[pid]] = append(built.DepthIndex[built.Depth[pid]], pid)
		built.LabelIndex[labelID] = append(built.LabelIndex[labelID], pid)

		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.childIDs = append(parent.childIDs, pid)
		}
	}

	// Nearest-keyroot-ancestor pass: forward scan in preorder (parents
	// always precede children in preorder), so no recursion needed.
	for p := 0; p < n; p++ {
		pid := built.PreL_to_PostL[p]
		if built.IsKeyRoot[pid] {
			built.KRAncestor[pid] = pid
		} else {
			built.KRAncestor[pid] = built.KRAncestor[built.Parent[pid]]
		}
	}

	for pid := 0; pid < n; pid++ {
		if built.IsKeyRoot[pid] {
			built.KeyRoots = append(built.KeyRoots, pid)
		}
	}

	indexRightToLeft(built, root, preLNode, n)
	built.OriginalTree = root

	*idx = *built

	return nil
}

// indexRightToLeft computes the right-to-left preorder/postorder
// translation arrays (PreL_to_PreR, PreR_to_PreL, PreL_to_PostR,
// PostR_to_PreL) via a second explicit-stack pass that visits children
// from last to first. No engine in this module reads these arrays;
// apted's mirrored decomposition uses mirrorSubtree instead.
func indexRightToLeft(built *Index, root *Tree, preLNode []*Tree, n int) {
	preR := make(map[*Tree]int, n)
	postR := make(map[*Tree]int, n)

	type rframe struct {
		node     *Tree
		childIdx int // next index to descend into, counting down
	}

	nextPreR := 0
	nextPostR := 0

	preR[root] = nextPreR
	nextPreR++
	stack := []*rframe{{node: root, childIdx: len(root.Children) - 1}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.childIdx >= 0 {
			child := top.node.Children[top.childIdx]
			top.childIdx--
			preR[child] = nextPreR
			nextPreR++
			stack = append(stack, &rframe{node: child, childIdx: len(child.Children) - 1})
			continue
		}
		stack = stack[:len(stack)-1]
		postR[top.node] = nextPostR
		nextPostR++
	}

	for p := 0; p < n; p++ {
		node := preLNode[p]
		pr := preR[node]
		por := postR[node]
		built.PreL_to_PreR[p] = pr
		built.PreR_to_PreL[pr] = p
		built.PreL_to_PostR[p] = por
		built.PostR_to_PreL[por] = p
	}
}
