// Command ted is the module's reference CLI, grounded on
// _examples/original_source/src/command_line/main.cc's argument
// layout: ted T1 T2 runs Zhang-Shasha, ted T1 T2 k runs Touzet bounded
// by k, and ted T1 T2 k d selects Touzet's depth-pruning variant. T1
// and T2 are bracket-notation trees passed as literal arguments (quote
// them in the shell), not file paths. It prints "<distance>
// <subproblems> <elapsed>" and exits 0 on success, 2 on malformed
// input.
//
// A second form, ted join <count> <size> <maxFanout> <k>, demos the
// join pipeline end to end: it generates <count> random trees via
// treegen, indexes the label histogram of each into a join.InvertedIndex,
// and verifies every candidate pair surviving the prefix filter with
// zhangshasha, printing the pairs whose exact TED is within <k>.
//
// This is the only place in the module that writes to stdout/stderr or
// calls os.Exit.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/tedkit/bracket"
	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/join"
	"github.com/katalvlaran/tedkit/label"
	"github.com/katalvlaran/tedkit/touzet"
	"github.com/katalvlaran/tedkit/treegen"
	"github.com/katalvlaran/tedkit/treeindex"
	"github.com/katalvlaran/tedkit/zhangshasha"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	if len(args) > 0 && args[0] == "join" {
		return runJoinDemo(args[1:], stdout, stderr)
	}

	return runDistance(args, stdout, stderr)
}

func runDistance(args []string, stdout, stderr *os.File) int {
	if len(args) != 2 && len(args) != 3 && len(args) != 4 {
		fmt.Fprintln(stderr, "usage: ted <T1> <T2> [k] [d]")

		return 2
	}

	dict := label.NewDictionary()
	cm := costmodel.NewUnit()

	t1, err := bracket.ParseString(args[0])
	if err != nil {
		fmt.Fprintln(stderr, "source tree:", err)

		return 2
	}
	t2, err := bracket.ParseString(args[1])
	if err != nil {
		fmt.Fprintln(stderr, "destination tree:", err)

		return 2
	}

	idx1, idx2 := &treeindex.Index{}, &treeindex.Index{}
	if err := treeindex.IndexTree(idx1, t1, dict, cm); err != nil {
		fmt.Fprintln(stderr, "source tree:", err)

		return 2
	}
	if err := treeindex.IndexTree(idx2, t2, dict, cm); err != nil {
		fmt.Fprintln(stderr, "destination tree:", err)

		return 2
	}

	var distance float64
	var subprobs int64
	start := time.Now()

	switch len(args) {
	case 2:
		res, err := zhangshasha.NewEngine().TED(idx1, idx2, cm)
		if err != nil {
			fmt.Fprintln(stderr, err)

			return 2
		}
		distance, subprobs = res.Distance, res.Subprobs

	case 3, 4:
		k, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Fprintln(stderr, "k:", err)

			return 2
		}

		e := touzet.NewEngine()
		var res touzet.Result
		if len(args) == 4 {
			if args[3] != "d" {
				fmt.Fprintln(stderr, "unknown variant flag:", args[3])

				return 2
			}
			res, err = e.TEDkDepthPruning(idx1, idx2, cm, k)
		} else {
			res, err = e.TEDk(idx1, idx2, cm, k)
		}
		if err != nil {
			fmt.Fprintln(stderr, err)

			return 2
		}
		distance, subprobs = res.Distance, res.Subprobs
	}

	elapsed := time.Since(start)
	fmt.Fprintf(stdout, "%g %d %s\n", distance, subprobs, elapsed)

	return 0
}

var joinDemoAlphabet = []string{"a", "b", "c", "d", "e"}

func runJoinDemo(args []string, stdout, stderr *os.File) int {
	if len(args) != 4 {
		fmt.Fprintln(stderr, "usage: ted join <count> <size> <maxFanout> <k>")

		return 2
	}

	count, err1 := strconv.Atoi(args[0])
	size, err2 := strconv.Atoi(args[1])
	maxFanout, err3 := strconv.Atoi(args[2])
	k, err4 := strconv.Atoi(args[3])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || count <= 0 || size <= 0 {
		fmt.Fprintln(stderr, "usage: ted join <count> <size> <maxFanout> <k> (all integers, count/size > 0)")

		return 2
	}

	dict := label.NewDictionary()
	cm := costmodel.NewUnit()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	idxs := make([]*treeindex.Index, count)
	histograms := make([]map[int32]int, count)
	sizes := make([]int, count)
	for i := 0; i < count; i++ {
		tr := treegen.RandomTree(rng, size, maxFanout, joinDemoAlphabet)
		idx := &treeindex.Index{}
		if err := treeindex.IndexTree(idx, tr, dict, cm); err != nil {
			fmt.Fprintln(stderr, "tree", i, ":", err)

			return 2
		}
		idxs[i] = idx
		histograms[i] = join.LabelHistogram(idx)
		sizes[i] = idx.NumNodes()
	}

	ix := join.NewInvertedIndex()
	ix.Build(histograms, sizes)

	seen := make(map[join.Pair]bool)
	var pairs []join.Pair
	for i := range idxs {
		for _, j := range ix.Candidates(join.Query{Size: sizes[i], Histogram: histograms[i]}, float64(k)) {
			if j <= i {
				continue
			}
			p := join.Pair{LeftID: i, RightID: j}
			if !seen[p] {
				seen[p] = true
				pairs = append(pairs, p)
			}
		}
	}

	engine := join.Engine(func(a, b *treeindex.Index, cm costmodel.Model) (float64, int64, error) {
		res, err := zhangshasha.NewEngine().TED(a, b, cm)

		return res.Distance, res.Subprobs, err
	})

	results, subprobs, err := join.Verify(pairs, idxs, cm, float64(k), engine)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 2
	}

	fmt.Fprintf(stdout, "%d trees, %d candidate pairs, %d verified within k=%d, %d subproblems\n",
		count, len(pairs), len(results), k, subprobs)
	for _, r := range results {
		fmt.Fprintf(stdout, "%d %d %g\n", r.LeftID, r.RightID, r.TED)
	}

	return 0
}
