package convert

import (
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zhconv/zhconv/dict"
	"github.com/zhconv/zhconv/dict/starter"
)

// parallelThreshold is the code-unit length above which ApplyRoundParallel
// fans the input out across a worker pool instead of scanning it
// sequentially — empirically, around 1-2K code units is where the fan-out
// cost pays for itself.
const parallelThreshold = 1536

// minChunkUnits is the smallest a chunk is allowed to target before the
// splitter considers cutting there; it keeps the driver from fanning a
// merely-above-threshold string out into dozens of tiny goroutines.
const minChunkUnits = 512

// ApplyRoundParallel is the parallel-capable entry point for a
// segmentation round. For short input it behaves
// exactly like ApplyRound; above parallelThreshold it splits the input at
// delimiter boundaries into independent chunks, converts each
// concurrently via golang.org/x/sync/errgroup, and concatenates the
// results in order. The split is purely an optimisation: for any input,
// sequential and parallel execution produce byte-identical output.
func ApplyRoundParallel(s string, group []*dict.Entry, union *starter.Union) string {
	if union == nil || len(union.AnyKey) == 0 || len(s) == 0 {
		return s
	}
	if dict.Utf16Len(s) <= parallelThreshold {
		return ApplyRound(s, group, union)
	}

	chunks := splitRanges(s)
	if len(chunks) <= 1 {
		return ApplyRound(s, group, union)
	}

	results := make([]string, len(chunks))
	var g errgroup.Group
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			results[i] = ApplyRound(chunk, group, union)
			return nil
		})
	}
	_ = g.Wait() // ApplyRound cannot fail; Wait only joins the goroutines

	var out strings.Builder
	out.Grow(len(s))
	for _, r := range results {
		out.WriteString(r)
	}
	return out.String()
}

// splitRanges partitions s into chunks, cutting only immediately after a
// delimiter code point once the accumulated chunk size reaches
// minChunkUnits code units. This guarantees a chunk boundary never starts
// mid-surrogate-pair (delimiters are always single-unit BMP code points)
// and never falls inside a non-delimiter run.
func splitRanges(s string) []string {
	ci := buildCodeIndex(s)
	n := len(ci.runes)
	if n == 0 {
		return nil
	}

	var ranges []string
	startRune := 0
	for idx := 0; idx < n; idx++ {
		if !IsDelimiter(ci.runes[idx]) {
			continue
		}
		sinceSplit := ci.unitOffset[idx+1] - ci.unitOffset[startRune]
		if sinceSplit < minChunkUnits {
			continue
		}
		ranges = append(ranges, s[ci.byteOffset[startRune]:ci.byteOffset[idx+1]])
		startRune = idx + 1
	}
	if startRune < n {
		ranges = append(ranges, s[ci.byteOffset[startRune]:ci.byteOffset[n]])
	}
	return ranges
}
