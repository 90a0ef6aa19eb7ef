package assemble

import (
	"encoding/hex"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// RemovedBlock describes one repeated line block collapsed by
// DeduplicateLines.
type RemovedBlock struct {
	// Start is the line offset in the original text where the
	// removed occurrence began.
	Start int

	// Lines is the number of lines removed.
	Lines int

	// FirstSeen is the line offset of the occurrence that was kept.
	FirstSeen int

	// Key is the hash of the initial window of the removed block.
	Key string
}

// DeduplicateLines collapses repeated contiguous line blocks of at
// least minBlockSize lines to their first occurrence. Crawled sites
// repeat navigation and footer boilerplate on every page; this pass
// removes those repeats from an assembled document.
//
// Returns the deduplicated text and metadata about what was removed.
// The result is a fixpoint: applying the pass again with the same
// minBlockSize removes nothing.
func DeduplicateLines(text string, minBlockSize int) (string, []RemovedBlock) {
	return DeduplicateLinesKey(text, minBlockSize, nil)
}

// DeduplicateLinesKey is DeduplicateLines with a custom key function
// mapping each line to the value it is compared by. A nil key
// compares lines as-is.
func DeduplicateLinesKey(text string, minBlockSize int, key func(line string) string) (string, []RemovedBlock) {
	if minBlockSize < 1 {
		minBlockSize = 1
	}

	lines := strings.Split(text, "\n")
	keyed := lines
	if key != nil {
		keyed = make([]string, len(lines))
		for i, line := range lines {
			keyed[i] = key(line)
		}
	}
	orig := make([]int, len(lines))
	for i := range orig {
		orig[i] = i
	}

	// Removing a block can splice the lines around it into a new
	// repeated window, so a single sweep is not enough: sweep until a
	// fixpoint is reached. Each sweep shrinks the text, so this
	// terminates.
	var removed []RemovedBlock
	for {
		var sweepRemoved []RemovedBlock
		lines, keyed, orig, sweepRemoved = dedupeSweep(lines, keyed, orig, minBlockSize)
		if len(sweepRemoved) == 0 {
			break
		}
		removed = append(removed, sweepRemoved...)
	}

	return strings.Join(lines, "\n"), removed
}

// dedupeSweep makes one left-to-right sweep, collapsing blocks that
// repeat a non-overlapping earlier window. orig maps each line to its
// offset in the original text so removal metadata stays in original
// coordinates across sweeps.
func dedupeSweep(lines, keyed []string, orig []int, minBlockSize int) ([]string, []string, []int, []RemovedBlock) {
	n := len(lines)
	if n < minBlockSize*2 {
		return lines, keyed, orig, nil
	}

	// Hash every window of minBlockSize lines and remember where each
	// window was first seen.
	numWindows := n - minBlockSize + 1
	windowKeys := make([]string, numWindows)
	firstSeen := make(map[string]int, numWindows)
	for i := 0; i < numWindows; i++ {
		windowKeys[i] = hashWindow(keyed[i : i+minBlockSize])
		if _, ok := firstSeen[windowKeys[i]]; !ok {
			firstSeen[windowKeys[i]] = i
		}
	}

	var outLines, outKeyed []string
	var outOrig []int
	var removed []RemovedBlock

	keep := func(i int) {
		outLines = append(outLines, lines[i])
		outKeyed = append(outKeyed, keyed[i])
		outOrig = append(outOrig, orig[i])
	}

	for i := 0; i < n; {
		if i >= numWindows {
			keep(i)
			i++
			continue
		}

		j, ok := firstSeen[windowKeys[i]]
		// Only a non-overlapping earlier occurrence counts as a repeat.
		if !ok || j+minBlockSize > i || !windowsEqual(keyed, j, i, minBlockSize) {
			keep(i)
			i++
			continue
		}

		// Extend the match past the initial window.
		length := minBlockSize
		for i+length < n && j+length < i && keyed[j+length] == keyed[i+length] {
			length++
		}

		removed = append(removed, RemovedBlock{
			Start:     orig[i],
			Lines:     length,
			FirstSeen: orig[j],
			Key:       windowKeys[i],
		})
		i += length
	}

	return outLines, outKeyed, outOrig, removed
}

// hashWindow computes an xxHash over a window of line keys.
func hashWindow(window []string) string {
	d := xxhash.New()
	for _, line := range window {
		_, _ = d.WriteString(line)
		_, _ = d.Write([]byte{'\n'})
	}
	sum := d.Sum(nil)
	return hex.EncodeToString(sum)
}

// windowsEqual guards against hash collisions by comparing the
// windows line by line.
func windowsEqual(keyed []string, a, b, size int) bool {
	for k := 0; k < size; k++ {
		if keyed[a+k] != keyed[b+k] {
			return false
		}
	}
	return true
}
