// Package diff renders unified diffs between original and formatted text.
package diff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

var (
	headerColor = color.New(color.FgCyan)
	dropColor   = color.New(color.FgRed)
	addColor    = color.New(color.FgGreen)
)

// Unified generates a plain unified diff between oldText and newText.
// Returns an empty string if the inputs are identical.
func Unified(filename, oldText, newText string) string {
	return Printer{}.Render(filename, oldText, newText)
}

// Printer renders unified diffs, optionally with ANSI colors.
type Printer struct {
	Color bool
}

// Render generates the unified diff between oldText and newText. Returns
// an empty string if the inputs are identical.
func (p Printer) Render(filename, oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	oldLines := splitLines(oldText)
	newLines := splitLines(newText)
	ops := shortestEdit(oldLines, newLines)

	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(p.paint(headerColor, fmt.Sprintf("--- a/%s", filename)))
	b.WriteByte('\n')
	b.WriteString(p.paint(headerColor, fmt.Sprintf("+++ b/%s", filename)))
	b.WriteByte('\n')

	for _, h := range hunks {
		p.writeHunk(&b, ops[h.lo:h.hi+1], oldLines, newLines)
	}

	return b.String()
}

func (p Printer) writeHunk(b *strings.Builder, ops []op, oldLines, newLines []string) {
	oldStart, newStart := hunkStarts(ops)
	oldCount, newCount := hunkCounts(ops)

	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", oldStart+1, oldCount, newStart+1, newCount)
	b.WriteString(p.paint(headerColor, header))
	b.WriteByte('\n')

	for _, o := range ops {
		switch o.kind {
		case opKeep:
			b.WriteString(" " + chomp(oldLines[o.old]))
		case opDrop:
			b.WriteString(p.paint(dropColor, "-"+chomp(oldLines[o.old])))
		case opAdd:
			b.WriteString(p.paint(addColor, "+"+chomp(newLines[o.new])))
		}
		b.WriteByte('\n')
	}
}

func (p Printer) paint(c *color.Color, s string) string {
	if !p.Color {
		return s
	}
	return c.Sprint(s)
}

// chomp strips the line terminator; the hunk writer adds its own.
func chomp(line string) string {
	return strings.TrimRight(line, "\r\n")
}

// splitLines cuts text after every newline. A final line without a
// terminator is kept as-is; an empty string produces zero lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// opKind classifies one line of the edit script.
type opKind int

const (
	opKeep opKind = iota
	opDrop        // line exists only in oldText.
	opAdd         // line exists only in newText.
)

// op is a single edit script line.
type op struct {
	kind opKind
	old  int // index into the old lines, -1 for adds.
	new  int // index into the new lines, -1 for drops.
}

// shortestEdit computes a minimal edit script with the greedy forward
// search from Myers' diff algorithm. The frontier of every search round
// is recorded so the chosen path can be walked backwards afterwards.
func shortestEdit(a, b []string) []op {
	n, m := len(a), len(b)
	total := n + m
	if total == 0 {
		return nil
	}

	// frontier[k+total] is the farthest x reached on diagonal k = x - y.
	frontier := make([]int, 2*total+1)
	rounds := make([][]int, 0, total+1)

	for d := 0; d <= total; d++ {
		rounds = append(rounds, append([]int(nil), frontier...))

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && frontier[k-1+total] < frontier[k+1+total]) {
				x = frontier[k+1+total] // step down: take a line from b.
			} else {
				x = frontier[k-1+total] + 1 // step right: drop a line from a.
			}
			y := x - k

			// Follow the diagonal over equal lines.
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}

			frontier[k+total] = x

			if x >= n && y >= m {
				return backtrack(rounds, a, b, d)
			}
		}
	}

	// Unreachable: d = total always suffices.
	return nil
}

// backtrack walks the recorded rounds from the end point back to the
// origin, emitting ops in reverse order, then flips them.
func backtrack(rounds [][]int, a, b []string, d int) []op {
	total := len(a) + len(b)
	x, y := len(a), len(b)

	var ops []op

	for step := d; step > 0; step-- {
		frontier := rounds[step]
		k := x - y

		prevK := k - 1
		if k == -step || (k != step && frontier[k-1+total] < frontier[k+1+total]) {
			prevK = k + 1
		}

		prevX := frontier[prevK+total]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			ops = append(ops, op{kind: opKeep, old: x, new: y})
		}

		if prevK == k+1 {
			y--
			ops = append(ops, op{kind: opAdd, old: -1, new: y})
		} else {
			x--
			ops = append(ops, op{kind: opDrop, old: x, new: -1})
		}
	}

	// Remaining diagonal at d = 0.
	for x > 0 && y > 0 {
		x--
		y--
		ops = append(ops, op{kind: opKeep, old: x, new: y})
	}

	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}

	return ops
}

// hunkRange is an inclusive index range into the op list.
type hunkRange struct{ lo, hi int }

// groupHunks returns the op ranges to print: each run of changes with its
// surrounding context, adjacent runs merged when their contexts meet.
func groupHunks(ops []op) []hunkRange {
	var hunks []hunkRange
	for i, o := range ops {
		if o.kind == opKeep {
			continue
		}
		lo := max(i-contextLines, 0)
		hi := min(i+contextLines, len(ops)-1)
		if n := len(hunks); n > 0 && lo <= hunks[n-1].hi+1 {
			hunks[n-1].hi = hi
			continue
		}
		hunks = append(hunks, hunkRange{lo: lo, hi: hi})
	}
	return hunks
}

// hunkStarts returns the first old and new line indices in the hunk.
func hunkStarts(ops []op) (oldStart, newStart int) {
	for _, o := range ops {
		if o.old >= 0 {
			oldStart = o.old
			break
		}
	}
	for _, o := range ops {
		if o.new >= 0 {
			newStart = o.new
			break
		}
	}
	return oldStart, newStart
}

// hunkCounts counts old and new lines in the hunk.
func hunkCounts(ops []op) (oldCount, newCount int) {
	for _, o := range ops {
		if o.old >= 0 {
			oldCount++
		}
		if o.new >= 0 {
			newCount++
		}
	}
	return oldCount, newCount
}
