package diskmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedInput indicates a character in the map is not a digit.
var ErrMalformedInput = errors.New("diskmap: malformed input")

// Block is one disk block: a file id, or Empty.
type Block int

// Empty marks a free block.
const Empty Block = -1

type span struct {
	start, size int
}

// Disk is an expanded block array plus the location of every file.
type Disk struct {
	Blocks []Block
	files  []span // indexed by file id
}

// Parse reads the run-length digit string. Surrounding whitespace is ignored.
func Parse(input string) ([]uint8, error) {
	input = strings.TrimSpace(input)
	runs := make([]uint8, 0, len(input))
	for i, c := range input {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrMalformedInput, c, i)
		}
		runs = append(runs, uint8(c-'0'))
	}
	return runs, nil
}

// Expand lays the runs out as blocks.
func Expand(runs []uint8) *Disk {
	total := 0
	for _, r := range runs {
		total += int(r)
	}

	d := &Disk{
		Blocks: make([]Block, 0, total),
		files:  make([]span, 0, (len(runs)+1)/2),
	}
	for i, r := range runs {
		b := Empty
		if i%2 == 0 {
			b = Block(len(d.files))
			d.files = append(d.files, span{start: len(d.Blocks), size: int(r)})
		}
		for j := 0; j < int(r); j++ {
			d.Blocks = append(d.Blocks, b)
		}
	}
	return d
}

// Files returns the number of files on the disk.
func (d *Disk) Files() int { return len(d.files) }

// CompactBlocks moves the last file block into the first free block, over
// and over, until every file block precedes every free block.
func (d *Disk) CompactBlocks() {
	var full, free []int
	for i, b := range d.Blocks {
		if b == Empty {
			free = append(free, i)
		} else {
			full = append(full, i)
		}
	}
	used := len(full)

	// 1. Pair the tail of full with the head of free.
	for k := 0; k < len(free) && k < len(full); k++ {
		to, from := free[k], full[len(full)-1-k]
		if to >= used {
			break
		}
		d.Blocks[to], d.Blocks[from] = d.Blocks[from], Empty
	}

	// 2. File spans are no longer contiguous; drop them.
	d.files = nil
}

// FindSpace returns the start of the leftmost run of at least size free
// blocks anywhere on the disk.
func (d *Disk) FindSpace(size int) (int, bool) {
	return d.FindSpaceBefore(size, len(d.Blocks))
}

// FindSpaceBefore is FindSpace restricted to runs that end before limit.
// A size of zero or less never matches.
func (d *Disk) FindSpaceBefore(size, limit int) (int, bool) {
	if size <= 0 {
		return 0, false
	}
	limit = min(limit, len(d.Blocks))
	run := 0
	for i := 0; i < limit; i++ {
		if d.Blocks[i] != Empty {
			run = 0
			continue
		}
		run++
		if run == size {
			return i - size + 1, true
		}
	}
	return 0, false
}

// CompactFiles tries each file once, highest id first, moving it whole into
// the leftmost free run before it.
// It has no effect after CompactBlocks.
func (d *Disk) CompactFiles() {
	for id := len(d.files) - 1; id >= 0; id-- {
		f := d.files[id]
		to, ok := d.FindSpaceBefore(f.size, f.start)
		if !ok {
			continue
		}
		for k := 0; k < f.size; k++ {
			d.Blocks[to+k], d.Blocks[f.start+k] = Block(id), Empty
		}
		d.files[id].start = to
	}
}

// Checksum sums id × index over every file block.
func (d *Disk) Checksum() int {
	sum := 0
	for i, b := range d.Blocks {
		if b != Empty {
			sum += int(b) * i
		}
	}
	return sum
}

// String renders free blocks as '.' and file blocks by id. Ids above 9 make
// the picture ambiguous; it is meant for small disks.
func (d *Disk) String() string {
	var sb strings.Builder
	for _, b := range d.Blocks {
		if b == Empty {
			sb.WriteByte('.')
			continue
		}
		sb.WriteString(strconv.Itoa(int(b)))
	}
	return sb.String()
}

// Part1 is the checksum after block-by-block compaction.
func Part1(runs []uint8) int {
	d := Expand(runs)
	d.CompactBlocks()
	return d.Checksum()
}

// Part2 is the checksum after whole-file compaction.
func Part2(runs []uint8) int {
	d := Expand(runs)
	d.CompactFiles()
	return d.Checksum()
}
