package diskmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/diskmap"
)

const example = "2333133121414131402\n"

func expand(t *testing.T, in string) *diskmap.Disk {
	t.Helper()
	runs, err := diskmap.Parse(in)
	require.NoError(t, err)
	return diskmap.Expand(runs)
}

func TestParse_Malformed(t *testing.T) {
	_, err := diskmap.Parse("12a3")
	assert.ErrorIs(t, err, diskmap.ErrMalformedInput)
}

func TestExpand(t *testing.T) {
	d := expand(t, "12345")
	assert.Equal(t, "0..111....22222", d.String())
	assert.Equal(t, 3, d.Files())

	assert.Equal(t, "00...111...2...333.44.5555.6666.777.888899", expand(t, example).String())
}

func TestCompactBlocks(t *testing.T) {
	d := expand(t, "12345")
	d.CompactBlocks()
	assert.Equal(t, "022111222......", d.String())
	assert.Equal(t, 60, d.Checksum())

	d = expand(t, example)
	d.CompactBlocks()
	assert.Equal(t, "0099811188827773336446555566..............", d.String())
}

// TestCompactBlocks_NoFree covers maps with nothing to move.
func TestCompactBlocks_NoFree(t *testing.T) {
	d := expand(t, "1")
	d.CompactBlocks()
	assert.Equal(t, "0", d.String())

	d = expand(t, "90")
	d.CompactBlocks()
	assert.Equal(t, 0, d.Checksum())
}

func TestFindSpace(t *testing.T) {
	d := expand(t, "12345")
	at, ok := d.FindSpace(2)
	require.True(t, ok)
	assert.Equal(t, 1, at)

	at, ok = d.FindSpace(3)
	require.True(t, ok)
	assert.Equal(t, 6, at)

	_, ok = d.FindSpace(5)
	assert.False(t, ok, "larger than any free run")

	_, ok = d.FindSpaceBefore(3, 5)
	assert.False(t, ok)
	_, ok = d.FindSpace(0)
	assert.False(t, ok)
}

func TestCompactFiles(t *testing.T) {
	d := expand(t, example)
	d.CompactFiles()
	assert.Equal(t, "00992111777.44.333....5555.6666.....8888..", d.String())

	// nothing fits to the left
	d = expand(t, "12345")
	d.CompactFiles()
	assert.Equal(t, "0..111....22222", d.String())
	assert.Equal(t, 132, d.Checksum())
}

func TestParts(t *testing.T) {
	runs, err := diskmap.Parse(example)
	require.NoError(t, err)
	assert.Equal(t, 1928, diskmap.Part1(runs))
	assert.Equal(t, 2858, diskmap.Part2(runs))
}
