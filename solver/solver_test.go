package solver

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelwfc/voxelwfc/bitset"
	"github.com/voxelwfc/voxelwfc/direction"
	"github.com/voxelwfc/voxelwfc/tile"
)

func writeXraw(t *testing.T, dir, name string, size int, data []byte) {
	t.Helper()
	buf := make([]byte, 24+len(data))
	copy(buf[0:4], "XRAW")
	buf[7] = 8
	binary.LittleEndian.PutUint32(buf[8:12], uint32(size))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(size))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(size))
	copy(buf[24:], data)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), buf, 0o600))
}

// singleTileDir writes one 2-edge uniform voxel file, used for the S1
// trivial singleton scenario: the resulting tile set holds that asset's
// four rotations, all of which may neighbor each other in every
// direction.
func singleTileDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	data := make([]byte, 8)
	for i := range data {
		data[i] = 7
	}
	writeXraw(t, dir, "solid.xraw", 2, data)

	return dir
}

// mirrorPairDir writes two 2-edge voxel files "a" and "b" engineered so
// a's +X face exactly matches b's -X face, producing a compatible
// rotation-0-to-rotation-0 +X/-X adjacency — the same construction used
// in the tile package's own tests.
func mirrorPairDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	const size = 2
	idx := func(x, y, z int) int { return (x*size+y)*size + z }

	aData := make([]byte, size*size*size)
	bData := make([]byte, size*size*size)
	for i := range aData {
		aData[i] = 5
		bData[i] = 5
	}
	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			v := byte(10 + 2*x + z)
			aData[idx(x, size-1, z)] = v
			bData[idx(x, 0, z)] = v
		}
	}

	writeXraw(t, dir, "a.xraw", size, aData)
	writeXraw(t, dir, "b.xraw", size, bData)

	return dir
}

func rotationZeroIndex(set *tile.Set, asset string) int {
	for i, n := range set.Nodes {
		if n.Rotation == 0 && n.AssetName == asset {
			return i
		}
	}

	return -1
}

// TestSolveSingleton is scenario S1: a 1x1x1 grid initialized with an
// option mask holding exactly one tile id needs no collapse at all —
// Solve must return that tile unchanged.
func TestSolveSingleton(t *testing.T) {
	dir := singleTileDir(t)
	set, err := tile.BuildSet(dir, 2)
	require.NoError(t, err)

	want := rotationZeroIndex(set, "solid")
	initMask := bitset.New(set.Len())
	initMask.Set(want)

	s, err := New([3]int{1, 1, 1}, initMask, set, WithSeed(1))
	require.NoError(t, err)

	out, err := s.Solve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, want, out[0][0][0])
}

// TestSolveMirrorPairAdjacency is scenario S2: in a 2x1x1 grid over the
// mirror-pair tile set, forcing cell (0,0,0) to a's rotation-0 tile must
// propagate b's rotation-0 tile into (1,0,0)'s remaining options, and the
// eventual solve must leave the two cells pairwise adjacency-compatible.
func TestSolveMirrorPairAdjacency(t *testing.T) {
	dir := mirrorPairDir(t)
	set, err := tile.BuildSet(dir, 2)
	require.NoError(t, err)

	aIdx := rotationZeroIndex(set, "a")
	bIdx := rotationZeroIndex(set, "b")
	require.GreaterOrEqual(t, aIdx, 0)
	require.GreaterOrEqual(t, bIdx, 0)

	s, err := New([3]int{2, 1, 1}, set.AllBits, set, WithSeed(1))
	require.NoError(t, err)

	keep := bitset.New(set.Len())
	keep.Set(aIdx)
	remove := set.AllBits.Clone()
	remove.SubtractInPlace(keep)
	s.ConstrainList([3]int{0, 0, 0}, remove)

	assert.Equal(t, 1, s.Entropy([3]int{0, 0, 0}), "entropy at origin after forcing")
	assert.True(t, s.OptionsAt([3]int{1, 0, 0}).Test(bIdx),
		"propagation should leave b's rotation-0 tile possible at (1,0,0)")

	out, err := s.Solve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, aIdx, out[0][0][0])
	assert.True(t, set.Nodes[aIdx].Neighbors[direction.PosX.Index()].Test(out[1][0][0]),
		"solved neighbor %d is not a valid +X neighbor of a's rotation-0 tile", out[1][0][0])
}

// TestConstrainListContradiction is scenario S3: clearing every option
// from a cell produces an empty bitset, which Solve must report as
// ErrUnsolvable rather than silently returning a garbage grid.
func TestConstrainListContradiction(t *testing.T) {
	dir := singleTileDir(t)
	set, err := tile.BuildSet(dir, 2)
	require.NoError(t, err)

	s, err := New([3]int{1, 1, 1}, set.AllBits, set, WithSeed(1))
	require.NoError(t, err)

	s.ConstrainList([3]int{0, 0, 0}, set.AllBits)
	require.True(t, s.OptionsAt([3]int{0, 0, 0}).IsEmpty(),
		"expected empty option set after constraining away every tile")

	_, err = s.Solve(context.Background())
	assert.Equal(t, ErrUnsolvable, err)
}

// Property 1: every cell's option set is always a subset of the initial
// universe mask, throughout a full solve.
func TestPropertySubsetOfUniverse(t *testing.T) {
	dir := mirrorPairDir(t)
	set, err := tile.BuildSet(dir, 2)
	require.NoError(t, err)

	s, err := New([3]int{2, 1, 1}, set.AllBits, set, WithSeed(42))
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	require.NoError(t, err)

	universe := set.AllBits
	for x := 0; x < 2; x++ {
		opts := s.OptionsAt([3]int{x, 0, 0})
		for _, id := range opts.SetBits() {
			assert.True(t, universe.Test(id), "cell (%d,0,0) holds option %d outside the universe mask", x, id)
		}
	}
}

// Property 2: a fully solved grid satisfies pairwise adjacency — every
// solved neighbor pair is present in the corresponding Neighbors bitset.
func TestPropertySolvedGridIsAdjacencyCompatible(t *testing.T) {
	dir := mirrorPairDir(t)
	set, err := tile.BuildSet(dir, 2)
	require.NoError(t, err)

	s, err := New([3]int{2, 1, 1}, set.AllBits, set, WithSeed(7))
	require.NoError(t, err)

	out, err := s.Solve(context.Background())
	require.NoError(t, err)

	left := out[0][0][0]
	right := out[1][0][0]
	assert.True(t, set.Nodes[left].Neighbors[direction.PosX.Index()].Test(right),
		"solved grid violates adjacency: tile %d cannot neighbor tile %d in +X", left, right)
}

// Property 6: propagation never increases a cell's entropy; popcount is
// monotonically non-increasing throughout a propagateFrom call.
func TestPropertyPropagationMonotonic(t *testing.T) {
	dir := mirrorPairDir(t)
	set, err := tile.BuildSet(dir, 2)
	require.NoError(t, err)

	s, err := New([3]int{2, 1, 1}, set.AllBits, set, WithSeed(3))
	require.NoError(t, err)

	aIdx := rotationZeroIndex(set, "a")
	keep := bitset.New(set.Len())
	keep.Set(aIdx)
	remove := set.AllBits.Clone()
	remove.SubtractInPlace(keep)

	before := s.Entropy([3]int{1, 0, 0})
	s.ConstrainList([3]int{0, 0, 0}, remove)
	after := s.Entropy([3]int{1, 0, 0})
	assert.LessOrEqual(t, after, before, "entropy at (1,0,0) increased after propagation")
}

// Property 7: propagation from a single cell terminates (bounded by
// cells*tiles total bit-clears) — this is an implicit property of
// propagateFrom returning at all, checked here via Solve finishing on a
// modestly sized grid without reaching a generous iteration cap.
func TestPropertyPropagationTerminates(t *testing.T) {
	dir := mirrorPairDir(t)
	set, err := tile.BuildSet(dir, 2)
	require.NoError(t, err)

	s, err := New([3]int{2, 2, 2}, set.AllBits, set, WithSeed(9), WithIterationCap(1000))
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	assert.True(t, err == nil || err == ErrUnsolvable, "Solve: %v", err)
}

// Property 8: two solvers built with the same seed over the same tile
// set and shape produce identical solved grids. The grid is one cell
// tall because no mirror-pair tile accepts any tile as its +Y neighbor.
func TestPropertyDeterminism(t *testing.T) {
	dir := mirrorPairDir(t)
	set, err := tile.BuildSet(dir, 2)
	require.NoError(t, err)

	s1, err := New([3]int{2, 1, 2}, set.AllBits, set, WithSeed(123))
	require.NoError(t, err)
	s2, err := New([3]int{2, 1, 2}, set.AllBits, set, WithSeed(123))
	require.NoError(t, err)

	out1, err := s1.Solve(context.Background())
	require.NoError(t, err)
	out2, err := s2.Solve(context.Background())
	require.NoError(t, err)

	for x := 0; x < 2; x++ {
		for y := 0; y < 1; y++ {
			for z := 0; z < 2; z++ {
				assert.Equal(t, out1[x][y][z], out2[x][y][z],
					"determinism violated at (%d,%d,%d)", x, y, z)
			}
		}
	}
}

func TestNewRejectsDegenerateShape(t *testing.T) {
	dir := singleTileDir(t)
	set, err := tile.BuildSet(dir, 2)
	require.NoError(t, err)

	_, err = New([3]int{0, 1, 1}, set.AllBits, set)
	assert.Equal(t, ErrBadShape, err)
}

func TestSolveRespectsIterationCap(t *testing.T) {
	dir := singleTileDir(t)
	set, err := tile.BuildSet(dir, 2)
	require.NoError(t, err)

	s, err := New([3]int{4, 4, 4}, set.AllBits, set, WithSeed(1), WithIterationCap(1))
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	assert.Equal(t, ErrIterationCap, err)
}

func TestSolveHonorsCancelledContext(t *testing.T) {
	dir := singleTileDir(t)
	set, err := tile.BuildSet(dir, 2)
	require.NoError(t, err)

	s, err := New([3]int{4, 4, 4}, set.AllBits, set, WithSeed(1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Solve(ctx)
	assert.Equal(t, context.Canceled, err)
}
