package physics

import (
	"math"
	"sort"
	"sync"

	"github.com/BAVDE1/2d-physics/actor"
	"github.com/BAVDE1/2d-physics/vec2"
)

// SpatialGrid is an exploratory uniform-hash broadphase, kept adapted to the
// 2D body model but not wired into World/BroadPhase: §5 scopes the core to
// all-pairs AABB and calls a multi-threaded broadphase out of scope. It
// remains here as a component a collaborator could opt into for a body
// count where all-pairs stops being cheap.

// CellKey is a cell coordinate in the 2D grid.
type CellKey struct {
	X, Y int
}

// Cell holds the indices of bodies whose AABB overlaps this cell.
type Cell struct {
	bodyIndices []int
}

// SpatialGrid is a uniform hashed grid over body AABBs.
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int
}

// NewSpatialGrid returns a grid with numCells rounded up to the next power
// of two (cellMask requires it).
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].bodyIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert places a body's index into every cell its AABB touches.
func (sg *SpatialGrid) Insert(bodyIndex int, body *actor.Body) {
	aabb := body.AABB()
	minCell := sg.worldToCell(aabb.Min)
	maxCell := sg.worldToCell(aabb.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			cellIdx := sg.hashCell(CellKey{x, y})
			sg.cells[cellIdx].bodyIndices = append(sg.cells[cellIdx].bodyIndices, bodyIndex)
		}
	}
}

// Clear empties every cell without releasing their backing arrays.
func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].bodyIndices = sg.cells[i].bodyIndices[:0]
	}
}

// SortCells sorts each cell's body indices, making pair enumeration order
// deterministic.
func (sg *SpatialGrid) SortCells() {
	for i := range sg.cells {
		if len(sg.cells[i].bodyIndices) > 1 {
			sort.Ints(sg.cells[i].bodyIndices)
		}
	}
}

// FindPairs enumerates candidate collision pairs sequentially.
func (sg *SpatialGrid) FindPairs(bodies []*actor.Body) []CollisionPair {
	pairs := make([]CollisionPair, 0, len(bodies)/2)

	seen := make([]bool, len(bodies))
	for bodyIdx := 0; bodyIdx < len(bodies); bodyIdx++ {
		for i := range seen {
			seen[i] = false
		}

		bodyA := bodies[bodyIdx]
		aabbA := bodyA.AABB()
		minCell := sg.worldToCell(aabbA.Min)
		maxCell := sg.worldToCell(aabbA.Max)

		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				cellIdx := sg.hashCell(CellKey{x, y})

				for _, otherIdx := range sg.cells[cellIdx].bodyIndices {
					if otherIdx <= bodyIdx || seen[otherIdx] {
						continue // avoids emitting (B,A) or a pair already found in another cell
					}
					seen[otherIdx] = true

					bodyB := bodies[otherIdx]
					if shouldIgnorePair(bodyA, bodyB) {
						continue
					}
					if aabbA.Overlaps(bodyB.AABB()) {
						pairs = append(pairs, CollisionPair{bodyA, bodyB})
					}
				}
			}
		}
	}

	return pairs
}

// FindPairsParallel is FindPairs split across numWorkers goroutines, each
// owning a disjoint slice of bodies and its own seen-set to dedupe against
// the shared grid; results stream back on the returned channel until every
// worker finishes and it is closed.
func (sg *SpatialGrid) FindPairsParallel(bodies []*actor.Body, numWorkers int) <-chan CollisionPair {
	var wg sync.WaitGroup
	pairsChan := make(chan CollisionPair, numWorkers*10)

	bodiesPerWorker := len(bodies) / numWorkers
	if bodiesPerWorker == 0 {
		bodiesPerWorker = 1
	}

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)

		startIdx := w * bodiesPerWorker
		endIdx := startIdx + bodiesPerWorker
		if w == numWorkers-1 {
			endIdx = len(bodies)
		}

		go func(start, end int) {
			defer wg.Done()

			seen := make([]bool, len(bodies))
			for bodyIdx := start; bodyIdx < end; bodyIdx++ {
				for i := range seen {
					seen[i] = false
				}

				bodyA := bodies[bodyIdx]
				aabbA := bodyA.AABB()
				minCell := sg.worldToCell(aabbA.Min)
				maxCell := sg.worldToCell(aabbA.Max)

				for x := minCell.X; x <= maxCell.X; x++ {
					for y := minCell.Y; y <= maxCell.Y; y++ {
						cellIdx := sg.hashCell(CellKey{x, y})

						for _, otherIdx := range sg.cells[cellIdx].bodyIndices {
							if otherIdx <= bodyIdx || seen[otherIdx] {
								continue
							}
							seen[otherIdx] = true

							bodyB := bodies[otherIdx]
							if shouldIgnorePair(bodyA, bodyB) {
								continue
							}
							if aabbA.Overlaps(bodyB.AABB()) {
								pairsChan <- CollisionPair{bodyA, bodyB}
							}
						}
					}
				}
			}
		}(startIdx, endIdx)
	}

	go func() {
		wg.Wait()
		close(pairsChan)
	}()

	return pairsChan
}

func (sg *SpatialGrid) worldToCell(pos vec2.V) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X / sg.cellSize)),
		Y: int(math.Floor(pos.Y / sg.cellSize)),
	}
}

func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663)
	return h & sg.cellMask
}
