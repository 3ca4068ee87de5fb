package solver

import "github.com/beka-birhanu/maze-solver-api/maze"

// frontierItem is one queued frontier entry. The priority is captured at
// push time while the authoritative cost lives on the grid cell, so a
// coordinate may be queued more than once; stale copies are skipped when
// popped instead of being removed in place.
type frontierItem struct {
	coord maze.Coordinate
	fcost int
	index int
}

// frontier is a min-heap of frontier items ordered by fcost.
type frontier []*frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].fcost < f[j].fcost }
func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*f)
	*f = append(*f, item)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*f = old[:n-1]
	return item
}
