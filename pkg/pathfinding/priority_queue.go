package pathfinding

import "github.com/decker502/horde/pkg/utils"

// frontierNode 开放列表节点
type frontierNode struct {
	cell     utils.GridCoord
	priority float64 // g + h
	cost     float64 // 入队时的 g，用于跳过过期节点
	seq      uint64  // 入队序号，同优先级先进先出
}

// frontier 按 priority 排序的最小堆，实现 container/heap.Interface
type frontier []frontierNode

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierNode))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
