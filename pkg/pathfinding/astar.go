// Package pathfinding 实现僵尸使用的 8 方向网格 A* 寻路
//
// 网格是开放的（没有障碍物），唯一的约束是网格边界。
// FindPath 是纯函数，可以被多个 goroutine 同时调用。
package pathfinding

import (
	"container/heap"
	"math"

	"github.com/decker502/horde/pkg/utils"
)

const (
	// OrthogonalCost 横竖移动代价
	OrthogonalCost = 1.0
	// DiagonalCost 斜向移动代价（√2 近似值）
	DiagonalCost = 1.414
)

// neighborOffsets 8 个相邻格子：先横竖，再斜向
var neighborOffsets = [8]utils.GridCoord{
	{Col: 1, Row: 0},
	{Col: -1, Row: 0},
	{Col: 0, Row: 1},
	{Col: 0, Row: -1},
	{Col: 1, Row: 1},
	{Col: -1, Row: -1},
	{Col: 1, Row: -1},
	{Col: -1, Row: 1},
}

// FindPath 在 cols×rows 的开放网格上计算从 start 到 goal 的路径
//
// 返回：
//   - 路径不包含 start，包含 goal
//   - start == goal 时返回空路径
//   - start/goal 越界或不可达时返回空路径（不会返回半截路径）
//
// 调用方应把空路径当作"原地等待，下个周期重试"。
func FindPath(start, goal utils.GridCoord, cols, rows int) []utils.GridCoord {
	if start == goal || cols <= 0 || rows <= 0 {
		return nil
	}
	if !inBounds(start, cols, rows) || !inBounds(goal, cols, rows) {
		return nil
	}

	index := func(c utils.GridCoord) int { return c.Row*cols + c.Col }

	total := cols * rows
	costSoFar := make([]float64, total)
	for i := range costSoFar {
		costSoFar[i] = math.Inf(1)
	}
	cameFrom := make([]int32, total)
	for i := range cameFrom {
		cameFrom[i] = -1
	}

	startIdx := index(start)
	goalIdx := index(goal)
	costSoFar[startIdx] = 0

	open := &frontier{}
	var seq uint64
	heap.Push(open, frontierNode{cell: start, priority: 0, cost: 0, seq: seq})

	reached := false
	for open.Len() > 0 {
		current := heap.Pop(open).(frontierNode)
		currentIdx := index(current.cell)

		// 过期节点：之后找到过更便宜的路线
		if current.cost > costSoFar[currentIdx] {
			continue
		}

		if currentIdx == goalIdx {
			reached = true
			break
		}

		for _, offset := range neighborOffsets {
			next := utils.GridCoord{Col: current.cell.Col + offset.Col, Row: current.cell.Row + offset.Row}
			if !inBounds(next, cols, rows) {
				continue
			}

			newCost := costSoFar[currentIdx] + StepCost(current.cell, next)
			nextIdx := index(next)
			if newCost < costSoFar[nextIdx] {
				costSoFar[nextIdx] = newCost
				cameFrom[nextIdx] = int32(currentIdx)
				seq++
				heap.Push(open, frontierNode{
					cell:     next,
					priority: newCost + Heuristic(next, goal),
					cost:     newCost,
					seq:      seq,
				})
			}
		}
	}

	if !reached {
		return nil
	}

	return reconstructPath(cameFrom, startIdx, goalIdx, cols)
}

// reconstructPath 沿前驱链从终点回溯到起点，再反转
func reconstructPath(cameFrom []int32, startIdx, goalIdx, cols int) []utils.GridCoord {
	path := make([]utils.GridCoord, 0)
	for idx := goalIdx; idx != startIdx; idx = int(cameFrom[idx]) {
		if idx < 0 {
			return nil
		}
		path = append(path, utils.GridCoord{Col: idx % cols, Row: idx / cols})
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// StepCost 相邻格子之间的移动代价：两个方向都有位移为斜向
func StepCost(from, to utils.GridCoord) float64 {
	if from.Col != to.Col && from.Row != to.Row {
		return DiagonalCost
	}
	return OrthogonalCost
}

// Heuristic Chebyshev 距离（两轴差的最大值）
// 斜向代价 1.414 ≥ 1，因此该启发式可采纳且一致
func Heuristic(a, b utils.GridCoord) float64 {
	return float64(max(abs(a.Col-b.Col), abs(a.Row-b.Row)))
}

// PathCost 计算从 start 出发沿 path 行走的总代价
func PathCost(start utils.GridCoord, path []utils.GridCoord) float64 {
	total := 0.0
	prev := start
	for _, cell := range path {
		total += StepCost(prev, cell)
		prev = cell
	}
	return total
}

func inBounds(c utils.GridCoord, cols, rows int) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < cols && c.Row < rows
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
