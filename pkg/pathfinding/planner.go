package pathfinding

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/decker502/horde/pkg/utils"
)

// Request 一次寻路请求
// Key 由调用方定义（通常是僵尸实体ID），结果按请求顺序返回
type Request struct {
	Key   uint64
	Start utils.GridCoord
	Goal  utils.GridCoord
}

// Result 一次寻路结果
type Result struct {
	Key  uint64
	Path []utils.GridCoord
}

// Planner 批量寻路器
//
// 同一帧内所有到期的僵尸把请求交给 Planner，
// 批量足够大时分发到有界 worker 池并行计算，否则在当前 goroutine 内顺序计算。
// 无论哪种方式，结果都按请求顺序写回，调用方在固定时机统一应用。
type Planner struct {
	cols, rows        int
	workers           int
	parallelThreshold int
}

// NewPlanner 创建批量寻路器
//
// 参数：
//   - cols, rows: 网格尺寸
//   - workers: 并行 worker 数量，<= 0 时使用 GOMAXPROCS
//   - parallelThreshold: 批量请求数达到该值才并行，<= 0 时总是并行
func NewPlanner(cols, rows, workers, parallelThreshold int) *Planner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Planner{
		cols:              cols,
		rows:              rows,
		workers:           workers,
		parallelThreshold: parallelThreshold,
	}
}

// Workers 返回 worker 数量
func (p *Planner) Workers() int {
	return p.workers
}

// PlanAll 计算一批寻路请求
//
// 返回的结果与 requests 一一对应。ctx 被取消时返回 ctx.Err()，
// 已完成的结果仍然保留在返回的切片中，未完成的 Path 为 nil。
func (p *Planner) PlanAll(ctx context.Context, requests []Request) ([]Result, error) {
	results := make([]Result, len(requests))
	if len(requests) == 0 {
		return results, nil
	}

	if p.workers <= 1 || len(requests) < p.parallelThreshold {
		for i, req := range requests {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			results[i] = Result{Key: req.Key, Path: FindPath(req.Start, req.Goal, p.cols, p.rows)}
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// 每个 goroutine 只写自己的下标，无需加锁
			results[i] = Result{Key: req.Key, Path: FindPath(req.Start, req.Goal, p.cols, p.rows)}
			return nil
		})
	}

	return results, g.Wait()
}
