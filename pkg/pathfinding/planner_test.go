package pathfinding

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/decker502/horde/pkg/utils"
)

func buildRequests(n int) []Request {
	requests := make([]Request, 0, n)
	for i := 0; i < n; i++ {
		requests = append(requests, Request{
			Key:   uint64(i + 1),
			Start: utils.GridCoord{Col: i % 20, Row: i % 7},
			Goal:  utils.GridCoord{Col: 40, Row: 20},
		})
	}
	return requests
}

// TestPlannerMatchesSequential 并行与顺序计算结果一致且保持请求顺序
func TestPlannerMatchesSequential(t *testing.T) {
	requests := buildRequests(64)

	sequential := NewPlanner(63, 36, 1, 0)
	parallel := NewPlanner(63, 36, 8, 4)

	want, err := sequential.PlanAll(context.Background(), requests)
	if err != nil {
		t.Fatalf("sequential PlanAll failed: %v", err)
	}
	got, err := parallel.PlanAll(context.Background(), requests)
	if err != nil {
		t.Fatalf("parallel PlanAll failed: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Error("parallel results differ from sequential results")
	}
	for i, res := range got {
		if res.Key != requests[i].Key {
			t.Fatalf("result %d has key %d, want %d", i, res.Key, requests[i].Key)
		}
	}
}

// TestPlannerEmptyBatch 空批次
func TestPlannerEmptyBatch(t *testing.T) {
	p := NewPlanner(10, 10, 4, 1)
	results, err := p.PlanAll(context.Background(), nil)
	if err != nil || len(results) != 0 {
		t.Errorf("PlanAll(nil) = (%v, %v), want empty and nil error", results, err)
	}
}

// TestPlannerCancelledContext 已取消的 context
func TestPlannerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, p := range []*Planner{NewPlanner(63, 36, 1, 0), NewPlanner(63, 36, 4, 1)} {
		_, err := p.PlanAll(ctx, buildRequests(8))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: expected context.Canceled, got %v", p.Workers(), err)
		}
	}
}

// TestNewPlannerDefaultWorkers 非正 worker 数使用 GOMAXPROCS
func TestNewPlannerDefaultWorkers(t *testing.T) {
	if p := NewPlanner(10, 10, 0, 0); p.Workers() < 1 {
		t.Errorf("expected at least one worker, got %d", p.Workers())
	}
}
