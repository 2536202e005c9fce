package utils

import (
	"math"
	"testing"
)

// TestNewGrid 测试网格尺寸计算
func TestNewGrid(t *testing.T) {
	tests := []struct {
		name       string
		width      float64
		height     float64
		resolution int
		cellSize   int
		wantCols   int
		wantRows   int
	}{
		{name: "默认配置 2020x1180 / 16", width: 2020, height: 1180, resolution: 16, cellSize: 32, wantCols: 126, wantRows: 73},
		{name: "一致的 32 网格", width: 2020, height: 1180, resolution: 32, cellSize: 32, wantCols: 63, wantRows: 36},
		{name: "非法分辨率按 1 处理", width: 10, height: 5, resolution: 0, cellSize: 32, wantCols: 10, wantRows: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.width, tt.height, tt.resolution, tt.cellSize)
			if g.Cols != tt.wantCols || g.Rows != tt.wantRows {
				t.Errorf("NewGrid() = %dx%d, want %dx%d", g.Cols, g.Rows, tt.wantCols, tt.wantRows)
			}
		})
	}
}

// TestToGridAndBack 测试世界坐标与网格坐标换算
func TestToGridAndBack(t *testing.T) {
	g := NewGrid(2020, 1180, 16, 32)

	tests := []struct {
		name string
		x, y float64
		want GridCoord
	}{
		{name: "原点", x: 0, y: 0, want: GridCoord{0, 0}},
		{name: "格子内部", x: 31.9, y: 63.5, want: GridCoord{0, 1}},
		{name: "格子边界", x: 64, y: 96, want: GridCoord{2, 3}},
		{name: "世界右下角", x: 2020, y: 1180, want: GridCoord{63, 36}},
		{name: "负坐标向下取整", x: -1, y: -33, want: GridCoord{-1, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ToGrid(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("ToGrid(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	x, y := g.ToWorld(GridCoord{Col: 3, Row: 4})
	if x != 96 || y != 128 {
		t.Errorf("ToWorld({3,4}) = (%v, %v), want (96, 128)", x, y)
	}
}

// TestClamp 测试网格坐标和世界坐标的边界限制
func TestClamp(t *testing.T) {
	g := NewGrid(320, 160, 32, 32)

	if got := g.Clamp(GridCoord{Col: -3, Row: 99}); got != (GridCoord{Col: 0, Row: 4}) {
		t.Errorf("Clamp() = %v, want {0 4}", got)
	}
	if !g.InBounds(GridCoord{Col: 9, Row: 4}) {
		t.Error("{9 4} should be in bounds")
	}
	if g.InBounds(GridCoord{Col: 10, Row: 0}) {
		t.Error("{10 0} should be out of bounds")
	}

	x, y := g.ClampWorld(-5, 200)
	if x != 0 || y != 160 {
		t.Errorf("ClampWorld() = (%v, %v), want (0, 160)", x, y)
	}
}

// TestAngleDegrees 测试朝向角度计算
func TestAngleDegrees(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   float64
		ok     bool
	}{
		{name: "正右", dx: 1, dy: 0, want: 0, ok: true},
		{name: "正上（屏幕Y向下）", dx: 0, dy: -1, want: 90, ok: true},
		{name: "正下", dx: 0, dy: 1, want: -90, ok: true},
		{name: "正左", dx: -1, dy: 0, want: 180, ok: true},
		{name: "零向量", dx: 0, dy: 0, want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AngleDegrees(tt.dx, tt.dy)
			if ok != tt.ok || math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngleDegrees(%v, %v) = (%v, %v), want (%v, %v)", tt.dx, tt.dy, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// TestNormalize 测试向量归一化
func TestNormalize(t *testing.T) {
	x, y, ok := Normalize(3, 4)
	if !ok || math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Errorf("Normalize(3, 4) = (%v, %v, %v)", x, y, ok)
	}
	if _, _, ok := Normalize(0, 0); ok {
		t.Error("Normalize(0, 0) should report false")
	}
}
