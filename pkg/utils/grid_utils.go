package utils

// GridCoord 导航网格坐标 (列, 行)
// 由世界坐标按 CellSize 整除得到，不归属于任何实体
type GridCoord struct {
	Col int
	Row int
}

// Grid 导航网格参数
//
// 网格尺寸与寻路步长可以不同：
//   - Cols/Rows 由 世界尺寸 / Resolution 得到（界限检查使用）
//   - ToGrid/ToWorld 使用 CellSize 做换算（路点使用）
//
// 默认配置 Resolution=16、CellSize=32，网格比实际能寻址到的范围大一倍。
type Grid struct {
	Cols     int
	Rows     int
	CellSize int

	WorldWidth  float64
	WorldHeight float64
}

// NewGrid 根据世界尺寸创建导航网格
// resolution 或 cellSize 非正时按 1 处理
func NewGrid(worldWidth, worldHeight float64, resolution, cellSize int) Grid {
	if resolution <= 0 {
		resolution = 1
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return Grid{
		Cols:        int(worldWidth) / resolution,
		Rows:        int(worldHeight) / resolution,
		CellSize:    cellSize,
		WorldWidth:  worldWidth,
		WorldHeight: worldHeight,
	}
}

// ToGrid 将世界坐标（中心点）转换为网格坐标
func (g Grid) ToGrid(x, y float64) GridCoord {
	return GridCoord{
		Col: floorDiv(int(x), g.CellSize),
		Row: floorDiv(int(y), g.CellSize),
	}
}

// ToWorld 将网格坐标转换为世界坐标
// 返回格子左上角，调用方把它当作路点目标使用
func (g Grid) ToWorld(c GridCoord) (x, y float64) {
	return float64(c.Col * g.CellSize), float64(c.Row * g.CellSize)
}

// InBounds 检查网格坐标是否在 [0, Cols) × [0, Rows) 内
func (g Grid) InBounds(c GridCoord) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.Cols && c.Row < g.Rows
}

// Clamp 将网格坐标限制到网格范围内
func (g Grid) Clamp(c GridCoord) GridCoord {
	c.Col = clampInt(c.Col, 0, g.Cols-1)
	c.Row = clampInt(c.Row, 0, g.Rows-1)
	return c
}

// ClampWorld 将世界坐标限制在世界边界 [0, W] × [0, H] 内
func (g Grid) ClampWorld(x, y float64) (float64, float64) {
	return Clamp(x, 0, g.WorldWidth), Clamp(y, 0, g.WorldHeight)
}

// floorDiv 向下取整的整数除法（负坐标也落在正确的格子里）
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
