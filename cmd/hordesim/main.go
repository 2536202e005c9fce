// hordesim 无界面批量模拟，用于数值平衡和冒烟测试
//
// 玩家固定在出生点，每步对周围一定半径内的僵尸造成伤害，
// 运行指定波数后输出每波统计。
//
// 用法：
//
//	go run ./cmd/hordesim -waves 10 -seed 42
//	go run ./cmd/hordesim -config data -radius 150 -damage 15 -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/horde/pkg/config"
)

var (
	waves    = flag.Int("waves", 5, "要完成的波数")
	seed     = flag.Int64("seed", 1, "随机种子")
	dataDir  = flag.String("config", "data", "配置目录（缺失的文件使用默认值）")
	radius   = flag.Float64("radius", 120, "自动攻击半径")
	damage   = flag.Int("damage", 20, "自动攻击每步伤害")
	maxSteps = flag.Int("max-steps", 600000, "最多模拟的步数")
	verbose  = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	bundle, err := config.LoadBundle(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	r, err := run(bundle, options{
		Waves:    *waves,
		Seed:     *seed,
		Radius:   *radius,
		Damage:   *damage,
		MaxSteps: *maxSteps,
		Verbose:  *verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "模拟失败: %v\n", err)
		os.Exit(1)
	}

	report(os.Stdout, bundle, r)
	if r.GameOver {
		os.Exit(2)
	}
}
