// hordeterm 终端版本
//
// 用字符绘制世界，WASD/方向键移动，空格对周围僵尸造成伤害。
// 日志默认丢弃，需要时用 -log 写入文件。
//
// 用法：
//
//	go run ./cmd/hordeterm
//	go run ./cmd/hordeterm -config data -sound -log horde.log
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/horde/internal/sfx"
	"github.com/decker502/horde/internal/tui"
	"github.com/decker502/horde/pkg/config"
	"github.com/decker502/horde/pkg/game"
	"github.com/decker502/horde/pkg/simulation"
)

var (
	seed       = flag.Int64("seed", time.Now().UnixNano(), "随机种子")
	dataDir    = flag.String("config", "data", "配置目录（缺失的文件使用默认值）")
	sound      = flag.Bool("sound", false, "开启音效")
	logFile    = flag.String("log", "", "日志文件路径")
	radius     = flag.Float64("radius", 120, "攻击半径")
	damage     = flag.Int("damage", 50, "攻击伤害")
	moveRepeat = flag.Int("move", 30, "每次按键移动的步数")
)

func main() {
	flag.Parse()

	if err := setupLog(*logFile); err != nil {
		fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
		os.Exit(1)
	}

	if err := runTerminal(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

func runTerminal() error {
	bundle, err := config.LoadBundle(*dataDir)
	if err != nil {
		return fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[Main] Config: %s", bundle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	world, err := simulation.NewWorld(simulation.Options{
		Seed:        *seed,
		Config:      bundle.Simulation,
		Tiers:       bundle.Tiers,
		Progression: bundle.Progression,
		Context:     ctx,
	})
	if err != nil {
		return err
	}

	// 存档不可用时以降级模式运行，不记录战绩
	var records *game.RecordsManager
	if manager, err := gdata.Open(gdata.Config{AppName: "horde"}); err != nil {
		log.Printf("[Main] WARNING: gdata unavailable: %v", err)
	} else {
		records = game.NewRecordsManager(manager)
	}

	if *sound {
		board := sfx.NewBoard()
		if err := board.Initialize(); err != nil {
			log.Printf("[Main] Audio initialization failed: %v", err)
		} else {
			defer board.Cleanup()
			board.Attach(world.Events())
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	s := &session{
		world:        world,
		renderer:     tui.NewRenderer(screen),
		records:      records,
		attackRadius: *radius,
		attackDamage: *damage,
		moveRepeat:   max(*moveRepeat, 1),
	}
	s.start()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(bundle.Simulation.StepDuration())
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				s.record()
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if s.handle(tui.ParseKey(ev)) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				s.draw()
			}
		case <-ticker.C:
			s.tick()
		}
	}
}
