// hordecheck 校验配置目录中的 YAML 文件
//
// 逐个解析 simulation / zombie_tiers / progression，
// 再检查文件之间的一致性。有错误时以状态码 1 退出。
//
// 用法：
//
//	go run ./cmd/hordecheck
//	go run ./cmd/hordecheck -dir path/to/data
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	dir := flag.String("dir", "data", "配置目录")
	flag.Parse()

	results := check(*dir)
	errors := 0
	for _, r := range results {
		fmt.Println(r)
		if r.Level == levelError {
			errors++
		}
	}

	if errors > 0 {
		fmt.Printf("❌ 发现 %d 个错误\n", errors)
		os.Exit(1)
	}
	fmt.Printf("✅ 配置校验通过\n")
}
