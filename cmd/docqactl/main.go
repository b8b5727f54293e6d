// docqactl 数据管线命令行工具
// 抓取、分块、过滤在本地数据集目录上运行，upload 调用远端 API
package main

import (
	"log"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Println(err)
		os.Exit(1)
	}
}
