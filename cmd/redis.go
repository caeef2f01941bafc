package cmd

import (
	"fmt"
	"log"

	"MemberHub/config"
	"MemberHub/db"

	"github.com/spf13/cobra"
)

var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Redis连接测试",
	Long:  `测试Redis连接是否成功，并对会员缓存键空间做一次读写检查。`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		fmt.Printf("Redis配置: %s:%s, DB: %d\n", cfg.RedisHost, cfg.RedisPort, cfg.RedisDB)

		if err := db.ConnectRedis(cfg); err != nil {
			log.Fatalf("无法连接到Redis: %v", err)
		}
		defer db.CloseRedis()

		if err := db.CheckRedis(); err != nil {
			log.Fatalf("Redis读写检查失败: %v", err)
		}
		fmt.Println("Redis连接与读写检查通过。")
	},
}

func init() {
	rootCmd.AddCommand(redisCmd)
}
