package cmd

import (
	"log"

	"MemberHub/config"
	"MemberHub/db"
	"MemberHub/model"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "数据库结构迁移",
	Long:  `通过GORM自动迁移members表结构，并写入默认管理员会员。`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		if err := db.ConnectGormDB(cfg); err != nil {
			log.Fatalf("无法连接数据库: %v", err)
		}
		defer db.CloseGormDB()

		if err := db.AutoMigrateModels(&model.Member{}); err != nil {
			log.Fatalf("迁移失败: %v", err)
		}

		if err := db.SeedDefaultMember(); err != nil {
			log.Fatalf("写入默认会员失败: %v", err)
		}

		log.Println("迁移完成。")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
