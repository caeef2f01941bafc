package cmd

import (
	"fmt"
	"os"

	"MemberHub/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "memberhub",
	Short: "MemberHub 會員管理系統",
	Long:  `MemberHub 提供會員註冊、登入、資料編輯與刪除的 Web 服務。`,
	Run: func(cmd *cobra.Command, args []string) {
		// 默认直接启动 HTTP 服务器
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
