package cmd

import (
	"MemberHub/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "启动MemberHub服务器",
	Long:  `启动会员管理系统的HTTP服务器，提供注册、登录与资料维护页面`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
