package main

import (
	"MemberHub/cmd"
)

func main() {
	cmd.Execute()
}
