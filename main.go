package main

import (
	"petdept.GO/cmd"
	"petdept.GO/config"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	cmd.Execute()
}
