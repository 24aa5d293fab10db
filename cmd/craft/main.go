package main

import (
	"craft/cmd/cmd"
	"craft/internal/logger"
)

func main() {
	logger.Init()
	cmd.Execute()
}
