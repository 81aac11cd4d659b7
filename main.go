package main

import (
	"engagement-scheduler/core/logger"
	"engagement-scheduler/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("Main:Run:Error", "error", err)
	}
}
