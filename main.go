package main

import (
	"fmt"
	"os"

	"github.com/BCJonkhout/turtle-transformer/cmd"
	"github.com/BCJonkhout/turtle-transformer/log"
)

func main() {
	log.ConfigureLogger(log.DefaultLoggerConfig())
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Println("Error:", err.Error())
		os.Exit(1)
	}
}
