package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/qerope/resume-ats/cmd"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
