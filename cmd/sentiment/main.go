package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spacesedan/sentiment/config"
	"github.com/spacesedan/sentiment/internal/logging"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	envFile, envLoaded := config.LoadEnv(os.Getenv(config.EnvAppEnv))

	rootCmd := newRootCmd(&options{
		envFile:   envFile,
		envLoaded: envLoaded,
	})
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	code := 0
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		code = 1
	}
	if err := logging.CloseLogger(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		code = 1
	}
	return code
}
