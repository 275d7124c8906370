// Package main is the command line entry point for the progression engine
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-progression",
	Short: "Skill progression engine",
	Long: `rpg-progression runs the skill progression rules: level lookup, boost overlap,
action queues with companions, and clan battles. State lives in Redis.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error status to a process exit code
func exitCode(err error) int {
	code := errors.GRPCStatus(err).Code()
	if code == codes.OK {
		return 0
	}
	return int(code)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagRedisAddr, "redis", "", "Redis address (overrides REDIS_ADDR)")
	flags.StringVar(&flagCatalogPath, "catalog", "", "action catalog YAML file (overrides CATALOG_PATH)")
	flags.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	flags.Uint64Var(&flagMaxQueueSeconds, "max-queue-seconds", 0, "queue length limit (overrides MAX_QUEUE_SECONDS)")

	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(xpCmd)
	rootCmd.AddCommand(boostedTimeCmd)
	rootCmd.AddCommand(characterCmd)
	rootCmd.AddCommand(companionCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(battleCmd)
	rootCmd.AddCommand(battlesCmd)
	rootCmd.AddCommand(rosterCmd)
}
