package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/saypyu/internal/cli"
	"codeberg.org/snonux/saypyu/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx := context.Background()
	proc := processor.NewProcessor(flags)

	// Handle --archive flag
	if flags.Archive {
		path, err := proc.Archive()
		if err != nil {
			return err
		}
		fmt.Printf("Archived output to %s\n", path)
		return nil
	}

	switch {
	case flags.ListModels:
		return proc.ListModels(ctx)
	case flags.Forget != "":
		return proc.Forget(ctx, flags.Forget)
	case flags.ListCache:
		return proc.ListCache(ctx)
	case flags.FixtureFile != "":
		return proc.RunFixture()
	case flags.BatchFile != "":
		return proc.ProcessBatch(ctx)
	case flags.Word != "":
		return proc.ProcessWord(ctx, flags.Word)
	case flags.Stdin:
		return proc.Stream(os.Stdin, os.Stdout)
	case len(args) > 0:
		return proc.ProcessSingle(args[0])
	default:
		return cmd.Help()
	}
}
