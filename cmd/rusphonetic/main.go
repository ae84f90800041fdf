package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/rusphonetic/internal/archive"
	"codeberg.org/snonux/rusphonetic/internal/cli"
	"codeberg.org/snonux/rusphonetic/internal/models"
	"codeberg.org/snonux/rusphonetic/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.SetupLogging(flags.Verbose)
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
	// Config file values for flags left at their defaults
	cli.ApplyConfig(flags)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Handle --archive flag
	if flags.Archive {
		archivePath, err := archive.ArchiveWords(flags.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to archive words: %w", err)
		}
		fmt.Printf("Words directory archived to: %s\n", archivePath)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), cli.GetGeminiKey())
		return lister.ListAvailableModels(ctx, flags.ExplainProvider)
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	// Handle --history flag
	if flags.History > 0 {
		return proc.ShowHistory(ctx, flags.History)
	}

	switch {
	case flags.BatchFile != "":
		if err := proc.ProcessBatch(ctx); err != nil {
			return err
		}
	case len(args) > 0:
		word, stress, err := cli.ParseArgs(args)
		if err != nil {
			return err
		}
		if err := proc.ProcessSingleWord(ctx, word, stress); err != nil {
			return err
		}
	case flags.GenerateAnki:
		// Export the words saved by earlier runs
	default:
		return cmd.Help()
	}

	// Generate Anki file if requested
	if flags.GenerateAnki {
		if _, err := proc.GenerateAnkiFile(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to generate Anki file: %v\n", err)
		}
	}

	return nil
}
