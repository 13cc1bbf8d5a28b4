// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pick-level CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sokoban-slc/internal/pick"
	"github.com/pdiddy/sokoban-slc/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd picks levels from an SLC file.
var rootCmd = &cobra.Command{
	Use:   "pick-level <file>",
	Short: "Pick a single level from an SLC file by ID and print it to stdout",
	Long: `pick-level reads an SLC file (an XML collection of Sokoban levels) and
prints either the IDs of all levels or the rows of one level.

Levels are Level elements at any depth carrying an Id attribute; each child
element of a level is one row of the board.

Without --id or --list the help text is shown and the file is not read.

Examples:
  # List all level IDs
  pick-level Microban.slc --list

  # Print one level
  pick-level Microban.slc --id "Level 12"

  # Print one level with board statistics as YAML
  pick-level Microban.slc -i 12 --format yaml

  # Print one level normalized to # @ + $ * . notation
  pick-level Microban.slc -i 12 --render`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runPick,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().String("config", "", "config file (default: pick-level.yaml in . or ~/.config/pick-level/)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "write debug logs to stderr")

	rootCmd.Flags().StringP("id", "i", "", "ID of the level to print")
	rootCmd.Flags().BoolP("list", "l", false, "list all level IDs")
	rootCmd.Flags().String("format", string(types.FormatText), "output format: text, yaml, or json")
	rootCmd.Flags().Bool("check", false, "fail if the level contains characters outside the board legend")
	rootCmd.Flags().Bool("render", false, "print the level in canonical board notation instead of its raw rows")

	viper.SetDefault("format", string(types.FormatText))
	viper.SetDefault("log_level", "warn")
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pick-level")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pick-level"))
		}
	}

	viper.SetEnvPrefix("PICK_LEVEL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the effective settings after flags, env and file are merged.
func loadConfig() (types.PickConfig, error) {
	var cfg types.PickConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, verbose)
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetString("id")
	list, _ := cmd.Flags().GetBool("list")
	check, _ := cmd.Flags().GetBool("check")
	render, _ := cmd.Flags().GetBool("render")

	opts := pick.Options{
		Path:   args[0],
		ID:     id,
		List:   list,
		Format: cfg.Format,
		Check:  check,
		Render: render,
	}

	err = pick.Run(cmd.Context(), cmd.OutOrStdout(), opts, log)
	if errors.Is(err, pick.ErrHelp) {
		return cmd.Help()
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
