// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// votectl creates, lists and rates projects directly against the store the
// server uses.
//
// Usage:
//
//	votectl create <name> [--description=<text>] [--image=<url>]
//	votectl list [--all] [--limit=<n>]
//	votectl show <id>
//	votectl vote <id> --general=<1-10> --yearn=<1-10> --creativity=<1-10> --execution=<1-10>
//	votectl leaderboard
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/project-votes/cliparse"
	"github.com/danielhkuo/project-votes/kv"
	"github.com/danielhkuo/project-votes/logging"
	"github.com/danielhkuo/project-votes/store"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries the resolved configuration and the open store between the
// root command's hooks and the subcommands.
type app struct {
	cfg       cliparse.Config
	store     *store.Store
	substrate kv.Store

	rawCfg   cliparse.Config
	logLevel string
	envFile  string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "votectl",
		Short: "Manage projects and votes",
		Long:  "votectl reads and writes projects and votes in the same store as the\nproject-votes server, selected with the same flags and environment.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage:      true,
		Version:           version,
		PersistentPreRunE: a.open,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}

	fs := flag.NewFlagSet("votectl", flag.ContinueOnError)
	cliparse.Register(fs, &a.rawCfg, &a.logLevel)
	root.PersistentFlags().AddGoFlagSet(fs)
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Env file to load (missing file is ignored)")

	root.AddCommand(newCreateCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newVoteCmd(a))
	root.AddCommand(newLeaderboardCmd(a))

	return root
}

// open resolves configuration and connects to the store. A store that is
// already set is kept as is.
func (a *app) open(cmd *cobra.Command, _ []string) error {
	if err := cliparse.LoadEnvFile(a.envFile); err != nil {
		return err
	}

	cfg, err := cliparse.Resolve(a.rawCfg, a.logLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logging.Setup(cfg.LogLevel)

	if a.store != nil {
		return nil
	}

	substrate, err := kv.Open(cmd.Context(), cfg.StoreOptions())
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	a.substrate = substrate
	a.store = store.New(substrate)
	return nil
}

func (a *app) close() error {
	if a.substrate == nil {
		return nil
	}
	err := a.substrate.Close()
	a.substrate = nil
	a.store = nil
	return err
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		a.close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
