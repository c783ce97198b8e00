// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/movegenesis/utils/constants"
	"github.com/ava-labs/movegenesis/version"
)

const loggerName = "genesisctl"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", loggerName, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           loggerName,
		Short:         fmt.Sprintf("Builds and inspects %s genesis bundles", constants.AppName),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), version.String(version.GitCommit))
			return err
		},
	}

	rootCmd.AddCommand(
		newBuildCommand(),
		newInspectCommand(),
		newListCommand(),
		versionCmd,
	)
	return rootCmd
}
