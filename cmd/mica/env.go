package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func (a *app) envCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			envs := a.settings.ShowAll()

			keys := make([]string, 0, len(envs))
			for k := range envs {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s='%s'\n", k, envs[k])
			}
		},
	}
}
