package main

import (
	"github.com/spf13/cobra"

	"github.com/sddkit/sddkit/pkg/agent"
	"github.com/sddkit/sddkit/pkg/ui"
)

func newAgentsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:       "agents [name]",
		Short:     MsgAgentsShort,
		Long:      MsgAgentsLong,
		GroupID:   "core",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: agent.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				def, err := agent.Parse(args[0])
				if err != nil {
					return err
				}
				return ui.RenderAgentDetail(cmd.OutOrStdout(), def, f)
			}
			return ui.RenderAgents(cmd.OutOrStdout(), agent.All(), f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	return cmd
}
