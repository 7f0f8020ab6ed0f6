package cli

import (
	"fmt"

	"github.com/billkraft/billkraft/internal/adapters/outbound/tui"
	"github.com/billkraft/billkraft/internal/application"
	"github.com/billkraft/billkraft/internal/domain"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var styled bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Total the built-in sample invoice",
		Long:  "Build the sample invoice (three items, three comments), apply a 20% discount and print the total followed by the comments.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewInvoiceService(nil)
			summary := svc.Summarize(domain.DemoDocument(), nil)

			if styled {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(summary))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlain(summary))
			return nil
		},
	}

	cmd.Flags().BoolVar(&styled, "styled", false, "Render the full styled summary")

	return cmd
}
