package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/swrgo/internal/config"
	"github.com/rgehrsitz/swrgo/internal/domain"
	"github.com/rgehrsitz/swrgo/internal/output"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [portfolio-file]",
		Short: "Validate a portfolio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			portfolio, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Portfolio is valid: %d assets, total %s, %d years from age %d\n",
				len(portfolio.Assets),
				output.FormatCurrency(domain.TotalPrincipal(portfolio.Assets)),
				portfolio.HorizonYears(),
				portfolio.StartAge)
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [portfolio-file]",
		Short: "Write a starter portfolio file",
		Long:  "Writes a two-asset example portfolio. The file is JSON when the name ends in .json, YAML otherwise.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.NewInputParser().SaveToFile(config.DefaultPortfolio(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote starter portfolio to %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}
