package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brasildados/dadosbr/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "dadosbr",
	Short: "Curated accessors for Brazilian public data",
	Long:  "Fetches the most requested Brazilian public datasets: Bacen and Ipeadata series, senator rosters, municipality tables, state boundaries, flags and coats of arms.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
