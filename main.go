package main

import (
	"context"
	"os"

	"Rozi/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd rozi 命令入口
var rootCmd = &cobra.Command{
	Use:   "rozi",
	Short: "Rozi proposal voting and lending engine",
	Long: `Rozi serves community proposal voting, peer lending allocation,
gig browsing and activity views over GraphQL.

Configuration is read from config.yml (., ./config, ../config) and
ROZI_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile == "" {
			return nil
		}
		return config.SetFile(cfgFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: config.yml)")
	rootCmd.AddCommand(serveCmd, balanceCmd, tailCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
