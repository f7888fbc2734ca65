package main

import (
	"fmt"

	"Rozi/chain"
	"Rozi/config"
	"github.com/spf13/cobra"
)

var rpcURL string

// balanceCmd 查询地址的 $ROZI 余额
var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Print the $ROZI token balance of an address",
	Args:  cobra.ExactArgs(1),
	RunE:  runBalance,
}

func init() {
	balanceCmd.Flags().StringVar(&rpcURL, "rpc", "", "JSON-RPC endpoint, overrides chain.rpc_url")
}

func runBalance(cmd *cobra.Command, args []string) error {
	conf := config.GetGlobalConf().Chain
	if rpcURL != "" {
		conf.RPCURL = rpcURL
	}
	client, closeFn, err := chain.Dial(cmd.Context(), conf, nil)
	if err != nil {
		return err
	}
	defer closeFn()

	b, err := client.BalanceOf(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Balance of %s: %s\n", args[0], b)
	return nil
}
