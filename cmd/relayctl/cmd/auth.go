package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func authURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth-url",
		Short: "Print the eBay consent URL",
		Long: "Print the eBay consent URL. When --token is set the resulting\n" +
			"authorization is linked to that user on callback.",
		Example: `  relayctl auth-url --token "$ID_TOKEN"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := newClient().AuthURL(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]string{"authUrl": u})
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Show whether an eBay account is linked",
		Example: `  relayctl status --token "$ID_TOKEN"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			connected, err := newClient().ConnectionStatus(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]bool{"connected": connected})
			}
			if connected {
				fmt.Fprintln(cmd.OutOrStdout(), "eBay account: connected")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "eBay account: not connected")
			}
			return nil
		},
	}
}

func disconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "disconnect",
		Short:   "Unlink the eBay account",
		Example: `  relayctl disconnect --token "$ID_TOKEN"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := newClient().Disconnect(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]string{"message": msg})
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
