package cmd

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/auctionsniper/ebay-relay/internal/ebay"
)

func authURLCommand() *cobra.Command {
	var state string

	c := &cobra.Command{
		Use:   "auth-url",
		Short: "Print the eBay consent URL",
		Long: "Prints the eBay consent page URL for the configured application.\n" +
			"The state is not registered with the server, so the callback will\n" +
			"reject it; use this to check the RuName and scopes.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			if state == "" {
				state = uuid.NewString()
			}

			provider := ebay.NewOAuthTokenProvider(
				ebay.Credential{
					ClientID:     cfg.Ebay.ClientID,
					ClientSecret: cfg.Ebay.ClientSecret,
					RedirectURI:  cfg.Ebay.RedirectURI,
				},
				ebay.WithAuthorizeURL(cfg.Ebay.AuthorizeURL),
				ebay.WithUserScopes(cfg.Ebay.UserScopes...),
			)

			return printConsent(cmd.OutOrStdout(), cmd.ErrOrStderr(), provider, state)
		},
	}
	c.Flags().StringVar(&state, "state", "", "state value to embed (random when empty)")

	return c
}

// printConsent writes the consent URL to out and the requested user scopes
// to diag, one per line.
func printConsent(out, diag io.Writer, provider *ebay.OAuthTokenProvider, state string) error {
	if _, err := fmt.Fprintln(out, provider.AuthorizationURL(state)); err != nil {
		return err
	}
	for _, scope := range provider.GrantedUserScopes() {
		if _, err := fmt.Fprintln(diag, "scope:", scope); err != nil {
			return err
		}
	}
	return nil
}
