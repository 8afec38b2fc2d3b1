package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"vibecheck/internal/config"
	"vibecheck/internal/types"
)

var (
	proxyName     string
	proxyModel    string
	proxyEndpoint string
	proxyAPIKey   string
	proxyPrompt   string
	proxyProvider string
)

var proxiesCmd = &cobra.Command{
	Use:   "proxies",
	Short: "Manage custom completion proxies",
}

var proxiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured proxies",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(settingsPath)
		if err != nil {
			return err
		}
		if len(settings.CustomProxies) == 0 {
			fmt.Println("no custom proxies configured")
			return nil
		}
		for _, p := range settings.CustomProxies {
			fmt.Printf("%s  %s  %s (%s)\n", p.ID, p.ConfigName, p.ModelName, p.Endpoint)
		}
		return nil
	},
}

var proxiesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom proxy",
	RunE: func(cmd *cobra.Command, args []string) error {
		if proxyName == "" || proxyModel == "" || proxyEndpoint == "" {
			return fmt.Errorf("--name, --model-name, and --endpoint are required")
		}
		settings, err := config.Load(settingsPath)
		if err != nil {
			return err
		}
		proxy := types.CustomProxy{
			ID:           uuid.NewString(),
			ConfigName:   proxyName,
			ModelName:    proxyModel,
			Endpoint:     proxyEndpoint,
			APIKey:       proxyAPIKey,
			CustomPrompt: proxyPrompt,
			Provider:     proxyProvider,
		}
		settings.CustomProxies = append(settings.CustomProxies, proxy)
		if err := config.Save(settingsPath, settings); err != nil {
			return err
		}
		fmt.Printf("added proxy %s (%s)\n", proxy.ConfigName, proxy.ID)
		return nil
	},
}

var proxiesRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a custom proxy by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(settingsPath)
		if err != nil {
			return err
		}
		kept := settings.CustomProxies[:0]
		removed := false
		for _, p := range settings.CustomProxies {
			if p.ID == args[0] {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		if !removed {
			return fmt.Errorf("no proxy with ID %q", args[0])
		}
		settings.CustomProxies = kept
		if err := config.Save(settingsPath, settings); err != nil {
			return err
		}
		fmt.Println("removed")
		return nil
	},
}

// proxiesCheckCmd probes every configured proxy endpoint concurrently.
var proxiesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe every configured proxy endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(settingsPath)
		if err != nil {
			return err
		}
		if len(settings.CustomProxies) == 0 {
			fmt.Println("no custom proxies configured")
			return nil
		}

		client := &http.Client{Timeout: 10 * time.Second}
		results := make([]string, len(settings.CustomProxies))

		g, ctx := errgroup.WithContext(cmd.Context())
		for i, p := range settings.CustomProxies {
			g.Go(func() error {
				results[i] = probe(ctx, client, p)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, line := range results {
			fmt.Println(line)
		}
		return nil
	},
}

// probe reports reachability of one proxy endpoint. Any HTTP status counts
// as reachable; only transport-level failures are flagged.
func probe(ctx context.Context, client *http.Client, p types.CustomProxy) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.Endpoint, nil)
	if err != nil {
		return fmt.Sprintf("%s  %s  invalid endpoint: %v", p.ID, p.ConfigName, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Sprintf("%s  %s  unreachable: %v", p.ID, p.ConfigName, err)
	}
	resp.Body.Close()
	return fmt.Sprintf("%s  %s  reachable (status %d)", p.ID, p.ConfigName, resp.StatusCode)
}

func init() {
	proxiesAddCmd.Flags().StringVar(&proxyName, "name", "", "configuration name")
	proxiesAddCmd.Flags().StringVar(&proxyModel, "model-name", "", "model name, e.g. deepseek/deepseek-r1-0528:free")
	proxiesAddCmd.Flags().StringVar(&proxyEndpoint, "endpoint", "", "proxy completions URL")
	proxiesAddCmd.Flags().StringVar(&proxyAPIKey, "api-key", "", "API key (optional)")
	proxiesAddCmd.Flags().StringVar(&proxyPrompt, "prompt", "", "custom system prompt (optional, replaces the default)")
	proxiesAddCmd.Flags().StringVar(&proxyProvider, "provider", "custom", "provider label for display")

	proxiesCmd.AddCommand(proxiesListCmd)
	proxiesCmd.AddCommand(proxiesAddCmd)
	proxiesCmd.AddCommand(proxiesRemoveCmd)
	proxiesCmd.AddCommand(proxiesCheckCmd)
}
