package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/brizzai/map-signin/internal/store"
)

// profileCmd groups the local store helpers
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect or remove the locally stored profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfiles(cmd, func(ctx context.Context, profiles *store.ProfileStore) error {
			p, err := profiles.Load(ctx)
			if err != nil {
				return err
			}
			if p == nil {
				pterm.Info.Println("No profile stored, you are signed out.")
				return nil
			}
			data, err := p.Marshal()
			if err != nil {
				return err
			}
			pterm.Info.Printfln("Signed in as %s", pterm.LightGreen(p.DisplayName()))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		})
	},
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfiles(cmd, func(ctx context.Context, profiles *store.ProfileStore) error {
			if err := profiles.Clear(ctx); err != nil {
				return err
			}
			pterm.Success.Println("Local store removed.")
			return nil
		})
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd, profileRemoveCmd)
}

// withProfiles opens the configured store for the duration of fn
func withProfiles(cmd *cobra.Command, fn func(ctx context.Context, profiles *store.ProfileStore) error) error {
	cfg := loadConfig(cmd)
	kv, err := store.Open(&cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := kv.Close(); err != nil {
			pterm.Warning.Printfln("Failed to close store: %v", err)
		}
	}()
	return fn(cmd.Context(), store.NewProfileStore(kv))
}
