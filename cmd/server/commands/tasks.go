package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dfwhvac/internal/app"
	"github.com/dfwhvac/internal/seo"
)

// syncReviewsCmd 手动执行一次 Google 评分同步，与定时接口逻辑相同。
func syncReviewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-reviews",
		Short: "Copy the Google rating into the CMS company document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer site.Close()

			result, err := site.Reviews.Sync(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}

func sitemapCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Write sitemap.xml for the current content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer site.Close()

			entries, err := seo.BuildSitemap(cfg.SiteBaseURL, time.Now(), site.Store.SitemapDocuments(cmd.Context()))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := seo.WriteXML(w, entries); err != nil {
				return err
			}
			if out != "" && out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d urls to %s\n", len(entries), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	return cmd
}

func createAdminCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a lead inbox account if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer site.Close()

			created, err := site.Admins.EnsureAdmin(username, password)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "created admin %s\n", username)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "admin %s already exists\n", username)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
