package main

import (
	"github.com/spf13/cobra"

	"github.com/eringen/blogseed/verify"
)

func newVerifyCmd(c *cli) *cobra.Command {
	v := verify.New()
	var slug, baseURL string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Poll a running blog until the seeded post renders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("url") {
				v.URL = verify.PostURL(baseURL, slug)
			}
			v.Out = cmd.OutOrStdout()
			c.logger.Debug("verifying", "url", v.URL, "attempts", v.Attempts, "interval", v.Interval)
			ok, err := v.Run(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return errVerifyFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&v.URL, "url", v.URL, "full post URL (overrides --base-url and --slug)")
	cmd.Flags().StringVar(&baseURL, "base-url", verify.DefaultBaseURL, "blog base URL")
	cmd.Flags().StringVar(&slug, "slug", verify.DefaultSlug, "post slug")
	cmd.Flags().StringVar(&v.Title, "title", v.Title, "title expected in the page")
	cmd.Flags().StringVar(&v.ContentSnippet, "snippet", v.ContentSnippet, "body text expected in the page")
	cmd.Flags().IntVar(&v.Attempts, "attempts", v.Attempts, "number of requests before giving up")
	cmd.Flags().DurationVar(&v.Interval, "interval", v.Interval, "pause between attempts")
	cmd.Flags().DurationVar(&v.Timeout, "timeout", v.Timeout, "per-request timeout")
	return cmd
}
