package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/toolsite/internal/site"
	"github.com/dmitrymomot/toolsite/pkg/config"
	"github.com/dmitrymomot/toolsite/pkg/file"
	"github.com/dmitrymomot/toolsite/pkg/logger"
)

var errNoTarget = errors.New("export needs --out or S3_BUCKET")

type exportFlags struct {
	out     string
	baseURL string
}

func newExportCmd() *cobra.Command {
	var f exportFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every page of every locale as static files",
		Long: `export renders the index and every tool page for each locale, plus
sitemap.xml, robots.txt, 404.html and the stylesheet. Files go to --out when
given, otherwise to the S3 bucket named by S3_BUCKET.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return export(cmd.Context(), cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output directory")
	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "public URL of the exported site (overrides BASE_URL)")
	return cmd
}

func export(ctx context.Context, cmd *cobra.Command, f exportFlags) error {
	a, err := bootstrap(ctx, cmd.ErrOrStderr(), func(c *site.Config) {
		if f.baseURL != "" {
			c.BaseURL = f.baseURL
		}
	})
	if err != nil {
		return err
	}

	storage, target, err := exportStorage(ctx, f.out)
	if err != nil {
		return err
	}

	exp := site.NewExporter(a.pages, site.NewRenderer(nil, nil, a.log), storage, a.log.With(logger.Component("export")))
	sum, err := exp.Export(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported %d pages, %d files, %d bytes to %s in %s\n",
		sum.Pages, sum.Files, sum.Bytes, target, sum.Duration.Round(time.Millisecond))
	return err
}

// exportStorage returns the storage and a printable name for it.
func exportStorage(ctx context.Context, out string) (file.Storage, string, error) {
	if out != "" {
		s, err := file.NewLocalStorage(out, "")
		if err != nil {
			return nil, "", err
		}
		return s, s.Dir(), nil
	}
	var s3Cfg file.S3Config
	if err := config.Load(&s3Cfg); err != nil {
		return nil, "", fmt.Errorf("s3 config: %w", err)
	}
	if s3Cfg.Bucket == "" {
		return nil, "", errNoTarget
	}
	s, err := file.NewS3Storage(ctx, s3Cfg)
	if err != nil {
		return nil, "", err
	}
	return s, "s3://" + s3Cfg.Bucket + "/" + strings.Trim(s3Cfg.Prefix, "/"), nil
}
