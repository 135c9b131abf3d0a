package main

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"carousel/internal/manifest"
)

var manifestOut string

var manifestCmd = &cobra.Command{
	Use:   "manifest DIR",
	Short: "Classify the images in DIR by file size",
	Long: `Scan DIR for .jpg, .jpeg, .png, .gif and .webp files, group them into
small (< 750 KiB), medium (< 1500 KiB) and large buckets, smallest first,
and write manifest.json into DIR (or --out).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, out, err := manifest.Generate(afero.NewOsFs(), args[0], manifestOut, time.Now())
		if err != nil {
			return err
		}
		logger.Info("manifest written", "path", out, "images", m.Stats.Total)
		fmt.Fprint(cmd.OutOrStdout(), renderManifest(m, out))
		return nil
	},
}

func init() {
	manifestCmd.Flags().StringVarP(&manifestOut, "out", "o", "", "output file (default DIR/manifest.json)")
}
