package pkgls

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/pkgls/pkg/catalog"
	"github.com/arthur-debert/pkgls/pkg/config"
	"github.com/arthur-debert/pkgls/pkg/paths"
	"github.com/spf13/cobra"
)

func newTagsCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: MsgTagsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.New()

			cfg, err := config.Load(p.ConfigFile())
			if err != nil {
				return err
			}
			if catalogPath == "" {
				catalogPath = cfg.Catalog
			}
			if catalogPath == "" {
				catalogPath = p.CatalogFile()
			}

			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}

			counts := cat.Tags()
			if len(counts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoTags)
				return nil
			}

			tags := make([]string, 0, len(counts))
			for tag := range counts {
				tags = append(tags, tag)
			}
			sort.Strings(tags)

			for _, tag := range tags {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", tag, counts[tag])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", MsgFlagCatalog)
	return cmd
}
