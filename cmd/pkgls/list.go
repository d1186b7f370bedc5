package pkgls

import (
	"os"
	"strings"

	"github.com/arthur-debert/pkgls/pkg/catalog"
	"github.com/arthur-debert/pkgls/pkg/config"
	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/filter"
	"github.com/arthur-debert/pkgls/pkg/format"
	"github.com/arthur-debert/pkgls/pkg/paths"
	"github.com/arthur-debert/pkgls/pkg/ui/columns"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		searchDescription bool
		formatName        string
		tags              []string
		catalogPath       string
	)

	cmd := &cobra.Command{
		Use:   "list [filter...]",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Choice-restricted: --format must name a registered formatter
			if formatName != "" && !contains(format.Names(), formatName) {
				return errors.Newf(errors.ErrFormatUnknown,
					"unknown format '%s' (valid formats: %s)",
					formatName, strings.Join(format.Names(), ", "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, searchDescription, formatName, tags, catalogPath)
		},
	}

	cmd.Flags().BoolVarP(&searchDescription, "search-description", "d", false, MsgFlagSearchDesc)
	cmd.Flags().StringVar(&formatName, "format", "", MsgFlagFormat+" [default: name_only]")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, MsgFlagTags)
	cmd.Flags().StringVar(&catalogPath, "catalog", "", MsgFlagCatalog)

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return format.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runList(cmd *cobra.Command, patterns []string, searchDescription bool, formatName string, tags []string, catalogPath string) error {
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

	names, err := filter.Apply(cat, filter.Spec{
		Patterns:          patterns,
		SearchDescription: searchDescription,
		Tags:              tags,
	})
	if err != nil {
		return err
	}

	if formatName == "" {
		formatName = cfg.DefaultFormat
	}
	formatter, err := format.Get(formatName)
	if err != nil {
		return err
	}

	opts := format.Options{
		Width:      columns.DefaultWidth,
		SourceLink: cfg.SourceLink,
	}
	out := cmd.OutOrStdout()
	if out == os.Stdout {
		opts.Interactive = stdoutIsTerminal()
		opts.Width = terminalWidth(columns.DefaultWidth)
	}
	if cfg.TerminalWidth > 0 {
		opts.Width = cfg.TerminalWidth
	}

	log.Debug().
		Str("format", formatName).
		Int("packages", len(names)).
		Msg("Rendering report")
	return formatter(out, names, cat, opts)
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
