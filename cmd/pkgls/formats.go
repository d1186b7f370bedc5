package pkgls

import (
	"fmt"

	"github.com/arthur-debert/pkgls/pkg/format"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: MsgFormatsShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range format.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
