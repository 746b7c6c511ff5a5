package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessro/tripid/internal/id"
)

// ErrInvalidIdentifiers is returned by check when any argument fails.
var ErrInvalidIdentifiers = errors.New("invalid identifiers")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <id>...",
		Short: "Check that identifiers are canonical version-4 UUIDs",
		Long:  "Check each argument and report whether it is a lower-case, hyphenated version-4 identifier.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	invalid := 0
	for _, arg := range args {
		if err := id.Check(arg); err != nil {
			invalid++
			fmt.Fprintf(out, "invalid %s: %v\n", arg, err)
			continue
		}
		fmt.Fprintf(out, "ok %s\n", arg)
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidIdentifiers, invalid, len(args))
	}
	return nil
}
