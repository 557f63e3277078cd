package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wjessop/bitwise"
)

// parseMask accepts any Go integer literal. Values above the signed range are
// taken as their two's complement, so 0xffffffffffffffff is AllBitfields.
func parseMask(s string) (bitwise.Bitmask, error) {
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		slog.Debug("parsed mask", slog.String("arg", s), slog.Int64("value", v))
		return bitwise.Bitmask(v), nil
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Errorf("invalid mask %q", s)
	}
	slog.Debug("parsed mask as unsigned", slog.String("arg", s), slog.Uint64("value", v))
	return bitwise.Bitmask(v), nil
}

func parseBit(s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil || v < 0 || v >= bitwise.Width {
		return 0, errors.Errorf("invalid bit position %q, must be between 0 and %d", s, bitwise.Width-1)
	}
	slog.Debug("parsed bit", slog.String("arg", s), slog.Int64("value", v))
	return int(v), nil
}

func printMask(cmd *cobra.Command, m bitwise.Bitmask) {
	if binary, _ := cmd.Flags().GetBool("binary"); binary {
		fmt.Fprintln(cmd.OutOrStdout(), m.String())
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatInt(int64(m), 10))
}

func printBool(cmd *cobra.Command, b bool) {
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(b))
}
