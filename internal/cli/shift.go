package cli

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wjessop/bitwise"
)

func NewShiftCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		GroupID: "operations",
		Use:     "shift <left|right> <field> <n>",
		Short:   "Shift a field by n positions",
		Long: `Shift a field by n positions. Right shifts are arithmetic, so negative
fields stay negative.`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"left", "right"},
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := parseMask(args[1])
			if err != nil {
				return err
			}
			n, err := strconv.ParseUint(args[2], 0, 16)
			if err != nil {
				return errors.Errorf("invalid shift count %q", args[2])
			}

			switch args[0] {
			case "left":
				printMask(cmd, bitwise.ShiftBitsLeft(field, int(n)))
			case "right":
				printMask(cmd, bitwise.ShiftBitsRight(field, int(n)))
			default:
				return errors.Errorf("unknown shift direction %q", args[0])
			}
			return nil
		},
	}

	parent.AddCommand(cmd)
}
