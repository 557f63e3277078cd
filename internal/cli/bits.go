package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wjessop/bitwise"
)

func NewBitsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		GroupID: "conversions",
		Use:     "bits <mask>",
		Short:   "List the bit positions set in a mask",
		Long: `List the bit positions set in a mask, lowest first. For example:

bitwise bits 10

Will print "1 3".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := parseMask(args[0])
			if err != nil {
				return err
			}

			positions := bitwise.BitMaskToBits(mask)
			list := make([]string, 0, len(positions))
			for _, bit := range positions {
				list = append(list, strconv.Itoa(bit))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(list, " "))
			return nil
		},
	}

	parent.AddCommand(cmd)
}

func NewMaskCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		GroupID: "conversions",
		Use:     "mask [bit]...",
		Short:   "Build a mask from bit positions",
		Long: `Build a mask with every given bit position set. For example:

bitwise mask 1 3

Will print "10". Without arguments the mask is empty.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			positions := make([]int, 0, len(args))
			for _, arg := range args {
				bit, err := parseBit(arg)
				if err != nil {
					return err
				}
				positions = append(positions, bit)
			}

			printMask(cmd, bitwise.BitsToMask(positions...))
			return nil
		},
	}

	parent.AddCommand(cmd)
}
