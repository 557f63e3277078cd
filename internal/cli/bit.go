package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/wjessop/bitwise"
)

var bitOps = map[string]func(bitwise.Bitmask, int) bitwise.Bitmask{
	"get":   bitwise.GetBit,
	"set":   bitwise.SetBit,
	"clear": bitwise.ClearBit,
	"flip":  bitwise.FlipBit,
}

func opNames[V any](ops map[string]V, extra ...string) []string {
	names := append(maps.Keys(ops), extra...)
	slices.Sort(names)
	return names
}

func NewBitCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		GroupID:   "operations",
		Use:       "bit <get|has|set|clear|flip> <field> <bit>",
		Short:     "Read or change a single bit of a field",
		Args:      cobra.ExactArgs(3),
		ValidArgs: opNames(bitOps, "has"),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := parseMask(args[1])
			if err != nil {
				return err
			}
			bit, err := parseBit(args[2])
			if err != nil {
				return err
			}

			if args[0] == "has" {
				printBool(cmd, bitwise.HasBit(field, bit))
				return nil
			}

			op, ok := bitOps[args[0]]
			if !ok {
				return errors.Errorf("unknown bit operation %q, expected one of %v", args[0], opNames(bitOps, "has"))
			}
			printMask(cmd, op(field, bit))
			return nil
		},
	}

	parent.AddCommand(cmd)
}
