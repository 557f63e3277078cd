package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wjessop/bitwise"
)

var flagOps = map[string]func(bitwise.Bitmask, bitwise.Bitmask) bitwise.Bitmask{
	"get":   bitwise.GetFlags,
	"set":   bitwise.SetFlags,
	"clear": bitwise.ClearFlags,
	"flip":  bitwise.FlipFlags,
}

var flagTests = map[string]func(bitwise.Bitmask, bitwise.Bitmask) bool{
	"any": bitwise.HasAnyFlag,
	"all": bitwise.HasAllFlags,
}

func NewFlagsCmd(parent *cobra.Command) {
	names := append(opNames(flagOps), opNames(flagTests)...)

	cmd := &cobra.Command{
		GroupID: "operations",
		Use:     "flags <get|any|all|set|clear|flip> <field> <mask>",
		Short:   "Combine or compare a field with a mask",
		Long: `Combine or compare a field with a mask. For example:

bitwise flags all 7 26

Will print "false" because bits 3 and 4 of 26 are not set in 7.`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := parseMask(args[1])
			if err != nil {
				return err
			}
			mask, err := parseMask(args[2])
			if err != nil {
				return err
			}

			if test, ok := flagTests[args[0]]; ok {
				printBool(cmd, test(field, mask))
				return nil
			}
			op, ok := flagOps[args[0]]
			if !ok {
				return errors.Errorf("unknown flags operation %q, expected one of %v", args[0], names)
			}
			printMask(cmd, op(field, mask))
			return nil
		},
	}

	parent.AddCommand(cmd)
}
