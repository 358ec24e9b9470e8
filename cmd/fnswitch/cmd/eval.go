package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/fnswitch/internal/config"
	"github.com/cwbudde/fnswitch/internal/dispatch"
	"github.com/cwbudde/fnswitch/internal/value"
)

var evalCmd = &cobra.Command{
	Use:   "eval <receiver> <method> <args...>",
	Short: "Dispatch one static call and print the result",
	Long: `Dispatch one call to the named receiver's static table and print
the result. Arguments are parsed with a small literal grammar: "null",
"true"/"false", an integer, a float, or anything else as a string.

This only reaches static dispatch (§4.5 step 2) — there is no instance
argument on the command line, since a CLI has nothing live to pass one.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		receiver, ok := parseReceiver(args[0])
		if !ok {
			return fmt.Errorf("unknown receiver %q", args[0])
		}
		method := args[1]
		callArgs := make([]value.V, len(args)-2)
		for i, a := range args[2:] {
			callArgs[i] = parseLiteral(a)
		}

		d := newDispatcher(cfg)
		res := d.Dispatch(receiver, method, nil, callArgs)
		if !res.Matched() {
			fmt.Println("<none>")
			return nil
		}
		if err := res.Err(); err != nil {
			return err
		}
		fmt.Println(res.Value().DefaultString())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func parseReceiver(s string) (dispatch.Receiver, bool) {
	switch strings.ToLower(s) {
	case "string":
		return dispatch.String, true
	case "stringarray", "string[]":
		return dispatch.StringArray, true
	case "int", "int32":
		return dispatch.Int, true
	case "version":
		return dispatch.Version, true
	case "guid":
		return dispatch.Guid, true
	case "path":
		return dispatch.Path, true
	case "math":
		return dispatch.Math, true
	case "directory":
		return dispatch.Directory, true
	case "char":
		return dispatch.Char, true
	case "regex":
		return dispatch.Regex, true
	case "intrinsic":
		return dispatch.Intrinsic, true
	default:
		return 0, false
	}
}

func parseLiteral(s string) value.V {
	switch s {
	case "null":
		return value.Null()
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	}
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return value.Int(int32(n))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Double(f)
	}
	return value.Str(s)
}
