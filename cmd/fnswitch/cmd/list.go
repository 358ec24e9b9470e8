package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/fnswitch/internal/collab"
	"github.com/cwbudde/fnswitch/internal/config"
	"github.com/cwbudde/fnswitch/internal/dispatch"
	"github.com/cwbudde/fnswitch/internal/listing"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every receiver's dispatchable method names",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		d := newDispatcher(cfg)
		entries := listing.Build(d)
		if listJSON {
			doc, err := listing.JSON(entries)
			if err != nil {
				return err
			}
			fmt.Println(doc)
			return nil
		}
		fmt.Print(listing.Text(entries))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print as JSON")
	rootCmd.AddCommand(listCmd)
}

func newDispatcher(cfg config.Config) *dispatch.Dispatcher {
	return dispatch.New(dispatch.Options{
		FeatureWave:           collab.StaticFeatureWave{Current: cfg.Wave()},
		ReflectionFallbackLog: cfg.ReflectionFallbackLog,
		FallbackLogPath:       cfg.FallbackLogPath,
	})
}
