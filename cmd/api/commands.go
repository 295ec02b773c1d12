package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/countup"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/content"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate the embedded content catalog and print record counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := content.Load()
		if err != nil {
			return err
		}
		counts := cat.Counts()
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, k := range keys {
			fmt.Fprintf(w, "%s\t%d\n", k, counts[k])
		}
		return w.Flush()
	},
}

var timelineJSON bool

var timelineCmd = &cobra.Command{
	Use:   "timeline <portfolio-id>",
	Short: "Print the count-up keyframes of a portfolio company's results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := content.Load()
		if err != nil {
			return err
		}
		item, detail, known := cat.PortfolioPage(args[0])
		tracks := countup.Timeline(detail.Results, cfg.AnimationFrameInterval)

		out := cmd.OutOrStdout()
		if timelineJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(tracks)
		}
		if !known {
			fmt.Fprintf(out, "unknown id %q, showing the fallback entry\n", args[0])
		}
		fmt.Fprintf(out, "%s\n", item.Name)
		for _, tr := range tracks {
			if tr.Static {
				fmt.Fprintf(out, "  %s: %s (static)\n", tr.Label, tr.Final)
				continue
			}
			fmt.Fprintf(out, "  %s: %s -> %s, delay %dms, %d keyframes, %dms..%dms\n",
				tr.Label, tr.Initial, tr.Final, tr.DelayMS, len(tr.Keyframes), tr.StartMS, tr.EndMS)
		}
		return nil
	},
}

func init() {
	timelineCmd.Flags().BoolVar(&timelineJSON, "json", false, "print the tracks as JSON")
}
