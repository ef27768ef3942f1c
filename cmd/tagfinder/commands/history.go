package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tagfinder/internal/i18n"
)

func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously found locations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !settings.History {
				return errors.New("history is disabled (history: false)")
			}
			w, err := openWire(cmd)
			if err != nil {
				return err
			}
			defer w.Close()

			reports, err := w.History.ListReports(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("reading history: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(reports) == 0 {
				fmt.Fprintln(out, i18n.T("history.empty"))
				return nil
			}
			for _, r := range reports {
				fmt.Fprintf(out, "%s  %s,%s  %s  %s\n",
					r.FetchedAt.Local().Format(time.DateTime),
					coord(r.Latitude), coord(r.Longitude),
					r.Timestamp, r.MapsURL())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum reports to show (0 for all)")
	return cmd
}
