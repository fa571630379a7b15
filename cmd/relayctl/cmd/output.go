package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/auctionsniper/ebay-relay/internal/api/client"
	"github.com/auctionsniper/ebay-relay/internal/ebay"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printItemsTable(w io.Writer, items []ebay.ItemSummary) error {
	tw := newTabWriter(w)
	tw.writef("ITEM ID\tTITLE\tPRICE\tCONDITION\tSELLER\n")
	for i := range items {
		seller := "-"
		if items[i].Seller != nil {
			seller = items[i].Seller.Username
		}
		tw.writef("%s\t%s\t%s %s\t%s\t%s\n",
			items[i].ItemID,
			truncate(items[i].Title, 50),
			items[i].Price.Value,
			items[i].Price.Currency,
			orDash(items[i].Condition),
			seller,
		)
	}
	return tw.finish()
}

func printQuota(w io.Writer, q *apiclient.QuotaStatus) error {
	tw := newTabWriter(w)
	tw.writef("Daily limit:\t%d\n", q.DailyLimit)
	tw.writef("Used:\t%d\n", q.DailyUsed)
	tw.writef("Remaining:\t%d\n", q.Remaining)
	tw.writef("Resets at:\t%s\n", q.ResetAt.Format("2006-01-02 15:04:05 MST"))
	if q.Upstream != nil {
		tw.writef("eBay count:\t%d / %d\n", q.Upstream.Count, q.Upstream.Limit)
		tw.writef("eBay remaining:\t%d\n", q.Upstream.Remaining)
		tw.writef("eBay resets at:\t%s\n", q.Upstream.ResetAt.Format("2006-01-02 15:04:05 MST"))
		tw.writef("Synced at:\t%s\n", q.Upstream.SyncedAt.Format("2006-01-02 15:04:05 MST"))
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
