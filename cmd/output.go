package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/deepthibiotune-hash/moems-agent/internal/agent"
)

const ruler = "────────────────────────────────────────────────────────────────────"

// printResponse formats one agent response for terminal display.
func printResponse(w io.Writer, resp agent.Response) {
	fmt.Fprintln(w, ruler)
	fmt.Fprintln(w, resp.Answer)
	fmt.Fprintln(w, ruler)

	if sources := resp.Context.Sources(); len(sources) > 0 {
		fmt.Fprintf(w, "Sources: %s\n", strings.Join(sources, ", "))
	}
	fmt.Fprintf(w, "Documents retrieved: %d\n", len(resp.Context.Documents))
	fmt.Fprintf(w, "Response time: %.2fs\n", resp.Latency.Seconds())
}
