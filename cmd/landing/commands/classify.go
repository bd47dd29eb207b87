package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/landing/pkg/device"
)

// unknownClass is reported when neither a token nor a width decides. The
// redirect would serve the shim so the browser reports its width.
const unknownClass device.Class = "unknown"

type classification struct {
	Class     device.Class `json:"class"`
	Token     string       `json:"token,omitempty"`
	Width     int          `json:"width,omitempty"`
	UserAgent string       `json:"userAgent"`
}

func classifyCmd() *cobra.Command {
	var (
		width      int
		breakpoint int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "classify <user-agent>",
		Short: "Classify a user agent and viewport width as mobile or desktop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := device.NewClassifier(device.WithBreakpoint(breakpoint))
			res := classification{UserAgent: args[0], Width: width}
			res.Token, _ = c.Match(args[0])

			if class, ok := c.ClassifyAgent(args[0]); ok {
				res.Class = class
			} else if width > 0 {
				res.Class = c.Classify(device.Context{UserAgent: args[0], ViewportWidth: width})
			} else {
				res.Class = unknownClass
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			title := cases.Title(language.English)
			fmt.Fprintf(out, "%s\n", title.String(res.Class.String()))
			switch {
			case res.Token != "":
				fmt.Fprintf(out, "  matched token %q\n", res.Token)
			case width > 0:
				fmt.Fprintf(out, "  viewport %dpx, breakpoint %dpx\n", width, c.Breakpoint())
			default:
				fmt.Fprintln(out, "  no token matched; the redirect shim would measure the viewport width")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "viewport width in CSS pixels (0 means unknown)")
	cmd.Flags().IntVar(&breakpoint, "breakpoint", device.DefaultBreakpoint, "widest viewport treated as mobile")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
