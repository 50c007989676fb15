package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"travmatch/internal/dates"
	"travmatch/internal/geo"
	"travmatch/internal/trips"
)

// newResolveCmd is a debugging helper: feed it place names, date strings or a
// whole post body and see what the resolvers make of them.
func newResolveCmd() *cobra.Command {
	var (
		asDate bool
		asPost bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [text...]",
		Short: "Resolve place names, dates or a full post body on the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case asPost:
				rec := trips.Extract(strings.Join(args, " "))
				fmt.Printf("route:   %s (%s) -> %s (%s)\n",
					rec.OriginCity, rec.OriginCode, rec.DestinationCity, rec.DestinationCode)
				fmt.Printf("date:    %s (%s)\n", rec.DateISO(), rec.DateText)
				fmt.Printf("time:    %s\n", rec.TimeText)
				fmt.Printf("airline: %s\n", rec.Airline)
			case asDate:
				for _, arg := range args {
					if d, ok := dates.ParseDate(arg); ok {
						fmt.Printf("%s\t%s\n", arg, d.Format("2006-01-02"))
					} else {
						fmt.Printf("%s\t<no date>\n", arg)
					}
				}
			default:
				for _, arg := range args {
					if code, ok := geo.Resolve(arg); ok {
						fmt.Printf("%s\t%s\n", arg, code)
					} else {
						fmt.Printf("%s\t<unknown>\n", arg)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asDate, "date", false, "treat arguments as date strings")
	cmd.Flags().BoolVar(&asPost, "post", false, "treat all arguments as one post body")
	return cmd
}
