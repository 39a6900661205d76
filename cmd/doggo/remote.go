package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"doggo/internal/domain/neighborhoods"
	"doggo/internal/domain/profiles"
	"doggo/internal/platform/httpclient"
)

// remoteFlags son comunes a los comandos que consultan un servidor.
type remoteFlags struct {
	server  string
	timeout time.Duration
	json    bool
}

func (f *remoteFlags) bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.server, "server", "http://localhost:8080", "base URL of a running doggo server")
	cmd.PersistentFlags().DurationVar(&f.timeout, "timeout", httpclient.DefaultTimeout, "request timeout")
	cmd.PersistentFlags().BoolVar(&f.json, "json", false, "print the raw JSON response")
}

func (f *remoteFlags) client() (*httpclient.Client, error) {
	return httpclient.New(f.server, f.timeout)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func newOwnersCmd() *cobra.Command {
	var flags remoteFlags

	owners := &cobra.Command{Use: "owners", Short: "Query owners on a running server"}
	flags.bind(owners)

	owners.AddCommand(&cobra.Command{
		Use:   "profile <owner-id>",
		Short: "Show an owner with their dogs and the walkers in their neighborhood",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := flags.client()
			if err != nil {
				return err
			}

			var p profiles.OwnerProfileResponse
			if err := c.Get(cmd.Context(), "/owners/"+strconv.FormatInt(id, 10)+"/profile", &p); err != nil {
				return fmt.Errorf("owner %d: %w", id, err)
			}
			if flags.json {
				return printJSON(cmd.OutOrStdout(), p)
			}
			printOwnerProfile(cmd.OutOrStdout(), p)
			return nil
		},
	})
	return owners
}

func newWalkersCmd() *cobra.Command {
	var flags remoteFlags

	walkers := &cobra.Command{Use: "walkers", Short: "Query walkers on a running server"}
	flags.bind(walkers)

	walkers.AddCommand(&cobra.Command{
		Use:   "profile <walker-id>",
		Short: "Show a walker with their walk history and total time walked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := flags.client()
			if err != nil {
				return err
			}

			var p profiles.WalkerProfileResponse
			if err := c.Get(cmd.Context(), "/walkers/"+strconv.FormatInt(id, 10)+"/profile", &p); err != nil {
				return fmt.Errorf("walker %d: %w", id, err)
			}
			if flags.json {
				return printJSON(cmd.OutOrStdout(), p)
			}
			printWalkerProfile(cmd.OutOrStdout(), p)
			return nil
		},
	})
	return walkers
}

func newNeighborhoodsCmd() *cobra.Command {
	var flags remoteFlags

	hoods := &cobra.Command{Use: "neighborhoods", Short: "Query neighborhoods on a running server"}
	flags.bind(hoods)

	hoods.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all neighborhoods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.client()
			if err != nil {
				return err
			}

			var items []neighborhoods.Response
			if err := c.Get(cmd.Context(), "/neighborhoods", &items); err != nil {
				return fmt.Errorf("neighborhoods: %w", err)
			}
			if flags.json {
				return printJSON(cmd.OutOrStdout(), items)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME")
			for _, n := range items {
				fmt.Fprintf(tw, "%d\t%s\n", n.ID, n.Name)
			}
			return tw.Flush()
		},
	})
	return hoods
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func hoodName(n *neighborhoods.Response) string {
	if n == nil {
		return "-"
	}
	return n.Name
}

func printOwnerProfile(w io.Writer, p profiles.OwnerProfileResponse) {
	fmt.Fprintf(w, "Owner:         %s (#%d)\n", p.Owner.Name, p.Owner.ID)
	fmt.Fprintf(w, "Email:         %s\n", p.Owner.Email)
	fmt.Fprintf(w, "Phone:         %s\n", p.Owner.Phone)
	fmt.Fprintf(w, "Address:       %s\n", p.Owner.Address)
	fmt.Fprintf(w, "Neighborhood:  %s\n", hoodName(p.Neighborhood))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\nDogs (%d)\n", len(p.Dogs))
	for _, d := range p.Dogs {
		fmt.Fprintf(tw, "  #%d\t%s\t%s\t%s\n", d.ID, d.Name, d.Breed, orDash(d.Notes))
	}
	fmt.Fprintf(tw, "\nWalkers nearby (%d)\n", len(p.Walkers))
	for _, wk := range p.Walkers {
		fmt.Fprintf(tw, "  #%d\t%s\n", wk.ID, wk.Name)
	}
	_ = tw.Flush()
}

func printWalkerProfile(w io.Writer, p profiles.WalkerProfileResponse) {
	fmt.Fprintf(w, "Walker:        %s (#%d)\n", p.Walker.Name, p.Walker.ID)
	fmt.Fprintf(w, "Neighborhood:  %s\n", hoodName(p.Neighborhood))
	fmt.Fprintf(w, "Total walked:  %s\n", p.TotalWalked)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\nWalks (%d)\n", len(p.Walks))
	for _, wk := range p.Walks {
		fmt.Fprintf(tw, "  %s\tdog #%d\t%s\n", wk.Date.Format("2006-01-02 15:04"), wk.DogID, wk.Duration)
	}
	_ = tw.Flush()
}
