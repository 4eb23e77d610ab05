package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"rider-dispatch/internal/app"
	"rider-dispatch/internal/config"
	"rider-dispatch/internal/service/assignment"
	"rider-dispatch/internal/service/dispatch"
)

type buildFunc func(ctx context.Context) (*dig.Container, error)

func newRootCmd(build buildFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "dispatchctl",
		Short:         "One-shot rider dispatch operations",
		Long:          "dispatchctl runs single dispatch operations against the configured store, for cron jobs and operators.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSweepCmd(build),
		newDispatchCmd(build),
		newAssignCmd(build),
		newMigrateCmd(build),
	)
	return root
}

func newSweepCmd(build buildFunc) *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Expire pending assignments older than the pending timeout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return invoke(cmd, build, func(cfg *config.Config, st *app.Stores, as *assignment.Service) error {
				defer st.Close()
				d := olderThan
				if d <= 0 {
					d = cfg.Dispatch.PendingTimeout
				}
				n, err := as.ExpirePending(cmd.Context(), d)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "expired %d pending assignment(s)\n", n)
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "pending age to expire (default DISPATCH_PENDING_TIMEOUT)")
	return cmd
}

func newDispatchCmd(build buildFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch ORDER_ID",
		Short: "Assign the best available rider to an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseID("order id", args[0])
			if err != nil {
				return err
			}
			return invoke(cmd, build, func(st *app.Stores, d *dispatch.Dispatcher) error {
				defer st.Close()
				res, err := d.Dispatch(cmd.Context(), orderID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"status":     res.Outcome,
					"assignment": res.Assignment,
				})
			})
		},
	}
}

func newAssignCmd(build buildFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "assign ORDER_ID RIDER_ID",
		Short: "Manually assign a rider to an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseID("order id", args[0])
			if err != nil {
				return err
			}
			riderID, err := parseID("rider id", args[1])
			if err != nil {
				return err
			}
			return invoke(cmd, build, func(st *app.Stores, d *dispatch.Dispatcher) error {
				defer st.Close()
				a, err := d.AssignManually(cmd.Context(), orderID, riderID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), a)
			})
		},
	}
}

func newMigrateCmd(build buildFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the Postgres schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// opening postgres storage applies the schema
			return invoke(cmd, build, func(st *app.Stores) error {
				defer st.Close()
				if st.Pool() == nil {
					return fmt.Errorf("migrate needs the postgres storage driver")
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			})
		},
	}
}

// invoke builds the container and runs fn with its dependencies.
func invoke(cmd *cobra.Command, build buildFunc, fn any) error {
	c, err := build(cmd.Context())
	if err != nil {
		return err
	}
	if err := c.Invoke(fn); err != nil {
		return dig.RootCause(err)
	}
	return nil
}

func parseID(what, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
