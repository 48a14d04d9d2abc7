package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atomicstack/servarr-dash/internal/app"
	"github.com/atomicstack/servarr-dash/internal/format/table"
	"github.com/atomicstack/servarr-dash/internal/handlers"
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

func (r *runner) backendCmd(b route.Backend) *cobra.Command {
	cmd := &cobra.Command{
		Use:   b.String(),
		Short: "One-shot commands against " + b.Title(),
	}
	cmd.AddCommand(
		r.listCmd(b),
		r.deleteIndexerCmd(b),
		r.deleteRootFolderCmd(b),
		r.deleteBlocklistItemCmd(b),
		r.testAllIndexersCmd(b),
		r.refreshCmd(b),
	)
	return cmd
}

// session opens block on backend b and loads it.
func (r *runner) session(ctx context.Context, b route.Backend, block route.Block) (*app.Session, error) {
	s := app.NewSession(r.cfg)
	if err := s.Open(b, block); err != nil {
		return nil, err
	}
	if err := s.Step(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *runner) listCmd(b route.Backend) *cobra.Command {
	return &cobra.Command{
		Use:       "list <" + strings.Join(listingNames(), "|") + ">",
		Short:     "Print one of the " + b.Title() + " tables",
		Args:      cobra.ExactArgs(1),
		ValidArgs: listingNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, ok := listings[args[0]]
			if !ok {
				return fmt.Errorf("unknown list %q (want one of %s)", args[0], strings.Join(listingNames(), ", "))
			}
			s, err := r.session(cmd.Context(), b, l.block)
			if err != nil {
				return err
			}
			s.App.Lock()
			rows := l.rows(s.App.DataFor(b))
			s.App.Unlock()
			return printRows(cmd.OutOrStdout(), l.header, rows)
		},
	}
}

func (r *runner) deleteIndexerCmd(b route.Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-indexer <name>",
		Short: "Delete the indexer best matching name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := r.session(cmd.Context(), b, route.Indexers)
			if err != nil {
				return err
			}
			name, err := selectMatch(s, s.App.DataFor(b).Indexers, indexerName, args[0], "indexer")
			if err != nil {
				return err
			}
			if err := confirm(cmd.Context(), s, keys.Named(keys.Default.Delete.Primary())); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted indexer %q\n", name)
			return nil
		},
	}
}

func (r *runner) deleteRootFolderCmd(b route.Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-root-folder <path>",
		Short: "Delete the root folder best matching path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := r.session(cmd.Context(), b, route.RootFolders)
			if err != nil {
				return err
			}
			path, err := selectMatch(s, s.App.DataFor(b).RootFolders, rootFolderPath, args[0], "root folder")
			if err != nil {
				return err
			}
			if err := confirm(cmd.Context(), s, keys.Named(keys.Default.Delete.Primary())); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted root folder %q\n", path)
			return nil
		},
	}
}

func (r *runner) deleteBlocklistItemCmd(b route.Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-blocklist-item <title>",
		Short: "Remove the blocklist item best matching title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := r.session(cmd.Context(), b, route.Blocklist)
			if err != nil {
				return err
			}
			title, err := selectMatch(s, s.App.DataFor(b).Blocklist, blocklistTitle, args[0], "blocklist item")
			if err != nil {
				return err
			}
			if err := confirm(cmd.Context(), s, keys.Named(keys.Default.Delete.Primary())); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from the blocklist\n", title)
			return nil
		},
	}
}

func (r *runner) testAllIndexersCmd(b route.Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "test-all-indexers",
		Short: "Test every indexer and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := r.session(cmd.Context(), b, route.Indexers)
			if err != nil {
				return err
			}
			press(s, keys.Char(keys.Default.TestAll.Primary()))
			if err := s.Step(cmd.Context()); err != nil {
				return err
			}
			s.App.Lock()
			results := s.App.DataFor(b).IndexerTestAll
			s.App.Unlock()
			if results == nil {
				return errors.New("no test results returned")
			}
			rows := make([][]string, 0, len(results.Items))
			for _, res := range results.Items {
				status := "pass"
				if !res.IsValid {
					status = "fail"
				}
				rows = append(rows, []string{res.Name, status, res.ValidationFailure})
			}
			return printRows(cmd.OutOrStdout(), []string{"INDEXER", "RESULT", "FAILURE"}, rows)
		},
	}
}

func (r *runner) refreshCmd(b route.Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Update info and rescan disks for the whole library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := r.session(cmd.Context(), b, route.Library)
			if err != nil {
				return err
			}
			if err := confirm(cmd.Context(), s, keys.Char(keys.Default.Update.Primary())); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Queued a library refresh on %s\n", b.Title())
			return nil
		},
	}
}

func press(s *app.Session, ks ...keys.Key) {
	s.App.Lock()
	defer s.App.Unlock()
	for _, k := range ks {
		handlers.HandleEvents(k, s.App)
	}
}

// confirm opens a prompt with opener, answers yes, and sends the staged
// action on the next tick.
func confirm(ctx context.Context, s *app.Session, opener keys.Key) error {
	press(s,
		opener,
		keys.Named(keys.Default.Left.Primary()),
		keys.Named(keys.Default.Submit.Primary()),
	)
	s.App.Lock()
	d := s.App.Current()
	staged := d.PromptConfirm && d.PromptConfirmAction != nil
	s.App.Unlock()
	if !staged {
		return errors.New("nothing to confirm")
	}
	return s.Step(ctx)
}

// selectMatch moves the selection of t to the row whose label best matches
// query and returns that label.
func selectMatch[T any](s *app.Session, t *uistate.StatefulTable[T], label func(T) string, query, what string) (string, error) {
	s.App.Lock()
	defer s.App.Unlock()
	items := t.ActiveItems()
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = label(item)
	}
	i := uistate.BestMatchIndex(labels, query)
	if i < 0 {
		return "", fmt.Errorf("no %s matches %q", what, query)
	}
	t.SelectIndex(i)
	return labels[i], nil
}

func printRows(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "nothing found")
		return err
	}
	all := append([][]string{header}, rows...)
	for _, line := range table.Format(all, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func listingNames() []string {
	names := make([]string, 0, len(listings))
	for name := range listings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type listing struct {
	block  route.Block
	header []string
	rows   func(d *state.ServarrData) [][]string
}
