package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Ivanvillan/front-820hd-sub000/internal/board"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/assignment"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/filter"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/workflow"
)

type watchOptions struct {
	technicianID string
	name         string
	role         string
	sector       string
	status       string
	query        string
}

var watchOpts watchOptions

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the visible orders and keep them refreshed",
	Long: `Loads the order list as the given user sees it and reprints it after every
refresh. Press Ctrl+C to stop.`,
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.StringVar(&watchOpts.technicianID, "technician", "", "technician id of the viewer")
	f.StringVar(&watchOpts.name, "name", "", "display name of the viewer")
	f.StringVar(&watchOpts.role, "role", string(entities.RoleTechnician), "role of the viewer (admin, supervisor, tecnico)")
	f.StringVar(&watchOpts.sector, "sector", "", "sector of the viewer")
	f.StringVar(&watchOpts.status, "status", "", "only orders with this status; open orders when empty")
	f.StringVarP(&watchOpts.query, "query", "q", "", "free text filter")
	rootCmd.AddCommand(watchCmd)
}

func (o watchOptions) viewer() entities.Viewer {
	return entities.Viewer{
		TechnicianID: strings.TrimSpace(o.technicianID),
		DisplayName:  strings.TrimSpace(o.name),
		Role:         entities.Role(strings.ToLower(strings.TrimSpace(o.role))),
		Sector:       entities.Sector(strings.TrimSpace(o.sector)),
	}
}

func (o watchOptions) criteria() (filter.Criteria, error) {
	c := filter.Criteria{Query: o.query}
	if raw := strings.TrimSpace(o.status); raw != "" {
		s, ok := entities.ParseStatus(raw)
		if !ok {
			return filter.Criteria{}, fmt.Errorf("unknown status %q", raw)
		}
		c.Status = s
	}
	return c, nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	criteria, err := watchOpts.criteria()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	b := board.New(a.orders, watchOpts.viewer(), a.cfg.Refresh.Scheduler(),
		board.WithCriteria(criteria),
		board.WithOnUpdate(func(orders []entities.Order) {
			printOrders(out, orders)
		}),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := b.Open(ctx); err != nil {
			return err
		}
		log.Info().Dur("interval", a.cfg.Refresh.Interval).Msg("Watching orders")
		<-ctx.Done()
		return b.Close()
	})
	return g.Wait()
}

func printOrders(w io.Writer, orders []entities.Order) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tESTADO\tSECTOR\tPRIORIDAD\tASIGNADO\tDESCRIPCION")
	for _, o := range orders {
		assigned := strings.Join(o.AssignedNames(), ", ")
		if assigned == "" {
			assigned = strings.Join(o.AssignedTechnicianIDs(), ", ")
		}
		if assigned == "" && assignment.CanTake(o) {
			assigned = "(libre)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, workflow.CanonicalStatus(o), o.Sector, o.Priority, assigned, truncate(o.Description, 60))
	}
	fmt.Fprintf(tw, "%d orden(es)\n", len(orders))
	_ = tw.Flush()
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
