package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/questlog/internal/ports/primary"
)

// ChecklistAdapter translates CLI operations to ChecklistService calls.
type ChecklistAdapter struct {
	service primary.ChecklistService
	out     io.Writer
}

// NewChecklistAdapter creates a new ChecklistAdapter with the given service.
func NewChecklistAdapter(service primary.ChecklistService, out io.Writer) *ChecklistAdapter {
	return &ChecklistAdapter{
		service: service,
		out:     out,
	}
}

// ListGames lists all games.
func (a *ChecklistAdapter) ListGames(ctx context.Context) ([]*primary.Game, error) {
	games, err := a.service.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	if len(games) == 0 {
		fmt.Fprintln(a.out, "No games found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Register your first game:")
		fmt.Fprintln(a.out, "  questlog game create \"Hollow Depths\"")
		return games, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	fmt.Fprintln(w, "--\t----")
	for _, game := range games {
		fmt.Fprintf(w, "%s\t%s\n", game.ID, game.Name)
	}
	w.Flush()
	return games, nil
}

// List lists checklists, optionally filtered by game.
func (a *ChecklistAdapter) List(ctx context.Context, gameID string) ([]*primary.Checklist, error) {
	checklists, err := a.service.ListChecklists(ctx, primary.ChecklistFilters{GameID: gameID})
	if err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}

	if len(checklists) == 0 {
		fmt.Fprintln(a.out, "No checklists found.")
		return checklists, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tGAME\tTITLE\tCREATED")
	fmt.Fprintln(w, "--\t----\t-----\t-------")
	for _, c := range checklists {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.GameID, c.Title, c.CreatedAt)
	}
	w.Flush()
	return checklists, nil
}

// Show displays a checklist with its items.
func (a *ChecklistAdapter) Show(ctx context.Context, checklistID string) (*primary.ChecklistDetail, error) {
	detail, err := a.service.GetChecklist(ctx, checklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}

	fmt.Fprintf(a.out, "\nChecklist: %s\n", detail.ID)
	fmt.Fprintf(a.out, "Title: %s\n", detail.Title)
	if detail.Description != "" {
		fmt.Fprintf(a.out, "About: %s\n", detail.Description)
	}
	fmt.Fprintln(a.out)

	if len(detail.Items) == 0 {
		fmt.Fprintln(a.out, "No items yet.")
		return detail, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "POS\tID\tTITLE\tLOCATION\tCATEGORY")
	fmt.Fprintln(w, "---\t--\t-----\t--------\t--------")
	for _, item := range detail.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			item.Position, item.ID, item.Title, item.Location, item.Category)
	}
	w.Flush()
	return detail, nil
}

// ListTracked lists tracked copies, optionally for one owner.
func (a *ChecklistAdapter) ListTracked(ctx context.Context, owner string) ([]*primary.Tracked, error) {
	copies, err := a.service.ListTracked(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked checklists: %w", err)
	}

	if len(copies) == 0 {
		fmt.Fprintln(a.out, "No tracked checklists.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Start tracking one:")
		fmt.Fprintln(a.out, "  questlog checklist track CHK-001")
		return copies, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tCHECKLIST\tOWNER\tCREATED")
	fmt.Fprintln(w, "--\t---------\t-----\t-------")
	for _, tracked := range copies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", tracked.ID, tracked.ChecklistID, tracked.Owner, tracked.CreatedAt)
	}
	w.Flush()
	return copies, nil
}
