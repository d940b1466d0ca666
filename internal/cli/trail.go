package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/blotterhq/blotter/internal/presentation/tui"
)

// TrailOptions configures the trail command.
type TrailOptions struct {
	Name     string
	RedisURL string
	List     bool
}

// ShowTrail renders an archived trail, or lists available archives.
func ShowTrail(opts TrailOptions) error {
	store := newArchive(opts.RedisURL)
	ctx := context.Background()

	if opts.List {
		names, err := store.List(ctx)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("no archived trails")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	trail, err := store.Load(ctx, opts.Name)
	if err != nil {
		return fmt.Errorf("failed to load trail %q: %w", opts.Name, err)
	}

	render := tui.NewRenderer()
	out, err := render(tui.TrailMarkdown(trail))
	if err != nil {
		out = tui.TrailMarkdown(trail)
	}
	fmt.Fprint(os.Stdout, out)
	return nil
}
