package commands

import (
	"errors"
	"fmt"

	"github.com/aki/pista/internal/cli/ui"
	"github.com/aki/pista/internal/core/git"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Explain the git status indicator",
	Long: `Print the status table of the repository in the working directory and
the indicator each reduction mode derives from it.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	log := CreateLogger(cmd.ErrOrStderr())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := ui.NewPainter(out, cfg.Color)

	repo, err := git.Open(cfg.Dir, cfg.Git.Discover)
	if err != nil {
		if errors.Is(err, git.ErrNotRepository) {
			fmt.Fprintf(out, "%s is not a git repository\n", cfg.Dir)
			return nil
		}
		return err
	}
	defer repo.Close()

	ref, err := repo.Head()
	if err != nil {
		return err
	}
	entries, err := repo.Status()
	if err != nil {
		return err
	}
	log.Debug("read status table", "entries", len(entries))

	if len(entries) > 0 {
		tbl := ui.NewTable(out, p, "PATH", "FLAGS", "IMPLIES")
		for _, e := range entries {
			class := git.Classify(e.Flags)
			glyph := cfg.Git.Glyph(class)
			tbl.AddRow(e.Path, e.Flags.String(), p.Paint(glyph.Char+" "+class.String(), glyph.Color))
		}
		tbl.Print()
		fmt.Fprintln(out)
	}

	kind := "branch"
	if ref.Kind == git.DetachedRef {
		kind = "detached"
	}
	fmt.Fprintf(out, "%s %s\n", kind, p.Paint(ref.Name, ui.ReferenceColor))

	for _, mode := range []git.Mode{git.ModePriority, git.ModeScanOrder} {
		ind := git.Reduce(entries, mode)
		glyph := cfg.Git.Glyph(ind)
		marker := " "
		if mode == cfg.Git.Mode {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-8s %s %s\n", marker, mode, p.Paint(glyph.Char, glyph.Color), ind)
	}
	return nil
}
