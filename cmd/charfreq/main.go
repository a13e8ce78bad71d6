// Package main provides the CLI entrypoint for charfreq.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/charfreq/internal/config"
	"github.com/verte-zerg/charfreq/internal/freq"
	"github.com/verte-zerg/charfreq/internal/input"
	"github.com/verte-zerg/charfreq/internal/model"
	"github.com/verte-zerg/charfreq/internal/render"
	"github.com/verte-zerg/charfreq/internal/tui"
)

const version = "0.1.0"

const defaultSortBy = "char"

var (
	rootSortBy   string
	rootPercent  bool
	rootTopN     int
	rootMoreThan int
	rootLessThan int
	rootExactly  int

	chartSortBy string
	chartTop    int
	chartWidth  int

	browseSortBy string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "charfreq [text]",
		Short:         "Character frequency statistics for text",
		Long:          "Counts character frequencies in the given text (or stdin), skipping whitespace,\nand prints one `char: value` line per character.",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	rootCmd.Flags().StringVarP(&rootSortBy, "sort-by", "s", defaultSortBy, "sort by character or count")
	rootCmd.Flags().BoolVarP(&rootPercent, "show-percent-freq", "p", false, "show percentage of each character")
	rootCmd.Flags().IntVarP(&rootTopN, "show-top-n", "n", 0, "show only the top N characters")
	rootCmd.Flags().IntVarP(&rootMoreThan, "show-more-than-n", "g", 0, "show only characters that appear more than N times")
	rootCmd.Flags().IntVarP(&rootLessThan, "show-less-than-n", "l", 0, "show only characters that appear less than N times")
	rootCmd.Flags().IntVarP(&rootExactly, "show-exactly-n", "e", 0, "show only characters that appear exactly N times")

	rootCmd.AddCommand(newChartCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "sort-by", &rootSortBy, fileCfg.Output.SortBy)

	key, err := model.ParseSortKey(rootSortBy)
	if err != nil {
		return err
	}
	mode, err := resolveMode(cmd)
	if err != nil {
		return err
	}

	text, err := input.ReadText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	entries := freq.Order(freq.Count(text), key)
	return render.Render(cmd.OutOrStdout(), entries, mode)
}

// resolveMode collapses the display flags into the single active mode,
// validating threshold values along the way.
func resolveMode(cmd *cobra.Command) (model.DisplayMode, error) {
	flags := model.ModeFlags{Percent: rootPercent}
	ints := []struct {
		name   string
		value  *int
		target **int
	}{
		{"show-top-n", &rootTopN, &flags.TopN},
		{"show-more-than-n", &rootMoreThan, &flags.MoreThan},
		{"show-less-than-n", &rootLessThan, &flags.LessThan},
		{"show-exactly-n", &rootExactly, &flags.Exactly},
	}
	for _, f := range ints {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		if *f.value < 0 {
			return model.DisplayMode{}, fmt.Errorf("--%s must be >= 0", f.name)
		}
		*f.target = f.value
	}
	return model.ResolveMode(flags), nil
}

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart [text]",
		Short: "Render the distribution as a bar chart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runChartCmd,
	}
	cmd.Flags().StringVar(&chartSortBy, "sort-by", "count", "sort by character or count")
	cmd.Flags().IntVar(&chartTop, "top", 0, "limit the chart to the top N characters (0 = all)")
	cmd.Flags().IntVar(&chartWidth, "width", 0, "total chart width in cells (0 = terminal width)")
	return cmd
}

func runChartCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "top", &chartTop, fileCfg.Chart.Top)
	applyIntConfig(cmd, "width", &chartWidth, fileCfg.Chart.Width)

	key, err := model.ParseSortKey(chartSortBy)
	if err != nil {
		return err
	}
	if chartTop < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	if chartWidth < 0 {
		return fmt.Errorf("--width must be >= 0")
	}

	text, err := input.ReadText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	entries := freq.Order(freq.Count(text), key)
	return render.Chart(cmd.OutOrStdout(), entries, render.ChartOptions{
		Width: chartWidth,
		Top:   chartTop,
	})
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [text]",
		Short: "Browse the distribution interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBrowseCmd,
	}
	cmd.Flags().StringVar(&browseSortBy, "sort-by", "count", "initial sort: character or count")
	return cmd
}

func runBrowseCmd(cmd *cobra.Command, args []string) error {
	key, err := model.ParseSortKey(browseSortBy)
	if err != nil {
		return err
	}

	text, err := input.ReadText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	browser := tui.NewModel(freq.Count(text), key)
	program := tea.NewProgram(browser, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	editorCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# charfreq configuration
# Uncomment a value to enable it. CLI flags override config values.

[output]
# sort-by = %q        # Sort order for results: "char" or "count"

[chart]
# width = 0           # Total chart width in cells (0 = terminal width)
# top = 0             # Limit the chart to the top N characters (0 = all)
`, defaultSortBy)
}
