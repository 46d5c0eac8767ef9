package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/folio/internal/assets"
	"github.com/olivier-w/folio/internal/gui"
	"github.com/spf13/cobra"
)

var (
	opts      startupOptions
	debugLog  string
	width     int
	height    int
	at        time.Duration
	lineIndex int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "folio",
		Short:         "a portfolio page for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runPage,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (toml)")
	rootCmd.PersistentFlags().StringVar(&opts.contentPath, "content", "", "content file (yaml)")
	rootCmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "random seed for the wave field (0 = random)")
	rootCmd.Flags().StringVar(&debugLog, "debug", "", "write diagnostics to this file")

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "print a single wave frame",
		Args:  cobra.NoArgs,
		RunE:  printFrame,
	}
	frameCmd.Flags().IntVar(&width, "width", 80, "frame width in cells")
	frameCmd.Flags().IntVar(&height, "height", 24, "frame height in cells")
	frameCmd.Flags().DurationVar(&at, "time", 0, "animation time")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "plot animation curves",
	}
	springCmd := &cobra.Command{
		Use:   "spring",
		Short: "plot the scroll progress spring settling after a jump",
		Args:  cobra.NoArgs,
		RunE:  inspectSpring,
	}
	lineCmd := &cobra.Command{
		Use:   "line",
		Short: "plot one wave strand",
		Args:  cobra.NoArgs,
		RunE:  inspectLine,
	}
	lineCmd.Flags().IntVar(&lineIndex, "index", 0, "strand index")
	lineCmd.Flags().DurationVar(&at, "time", 0, "animation time")
	inspectCmd.AddCommand(springCmd, lineCmd)

	contentCmd := &cobra.Command{
		Use:   "content [file]",
		Short: "validate a content file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  checkContent,
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "open the wave field in a native window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}

	rootCmd.AddCommand(frameCmd, inspectCmd, contentCmd, windowCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPage(cmd *cobra.Command, args []string) error {
	if debugLog != "" {
		f, err := tea.LogToFile(debugLog, "folio")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
	}

	program := tea.NewProgram(newStartupModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}

func printFrame(cmd *cobra.Command, args []string) error {
	if width <= 0 || height <= 0 {
		return errors.New("width and height must be positive")
	}
	s, err := loadSettings(opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderFrame(width, height, at, s.rand()))
	return nil
}

func inspectSpring(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), plotSpring(s.cfg.Progress, s.cfg.FPS))
	return nil
}

func inspectLine(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(opts)
	if err != nil {
		return err
	}
	out, err := plotLine(lineIndex, at, s.rand())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func checkContent(cmd *cobra.Command, args []string) error {
	o := opts
	if len(args) == 1 {
		o.contentPath = args[0]
	}
	s, err := loadSettings(o)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d projects, %d socials\n", s.site.Name, len(s.site.Projects), len(s.site.Socials))
	for _, img := range s.site.Images() {
		status := "ok"
		path := img
		if !filepath.IsAbs(path) && s.baseDir != "" {
			path = filepath.Join(s.baseDir, path)
		}
		switch _, statErr := os.Stat(path); {
		case !assets.IsImageExt(filepath.Ext(img)):
			status = "unsupported (supported: " + assets.SupportedExtsList() + ")"
		case statErr != nil:
			status = "missing, placeholder shown"
		}
		fmt.Fprintf(out, "  %s  %s\n", img, status)
	}
	return nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(opts)
	if err != nil {
		return err
	}
	return gui.Run(gui.Options{
		Site:               s.site,
		Rand:               s.rand(),
		Stroke:             s.cfg.Waves.Stroke,
		Background:         s.cfg.Waves.Background,
		RegenerateOnResize: s.cfg.Waves.RegenerateOnResize,
	})
}
