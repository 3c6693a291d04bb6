package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/galaxia/internal/config"
	"github.com/san-kum/galaxia/internal/engine"
	"github.com/san-kum/galaxia/internal/export"
	"github.com/san-kum/galaxia/internal/galaxy"
	"github.com/san-kum/galaxia/internal/gui"
	"github.com/san-kum/galaxia/internal/stats"
	"github.com/san-kum/galaxia/internal/viz"
)

var (
	stars      int
	seed       int64
	morphology string
	workers    int
	dt         float64
	steps      int
	configFile string
	preset     string
	exportFmt  string
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "galaxia",
		Short: "procedural galaxy particle simulation",
		Run: func(cmd *cobra.Command, args []string) {
			// default to the GUI when no command given
			cfg, err := buildConfig()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			eng, err := engine.New(*cfg)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			gui.Run(eng)
		},
	}

	rootCmd.PersistentFlags().IntVar(&stars, "stars", config.DefaultStars, "morphology star budget")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "generation seed (0 = from clock)")
	rootCmd.PersistentFlags().StringVar(&morphology, "morphology", "", "force a morphology by name")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "kernel worker count (0 = all cores)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless fixed-step run with summary statistics",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0.016, "fixed timestep")
	runCmd.Flags().IntVar(&steps, "steps", 600, "number of frames")
	runCmd.Flags().StringVar(&exportFmt, "export", "", "export summary or snapshot (json|csv|svg)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "live terminal view",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "raylib renderer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig()
			if err != nil {
				return err
			}
			eng, err := engine.New(*cfg)
			if err != nil {
				return err
			}
			gui.Run(eng)
			return nil
		},
	}

	morphCmd := &cobra.Command{
		Use:   "morphologies",
		Short: "list morphology recipes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range galaxy.All() {
				fmt.Println(m)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-12s %d stars", name, p.Stars)
				if p.Morphology != "" {
					fmt.Printf("  (%s)", p.Morphology)
				}
				fmt.Println()
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, morphCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig layers preset, config file and flags, later layers winning.
func buildConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if stars != config.DefaultStars || (preset == "" && configFile == "") {
		cfg.Stars = stars
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if morphology != "" {
		cfg.Morphology = morphology
	}
	if workers != 0 {
		cfg.Workers = workers
	}
	return cfg, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	eng, err := engine.New(*cfg)
	if err != nil {
		return err
	}

	fmt.Printf("simulating %s, %d bodies, %d steps at dt=%.4f\n",
		eng.Morphology(), eng.Bodies(), steps, dt)

	start := time.Now()
	if err := eng.Run(context.Background(), steps, dt, nil); err != nil {
		return err
	}
	elapsed := time.Since(start)

	sum := stats.Summarize(eng.Store())

	switch exportFmt {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	case "csv":
		return writeSummaryCSV(os.Stdout, sum)
	case "svg":
		_, err := fmt.Print(export.StoreToSVG(eng.Store(), 1024, 1.5))
		return err
	case "":
	default:
		return fmt.Errorf("unknown export format: %s", exportFmt)
	}

	fmt.Printf("completed in %v (%.0f steps/sec)\n\n", elapsed, float64(steps)/elapsed.Seconds())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "bodies\t%d\n", sum.Bodies)
	fmt.Fprintf(w, "stars\t%d\n", sum.Stars)
	fmt.Fprintf(w, "jets\t%d\n", sum.Jets)
	fmt.Fprintf(w, "mean radius\t%.4f\n", sum.MeanRadius)
	fmt.Fprintf(w, "max radius\t%.4f\n", sum.MaxRadius)
	fmt.Fprintf(w, "mean speed\t%.4f\n", sum.MeanSpeed)
	fmt.Fprintf(w, "mean v_t\t%.4f\n", sum.MeanTangential)
	fmt.Fprintf(w, "mean v_r\t%.4f\n", sum.MeanRadial)
	if err := w.Flush(); err != nil {
		return err
	}

	radial := stats.RadialHistogram(eng.Store(), 40, 1.5)
	fmt.Println()
	fmt.Println(asciigraph.Plot(radial,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("star count vs radius"),
	))

	speeds := stats.SpeedHistogram(eng.Store(), 40, 4.0)
	fmt.Println()
	fmt.Println(asciigraph.Plot(speeds,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("star count vs speed"),
	))

	return nil
}

func writeSummaryCSV(f *os.File, sum stats.Summary) error {
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"bodies", "stars", "jets", "mean_radius", "max_radius",
		"mean_speed", "mean_tangential", "mean_radial",
	}); err != nil {
		return err
	}
	return w.Write([]string{
		strconv.Itoa(sum.Bodies),
		strconv.Itoa(sum.Stars),
		strconv.Itoa(sum.Jets),
		strconv.FormatFloat(sum.MeanRadius, 'f', 6, 64),
		strconv.FormatFloat(sum.MaxRadius, 'f', 6, 64),
		strconv.FormatFloat(sum.MeanSpeed, 'f', 6, 64),
		strconv.FormatFloat(sum.MeanTangential, 'f', 6, 64),
		strconv.FormatFloat(sum.MeanRadial, 'f', 6, 64),
	})
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if frameRate > 0 {
		cfg.FrameRate = frameRate
	}

	eng, err := engine.New(*cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(eng, cfg.FrameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
