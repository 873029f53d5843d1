package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifelab/internal/analysis"
	"github.com/san-kum/lifelab/internal/config"
	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/patterns"
	"github.com/san-kum/lifelab/internal/storage"
)

var (
	dataDir     string
	width       int
	height      int
	boundary    string
	generations int
	density     float64
	seed        int64
	atX         int
	atY         int
	configFile  string
	preset      string
	saveFile    string
	loadFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifelab",
		Short: "Game of Life pattern analysis lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lifelab", "data directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [pattern]",
		Short: "analyze a pattern's long-run behavior",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzePattern,
	}
	addBoardFlags(analyzeCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [pattern] [pattern] ...",
		Short: "analyze several patterns and compare them",
		Args:  cobra.MinimumNArgs(2),
		RunE:  comparePatterns,
	}
	addBoardFlags(compareCmd)

	runCmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "advance a board and report the census (random soup without a pattern)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBoard,
	}
	addBoardFlags(runCmd)
	runCmd.Flags().StringVar(&saveFile, "save", "", "write the final board to this file")
	runCmd.Flags().StringVar(&loadFile, "load", "", "seed the board from a saved grid file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark generation updates across board sizes",
		RunE:  benchBoards,
	}
	benchCmd.Flags().IntVar(&generations, "generations", 100, "generations per board size")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list the pattern library",
		RunE:  listPatterns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBOARD\tBOUNDARY\tGENERATIONS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%s\t%d\n",
					name, p.Board.Width, p.Board.Height, p.Board.Boundary, p.Analysis.MaxGenerations)
			}
			return w.Flush()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored analysis runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's population history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSONStdout(args[0])
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run's population history as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	rootCmd.AddCommand(analyzeCmd, compareCmd, runCmd, benchCmd, patternsCmd,
		presetsCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "board width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "board height")
	cmd.Flags().StringVar(&boundary, "boundary", config.DefaultBoundary, "boundary policy (wrap, fixed)")
	cmd.Flags().IntVar(&generations, "generations", config.DefaultMaxGenerations, "generation budget")
	cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "random fill density")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&atX, "at-x", -1, "placement x (default: centered)")
	cmd.Flags().IntVar(&atY, "at-y", -1, "placement y (default: centered)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset configuration")
}

// resolveConfig layers settings: defaults, then preset, then config file,
// then any explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Board.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Board.Height = height
	}
	if cmd.Flags().Changed("boundary") {
		cfg.Board.Boundary = boundary
	}
	if cmd.Flags().Changed("generations") {
		cfg.Analysis.MaxGenerations = generations
	}
	if cmd.Flags().Changed("density") {
		cfg.Random.Density = density
	}
	if cmd.Flags().Changed("seed") {
		cfg.Random.Seed = seed
	}
	if cmd.Flags().Changed("at-x") {
		cfg.Analysis.X = atX
	}
	if cmd.Flags().Changed("at-y") {
		cfg.Analysis.Y = atY
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func lookupPattern(name string) (patterns.Pattern, error) {
	p, ok := patterns.ByName(name)
	if !ok {
		return patterns.Pattern{}, fmt.Errorf("unknown pattern: %s (available: %v)", name, patterns.Names())
	}
	return p, nil
}

// placement resolves the seed anchor, centering the pattern when the
// config leaves it negative.
func placement(cfg *config.Config, p patterns.Pattern) (int, int) {
	x, y := cfg.Analysis.X, cfg.Analysis.Y
	if x < 0 {
		x = (cfg.Board.Width - p.Width) / 2
	}
	if y < 0 {
		y = (cfg.Board.Height - p.Height) / 2
	}
	return x, y
}

func analyzePattern(cmd *cobra.Command, args []string) error {
	p, err := lookupPattern(args[0])
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	x, y := placement(cfg, p)
	a := analysis.New(cfg.Analysis.MaxGenerations, cfg.Board.Width, cfg.Board.Height,
		life.BoundaryFromString(cfg.Board.Boundary))

	fmt.Println(titleStyle.Render(fmt.Sprintf("analyzing %s on %dx%d (%s)",
		p.Name, cfg.Board.Width, cfg.Board.Height, cfg.Board.Boundary)))

	stats := a.AnalyzePattern(p, x, y)
	fmt.Println(analysis.Report(stats))

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(stats)
	if err != nil {
		return err
	}
	fmt.Println(labelStyle.Render("run id: ") + valueStyle.Render(runID))
	return nil
}

func comparePatterns(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	a := analysis.New(cfg.Analysis.MaxGenerations, cfg.Board.Width, cfg.Board.Height,
		life.BoundaryFromString(cfg.Board.Boundary))

	var placements []analysis.Placement
	for _, name := range args {
		p, err := lookupPattern(name)
		if err != nil {
			return err
		}
		x, y := placement(cfg, p)
		placements = append(placements, analysis.Placement{Pattern: p, X: x, Y: y})
	}

	stats := a.ComparePatterns(placements)
	fmt.Println(analysis.CompareReport(stats))
	return nil
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	grid := life.NewGrid(cfg.Board.Width, cfg.Board.Height,
		life.BoundaryFromString(cfg.Board.Boundary))

	switch {
	case loadFile != "":
		if err := grid.LoadFromFile(loadFile); err != nil {
			return err
		}
	case len(args) == 1:
		p, err := lookupPattern(args[0])
		if err != nil {
			return err
		}
		x, y := placement(cfg, p)
		p.Place(grid, x, y)
	default:
		grid.Randomize(cfg.Random.Density, cfg.Random.Seed)
	}

	initial := grid.CountAlive()
	start := time.Now()
	for i := 0; i < cfg.Analysis.MaxGenerations; i++ {
		grid.Update()
	}
	elapsed := time.Since(start)

	fmt.Println(labelStyle.Render("generations: ") + valueStyle.Render(strconv.Itoa(cfg.Analysis.MaxGenerations)))
	fmt.Println(labelStyle.Render("population:  ") + valueStyle.Render(fmt.Sprintf("%d -> %d", initial, grid.CountAlive())))
	fmt.Println(subtleStyle.Render(fmt.Sprintf("completed in %v", elapsed)))

	if saveFile != "" {
		if err := grid.SaveToFile(saveFile); err != nil {
			return err
		}
		fmt.Println(subtleStyle.Render("board saved to " + saveFile))
	}
	return nil
}

func benchBoards(cmd *cobra.Command, args []string) error {
	sizes := []int{100, 250, 500}

	fmt.Println(titleStyle.Render("benchmarking board updates"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tBOUNDARY\tGENERATIONS\tTIME\tCELLS/SEC")

	for _, size := range sizes {
		for _, b := range []life.Boundary{life.Wrap, life.Fixed} {
			grid := life.NewGrid(size, size, b)
			grid.Randomize(0.3, 42)

			start := time.Now()
			for i := 0; i < generations; i++ {
				grid.Update()
			}
			elapsed := time.Since(start)

			cells := float64(size*size) * float64(generations)
			fmt.Fprintf(w, "%dx%d\t%s\t%d\t%v\t%.0f\n",
				size, size, b, generations, elapsed.Round(time.Millisecond), cells/elapsed.Seconds())
		}
	}
	return w.Flush()
}

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tCELLS\tDESCRIPTION")
	for _, p := range patterns.All() {
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\n", p.Name, p.Width, p.Height, len(p.Cells), p.Description)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tTIME\tCLASSIFICATION\tGENS\tFINAL POP.")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Pattern,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Classification,
			run.GenerationsAnalyzed,
			run.FinalPopulation,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	history, err := st.LoadHistory(runID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Println(titleStyle.Render("run: " + meta.ID))
	fmt.Println(labelStyle.Render("pattern:        ") + valueStyle.Render(meta.Pattern))
	fmt.Println(labelStyle.Render("classification: ") + valueStyle.Render(meta.Classification))
	fmt.Println()

	data := make([]float64, len(history))
	for i, pop := range history {
		data[i] = float64(pop)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("population vs generation"),
	)
	fmt.Println(graph)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	history, err := storage.New(dataDir).LoadHistory(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"generation", "population"}); err != nil {
		return err
	}
	for gen, pop := range history {
		if err := w.Write([]string{strconv.Itoa(gen), strconv.Itoa(pop)}); err != nil {
			return err
		}
	}
	return nil
}
