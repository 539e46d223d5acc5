package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/wirecube/internal/automation"
	"github.com/san-kum/wirecube/internal/camera"
	"github.com/san-kum/wirecube/internal/config"
	"github.com/san-kum/wirecube/internal/export"
	"github.com/san-kum/wirecube/internal/linalg"
	"github.com/san-kum/wirecube/internal/metrics"
	"github.com/san-kum/wirecube/internal/scene"
	"github.com/san-kum/wirecube/internal/storage"
	"github.com/san-kum/wirecube/internal/viz"
	"github.com/san-kum/wirecube/internal/window"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	// Scene overrides
	start      float64
	step       float64
	camX       float64
	camY       float64
	camZ       float64
	cubeOrigin float64
	cubeSize   float64
	// Render overrides
	frameRate int
	scale     float64
	theme     string
	backend   string
	width     int
	height    int
	// Window and page size in pixels
	winWidth   int
	winHeight  int
	pageWidth  int
	pageHeight int
	// Batch output
	framesCount int
	recordCount int
	format      string
	svgDir      string
	gifPath     string
	frameIndex  int
	outPath     string
)

// main registers the commands and runs the live terminal view when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "wirecube",
		Short:        "rotating wireframe cube",
		SilenceUsage: true,
		RunE:         runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".wirecube", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	addSceneFlags(rootCmd)
	addRenderFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "rotate the cube in the terminal",
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)
	addRenderFlags(liveCmd)

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "rotate the cube in a desktop window",
		RunE:  runWindow,
	}
	addSceneFlags(windowCmd)
	windowCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	windowCmd.Flags().Float64Var(&scale, "scale", 0, "pixels per unit (0 fits the window)")
	windowCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "window backend (raylib, or ebiten when built with -tags ebiten)")
	windowCmd.Flags().IntVar(&winWidth, "win-width", 800, "window width in pixels")
	windowCmd.Flags().IntVar(&winHeight, "win-height", 600, "window height in pixels")

	framesCmd := &cobra.Command{
		Use:   "frames",
		Short: "print projected frames",
		RunE:  printFrames,
	}
	addSceneFlags(framesCmd)
	framesCmd.Flags().IntVarP(&framesCount, "frames", "n", 10, "number of frames")
	framesCmd.Flags().StringVar(&format, "format", "table", "output format (table|json)")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "compute frames and save them as a run",
		RunE:  recordRun,
	}
	addSceneFlags(recordCmd)
	addRenderFlags(recordCmd)
	recordCmd.Flags().IntVarP(&recordCount, "frames", "n", 300, "number of frames")
	recordCmd.Flags().StringVar(&svgDir, "svg", "", "also write one svg per frame to this directory")
	recordCmd.Flags().StringVar(&gifPath, "gif", "", "also write a braille gif animation to this path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export one frame of a run to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&frameIndex, "frame", 0, "frame index")
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default stdout)")
	exportSVGCmd.Flags().IntVar(&pageWidth, "width", 400, "page width")
	exportSVGCmd.Flags().IntVar(&pageHeight, "height", 400, "page height")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCUBE\tCAMERA\tSTEP")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g,%g,%g %gx%gx%g\t%g,%g,%g\t%g\n", name,
					p.Cube.X, p.Cube.Y, p.Cube.Z, p.Cube.Width, p.Cube.Height, p.Cube.Depth,
					p.Camera.X, p.Camera.Y, p.Camera.Z, p.Clock.Step)
			}
			return w.Flush()
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "record every step of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	addSceneFlags(initConfigCmd)

	rootCmd.AddCommand(liveCmd, windowCmd, framesCmd, recordCmd, listCmd, plotCmd, exportSVGCmd, exportJSONCmd, presetsCmd, scenarioCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&start, "start", config.DefaultStart, "initial scene time")
	cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "time added per frame")
	cmd.Flags().Float64Var(&camX, "cam-x", 0, "camera direction x")
	cmd.Flags().Float64Var(&camY, "cam-y", 0, "camera direction y")
	cmd.Flags().Float64Var(&camZ, "cam-z", 1, "camera direction z")
	cmd.Flags().Float64Var(&cubeOrigin, "origin", config.DefaultCubeOrigin, "cube origin corner (all axes)")
	cmd.Flags().Float64Var(&cubeSize, "size", config.DefaultCubeSize, "cube edge length")
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().Float64Var(&scale, "scale", 0, "dots per unit (0 fits the canvas)")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "canvas width in cells")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "canvas height in cells")
}

// loadConfig resolves the configuration: defaults, then preset, then config
// file, then any flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	// Only override config values if explicitly set via flags
	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Clock.Start = start
	}
	if flags.Changed("step") {
		cfg.Clock.Step = step
	}
	if flags.Changed("cam-x") {
		cfg.Camera.X = camX
	}
	if flags.Changed("cam-y") {
		cfg.Camera.Y = camY
	}
	if flags.Changed("cam-z") {
		cfg.Camera.Z = camZ
	}
	if flags.Changed("origin") {
		cfg.Cube.X, cfg.Cube.Y, cfg.Cube.Z = cubeOrigin, cubeOrigin, cubeOrigin
	}
	if flags.Changed("size") {
		cfg.Cube.Width, cfg.Cube.Height, cfg.Cube.Depth = cubeSize, cubeSize, cubeSize
	}
	if flags.Changed("fps") {
		cfg.Render.FPS = frameRate
	}
	if flags.Changed("scale") {
		cfg.Render.Scale = scale
	}
	if flags.Changed("theme") {
		cfg.Render.Theme = theme
	}
	if flags.Changed("backend") {
		cfg.Render.Backend = backend
	}
	if flags.Changed("width") {
		cfg.Render.Width = width
	}
	if flags.Changed("height") {
		cfg.Render.Height = height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the slog logger for a command. The terminal view owns
// stderr, so it logs nowhere unless --log-file is given.
func newLogger(tui bool) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		out, closeFn = f, func() { f.Close() }
	case tui:
		out = io.Discard
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closeFn, nil
}

func newPlayer(cfg *config.Config, log *slog.Logger) *scene.Player {
	cube := scene.CreateCube(cfg.Cube.Args())
	cam := camera.New(cfg.Camera.X, cfg.Camera.Y, cfg.Camera.Z)
	return scene.NewPlayer(scene.New(cube, cam), scene.NewClock(cfg.Clock.Start, cfg.Clock.Step), log)
}

// setup loads the config and builds a logger and player for cmd.
func setup(cmd *cobra.Command, tui bool) (*config.Config, *scene.Player, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	log, closeFn, err := newLogger(tui)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Debug("config resolved", "preset", preset, "config", configFile,
		"camera", fmt.Sprintf("%g,%g,%g", cfg.Camera.X, cfg.Camera.Y, cfg.Camera.Z),
		"start", cfg.Clock.Start, "step", cfg.Clock.Step)
	return cfg, newPlayer(cfg, log), closeFn, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, p, closeFn, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer closeFn()

	return viz.RunLive(p, viz.Options{
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
		FPS:    cfg.Render.FPS,
		Scale:  cfg.Render.Scale,
		Theme:  cfg.Render.Theme,
	})
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, p, closeFn, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeFn()

	return window.Run(cfg.Render.Backend, p, window.Options{
		Width:  winWidth,
		Height: winHeight,
		FPS:    cfg.Render.FPS,
		Scale:  cfg.Render.Scale,
	})
}

func printFrames(cmd *cobra.Command, args []string) error {
	cfg, p, closeFn, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeFn()

	frames := p.Frames(framesCount)

	switch format {
	case "json":
		meta := runMetadata(cfg, p)
		meta.Frames = len(frames)
		return storage.ExportJSON(os.Stdout, meta, frames)
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprint(w, "T")
		for i := 0; i < scene.Corners; i++ {
			fmt.Fprintf(w, "\tP%d", i)
		}
		fmt.Fprintln(w)
		for _, f := range frames {
			fmt.Fprintf(w, "%.2f", f.Time)
			for _, pt := range f.Points {
				fmt.Fprintf(w, "\t(%.1f, %.1f)", pt.X, pt.Y)
			}
			fmt.Fprintln(w)
		}
		if n := p.Skipped(); n > 0 {
			fmt.Fprintf(w, "skipped %d frames\n", n)
		}
		return w.Flush()
	}
	return fmt.Errorf("unknown format: %s (available: table, json)", format)
}

func runMetadata(cfg *config.Config, p *scene.Player) storage.RunMetadata {
	c := cfg.Cube
	return storage.RunMetadata{
		Preset:  preset,
		Cube:    [6]float64{c.X, c.Y, c.Z, c.Width, c.Height, c.Depth},
		Camera:  [3]float64{cfg.Camera.X, cfg.Camera.Y, cfg.Camera.Z},
		Start:   cfg.Clock.Start,
		Step:    cfg.Clock.Step,
		Skipped: p.Skipped(),
	}
}

func recordRun(cmd *cobra.Command, args []string) error {
	cfg, p, closeFn, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeFn()

	frames := p.Frames(recordCount)
	if len(frames) == 0 {
		return fmt.Errorf("no frames produced (%d skipped)", p.Skipped())
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	meta := runMetadata(cfg, p)
	meta.Metrics = metrics.Collect(metrics.Defaults(p.Scene().Cube()), frames)
	runID, err := st.Save(meta, frames)
	if err != nil {
		return err
	}
	fmt.Printf("saved: %s (%d frames, %d skipped)\n", runID, len(frames), p.Skipped())

	if svgDir != "" {
		if err := writeSVGs(svgDir, frames, cfg.Render.Scale); err != nil {
			return err
		}
		fmt.Printf("svg: %s\n", svgDir)
	}
	if gifPath != "" {
		if err := writeGIF(gifPath, frames, cfg, p.Scene().Cube()); err != nil {
			return err
		}
		fmt.Printf("gif: %s\n", gifPath)
	}
	return nil
}

func writeSVGs(dir string, frames []scene.Frame, scale float64) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for i, f := range frames {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.svg", i))
		if err := os.WriteFile(path, []byte(export.FrameToSVG(f, 400, 400, scale)), 0644); err != nil {
			return err
		}
	}
	return nil
}

func writeGIF(path string, frames []scene.Frame, cfg *config.Config, cube [scene.Corners]linalg.Vector3) error {
	c := viz.NewCanvas(cfg.Render.Width, cfg.Render.Height)
	s := cfg.Render.Scale
	if s <= 0 {
		s = viz.FitScale(c, cube)
	}
	vp := viz.NewViewport(c, s)

	images := make([]*image.Paletted, 0, len(frames))
	for _, f := range frames {
		viz.Render(c, f, vp)
		images = append(images, export.CaptureCanvas(c))
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return export.EncodeGIF(file, images, export.DelayForFPS(cfg.Render.FPS))
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tFRAMES\tSKIPPED\tSTART\tSTEP")

	for _, run := range runs {
		name := run.Preset
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.2f\t%.4f\n",
			run.ID,
			name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Skipped,
			run.Start,
			run.Step,
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

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n", len(frames))
	for _, name := range []string{"mean_width", "edge_length", "bounded"} {
		if v, ok := meta.Metrics[name]; ok {
			fmt.Printf("%s: %.3f\n", name, v)
		}
	}
	fmt.Println()

	widths := make([]float64, len(frames))
	xs := make([]float64, len(frames))
	for i, f := range frames {
		widths[i] = f.Width()
		xs[i] = f.Points[0].X
	}

	fmt.Println(asciigraph.Plot(widths, asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("projected width vs frame")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(xs, asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("corner 0 x vs frame")))
	return nil
}

// output opens outPath, or stdout when it is empty.
func output() (io.WriteCloser, error) {
	if outPath == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(outPath)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if frameIndex < 0 || frameIndex >= len(frames) {
		return fmt.Errorf("frame %d out of range (run has %d frames)", frameIndex, len(frames))
	}

	out, err := output()
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.WriteString(out, export.FrameToSVG(frames[frameIndex], pageWidth, pageHeight, 0))
	return err
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	out, err := output()
	if err != nil {
		return err
	}
	defer out.Close()

	if err := storage.ExportJSON(out, *meta, frames); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("exported to %s\n", outPath)
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	log, closeFn, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeFn()

	results, err := automation.RunScenario(context.Background(), sc, storage.New(dataDir), log)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tID\tFRAMES\tSKIPPED\tMEAN WIDTH")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.2f\n", i+1, r.RunID, r.Frames, r.Skipped, r.Metrics["mean_width"])
	}
	return w.Flush()
}
