package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/tinyraster/internal/config"
	"github.com/san-kum/tinyraster/internal/display"
	"github.com/san-kum/tinyraster/internal/display/window"
	"github.com/san-kum/tinyraster/internal/export"
	"github.com/san-kum/tinyraster/internal/gen"
	"github.com/san-kum/tinyraster/internal/geom"
	"github.com/san-kum/tinyraster/internal/raster"
	"github.com/san-kum/tinyraster/internal/scene"
	"github.com/san-kum/tinyraster/internal/tui"
)

var (
	configFile string
	preset     string
	seed       int64
	lambda     float64
	treeLambda float64
	depth      int
	count      int
	legacyRho  bool
	delayScale float64
	// Output
	outFile  string
	scale    int
	color    bool
	noText   bool
	braille  bool
	panelW   int
	panelH   int
	shadeLen int
	runs     int
	exitDone bool
	treeFace string
	outDir   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tinyraster",
		Short: "procedural 2D/3D scenes for a small LCD panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "")
			if err != nil {
				return err
			}
			return tui.RunMenu(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	renderCmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "render a scene to the terminal or an image file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	addSceneFlags(renderCmd)
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the frame to a .png or .svg file")
	renderCmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "image scale factor")
	renderCmd.Flags().BoolVar(&color, "color", false, "colour the terminal preview")
	renderCmd.Flags().BoolVar(&noText, "quiet", false, "skip the terminal preview")
	renderCmd.Flags().BoolVar(&braille, "braille", false, "write .svg output as the braille dot preview")

	windowCmd := &cobra.Command{
		Use:   "window [scene]",
		Short: "show a scene in a desktop window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWindow,
	}
	addSceneFlags(windowCmd)
	windowCmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "window scale factor")
	windowCmd.Flags().BoolVar(&exitDone, "exit", false, "close the window once the scene is drawn")
	windowCmd.Flags().Float64Var(&delayScale, "delay-scale", config.DefaultDelayScale, "multiply scene pauses (0 disables)")

	batchCmd := &cobra.Command{
		Use:   "batch [scene]",
		Short: "render a scene over consecutive seeds into png files",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBatch,
	}
	addSceneFlags(batchCmd)
	batchCmd.Flags().IntVarP(&runs, "runs", "n", 4, "number of seeds to render")
	batchCmd.Flags().StringVar(&outDir, "dir", ".", "output directory")
	batchCmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "image scale factor")

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "pick a scene interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "")
			if err != nil {
				return err
			}
			return tui.RunMenu(cfg)
		},
	}

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list available scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SCENE\tDIM\tDESCRIPTION")
			for _, s := range scene.Default().Scenes() {
				dim := "2d"
				if s.Kind.Is3D() {
					dim = "3d"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, dim, s.Summary)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list available presets for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(out, "no presets for scene: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}

	shadeCmd := &cobra.Command{
		Use:   "shade",
		Short: "plot diffuse intensity across the cube top and the sphere rings",
		RunE:  runShade,
	}
	shadeCmd.Flags().IntVar(&shadeLen, "samples", 60, "samples across the cube top")

	configCmd := &cobra.Command{
		Use:   "config [scene] <path>",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runConfig,
	}
	addSceneFlags(configCmd)

	rootCmd.AddCommand(renderCmd, batchCmd, windowCmd, configCmd, menuCmd, scenesCmd, presetsCmd, shadeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&lambda, "lambda", gen.DefaultLambda, "square inset factor (0 < lambda < 1)")
	cmd.Flags().Float64Var(&treeLambda, "tree-lambda", scene.TreeLambda, "branch extension factor for trees")
	cmd.Flags().IntVar(&depth, "depth", 0, "recursion depth (0 keeps the scene default)")
	cmd.Flags().IntVar(&count, "count", 0, "squares, trees or sphere rings (0 keeps the scene default)")
	cmd.Flags().BoolVar(&legacyRho, "legacy-rho", false, "use the legacy eye distance √(Xe²+Ye²+Xe²)")
	cmd.Flags().StringVar(&treeFace, "tree-face", config.DefaultTreeFace, "cube face the 3D tree grows on (front or right)")
	cmd.Flags().IntVar(&panelW, "width", scene.PanelWidth, "panel width")
	cmd.Flags().IntVar(&panelH, "height", scene.PanelHeight, "panel height")
}

// loadConfig resolves preset, then config file, then explicitly set flags.
func loadConfig(cmd *cobra.Command, sceneArg string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if sceneArg != "" {
		cfg.Scene = sceneArg
	}

	if preset != "" {
		p := config.GetPreset(cfg.Scene, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Scene))
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if sceneArg != "" {
			cfg.Scene = sceneArg
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("lambda") {
		cfg.Squares.Lambda = lambda
	}
	if flags.Changed("tree-lambda") {
		cfg.Trees.Lambda = treeLambda
	}
	if flags.Changed("depth") {
		cfg.Squares.Depth, cfg.Trees.Depth, cfg.Cube.TreeDepth = depth, depth, depth
	}
	if flags.Changed("count") {
		cfg.Squares.Count, cfg.Trees.Count, cfg.Sphere.Levels = count, count, count
	}
	if flags.Changed("legacy-rho") {
		cfg.Camera.LegacyRho = legacyRho
	}
	if flags.Changed("tree-face") {
		cfg.Cube.TreeFace = treeFace
	}
	if _, err := cfg.TreeFace(); err != nil {
		return nil, err
	}
	if flags.Changed("width") {
		cfg.Display.Width = panelW
	}
	if flags.Changed("height") {
		cfg.Display.Height = panelH
	}
	if flags.Changed("scale") {
		cfg.Display.Scale = scale
	}
	if flags.Changed("delay-scale") {
		cfg.Display.DelayScale = delayScale
	}
	return cfg, nil
}

func sceneArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, sceneArg(args))
	if err != nil {
		return err
	}
	kind, err := cfg.Kind()
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(scene.Default().List(), ", "))
	}
	out := cmd.OutOrStdout()

	if kind == scene.RotatedSquares {
		if _, ok := gen.NormalizeLambda(cfg.Squares.Lambda); !ok {
			fmt.Fprintf(out, "invalid lambda %g, using the default value of lambda = %.1f\n", cfg.Squares.Lambda, gen.DefaultLambda)
		}
	}

	term := display.NewTerminal(out, cfg.Display.Width, cfg.Display.Height, color)
	start := time.Now()
	if err := scene.Render(kind, cfg.SceneParams(kind), term, term); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if !noText {
		if err := term.Show(raster.Black); err != nil {
			return err
		}
	}

	if outFile != "" {
		if err := save(outFile, term, cfg.Display.Scale); err != nil {
			return err
		}
		fmt.Fprintf(out, "saved: %s\n", outFile)
	}

	fmt.Fprintf(out, "scene: %s  seed: %d  pixels: %d  delays: %dms  time: %v\n",
		kind, cfg.Seed, term.Writes(), term.TotalDelay(), elapsed.Round(time.Microsecond))
	return nil
}

func save(path string, term *display.Terminal, scale int) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return export.SavePNG(path, term.Framebuffer, scale)
	case ".svg":
		if braille {
			return export.SaveBrailleSVG(path, term.Canvas(raster.Black), float64(scale))
		}
		return export.SaveSVG(path, term.Framebuffer, float64(scale), raster.Black)
	}
	return fmt.Errorf("unsupported output format: %s (use .png or .svg)", path)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, sceneArg(args))
	if err != nil {
		return err
	}
	kind, err := cfg.Kind()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	win := window.New("tinyraster: "+kind.String(), cfg.Display.Width, cfg.Display.Height, cfg.Display.Scale)
	clk := display.Scaled(win, cfg.Display.DelayScale)
	return win.Run(func(d display.Display) error {
		err := scene.RenderContext(ctx, kind, cfg.SceneParams(kind), d, clk)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "scene: %s  seed: %d  done\n", kind, cfg.Seed)
		if exitDone {
			win.Close()
		}
		return nil
	})
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, sceneArg(args))
	if err != nil {
		return err
	}
	kind, err := cfg.Kind()
	if err != nil {
		return err
	}
	if runs < 1 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	start := time.Now()
	b := scene.NewBatch(kind, cfg.SceneParams(kind), runs, cfg.Display.Width, cfg.Display.Height)
	panels, err := b.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, panel := range panels {
		path := filepath.Join(outDir, fmt.Sprintf("%s-%03d.png", kind, b.SeedStart+int64(i)))
		if err := export.SavePNG(path, panel.Framebuffer, cfg.Display.Scale); err != nil {
			return err
		}
		fmt.Fprintf(out, "saved: %s  pixels: %d\n", path, panel.Writes())
	}
	fmt.Fprintf(out, "rendered %d panels in %v\n", len(panels), time.Since(start).Round(time.Millisecond))
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := args[len(args)-1]
	cfg, err := loadConfig(cmd, sceneArg(args[:len(args)-1]))
	if err != nil {
		return err
	}
	if _, err := cfg.Kind(); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved: %s\n", path)
	return nil
}

func runShade(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}
	light := cfg.BuildLight()
	out := cmd.OutOrStdout()

	cube, err := scene.NewCube()
	if err != nil {
		return err
	}
	top := cube.TopFace()
	n := max(shadeLen, 2)
	diag := make([]float64, n)
	for i := range diag {
		p := geom.Lerp(top[0], top[2], float64(i)/float64(n-1))
		diag[i] = float64(light.Diffuse(p, 0.8, 0, 0).R())
	}
	fmt.Fprintln(out, asciigraph.Plot(diag,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("cube top, red channel along the diagonal"),
	))
	fmt.Fprintln(out)

	radii := scene.RingRadius(cfg.Sphere.Levels)
	rings := make([]float64, len(radii))
	for level, r := range radii {
		p := geom.P3(float64(r), 0, float64(4*level))
		rings[level] = float64(light.Diffuse(p, 0, 1, 0).G())
	}
	fmt.Fprintln(out, asciigraph.Plot(rings,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("sphere rings, green channel at angle 0"),
	))
	return nil
}
