package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fasco-shop/storefront/internal/assets"
	"github.com/fasco-shop/storefront/internal/config"
	"github.com/fasco-shop/storefront/internal/page"
	"github.com/fasco-shop/storefront/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile = "~/.config/storefront/site.yaml"
	verbose    bool
	jsonOutput bool
	outFile    string
	watch      bool

	rootCmd = &cobra.Command{
		Use:   "storefront",
		Short: "Render and preview the FASCO storefront landing page.",
		Long:  `storefront renders the FASCO landing page (navigation, hero banner, logo marquee, deal countdown and image carousel) to a static HTML document, previews it live in the terminal, and checks that every image the page references is present.`,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for rendered output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of HTML or rich text")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", configFile, "Path to the site config (YAML)")

	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the page to FILE instead of stdout")
	renderCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render whenever the site config changes")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(configCmd)

	assetsCmd.AddCommand(assetsCheckCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		logrus.Fatal(err)
	}
}

// setLogLevel applies --verbose, and quiets info logs for machine-readable or
// full-screen output.
func setLogLevel(quiet bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else if quiet {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

func openSite() config.Site {
	store, err := config.Open(configFile)
	if err != nil {
		logrus.Fatal(err)
	}
	return store.Site
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the landing page to HTML",
	Long:  "Render the landing page as it looks when first mounted: the countdown at its start value and the last carousel image on display. With --json the view tree is printed instead of HTML.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel(jsonOutput)
		site := openSite()

		if err := renderTo(site, outFile); err != nil {
			logrus.Fatal(err)
		}
		if !watch {
			return
		}

		store, err := config.Open(configFile)
		if err != nil {
			logrus.Fatal(err)
		}
		logrus.WithField("config", store.Path).Info("Watching site config for changes (Ctrl+C to stop)")
		err = config.Watch(cmd.Context(), store.Path, config.DefaultDebounce, func(site config.Site, err error) {
			if err != nil {
				logrus.WithError(err).Warn("Site config rejected; keeping previous render")
				return
			}
			if err := renderTo(site, outFile); err != nil {
				logrus.WithError(err).Error("Re-render failed")
			}
		})
		if err != nil {
			logrus.Fatal(err)
		}
	},
}

// renderTo renders site to path, or to stdout when path is empty.
func renderTo(site config.Site, path string) error {
	p, err := page.New(site)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if jsonOutput {
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p.Render()); err != nil {
			return fmt.Errorf("encode view tree: %w", err)
		}
	} else if err := p.Document().Render(&buf); err != nil {
		return err
	}

	if path == "" {
		_, err := io.Copy(os.Stdout, &buf)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd // standard directory permissions
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec,mnd // rendered page is public
		return err
	}
	logrus.WithFields(logrus.Fields{"out": path, "page_id": p.ID(), "bytes": buf.Len()}).Info("Rendered page")
	return nil
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the page live in the terminal",
	Long:  "Open an interactive terminal preview. The deal countdown ticks every second and the arrow keys move the image carousel.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if jsonOutput {
			logrus.Fatal("Cannot use --json with preview")
		}
		setLogLevel(true)

		p, err := page.New(openSite())
		if err != nil {
			logrus.Fatal(err)
		}
		if err := tui.Run(cmd.Context(), p); err != nil {
			logrus.Fatalf("Preview failed: %v", err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Inspect the static assets the page references",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var assetsCheckCmd = &cobra.Command{
	Use:   "check [DIR]",
	Short: "Report referenced images missing from the asset directory",
	Long:  "Walk DIR (default: assets_dir from the site config) and report every image the page references that is not there. Exits non-zero when anything is missing.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel(jsonOutput)
		site := openSite()

		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}
		report, err := assets.Check(cmd.Context(), site, dir)
		if err != nil && !errors.Is(err, assets.ErrMissingAssets) {
			logrus.Fatal(err)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if encErr := enc.Encode(report); encErr != nil {
				logrus.Fatal(encErr)
			}
		} else {
			printReport(os.Stdout, report)
		}

		if err != nil {
			logrus.Fatal(err)
		}
	},
}

func printReport(w io.Writer, r assets.Report) {
	fmt.Fprintf(w, "Assets under %s\n", r.Root)
	for _, f := range r.Found {
		fmt.Fprintf(w, "  ✓ %s\n", f)
	}
	for _, f := range r.Remote {
		fmt.Fprintf(w, "  ↷ %s (remote)\n", f)
	}
	for _, f := range r.Missing {
		fmt.Fprintf(w, "  ✗ %s (missing)\n", f)
	}
	for _, f := range r.Unused {
		fmt.Fprintf(w, "  · %s (unused)\n", f)
	}
	fmt.Fprintf(w, "%d found, %d missing, %d remote, %d unused\n", len(r.Found), len(r.Missing), len(r.Remote), len(r.Unused))
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the site config",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default site config if none exists",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.ExpandTilde(configFile)
		if err != nil {
			logrus.Fatal(err)
		}
		_, statErr := os.Stat(path)
		existed := statErr == nil

		s, err := config.NewOrExisting(path)
		if err != nil {
			logrus.Fatal(err)
		}
		if existed {
			fmt.Fprintf(os.Stdout, "Site config already exists at %s\n", s.Path)
			return
		}
		fmt.Fprintf(os.Stdout, "Site config written to %s\n", s.Path)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective site config as YAML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.Encode(os.Stdout, openSite()); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the site config without rendering",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := config.Open(configFile)
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Site config %s is valid\n", store.Path)
	},
}

func main() {
	Execute()
}
