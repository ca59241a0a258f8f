// Package main is the entry point for the drummap2notes CLI
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/james-see/drummap2notes/pkg/api"
	"github.com/james-see/drummap2notes/pkg/converter"
	"github.com/james-see/drummap2notes/pkg/drummap"
	"github.com/james-see/drummap2notes/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	grouped    bool
	outputFile string
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drummap2notes",
	Short: "Convert Cubase drum maps to piano-roll note name files",
	Long: `drummap2notes converts Cubase drum map (.drm) files into plain-text
note name files for a DAW's piano-roll note naming feature.

A whole directory tree is converted in one shot; results mirror the input
tree into a sibling directory. The note order either replays the map's own
Order list or is inferred by grouping instruments by their bracketed
family tags (e.g. "Bass Drum [Kick]").

Examples:
  drummap2notes convert ./maps
  drummap2notes convert ./maps --grouped
  drummap2notes show kit.drm
  drummap2notes preview kit.drm -o kit.mid
  drummap2notes tui
  drummap2notes serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var convertCmd = &cobra.Command{
	Use:   "convert <dir>",
	Short: "Convert every .drm file under a directory",
	Long:  `Walks the directory tree, converts each .drm file and writes the results into a mirrored "<dir>_notenames" sibling tree.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var showCmd = &cobra.Command{
	Use:   "show <input.drm>",
	Short: "Print the note name text for one drum map to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var previewCmd = &cobra.Command{
	Use:   "preview <input.drm>",
	Short: "Render a drum map as an audition MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&grouped, "grouped", "g", false, "Infer note order from bracketed family tags instead of the map's Order list")

	// preview command
	previewCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	// Add commands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func getOutputPath(input, defaultExt string) string {
	if outputFile != "" {
		return outputFile
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + defaultExt
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputDir := args[0]
	conv := converter.New(grouped)

	fmt.Printf("Converting %s -> %s\n", inputDir, converter.OutputRoot(inputDir))
	return conv.ConvertTree(inputDir)
}

func runShow(cmd *cobra.Command, args []string) error {
	input := args[0]

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	result, err := converter.New(grouped).Convert(data)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(result)
	return err
}

func runPreview(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := getOutputPath(input, ".mid")

	m, err := drummap.ParseFile(input)
	if err != nil {
		return err
	}

	data, err := converter.NewPreviewWriter().Generate(m, grouped)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}

	fmt.Printf("Rendered %s -> %s\n", input, output)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
