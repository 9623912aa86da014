package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/museun/fsm/internal/gen"
)

var (
	typeName string
	dir      string
	output   string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "fsmgen",
	Short: "fsmgen generates state descriptor methods for integer enums",
	Long: `fsmgen inspects a Go package for an integer enum whose constants cover
0..N-1 and generates the Index, FromIndex and Count methods that make the
type usable with the cursor engine of github.com/museun/fsm. Two-state enums
additionally get the BinaryState marker that enables Flip.

It is meant to be driven by go generate:

	//go:generate fsmgen --type Phase`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(); err != nil {
			fmt.Printf("Generation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&typeName, "type", "", "enum type to generate a descriptor for (required)")
	rootCmd.Flags().StringVar(&dir, "dir", ".", "directory of the package containing the type")
	rootCmd.Flags().StringVar(&output, "output", "", "output file (default <type>_fsm.go in the package directory)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	_ = rootCmd.MarkFlagRequired("type")
}

func runGenerate() error {
	log := newLogger(verbose)

	enum, err := gen.Load(dir, typeName)
	if err != nil {
		return err
	}
	log.Debug("discovered enum", "package", enum.Package, "type", enum.Type, "states", len(enum.Consts))

	src, err := gen.Render(enum, "fsmgen "+strings.Join(os.Args[1:], " "))
	if err != nil {
		return err
	}

	out := output
	if out == "" {
		out = filepath.Join(dir, strings.ToLower(typeName)+"_fsm.go")
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	log.Info("wrote descriptor", "type", enum.Type, "states", len(enum.Consts), "file", out)
	return nil
}

// newLogger writes to stderr so generated output and go generate chatter stay
// separate on stdout.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
