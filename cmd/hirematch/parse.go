package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Abraxas-365/hirematch/pkg/fsx/fsxlocal"
	"github.com/spf13/cobra"
)

var (
	parseMode    string
	parseBackend string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a local resume and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if parseMode != "" {
			cfg.Parser.Mode = parseMode
		}
		if parseBackend != "" {
			cfg.Parser.PDFBackend = parseBackend
		}

		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		files, err := fsxlocal.NewLocalFileSystem(filepath.Dir(path))
		if err != nil {
			return err
		}
		parser, err := newParser(cfg.Parser, files)
		if err != nil {
			return err
		}

		result, err := parser.Parse(cmd.Context(), filepath.Base(path), filepath.Ext(path))
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&parseMode, "mode", "", "parser mode: standard or basic (overrides config)")
	parseCmd.Flags().StringVar(&parseBackend, "pdf-backend", "", "PDF backend: fitz or pure (overrides config)")
}
