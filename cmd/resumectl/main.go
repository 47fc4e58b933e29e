// resumectl works with resume JSON documents from the command line:
// printing suggestions, exporting plain text, and driving the headless
// PDF pipeline without the API server.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/resume/export"
	"resume-builder/resume/model"
	"resume-builder/resume/suggest"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Work with resume documents from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(demoCmd(), suggestCmd(), exportCmd())
	return root
}

func demoCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write the built-in sample resume as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(model.Demo(), "", "  ")
			if err != nil {
				return err
			}
			return writeOutput(out, append(data, '\n'))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <resume.json>",
		Short: "Print improvement suggestions for a resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadResume(args[0])
			if err != nil {
				return err
			}
			suggestions := suggest.Analyze(doc)
			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No suggestions. Looking good.")
				return nil
			}
			for _, s := range suggestions {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", s)
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a resume to a downloadable format",
	}
	cmd.AddCommand(exportTextCmd(), exportPDFCmd())
	return cmd
}

func exportTextCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "text <resume.json>",
		Short: "Export a resume as plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadResume(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = export.TextFilename(doc)
			}
			if err := writeOutput(out, []byte(export.ToText(doc))); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default derived from the name)")
	return cmd
}

func exportPDFCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "pdf <resume.json>",
		Short: "Export a resume as an A4 PDF (requires Chrome or Chromium)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadResume(args[0])
			if err != nil {
				return err
			}

			preview, err := export.RenderPreview(doc)
			if err != nil {
				return err
			}

			exporter := &export.PDFExporter{
				Capturer:  &export.ChromeCapturer{},
				Assembler: &export.ChromeAssembler{},
			}
			pdf, filename, err := exporter.ExportPDF(cmd.Context(), doc, preview)
			if err != nil {
				return err
			}
			if out == "" {
				out = filename
			}
			if err := writeOutput(out, pdf); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default derived from the name)")
	return cmd
}

func loadResume(path string) (model.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Resume{}, err
	}
	var doc model.Resume
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Resume{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc.Normalize(), nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
