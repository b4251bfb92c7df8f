package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-quizgen"
	"github.com/goliatone/go-quizgen/pkg/orchestrator"
	"github.com/goliatone/go-quizgen/pkg/quizfile"
	"github.com/goliatone/go-quizgen/pkg/render"
	"github.com/goliatone/go-quizgen/pkg/renderers/html5"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quizgen-cli",
		Short:         "Render quizzes to HTML5",
		Long:          "quizgen-cli renders YAML or JSON quiz files to standalone HTML5 documents, optionally with solutions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "Log pipeline details to stderr")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newRenderersCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <quiz.yaml|quiz.json>",
		Short: "Render a quiz file",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	cmd.Flags().String("template", "", "Outer document template (.tpl/.tmpl/.j2 use pongo2, anything else {{name}} interpolation)")
	cmd.Flags().StringP("local-template", "t", "", "Local template; takes precedence over --template")
	cmd.Flags().Bool("solutions", false, "Mark correct answers and show explanations (requires points_threshold in the quiz)")
	cmd.Flags().Int64("seed", 0, "Seed for answer shuffling; identical seeds give identical output")
	cmd.Flags().Bool("stable-uids", false, "Assign content-derived uids to questions without one")
	cmd.Flags().String("preset", "", "JSON preset applied to the quiz before rendering")
	cmd.Flags().StringP("output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().String("renderer", html5.Name, "Renderer to use")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	templatePath, _ := cmd.Flags().GetString("template")
	localTemplate, _ := cmd.Flags().GetString("local-template")
	solutions, _ := cmd.Flags().GetBool("solutions")
	stableUIDs, _ := cmd.Flags().GetBool("stable-uids")
	presetPath, _ := cmd.Flags().GetString("preset")
	output, _ := cmd.Flags().GetString("output")
	rendererName, _ := cmd.Flags().GetString("renderer")

	logger := newLogger(cmd)
	options := []orchestrator.Option{orchestrator.WithLogger(logger)}

	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		options = append(options, orchestrator.WithRandSource(rand.NewPCG(uint64(seed), uint64(seed))))
	}
	if stableUIDs {
		options = append(options, orchestrator.WithStableUIDs())
	}
	if presetPath != "" {
		data, err := os.ReadFile(presetPath)
		if err != nil {
			return fmt.Errorf("read preset: %w", err)
		}
		preset, err := orchestrator.NewJSONPresetTransformer(data)
		if err != nil {
			return err
		}
		options = append(options, orchestrator.WithTransformer(preset))
	}

	html, err := quizgen.GenerateHTMLFromFile(cmd.Context(), args[0], rendererName, render.RenderOptions{
		Template:      strings.TrimSpace(templatePath),
		LocalTemplate: strings.TrimSpace(localTemplate),
		Solutions:     solutions,
	}, options...)
	if err != nil {
		return fmt.Errorf("render %s: %w", args[0], err)
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(html)
		return err
	}
	if err := os.WriteFile(output, html, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Quiz written to %s\n", output)
	return nil
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <quiz.yaml|quiz.json>",
		Short: "Check a quiz file for structural problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			if checkSchema, _ := cmd.Flags().GetBool("schema"); checkSchema {
				if err := quizfile.CheckFile(args[0]); err != nil {
					return err
				}
				logger.Debug("schema check passed", "path", args[0])
			}

			quiz, err := quizfile.LoadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := quiz.Validate(); err != nil {
				logger.Debug("validation failed", "path", args[0], "error", err)
				return fmt.Errorf("%s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d questions, %s)\n", args[0], quiz.NumQuestions(), quiz.PointString())
			return nil
		},
	}
	cmd.Flags().Bool("schema", false, "Check the raw document against the quiz JSON Schema first")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the quiz document JSON Schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(quizfile.Schema())
			return err
		},
	}
}

func newRenderersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "renderers",
		Short: "List available renderers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := quizgen.DefaultRegistry()
			if err != nil {
				return err
			}
			for _, name := range registry.List() {
				renderer := registry.MustGet(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, renderer.ContentType())
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "quizgen-cli", version)
		},
	}
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
