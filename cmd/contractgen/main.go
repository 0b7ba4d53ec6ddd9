package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/jorge-barreto/contractgen/internal/config"
	"github.com/jorge-barreto/contractgen/internal/docs"
	"github.com/jorge-barreto/contractgen/internal/document"
	"github.com/jorge-barreto/contractgen/internal/generate"
	"github.com/jorge-barreto/contractgen/internal/layout"
	"github.com/jorge-barreto/contractgen/internal/logging"
	"github.com/jorge-barreto/contractgen/internal/manifest"
	"github.com/jorge-barreto/contractgen/internal/numbering"
	"github.com/jorge-barreto/contractgen/internal/placeholder"
	"github.com/jorge-barreto/contractgen/internal/scaffold"
	"github.com/jorge-barreto/contractgen/internal/ux"
	"github.com/jorge-barreto/contractgen/internal/watch"
	cli "github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:        "contractgen",
		Usage:       "Contract numbering and template filling",
		ArgsUsage:   "[contract-file]",
		Description: "Without a command, prints the contract number for ./ALL.contract. Run 'contractgen docs' for documentation.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "prefix",
				Usage:   "Contract prefix when the document sets none",
				Sources: cli.EnvVars(config.EnvPrefix),
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "Contract number format when the document sets none",
				Sources: cli.EnvVars(config.EnvFormat),
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load ContractPrefix/ContractFormat defaults from this dotenv file",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:  "party-marker",
				Usage: "Substring of MyName that marks the issuing party as a company",
				Value: numbering.DefaultPartyMarker,
			},
			&cli.BoolFlag{Name: "verbose", Usage: "Debug logging on stderr"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, config.LoadEnvFile(cmd.String("env-file"))
		},
		Action: previewAction,
		Commands: []*cli.Command{
			numberCmd(),
			resolveCmd(),
			generateCmd(),
			watchCmd(),
			statusCmd(),
			initCmd(),
			docsCmd(),
		},
	}
}

// contractPath is the positional contract document, or the default.
func contractPath(cmd *cli.Command) string {
	if p := cmd.Args().First(); p != "" {
		return p
	}
	return config.DefaultPath
}

// fallbacks reads --prefix/--format. The environment is consulted again
// because the env file is loaded after flags are parsed.
func fallbacks(cmd *cli.Command) numbering.Fallbacks {
	fb := numbering.Fallbacks{Prefix: cmd.String("prefix"), Format: cmd.String("format")}
	if fb.Prefix == "" {
		fb.Prefix = os.Getenv(config.EnvPrefix)
	}
	if fb.Format == "" {
		fb.Format = os.Getenv(config.EnvFormat)
	}
	return fb
}

func newLogger(cmd *cli.Command) (*zap.Logger, error) {
	return logging.New(cmd.Bool("verbose"))
}

func previewAction(ctx context.Context, cmd *cli.Command) error {
	data, err := config.Load(contractPath(cmd))
	if err != nil {
		return err
	}
	ux.ContractNumber(numbering.Preview(data, fallbacks(cmd)))
	return nil
}

func numberCmd() *cli.Command {
	return &cli.Command{
		Name:      "number",
		Aliases:   []string{"preview"},
		Usage:     "Print the contract number for a contract document",
		ArgsUsage: "[contract-file]",
		Action:    previewAction,
	}
}

func templateFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "template",
		Aliases:  []string{"t"},
		Usage:    "Template file (.txt, .md or .docx)",
		Required: true,
	}
}

func outFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "out",
		Usage: "Base directory for output (default: the template's folder)",
	}
}

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Show what every placeholder in a template resolves to",
		ArgsUsage: "[contract-file]",
		Flags:     []cli.Flag{templateFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			data, err := config.Load(contractPath(cmd))
			if err != nil {
				return err
			}
			number := numbering.Number(data, fallbacks(cmd))

			template := cmd.String("template")
			editor, err := document.ForPath(template, document.Options{})
			if err != nil {
				return err
			}
			sess, err := editor.Open(template)
			if err != nil {
				return err
			}
			defer sess.Close()

			res := placeholder.Resolve(sess.ScanText(), data, number)
			ux.ContractNumber(number)
			fmt.Fprintln(ux.Out)
			rows := make([]ux.TokenRow, 0, len(res))
			for _, tok := range res.Tokens() {
				rows = append(rows, ux.TokenRow{Token: tok, Strategy: placeholder.Classify(tok), Value: res[tok]})
			}
			ux.Tokens(rows)
			fmt.Fprintln(ux.Out)
			return nil
		},
	}
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "Fill a template and save the contract",
		ArgsUsage: "[contract-file]",
		Flags: []cli.Flag{
			templateFlag(),
			outFlag(),
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the plan without writing files"},
			&cli.BoolFlag{Name: "no-pdf", Usage: "Only save the editable format"},
			&cli.StringFlag{Name: "converter", Usage: "Office binary used for PDF output (default: soffice on PATH)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			req := generate.Request{
				ContractFile: contractPath(cmd),
				Template:     cmd.String("template"),
				OutDir:       cmd.String("out"),
				Fallbacks:    fallbacks(cmd),
				PartyMarker:  cmd.String("party-marker"),
				DryRun:       cmd.Bool("dry-run"),
			}

			g := &generate.Generator{Logger: log}
			if cmd.Bool("no-pdf") {
				req.Kinds = []document.Kind{document.Editable}
			} else {
				g.Options.Converter = converter(cmd, log)
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			_, err = g.Run(ctx, req)
			return err
		},
	}
}

func converter(cmd *cli.Command, log *zap.Logger) *document.Converter {
	if bin := cmd.String("converter"); bin != "" {
		return &document.Converter{Bin: bin, Timeout: document.DefaultConvertTimeout}
	}
	conv, err := document.FindConverter()
	if err != nil {
		log.Info("pdf output disabled", zap.Error(err))
		return nil
	}
	return conv
}

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Print the contract number again whenever the document changes",
		ArgsUsage: "[contract-file]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			path := contractPath(cmd)
			fb := fallbacks(cmd)
			show := func(data config.Data, err error) {
				if err != nil {
					ux.Warn(err.Error())
					return
				}
				ux.ContractNumber(numbering.Preview(data, fb))
			}
			show(config.Load(path))

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := &watch.Watcher{Path: path, Logger: log, OnChange: show}
			return w.Run(ctx)
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Show the last generation run for a contract and template",
		ArgsUsage: "[contract-file]",
		Flags:     []cli.Flag{templateFlag(), outFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			data, err := config.Load(contractPath(cmd))
			if err != nil {
				return err
			}
			out := layout.New(cmd.String("template"), cmd.String("out"),
				numbering.FolderName(numbering.Number(data, fallbacks(cmd))), data.Trimmed(config.KeyArea),
				numbering.PartyType(data, cmd.String("party-marker")))

			m, err := manifest.Load(out.ManifestPath())
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("no generation run recorded in %s", out.Dir())
				}
				return fmt.Errorf("loading manifest: %w", err)
			}
			ux.RenderStatus(m, out.ManifestPath())
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a sample ALL.contract and template",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Fprint(ux.Out, "\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Fprintf(ux.Out, "  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Fprintln(ux.Out, "\nRun 'contractgen docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprint(ux.Out, t.Content)
			return nil
		},
	}
}
