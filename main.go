package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mcncl/jsonlit/internal/config"
	"github.com/mcncl/jsonlit/internal/errors"
	"github.com/mcncl/jsonlit/internal/formatter"
	"github.com/mcncl/jsonlit/internal/generator"
	"github.com/mcncl/jsonlit/internal/lexer"
	"github.com/mcncl/jsonlit/internal/models"
	"github.com/mcncl/jsonlit/internal/translator"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to a file holding the JSON literal. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output Go file. If not specified, writes to stdout." short:"o" type:"path"`
	Package     string `help:"Package name for generated code." short:"p" default:"main"`
	Var         string `help:"Name for the generated variable." short:"r" default:"Doc"`
	Expr        bool   `help:"Emit only the constructor expression, without file scaffolding." short:"e"`
	Format      bool   `help:"Format the output code according to Go standards." short:"f" default:"true"`
	Config      string `help:"Path to a config file. Defaults to the nearest .jsonlit.yml." short:"c" type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct literal input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsonlit"),
		kong.Description("A tool to expand JSON literals into Go constructor expressions"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonlit version %s\n", Version)
		return
	}

	cfg, err := resolveConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = run(&Context{Debug: CLI.Debug || cfg.Dev.Debug, Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonlit --help\n")

		os.Exit(1)
	}

	// If we have a command with a Run function, call it
	if ctx.Command() != "" {
		err = ctx.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
			os.Exit(1)
		}
	}
}

// resolveConfig loads the config file (explicit flag or nearest found) and
// applies CLI overrides
func resolveConfig() (*config.Config, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfigWithCLI(configPath, CLI.Package, CLI.Var, CLI.Expr)
	if err != nil {
		return nil, errors.NewInputError("failed to load config", err)
	}
	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	cfg := ctx.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	// 1. Tokenize the literal
	trees, err := tokenizeInput()
	if err != nil {
		// Error is already wrapped by tokenizeInput
		return err
	}

	// 2. Translate the token tree into a constructor expression
	expr, err := translator.Translate(trees)
	if err != nil {
		return err
	}

	// 3. Generate Go source
	generatorInst := generator.NewGenerator()
	var code string
	if cfg.Output.ExprOnly {
		code, err = generatorInst.GenerateExpr(expr)
		if err != nil {
			return errors.NewGenerateError("failed to render expression", err)
		}
	} else {
		code, err = generatorInst.GenerateFile(expr, cfg.Package, cfg.GetVarName(CLI.Var), cfg.Output.FileHeader)
		if err != nil {
			return errors.NewGenerateError("failed to generate Go source", err)
		}

		// 4. Format the code if requested
		if CLI.Format && cfg.Formatting.Enabled {
			formatterInst := formatter.NewFormatter()
			code, err = formatterInst.Format(code)
			if err != nil {
				return errors.NewFormatError("failed to format Go code", err)
			}
		}
	}

	// 5. Output the result
	return writeOutput(code)
}

// tokenizeInput reads the literal from file or stdin
func tokenizeInput() ([]models.TokenTree, error) {
	if CLI.Input != "" {
		return lexer.TokenizeFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		if CLI.Interactive {
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	literal, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}

	if len(literal) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyLiteral)
	}

	return lexer.TokenizeString(string(literal))
}

// writeOutput writes code to file or stdout
func writeOutput(code string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(code), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Generated Go code written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(strings.TrimSpace(code))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste a
// literal and signal completion with Ctrl+D (EOF)
func readInteractiveInput() ([]models.TokenTree, error) {
	fmt.Fprintln(os.Stderr, "jsonlit Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON literal below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var builder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
		builder.WriteString(line)
	}

	literal := builder.String()
	if len(literal) == 0 {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyLiteral)
	}

	fmt.Fprintln(os.Stderr, "\nExpanding literal...")
	return lexer.TokenizeString(literal)
}
