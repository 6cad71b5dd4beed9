// Command jcr validates JSON and YAML files against a rule document.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/tdakkota/jcr"
	"github.com/tdakkota/jcr/valueiter/yamlvalue"
)

// CLI defines the command-line interface.
type CLI struct {
	Rule        string   `help:"Path to rule document (JSON or YAML)." short:"r" required:"" type:"existingfile"`
	Format      string   `help:"Input format." short:"f" enum:"auto,json,yaml" default:"auto"`
	Concurrency int      `help:"Maximum number of files validated in parallel." short:"j" default:"4"`
	Quiet       bool     `help:"Print only failures." short:"q"`
	Print       bool     `help:"Print compiled rule and exit." short:"p"`
	Path        string   `help:"Validate only the value at given gjson path." short:"s"`
	Files       []string `arg:"" optional:"" help:"Files to validate. If not specified, reads stdin." type:"existingfile"`
}

// Exit codes.
const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

type result struct {
	name  string
	valid bool
	err   error
}

func isYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func loadRule(path string) (jcr.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read rule")
	}
	parse := jcr.Parse
	if isYAML(path) {
		parse = jcr.ParseYAML
	}
	r, err := parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", path)
	}
	return r, nil
}

func toJSON(data []byte) ([]byte, error) {
	v, err := yamlvalue.Parse(data)
	if err != nil {
		return nil, err
	}
	var e jx.Encoder
	if err := v.EncodeJSON(&e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// selectPath returns raw JSON of the value at path.
func selectPath(data []byte, path string) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid json")
	}
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return nil, errors.Errorf("path %q not found", path)
	}
	return []byte(res.Raw), nil
}

func (c *CLI) validate(r jcr.Rule, name string, data []byte) result {
	yaml := c.Format == "yaml" || (c.Format == "auto" && isYAML(name))
	if c.Path != "" {
		if yaml {
			converted, err := toJSON(data)
			if err != nil {
				return result{name: name, err: err}
			}
			data, yaml = converted, false
		}
		selected, err := selectPath(data, c.Path)
		if err != nil {
			return result{name: name, err: err}
		}
		data = selected
	}

	check := jcr.ValidateJSON
	if yaml {
		check = jcr.ValidateYAML
	}
	valid, err := check(r, data)
	return result{name: name, valid: valid, err: err}
}

func (c *CLI) run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	r, err := loadRule(c.Rule)
	if err != nil {
		return exitError, err
	}
	if c.Print {
		fmt.Fprintln(stdout, r)
		return exitValid, nil
	}

	var results []result
	if len(c.Files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return exitError, errors.Wrap(err, "read stdin")
		}
		results = append(results, c.validate(r, "<stdin>", data))
	} else {
		results = make([]result, len(c.Files))

		g, ctx := errgroup.WithContext(ctx)
		if c.Concurrency > 0 {
			g.SetLimit(c.Concurrency)
		}
		for i, name := range c.Files {
			i, name := i, name
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				data, err := os.ReadFile(name)
				if err != nil {
					results[i] = result{name: name, err: err}
					return nil
				}
				results[i] = c.validate(r, name, data)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return exitError, err
		}
	}

	code := exitValid
	for _, res := range results {
		switch {
		case res.err != nil:
			fmt.Fprintf(stderr, "%s: error: %v\n", res.name, res.err)
			code = exitError
		case !res.valid:
			fmt.Fprintf(stdout, "%s: invalid\n", res.name)
			if code == exitValid {
				code = exitInvalid
			}
		case !c.Quiet:
			fmt.Fprintf(stdout, "%s: ok\n", res.name)
		}
	}
	return code, nil
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("jcr"),
		kong.Description("Validate JSON and YAML documents against JSON Content Rules"),
		kong.UsageOnError(),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	code, err := cli.run(ctx, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jcr: %v\n", err)
	}
	cancel()
	os.Exit(code)
}
