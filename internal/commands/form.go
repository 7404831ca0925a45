package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/simonhull/casual/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// formField describes one question in a form definition file.
type formField struct {
	Name    string `yaml:"name"`
	Prompt  string `yaml:"prompt"`
	Type    string `yaml:"type"`
	Default string `yaml:"default"`
}

// formSpec is the root of a form definition file.
type formSpec struct {
	Fields []formField `yaml:"fields"`
}

// FormCmd creates and returns the 'form' command
func FormCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form [file]",
		Short: "Ask a sequence of questions from a YAML definition",
		Long: `Reads a form definition and prompts for each field in order,
printing name=value lines to stdout.

A definition looks like:

  fields:
    - name: username
      prompt: Username
    - name: port
      prompt: Port
      type: int
      default: "8080"

Example:
  ask form setup.yml > answers.env`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			form, err := parseForm(data)
			if err != nil {
				return fmt.Errorf("invalid form %s: %w", args[0], err)
			}

			output.Verbose(fmt.Sprintf("running form with %d field(s)", len(form.Fields)))

			if err := runForm(form, os.Stdin, os.Stderr, cmd.OutOrStdout()); err != nil {
				return err
			}

			output.Success(fmt.Sprintf("collected %d answer(s)", len(form.Fields)))
			return nil
		},
	}

	return cmd
}

// parseForm decodes and validates a form definition.
func parseForm(data []byte) (*formSpec, error) {
	var form formSpec
	if err := yaml.Unmarshal(data, &form); err != nil {
		return nil, err
	}

	if len(form.Fields) == 0 {
		return nil, fmt.Errorf("no fields defined")
	}

	seen := make(map[string]bool, len(form.Fields))
	for i, f := range form.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d: name is required", i+1)
		}
		if f.Prompt == "" {
			return nil, fmt.Errorf("field %q: prompt is required", f.Name)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("field %q: duplicate name", f.Name)
		}
		seen[f.Name] = true
	}

	return &form, nil
}

// runForm prompts for every field in order, writing answers to results
// as name=value lines. The input is wrapped in a single buffered
// reader so answers piped in ahead of time survive across fields.
func runForm(form *formSpec, in io.Reader, prompts io.Writer, results io.Writer) error {
	reader := bufio.NewReader(in)
	for _, f := range form.Fields {
		value, err := askValue(reader, prompts, f.Type, f.Prompt, f.Default)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}

		if _, err := fmt.Fprintf(results, "%s=%s\n", f.Name, value); err != nil {
			return err
		}
	}
	return nil
}
