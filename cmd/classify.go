package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"promptrouter/internal/models"
	"promptrouter/internal/services"
)

var (
	classifyJSON  bool
	classifyCopy  bool
	classifyQuiet bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify [prompt...]",
	Short: "Classify a prompt and recommend a model",
	Long: `Classifies a prompt against the keyword sets and prints the recommended
model with a reason and alternative suggestions. The prompt is taken from
the arguments, or from stdin when piped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := readPrompt(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		rec, err := appInstance.RouterService.Classify(prompt)
		if err != nil {
			if errors.Is(err, models.ErrEmptyPrompt) {
				return fmt.Errorf("nothing to classify: provide a prompt as arguments or via stdin")
			}
			return fmt.Errorf("classification failed: %w", err)
		}

		out := cmd.OutOrStdout()

		switch {
		case classifyJSON:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
		case classifyQuiet:
			fmt.Fprintln(out, rec.Model)
		default:
			label := color.New(color.FgGreen, color.Bold).SprintFunc()
			heading := color.New(color.Bold).SprintFunc()
			fmt.Fprintf(out, "%s %s\n\n", heading("Recommended model:"), label(rec.Model))
			fmt.Fprintf(out, "%s\n%s\n\n", heading("Reason:"), rec.Reason)
			fmt.Fprintf(out, "%s\n%s\n", heading("Alternatives:"), rec.Alternatives)
		}

		if classifyCopy {
			if err := clipboard.WriteAll(services.Render(rec)); err != nil {
				return fmt.Errorf("failed to copy result to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Result copied to clipboard.")
		}
		return nil
	},
}

// readPrompt joins the args, or drains stdin when no args were given.
func readPrompt(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt from stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print the recommendation as JSON")
	classifyCmd.Flags().BoolVar(&classifyCopy, "copy", false, "Copy the rendered result to the clipboard")
	classifyCmd.Flags().BoolVarP(&classifyQuiet, "quiet", "q", false, "Print only the model label")
}
