package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"promptrouter/internal/services"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [set]",
	Short: "List the keyword sets used for classification",
	Long: `Displays the keyword tables the classifier matches against, including any
extra terms added via configuration. An optional set name (audio, image,
code, reasoning, quick-edit) limits the output to that set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		sets := appInstance.RouterService.KeywordSets()

		if len(args) == 1 {
			want := strings.ToLower(args[0])
			for _, set := range sets {
				if set.Name == want {
					for _, term := range set.Terms {
						fmt.Println(term)
					}
					return nil
				}
			}
			return fmt.Errorf("unknown keyword set %q", args[0])
		}

		renderKeywordTable(os.Stdout, sets)
		return nil
	},
}

func renderKeywordTable(w io.Writer, sets []services.KeywordSet) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Set", "Count", "Terms"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColWidth(80)

	for _, set := range sets {
		table.Append([]string{
			set.Name,
			strconv.Itoa(len(set.Terms)),
			strings.Join(set.Terms, ", "),
		})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}
