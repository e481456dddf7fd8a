// Tomljson reads TOML and converts to JSON.
//
// Usage:
//
//	cat file.toml | tomljson > file.json
//	tomljson file.toml > file.json
//	tomljson -o file.json file.toml
package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/parsekit/toml"
)

var outputPath string

var rootCmd = &cobra.Command{
	Use:   "tomljson [file]",
	Short: "Convert TOML to JSON",
	Long:  "Tomljson reads a TOML document from a file or stdin and prints it as JSON.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write JSON to this file instead of stdout")
}

func run(cmd *cobra.Command, args []string) error {
	input := cmd.InOrStdin()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	output := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	}

	return convert(input, output)
}

func convert(r io.Reader, w io.Writer) error {
	doc, err := toml.ParseReader(r)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
