package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <type>",
		Short: "Generate code",
		Long: `Generate code for the component kit.

Types:
  icons    Regenerate the bundled icon name set from an asset directory

Examples:
  loom gen icons --assets ./assets/heroicons
  loom gen icons --assets ./assets/heroicons -o pkg/icons/names.go`,
	}

	cmd.AddCommand(genIconsCmd())

	return cmd
}

func genIconsCmd() *cobra.Command {
	var (
		assets string
		output string
	)

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Regenerate the icon name set from SVG assets",
		Long: `Scan an asset directory for SVG files and regenerate the icon
name table. Variant subdirectories (outline, solid, mini) are merged;
the base name set is the union of all variants.

The output is deterministic: running it twice over the same assets
produces identical files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := collectIconNames(assets)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return fmt.Errorf("no SVG files found under %s", assets)
			}

			src := renderIconNames(names)
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(output, []byte(src), 0o644); err != nil {
				return err
			}

			success("wrote %s (%d icons)", output, len(names))
			return nil
		},
	}

	cmd.Flags().StringVar(&assets, "assets", "assets/heroicons", "Directory of SVG assets")
	cmd.Flags().StringVarP(&output, "output", "o", "pkg/icons/names.go", "Output file")

	return cmd
}

// collectIconNames walks the asset directory and returns the sorted union
// of SVG base names across all variant subdirectories.
func collectIconNames(dir string) ([]string, error) {
	set := make(map[string]struct{})

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".svg") {
			return nil
		}
		name := strings.TrimSuffix(d.Name(), ".svg")
		if name != "" {
			set[name] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// renderIconNames produces the names.go source, gofmt-aligned.
func renderIconNames(names []string) string {
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	var b strings.Builder
	b.WriteString(`// Code generated by "loom gen icons"; DO NOT EDIT.

package icons

// names is the set of bundled icon base names, derived from the asset
// directory at generation time. Each name is available in outline, solid,
// and mini variants.
var names = map[string]struct{}{
`)
	for _, name := range names {
		entry := fmt.Sprintf("%q:", name)
		b.WriteString(fmt.Sprintf("\t%-*s {},\n", width+3, entry))
	}
	b.WriteString("}\n")
	return b.String()
}
