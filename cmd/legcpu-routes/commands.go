package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vcrobe/legcpu-web/app"
	"github.com/vcrobe/legcpu-web/router"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "legcpu-routes",
		Short: "Inspect the LEG CPU web UI routes",
		Long: `legcpu-routes prints the client-side route table of the LEG CPU web UI
and resolves paths against it, without a browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		listCmd(),
		resolveCmd(),
		versionCmd(),
	)
	return rootCmd
}

func listCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the route manifest",
		Example: `  legcpu-routes list
  legcpu-routes list --format table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest := app.NewRouter().Manifest()
			switch strings.ToLower(format) {
			case "yaml", "yml":
				return manifest.WriteYAML(cmd.OutOrStdout())
			case "table":
				return writeTable(cmd.OutOrStdout(), manifest)
			default:
				return fmt.Errorf("unknown format %q (want yaml or table)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or table")
	return cmd
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Show which component a path renders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.NewRouter().Resolve(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:      %s\n", m.Path)
			fmt.Fprintf(out, "route:     %s\n", m.Route.Path)
			fmt.Fprintf(out, "component: %s\n", m.Component())
			fmt.Fprintf(out, "href:      %s\n", m.Href)
			writeParams(out, m.Params)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "legcpu-routes %s (%s)\n", version, commit)
		},
	}
}

// writeParams prints params sorted by name.
func writeParams(w io.Writer, params map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(params)) {
		fmt.Fprintf(w, "param:     %s=%s\n", k, params[k])
	}
}

func writeTable(w io.Writer, m router.Manifest) error {
	if _, err := fmt.Fprintf(w, "history: %s  base: %s\n", m.History, m.Base); err != nil {
		return err
	}
	width := len("PATH")
	for _, r := range m.Routes {
		width = max(width, len(r.Path))
	}
	if _, err := fmt.Fprintf(w, "%-*s  %-12s  %-8s  %s\n", width, "PATH", "COMPONENT", "TYPE ID", "HREF"); err != nil {
		return err
	}
	for _, r := range m.Routes {
		if _, err := fmt.Fprintf(w, "%-*s  %-12s  %-8d  %s\n", width, r.Path, r.Component, r.TypeID, r.Href); err != nil {
			return err
		}
	}
	return nil
}
