// Command muxed is the command-line front end for the session manager:
// argument decoding, flag parsing, and thin delegation into internal/...
// (spec.md §1 names this "out of scope" for the core — it's glue).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"muxed/internal/editor"
	"muxed/internal/enrich"
	"muxed/internal/errs"
	"muxed/internal/exec"
	"muxed/internal/gateway"
	"muxed/internal/loader"
	"muxed/internal/logging"
	"muxed/internal/plan"
	"muxed/internal/project"
	"muxed/internal/render"
	"muxed/internal/scaffold"
	"muxed/internal/snapshot"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var projectDir string
	var debug bool

	root := &cobra.Command{
		Use:   "muxed",
		Short: "Declarative tmux session manager",
	}
	root.PersistentFlags().StringVarP(&projectDir, "project-dir", "p", "", "project document directory (default $HOME/.muxed)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "trace every multiplexer call")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.SetDebug(debug)
	}

	root.AddCommand(
		newLoadCmd(&projectDir),
		newNewCmd(&projectDir),
		newSnapshotCmd(&projectDir),
		newListCmd(&projectDir),
		newEditCmd(&projectDir),
		newAutocompleteCmd(),
	)

	// Bare `muxed <project>` is the load verb's default alias.
	var detach bool
	root.Flags().BoolVarP(&detach, "detach", "d", false, "leave the session running detached")
	root.Args = cobra.ArbitraryArgs
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runLoad(args[0], detach, projectDir)
	}
	return root
}

func newLoadCmd(projectDir *string) *cobra.Command {
	var detach bool
	cmd := &cobra.Command{
		Use:   "load <project>",
		Short: "Build (or attach to) a project's tmux session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(args[0], detach, *projectDir)
		},
	}
	cmd.Flags().BoolVarP(&detach, "detach", "d", false, "leave the session running detached")
	return cmd
}

func runLoad(projectName string, detach bool, projectDirOverride string) error {
	dir, err := project.Dir(projectDirOverride)
	if err != nil {
		return err
	}

	session, err := loader.LoadFile(project.DocumentPath(dir, projectName))
	if err != nil {
		return err
	}

	gw := gateway.New()
	if !gw.IsAvailable() {
		return errs.ErrMultiplexerNotFound
	}
	cfg, err := gw.GetMultiplexerConfig()
	if err != nil {
		return err
	}

	enrich.Enrich(session, enrich.Options{
		ProjectName:  projectName,
		Daemonize:    detach,
		DaemonizeSet: detach,
		Config:       cfg,
	})

	commands, err := plan.Plan(session)
	if err != nil {
		return err
	}

	if logging.Debug() {
		for _, line := range render.DryRunLines(commands) {
			logging.L().Debug(line)
		}
	}

	return exec.Execute(commands, gw, exec.OSShell{})
}

func newNewCmd(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "new [project]",
		Short: "Scaffold a new project document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := project.Dir(*projectDir)
			if err != nil {
				return err
			}

			name := ""
			if len(args) == 1 {
				name = strings.TrimSpace(args[0])
			}
			if name == "" {
				name, err = scaffold.PromptProjectName()
				if err != nil {
					return err
				}
			}
			if name == "" {
				return fmt.Errorf("%w: no project name given", errs.ErrDocumentSyntax)
			}

			docPath := project.DocumentPath(dir, name)
			if err := scaffold.New(docPath, project.TemplatePath(dir), false); err != nil {
				return err
			}
			fmt.Println(docPath)
			return nil
		},
	}
}

func newSnapshotCmd(projectDir *string) *cobra.Command {
	var sourceSession string
	var force bool
	cmd := &cobra.Command{
		Use:   "snapshot <project>",
		Short: "Capture a live session back into a project document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectName := args[0]
			dir, err := project.Dir(*projectDir)
			if err != nil {
				return err
			}

			session := sourceSession
			if session == "" {
				session = projectName
			}

			gw := gateway.New()
			data, err := snapshot.Snapshot(gw, session)
			if err != nil {
				return err
			}

			docPath := project.DocumentPath(dir, projectName)
			if !force {
				if _, statErr := os.Stat(docPath); statErr == nil {
					return fmt.Errorf("%w: %s", errs.ErrFileExists, docPath)
				}
			}
			if err := os.WriteFile(docPath, data, 0o644); err != nil {
				return fmt.Errorf("%w: %v", errs.ErrIO, err)
			}
			fmt.Println(docPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&sourceSession, "session", "t", "", "source session name (default: project name)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing document")
	return cmd
}

func newListCmd(projectDir *string) *cobra.Command {
	var newlineOnly bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List known project documents",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := project.Dir(*projectDir)
			if err != nil {
				return err
			}
			names, err := project.List(dir)
			if err != nil {
				return err
			}
			if newlineOnly {
				for _, n := range names {
					fmt.Println(n)
				}
				return nil
			}
			fmt.Println(render.ProjectList(names))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&newlineOnly, "oneline", "1", false, "print one basename per line, no styling")
	return cmd
}

func newEditCmd(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <project>",
		Short: "Open a project document in $EDITOR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := project.Dir(*projectDir)
			if err != nil {
				return err
			}
			return editor.Open(project.DocumentPath(dir, args[0]))
		},
	}
}

func newAutocompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "autocomplete",
		Short: "Install shell completions for the current $SHELL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shellPath := os.Getenv("SHELL")
			shell := "bash"
			if shellPath != "" {
				shell = strings.ToLower(filepath.Base(shellPath))
			}
			root := cmd.Root()
			switch shell {
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			default:
				return fmt.Errorf("%w: unrecognized $SHELL %q", errs.ErrUnknownShell, shell)
			}
		},
	}
}
