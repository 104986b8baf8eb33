package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ksin-odoo/Tools/core/aliasmap"
	"github.com/ksin-odoo/Tools/core/cli"
	"github.com/ksin-odoo/Tools/core/config"
	"github.com/ksin-odoo/Tools/core/indexer"
	"github.com/ksin-odoo/Tools/core/jsconfig"
	"github.com/ksin-odoo/Tools/pkg/pathfilter"
	"github.com/ksin-odoo/Tools/pkg/pathlist"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version)
	root.AddCommand(cli.NewJsconfigCmd(runJsconfig))
	root.AddCommand(cli.NewIndexCmd(runIndex))

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runJsconfig(ctx context.Context, opts cli.JsconfigOptions) error {
	cfg, err := config.Load(opts.BaseDir)
	if err != nil {
		return err
	}

	output := opts.Output
	if output == "" {
		output = filepath.Join(opts.BaseDir, cfg.Jsconfig.Output)
	}

	// Configured extra roots first, then command-line roots, matching
	// the scan-order precedence the document promises.
	extra := make([]string, 0, len(cfg.Jsconfig.ExtraRoots)+len(opts.ExtraRoots))
	for _, r := range cfg.Jsconfig.ExtraRoots {
		extra = append(extra, resolveRoot(opts.BaseDir, r))
	}
	for _, r := range opts.ExtraRoots {
		extra = append(extra, resolveRoot(opts.BaseDir, r))
	}

	roots := aliasmap.WithFixedRoots(opts.BaseDir, extra)
	aliases := aliasmap.Build(opts.BaseDir, roots)

	relExtra := make([]string, 0, len(extra))
	for _, r := range extra {
		if rel, err := filepath.Rel(opts.BaseDir, r); err == nil {
			relExtra = append(relExtra, rel)
		} else {
			relExtra = append(relExtra, r)
		}
	}

	doc := jsconfig.New(aliases, relExtra)
	if err := doc.WriteFile(output); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%s generated with %d aliases (community + enterprise + %d extra roots)\n",
		output, len(aliases), len(extra))

	return nil
}

func runIndex(ctx context.Context, opts cli.IndexOptions) error {
	cfg, err := config.Load(opts.Root)
	if err != nil {
		return err
	}

	output := opts.Output
	if output == "" {
		output = cfg.Index.Output
	}

	excludes := make([]string, 0, len(cfg.Index.Excludes)+len(opts.Excludes))
	excludes = append(excludes, cfg.Index.Excludes...)
	excludes = append(excludes, opts.Excludes...)

	filter, err := pathfilter.Load(opts.Root, excludes)
	if err != nil {
		return err
	}

	ix, err := indexer.New(opts.Root, filter)
	if err != nil {
		return err
	}

	var listed []string
	if opts.InputList != "" {
		listed, err = pathlist.Read(opts.InputList)
		if err != nil {
			return err
		}
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)

	switch {
	case opts.SimpleList:
		err = ix.WriteSimpleList(ctx, w, listed)
	case listed != nil:
		fmt.Fprintf(os.Stderr, "Indexing codebase in %s using input list...\n", ix.Root())
		err = ix.WriteIndexList(ctx, w, listed)
	default:
		fmt.Fprintf(os.Stderr, "Indexing codebase in %s...\n", ix.Root())
		err = ix.WriteIndex(ctx, w)
	}
	if err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	if opts.SimpleList {
		fmt.Fprintf(os.Stderr, "Simple list created successfully at %s\n", output)
	} else {
		fmt.Fprintf(os.Stderr, "Index created successfully at %s\n", output)
	}

	return nil
}

// resolveRoot interprets a configured or command-line extra root
// relative to the checkout base directory unless it is absolute.
func resolveRoot(baseDir, root string) string {
	if filepath.IsAbs(root) {
		return root
	}
	return filepath.Join(baseDir, root)
}
