// Package cli implements the partdraw command: it reads a JSON job
// describing a part, its features and the requested view, and writes
// the rendered SVG. Watch mode re-renders whenever the job file
// changes.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/go2"
	"oss.terrastruct.com/util-go/xmain"

	"github.com/amitay1/partdraw"
	"github.com/amitay1/partdraw/lib/log"
	"github.com/amitay1/partdraw/lib/version"
	"github.com/amitay1/partdraw/solidspec"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	ctx = log.WithDefault(ctx)

	watchFlag, err := ms.Opts.Bool("PARTDRAW_WATCH", "watch", "w", false, "re-render the output whenever the job file changes")
	if err != nil {
		return err
	}
	viewFlag := ms.Opts.String("PARTDRAW_VIEW", "view", "v", "", "override the job's view mode (isometric or multi)")
	gridFlag, err := ms.Opts.Bool("PARTDRAW_GRID", "grid", "g", false, "draw the construction grid on multiview sheets")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}
	solidPlanFlag := ms.Opts.String("", "solid-plan", "", "", "also write the CAD build plan JSON to the given path")
	versionFlag, err := ms.Opts.Bool("", "version", "", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
	}

	args := ms.Opts.Flags.Args()
	if len(args) == 0 {
		if *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	}
	if len(args) > 2 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	inputPath := args[0]
	var outputPath string
	if len(args) == 2 {
		outputPath = args[1]
	} else if inputPath == "-" {
		outputPath = "-"
	} else {
		outputPath = renameExt(inputPath, ".svg")
	}

	job := jobConfig{
		view:      partdraw.ViewMode(*viewFlag),
		grid:      *gridFlag,
		solidPlan: *solidPlanFlag,
	}
	if job.view != "" && job.view != partdraw.ViewIsometric && job.view != partdraw.ViewMulti {
		return xmain.UsageErrorf("unknown view mode %q, expected isometric or multi", *viewFlag)
	}

	if *watchFlag {
		if inputPath == "-" || outputPath == "-" {
			return xmain.UsageErrorf("--watch cannot be used with stdin/stdout")
		}
		return watch(ctx, ms, inputPath, outputPath, job)
	}
	return renderJob(ctx, ms, inputPath, outputPath, job)
}

// jobConfig carries the flag overrides applied on top of the job file.
type jobConfig struct {
	view      partdraw.ViewMode
	grid      bool
	solidPlan string
}

// renderJob runs one job file through the pipeline and writes the SVG,
// plus the CAD build plan when requested.
func renderJob(ctx context.Context, ms *xmain.State, inputPath, outputPath string, job jobConfig) error {
	raw, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}

	var in partdraw.Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("invalid job file %s: %w", ms.HumanPath(inputPath), err)
	}
	if job.view != "" {
		in.View = job.view
	}
	if job.grid {
		in.ShowGrid = true
	}
	if in.Title == "" && in.Part != nil {
		in.Title = in.Part.Name
	}

	out, err := partdraw.Render(ctx, &in)
	if err != nil {
		return err
	}
	if err := ms.WritePath(outputPath, out.SVG()); err != nil {
		return err
	}
	ms.Log.Success.Printf("successfully rendered %s to %s", ms.HumanPath(inputPath), ms.HumanPath(outputPath))

	if job.solidPlan != "" {
		id := in.Part.Name
		if id == "" {
			id = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		}
		sp, err := solidspec.FromPart(id, in.Part, in.Features)
		if err != nil {
			return err
		}
		plan, err := sp.JSON()
		if err != nil {
			return err
		}
		if err := ms.WritePath(job.solidPlan, plan); err != nil {
			return err
		}
		ms.Log.Success.Printf("wrote build plan to %s", ms.HumanPath(job.solidPlan))
	}
	return nil
}

func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}
