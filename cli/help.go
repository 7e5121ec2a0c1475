package cli

import (
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/util-go/xmain"

	"github.com/amitay1/partdraw/lib/version"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--watch] [--view=isometric|multi] job.json [out.svg]

%[1]s renders job.json to out.svg. It defaults to job.svg if an output
path is not provided.

The job file is a JSON document:

  {
    "part": {"family": "tube", "outerDiameter": 114.3,
             "innerDiameter": 102.3, "length": 300, "name": "pipe-1"},
    "features": [{"id": "fbh-1", "kind": "fbh", "diameter": 5,
                  "depth": 25, "surface": "radial", "position": {"x": 50}}],
    "canvas": {"width": 800, "height": 600},
    "view": "isometric"
  }

Use - to have %[1]s read from stdin or write to stdout.

Flags:
%[3]s
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}
