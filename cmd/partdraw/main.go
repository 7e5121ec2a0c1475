package main

import (
	"oss.terrastruct.com/util-go/xmain"

	"github.com/amitay1/partdraw/cli"
)

func main() {
	xmain.Main(cli.Run)
}
