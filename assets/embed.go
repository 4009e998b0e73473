package assets

import (
	_ "embed"
)

//go:embed robots.txt
var RobotsTxt string
