package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Find    bool
	Resolve bool
	Grid    bool
	Bridge  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Find = boolEnv("POPULATOR_DEBUG_FIND")
	d.Resolve = boolEnv("POPULATOR_DEBUG_RESOLVE")
	d.Grid = boolEnv("POPULATOR_DEBUG_GRID")
	d.Bridge = boolEnv("POPULATOR_DEBUG_BRIDGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Find() bool {
	return d.Find
}
func Resolve() bool {
	return d.Resolve
}
func Grid() bool {
	return d.Grid
}
func Bridge() bool {
	return d.Bridge
}
