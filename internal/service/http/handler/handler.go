package handler

import (
	"github.com/reusedev/mockup-hub/internal/modules/batch"
	"github.com/reusedev/mockup-hub/internal/modules/export"
	"github.com/reusedev/mockup-hub/internal/modules/preset"
	"github.com/reusedev/mockup-hub/internal/modules/store"
)

var (
	GStore    *store.Store
	GRunner   *batch.Runner
	GPresets  *preset.Manager
	GPackager *export.Packager
)

func Init(st *store.Store, runner *batch.Runner, presets *preset.Manager, packager *export.Packager) {
	GStore = st
	GRunner = runner
	GPresets = presets
	GPackager = packager
}
