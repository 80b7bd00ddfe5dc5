package mem

import (
	"flag"

	"hostwire.io/pathenv/storage"
	"hostwire.io/pathenv/storage/registry"
)

func init() {
	registry.MustRegister(registry.Backend{
		Name:          "mem",
		Description:   "In-memory snapshot store (per-process)",
		Usage:         registry.UsageCLI | registry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {},
		Open: func() (storage.Store, func() error, error) {
			return New(), nil, nil
		},
	})
}
