package localfs

import (
	"flag"
	"fmt"

	"hostwire.io/pathenv/storage"
	"hostwire.io/pathenv/storage/registry"
)

var flagDir string

func init() {
	registry.MustRegister(registry.Backend{
		Name:        "localfs",
		Description: "Filesystem snapshot store (directory)",
		Usage:       registry.UsageCLI | registry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(&flagDir, "localfs-dir", "", "snapshot store directory (for --backend=localfs)")
		},
		Open: func() (storage.Store, func() error, error) {
			if flagDir == "" {
				return nil, nil, fmt.Errorf("missing --localfs-dir")
			}
			store, err := New(flagDir)
			return store, nil, err
		},
	})
}
