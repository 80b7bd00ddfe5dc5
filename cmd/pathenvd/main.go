// pathenvd serves the host's path environment over gRPC: components running
// in other processes can capture the host's current snapshot and exchange
// published snapshots by ID.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"hostwire.io/pathenv/hostinfo"
	"hostwire.io/pathenv/storage"
	"hostwire.io/pathenv/storage/grpcenv"
	"hostwire.io/pathenv/storage/registry"
	"hostwire.io/pathenv/storage/storeconfig"

	_ "hostwire.io/pathenv/storage/localfs"
	_ "hostwire.io/pathenv/storage/mem"
)

func main() {
	fs := flag.NewFlagSet("pathenvd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7677", "listen address")
	backend := fs.String("backend", "mem", "snapshot store backend name")
	storeConfig := fs.String("store-config", "", "JSON store config file (overrides --backend; supports multiple backends)")
	listBackends := fs.Bool("list-backends", false, "List supported backends and exit")

	registry.RegisterFlags(fs, registry.UsageDaemon)

	_ = fs.Parse(os.Args[1:])
	if *listBackends {
		for _, b := range registry.List(registry.UsageDaemon) {
			if b.Description == "" {
				fmt.Fprintf(os.Stdout, "%s\n", b.Name)
				continue
			}
			fmt.Fprintf(os.Stdout, "%s\t%s\n", b.Name, b.Description)
		}
		return
	}

	store, closeFn, err := openStore(*storeConfig, *backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if closeFn != nil {
		defer closeFn()
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpcenv.RegisterPathEnvServer(s, &grpcenv.Server{Store: store, Host: hostinfo.OS{}})

	storeName := *backend
	if *storeConfig != "" {
		storeName = "config:" + *storeConfig
	}
	fmt.Fprintf(os.Stderr, "pathenvd listening on %s (backend=%s)\n", lis.Addr().String(), storeName)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openStore(configPath, backend string) (storage.Store, func() error, error) {
	if configPath == "" {
		return registry.Open(backend, registry.UsageDaemon)
	}
	cfg, err := storeconfig.LoadFile(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg.Open(registry.UsageDaemon, "")
}
