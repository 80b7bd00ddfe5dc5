// pathenv is the snapshot toolbox: capture the host's path environment,
// inspect encoded snapshots, seal them, and exchange them with a pathenvd
// daemon.
package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ipfs/go-cid"

	"hostwire.io/pathenv/hostinfo"
	"hostwire.io/pathenv/model"
	"hostwire.io/pathenv/pathenv"
	"hostwire.io/pathenv/seal"
	"hostwire.io/pathenv/snapid"
	"hostwire.io/pathenv/storage/bundle"
	"hostwire.io/pathenv/storage/grpcenv"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "capture":
		return cmdCapture(args[1:], out, errOut)
	case "inspect":
		return cmdInspect(args[1:], out, errOut)
	case "id":
		return cmdID(args[1:], out, errOut)
	case "seal":
		return cmdSeal(args[1:], out, errOut)
	case "verify":
		return cmdVerify(args[1:], out, errOut)
	case "publish":
		return cmdPublish(args[1:], out, errOut)
	case "fetch":
		return cmdFetch(args[1:], out, errOut)
	case "current":
		return cmdCurrent(args[1:], out, errOut)
	case "export":
		return cmdExport(args[1:], out, errOut)
	case "import":
		return cmdImport(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "pathenv: path-environment snapshot tool")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  pathenv capture [--out <file>] [--json] [--mode <name>]")
	fmt.Fprintln(w, "  pathenv inspect [--json] <file>")
	fmt.Fprintln(w, "  pathenv id <file>")
	fmt.Fprintln(w, "  pathenv seal --seed-hex <64hex> [--hash sha256|sha512|sha3-256] [--out <file>] <file>")
	fmt.Fprintln(w, "  pathenv verify [--json] <file>")
	fmt.Fprintln(w, "  pathenv publish --target <addr> <file>")
	fmt.Fprintln(w, "  pathenv fetch --target <addr> [--out <file>] <id>")
	fmt.Fprintln(w, "  pathenv current --target <addr> [--json]")
	fmt.Fprintln(w, "  pathenv export --target <addr> --out <file> <id>...")
	fmt.Fprintln(w, "  pathenv import --target <addr> <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - capture writes the raw binary encoding; use --json for a readable projection")
	fmt.Fprintln(w, "  - --mode overrides the platform comparison policy (e.g. ordinal-ignore-case)")
	fmt.Fprintln(w, "  - --seed-hex must be 32 bytes (64 hex chars) ed25519 seed")
	fmt.Fprintln(w, "  - publish/fetch/current talk to a pathenvd daemon")
	fmt.Fprintln(w, "  - export/import move sets of published snapshots as one TAR bundle")
}

func cmdCapture(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("capture", flag.ContinueOnError)
	fs.SetOutput(errOut)
	outPath := fs.String("out", "", "write encoded snapshot to file instead of stdout")
	asJSON := fs.Bool("json", false, "print a JSON projection instead of raw bytes")
	modeName := fs.String("mode", "", "override the comparison mode by name")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	snap, err := hostinfo.Capture()
	if err != nil {
		fmt.Fprintf(errOut, "capture: %v\n", err)
		return 1
	}
	if *modeName != "" {
		mode, err := pathenv.ParseComparisonMode(*modeName)
		if err != nil {
			fmt.Fprintf(errOut, "capture: %v\n", err)
			return 2
		}
		snap.Comparison = mode
	}

	if *asJSON {
		return printInfo(out, errOut, snap)
	}
	return writeOut(*outPath, snap.Encode(), out, errOut)
}

func cmdInspect(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(errOut)
	asJSON := fs.Bool("json", false, "print a JSON projection")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: pathenv inspect [--json] <file>")
		return 2
	}

	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read snapshot: %v\n", err)
		return 1
	}
	snap, err := pathenv.Decode(b)
	if err != nil {
		fmt.Fprintf(errOut, "invalid snapshot: %v\n", err)
		return 1
	}
	if *asJSON {
		return printInfo(out, errOut, snap)
	}
	printText(out, snap)
	return 0
}

func cmdID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("id", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: pathenv id <file>")
		return 2
	}

	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read snapshot: %v\n", err)
		return 1
	}
	if _, err := pathenv.Decode(b); err != nil {
		fmt.Fprintf(errOut, "invalid snapshot: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, snapid.String(b))
	return 0
}

func cmdSeal(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("seal", flag.ContinueOnError)
	fs.SetOutput(errOut)
	seedHex := fs.String("seed-hex", "", "ed25519 seed (64 hex chars)")
	hashName := fs.String("hash", "sha256", "hash algorithm: sha256, sha512, sha3-256")
	outPath := fs.String("out", "", "write sealed envelope to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 || *seedHex == "" {
		fmt.Fprintln(errOut, "usage: pathenv seal --seed-hex <64hex> [--hash <alg>] [--out <file>] <file>")
		return 2
	}

	seed, err := hex.DecodeString(*seedHex)
	if err != nil || len(seed) != ed25519.SeedSize {
		fmt.Fprintln(errOut, "seal: --seed-hex must be 32 bytes (64 hex chars)")
		return 2
	}
	hash, ok := parseHashAlg(*hashName)
	if !ok {
		fmt.Fprintf(errOut, "seal: unsupported hash %q\n", *hashName)
		return 2
	}

	payload, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read snapshot: %v\n", err)
		return 1
	}
	if _, err := pathenv.Decode(payload); err != nil {
		fmt.Fprintf(errOut, "invalid snapshot: %v\n", err)
		return 1
	}

	env, err := seal.SealEd25519(payload, hash, ed25519.NewKeyFromSeed(seed))
	if err != nil {
		fmt.Fprintf(errOut, "seal: %v\n", err)
		return 1
	}
	return writeOut(*outPath, env.Encode(), out, errOut)
}

func cmdVerify(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(errOut)
	asJSON := fs.Bool("json", false, "print a JSON projection of the verified payload")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: pathenv verify [--json] <file>")
		return 2
	}

	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read envelope: %v\n", err)
		return 1
	}
	env, err := seal.Decode(b)
	if err != nil {
		fmt.Fprintf(errOut, "invalid envelope: %v\n", err)
		return 1
	}
	if err := env.Verify(); err != nil {
		fmt.Fprintf(errOut, "verify: %v\n", err)
		return 1
	}
	snap, err := pathenv.Decode(env.Payload)
	if err != nil {
		fmt.Fprintf(errOut, "invalid sealed snapshot: %v\n", err)
		return 1
	}

	fmt.Fprintf(out, "sealed with %s over %s\n", env.KeyAlg, env.HashAlg)
	if *asJSON {
		return printInfo(out, errOut, snap)
	}
	printText(out, snap)
	return 0
}

func cmdPublish(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	fs.SetOutput(errOut)
	target := fs.String("target", "", "pathenvd address")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 || *target == "" {
		fmt.Fprintln(errOut, "usage: pathenv publish --target <addr> <file>")
		return 2
	}

	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read snapshot: %v\n", err)
		return 1
	}

	client, err := dial(*target)
	if err != nil {
		fmt.Fprintf(errOut, "dial %s: %v\n", *target, err)
		return 1
	}
	defer client.Close()

	id, err := client.Put(b)
	if err != nil {
		fmt.Fprintf(errOut, "publish: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, id.String())
	return 0
}

func cmdFetch(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	fs.SetOutput(errOut)
	target := fs.String("target", "", "pathenvd address")
	outPath := fs.String("out", "", "write encoded snapshot to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 || *target == "" {
		fmt.Fprintln(errOut, "usage: pathenv fetch --target <addr> [--out <file>] <id>")
		return 2
	}

	id, err := cid.Decode(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid id: %v\n", err)
		return 1
	}

	client, err := dial(*target)
	if err != nil {
		fmt.Fprintf(errOut, "dial %s: %v\n", *target, err)
		return 1
	}
	defer client.Close()

	b, err := client.Get(id)
	if err != nil {
		fmt.Fprintf(errOut, "fetch: %v\n", err)
		return 1
	}
	return writeOut(*outPath, b, out, errOut)
}

func cmdCurrent(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("current", flag.ContinueOnError)
	fs.SetOutput(errOut)
	target := fs.String("target", "", "pathenvd address")
	asJSON := fs.Bool("json", false, "print a JSON projection")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *target == "" {
		fmt.Fprintln(errOut, "usage: pathenv current --target <addr> [--json]")
		return 2
	}

	client, err := dial(*target)
	if err != nil {
		fmt.Fprintf(errOut, "dial %s: %v\n", *target, err)
		return 1
	}
	defer client.Close()

	snap, err := client.Current()
	if err != nil {
		fmt.Fprintf(errOut, "current: %v\n", err)
		return 1
	}
	if *asJSON {
		return printInfo(out, errOut, snap)
	}
	printText(out, snap)
	return 0
}

func cmdExport(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(errOut)
	target := fs.String("target", "", "pathenvd address")
	outPath := fs.String("out", "", "bundle file to write")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 || *target == "" || *outPath == "" {
		fmt.Fprintln(errOut, "usage: pathenv export --target <addr> --out <file> <id>...")
		return 2
	}

	ids := make([]cid.Cid, 0, fs.NArg())
	for _, arg := range fs.Args() {
		id, err := cid.Decode(arg)
		if err != nil {
			fmt.Fprintf(errOut, "invalid id %q: %v\n", arg, err)
			return 1
		}
		ids = append(ids, id)
	}

	client, err := dial(*target)
	if err != nil {
		fmt.Fprintf(errOut, "dial %s: %v\n", *target, err)
		return 1
	}
	defer client.Close()

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(errOut, "create %s: %v\n", *outPath, err)
		return 1
	}
	if err := bundle.Export(f, client, ids, bundle.ExportOptions{IncludeIndex: true}); err != nil {
		_ = f.Close()
		fmt.Fprintf(errOut, "export: %v\n", err)
		return 1
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(errOut, "write %s: %v\n", *outPath, err)
		return 1
	}
	fmt.Fprintf(out, "exported %d snapshot(s) to %s\n", len(ids), *outPath)
	return 0
}

func cmdImport(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(errOut)
	target := fs.String("target", "", "pathenvd address")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 || *target == "" {
		fmt.Fprintln(errOut, "usage: pathenv import --target <addr> <file>")
		return 2
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "open bundle: %v\n", err)
		return 1
	}
	defer f.Close()

	client, err := dial(*target)
	if err != nil {
		fmt.Fprintf(errOut, "dial %s: %v\n", *target, err)
		return 1
	}
	defer client.Close()

	if err := bundle.Import(f, client); err != nil {
		fmt.Fprintf(errOut, "import: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "imported %s\n", fs.Arg(0))
	return 0
}

func parseHashAlg(name string) (seal.HashAlg, bool) {
	switch name {
	case "sha256":
		return seal.HashSHA256, true
	case "sha512":
		return seal.HashSHA512, true
	case "sha3-256":
		return seal.HashSHA3256, true
	default:
		return 0, false
	}
}

func dial(target string) (*grpcenv.Client, error) {
	return grpcenv.Dial(target, grpcenv.DialOptions{Timeout: 5 * time.Second})
}

func writeOut(path string, data []byte, out io.Writer, errOut io.Writer) int {
	if path == "" {
		if _, err := out.Write(data); err != nil {
			fmt.Fprintf(errOut, "write: %v\n", err)
			return 1
		}
		return 0
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(errOut, "write %s: %v\n", path, err)
		return 1
	}
	return 0
}

func printInfo(out io.Writer, errOut io.Writer, snap pathenv.Snapshot) int {
	b, err := json.MarshalIndent(model.Describe(snap), "", "  ")
	if err != nil {
		fmt.Fprintf(errOut, "encode json: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, string(b))
	return 0
}

func printText(out io.Writer, snap pathenv.Snapshot) {
	info := model.Describe(snap)
	fmt.Fprintf(out, "comparison:       %s (%d)\n", info.Comparison, info.Mode)
	fmt.Fprintf(out, "separator:        %q (0x%04x)\n", info.Separator, info.SeparatorCode)
	fmt.Fprintf(out, "alt separator:    %q (0x%04x)\n", info.AltSeparator, info.AltSeparatorCode)
	fmt.Fprintf(out, "volume separator: %q (0x%04x)\n", info.VolumeSeparator, info.VolumeSeparatorCode)
	fmt.Fprintf(out, "working dir:      %s\n", info.WorkingDir)
	fmt.Fprintf(out, "id:               %s\n", info.ID)
	fmt.Fprintf(out, "encoded size:     %d bytes\n", info.EncodedSize)
}
