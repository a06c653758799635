package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// DefaultPrefix is the import path under which generated packages and the
// rosz runtime live.
const DefaultPrefix = "github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go"

type options struct {
	input  string
	output string
	prefix string
	jobs   int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "ros-z-codegen-go",
		Short: "Generate Go CDR type support from a ros-z interface manifest",
		Long: `ros-z-codegen-go reads a JSON or YAML manifest of ROS 2 messages, services
and actions and writes one Go file per type under <output>/<package>.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "Input manifest file (JSON or YAML, - for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "Output directory for generated Go code")
	cmd.Flags().StringVar(&opts.prefix, "prefix", DefaultPrefix, "Go import path holding generated/ and rosz/")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Number of files generated concurrently")
	return cmd
}

// generatedFile is one output of a generation run.
type generatedFile struct {
	path    string
	label   string
	changed bool
}

func run(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer) error {
	var data []byte
	var err error
	if opts.input == "" || opts.input == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(opts.input)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	manifest, err := LoadManifest(data)
	if err != nil {
		return err
	}
	if err := manifest.Validate(); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}

	files, err := Generate(ctx, manifest, opts.output, opts.prefix, opts.jobs)
	if err != nil {
		return err
	}
	for _, f := range files {
		state := "unchanged"
		if f.changed {
			state = "written"
		}
		fmt.Fprintf(stdout, "Generated: %s (%s)\n", f.label, state)
	}
	fmt.Fprintf(stdout, "Generation complete: %d messages, %d services, %d actions\n",
		len(manifest.Messages), len(manifest.Services), len(manifest.Actions))
	return nil
}

// Generate writes every type of manifest below baseDir, at most jobs files at
// a time, and returns the files sorted by path.
func Generate(ctx context.Context, manifest *CodegenManifest, baseDir, prefix string, jobs int) ([]generatedFile, error) {
	gen := NewGenerator(manifest, prefix)

	var mu sync.Mutex
	var files []generatedFile
	emit := func(pkg, filename, label string, code func() ([]byte, error)) func() error {
		return func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			contents, err := code()
			if err != nil {
				return fmt.Errorf("failed to generate %s: %w", label, err)
			}
			path := filepath.Join(baseDir, sanitizePackageName(pkg), filename)
			changed, err := writeFileIfChanged(path, contents)
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			mu.Lock()
			files = append(files, generatedFile{path: path, label: label, changed: changed})
			mu.Unlock()
			return nil
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		eg.SetLimit(jobs)
	}
	for _, msg := range manifest.Messages {
		msg := msg
		eg.Go(emit(msg.Package, strings.ToLower(msg.Name)+".go", msg.FullName,
			func() ([]byte, error) { return gen.Message(msg) }))
	}
	// Services go in the same directory as messages (same Go package)
	for _, srv := range manifest.Services {
		srv := srv
		eg.Go(emit(srv.Package, "srv_"+strings.ToLower(srv.Name)+".go", "service "+srv.FullName,
			func() ([]byte, error) { return gen.Service(srv) }))
	}
	for _, action := range manifest.Actions {
		action := action
		eg.Go(emit(action.Package, "action_"+strings.ToLower(action.Name)+".go", "action "+action.FullName,
			func() ([]byte, error) { return gen.Action(action) }))
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].path < files[j].path })
	return files, nil
}

// writeFileIfChanged overwrites filename with contents unless it already
// holds them, so that unchanged outputs keep their modification time.
func writeFileIfChanged(filename string, contents []byte) (bool, error) {
	current, err := os.ReadFile(filename)
	if err == nil && bytes.Equal(current, contents) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return false, err
	}
	return true, os.WriteFile(filename, contents, 0644)
}
