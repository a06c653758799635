// Command rosz-cdr converts ROS 2 messages between YAML and encapsulated CDR
// with the type supports compiled into it.
//
//	rosz-cdr types
//	rosz-cdr encode interfaces/msg/DetectionInfoArray -i detections.yaml -o detections.cdr
//	rosz-cdr decode interfaces/msg/DetectionInfoArray -i detections.cdr --stats
//
// An optional .env file in the working directory is loaded before flags are
// parsed; ROSZ_LOG sets the default log level.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	_ "github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/generated/builtin_interfaces"
	_ "github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/generated/geometry_msgs"
	_ "github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/generated/interfaces"
	_ "github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/generated/std_msgs"
	"github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/rosz"
)

func main() {
	if err := loadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// loadEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

type app struct {
	registry *prometheus.Registry
	codec    *rosz.Codec
	logLevel string
	stats    bool
}

func newApp() *app {
	reg := prometheus.NewRegistry()
	return &app{
		registry: reg,
		codec:    rosz.NewCodec(rosz.WithMetrics(rosz.NewCodecMetrics(reg))),
	}
}

func newRootCmd() *cobra.Command {
	a := newApp()
	cmd := &cobra.Command{
		Use:           "rosz-cdr",
		Short:         "Encode and decode ROS 2 messages as CDR",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			rosz.SetLogLevel(a.logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", os.Getenv("ROSZ_LOG"), "Log level (DEBUG, INFO, WARN, ERROR)")
	cmd.PersistentFlags().BoolVar(&a.stats, "stats", false, "Print codec counters to stderr when done")

	cmd.AddCommand(newTypesCmd(), newEncodeCmd(a), newDecodeCmd(a))
	return cmd
}

// execute runs cmd and prints a failure the way the binary does.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// withStats wraps a command so --stats output is written whether or not the
// command fails.
func (a *app) withStats(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if statsErr := a.printStats(cmd.ErrOrStderr()); err == nil {
				err = statsErr
			}
		}()
		return run(cmd, args)
	}
}

func (a *app) printStats(w io.Writer) error {
	if !a.stats {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			fmt.Fprintf(w, "%s{%s} %s\n", mf.GetName(), strings.Join(labels, ","),
				humanize.Comma(int64(m.GetCounter().GetValue())))
		}
	}
	return nil
}
