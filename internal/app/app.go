package app

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"portsight/internal/output"
	"portsight/internal/proc"
	"portsight/internal/tui"
	"portsight/pkg/model"
)

var (
	flagLocalhost   bool
	flagAll         bool
	flagPort        int
	flagDetailed    bool
	flagCompact     bool
	flagJSON        bool
	flagInteractive bool
	flagFilter      string
	flagExclude     string
)

var rootCmd = &cobra.Command{
	Use:   "portsight",
	Short: "Show open ports with the processes that own them",
	Long: "portsight takes a point-in-time snapshot of the TCP and UDP socket tables\n" +
		"and joins each socket with the process that owns it, via /proc.\n\n" +
		"By default only localhost/wildcard addresses and listening TCP sockets are\n" +
		"shown; use --all for every address, or --port to inspect one port in any state.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&flagLocalhost, "localhost", "l", false, "show only localhost ports")
	f.BoolVarP(&flagAll, "all", "a", false, "show all ports (including non-localhost)")
	f.IntVarP(&flagPort, "port", "p", 0, "check a specific port (any TCP state, not just LISTEN)")
	f.BoolVarP(&flagDetailed, "detailed", "d", false, "show detailed output with full paths and commands")
	f.BoolVarP(&flagCompact, "compact", "c", false, "show compact table format")
	f.StringVarP(&flagFilter, "filter", "f", "", "only show results containing text (matches name, command, working dir)")
	f.StringVarP(&flagExclude, "exclude", "x", "", "hide results containing text (matches name, command, working dir)")
	f.BoolVar(&flagJSON, "json", false, "emit the records as JSON")
	f.BoolVarP(&flagInteractive, "interactive", "i", false, "browse the snapshot in an interactive table")

	rootCmd.MarkFlagsMutuallyExclusive("localhost", "all")
	rootCmd.MarkFlagsMutuallyExclusive("detailed", "compact", "json", "interactive")
}

// SetVersionBuildCommitString wires the ldflags-injected build metadata into
// the --version output.
func SetVersionBuildCommitString(version, commit, buildDate string) {
	if version == "" {
		version = "dev"
	}
	v := version
	if commit != "" {
		v += " commit " + commit
	}
	if buildDate != "" {
		v += " built " + buildDate
	}
	rootCmd.Version = v
}

func Execute() {
	log.SetReportTimestamp(false)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(_ *cobra.Command, _ []string) error {
	if flagPort < 0 || flagPort > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", flagPort)
	}

	cfg := proc.Config{
		LocalhostOnly: flagLocalhost || !flagAll,
		SpecificPort:  flagPort,
	}
	sv := proc.NewSystemView("")

	scan := func() ([]model.PortRecord, error) {
		records, err := proc.Snapshot(sv, cfg)
		if err != nil {
			return nil, err
		}
		if flagFilter != "" {
			records = Include(records, flagFilter)
		}
		if flagExclude != "" {
			records = Exclude(records, flagExclude)
		}
		return records, nil
	}

	records, err := scan()
	if err != nil {
		return err
	}

	if os.Geteuid() != 0 && hasUnresolved(records) {
		log.Warn("some sockets could not be attributed to a process; try running as root")
	}

	switch {
	case flagInteractive:
		return tui.Start(records, scan)
	case flagJSON:
		s, err := output.ToJSON(records)
		if err != nil {
			return err
		}
		fmt.Println(s)
	case flagDetailed:
		output.RenderDetailed(os.Stdout, records)
	case flagCompact:
		output.RenderCompact(os.Stdout, records)
	default:
		output.RenderTable(os.Stdout, records)
	}
	return nil
}

func hasUnresolved(records []model.PortRecord) bool {
	for _, r := range records {
		if r.PID == model.NoProcess {
			return true
		}
	}
	return false
}
