package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"vttimetable/lib/configutil"
	"vttimetable/lib/restyutil"
	"vttimetable/lib/scrapers/timetable"
	"vttimetable/lib/telemetry"

	"github.com/spf13/cobra"
)

// Config carries the defaults a config.json5 next to the binary can
// provide; flags win over it.
type Config struct {
	Year     string `json:"year"`
	Semester string `json:"semester"`
	BaseUrl  string `json:"base_url"`
}

var (
	yearFlag     *string
	semesterFlag *string
	verboseFlag  *bool
	dumpHttpFlag *string
)

var rootCmd = &cobra.Command{
	Use:   "timetable-cli",
	Short: "timetable-cli searches the VT timetable of classes from the terminal.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verboseFlag)
	},
}

func init() {
	yearFlag = rootCmd.PersistentFlags().String("year", "", "The calendar year of the term to search.")
	semesterFlag = rootCmd.PersistentFlags().String("semester", "", "The semester to search: spring, summer, fall or winter.")
	verboseFlag = rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging.")
	dumpHttpFlag = rootCmd.PersistentFlags().String("dump-http", "", "Write raw http messages to this directory.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if os.IsNotExist(err) {
		return Config{}
	}
	if err != nil {
		fatal("failed to read config", err)
	}
	return cfg
}

func newClient(cfg Config) *timetable.Client {
	if *dumpHttpFlag != "" {
		timetable.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(*dumpHttpFlag))
	}
	client, err := timetable.NewClient(timetable.ClientOptions{BaseUrl: cfg.BaseUrl})
	if err != nil {
		fatal("failed to initialize timetable client", err)
	}
	return client
}

func resolveTerm(cfg Config) timetable.Term {
	year := *yearFlag
	if year == "" {
		year = cfg.Year
	}
	semesterName := *semesterFlag
	if semesterName == "" {
		semesterName = cfg.Semester
	}
	if year == "" || semesterName == "" {
		fatal("no term selected", fmt.Errorf("pass --year and --semester or set them in config.json5"))
	}

	semester, err := parseSemester(semesterName)
	if err != nil {
		fatal("invalid semester", err)
	}
	return timetable.Term{Year: year, Semester: semester}
}
