// Command analysis runs Bloom filter compression and false positive
// experiments and prints the results as tables, plots or CSV.
package main

import (
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jcalabro/bloompress"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	seed    uint64
	format  string
	width   int
	height  int
)

var rootCmd = &cobra.Command{
	Use:   "analysis [command] (flags)",
	Short: "Bloom filter compression experiments",
	Long: `Synthesizes Bloom filter bit arrays, compresses them with a set of codecs
and reports the mean compressed size, or compares predicted and observed
false positive rates.`,
	SilenceUsage: true,
}

func main() {
	setupCommands()
	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}

// setupCommands attaches the subcommands and registers every flag. It must
// run exactly once.
func setupCommands() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		compressCmd,
		fprCmd,
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log every sweep step")
	rootCmd.PersistentFlags().Uint64Var(
		&seed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().StringVar(
		&format, "format", "table", "output format: table, plot or csv")
	rootCmd.PersistentFlags().IntVar(
		&width, "width", 100, "plot width in columns (0 for one column per point)")
	rootCmd.PersistentFlags().IntVar(
		&height, "height", 20, "plot height in rows")

	for _, cmd := range []*cobra.Command{compressCmd, fprCmd} {
		cmd.Flags().IntVarP(
			&bitWidth, "bit-width", "m", bloompress.DefaultBitWidth, "filter size in bits (multiple of 8)")
		cmd.Flags().IntVar(
			&start, "start", 0, "first swept value")
		cmd.Flags().IntVar(
			&samples, "samples", bloompress.DefaultSampleSize, "arrays synthesized per step")
	}

	compressCmd.Flags().IntVarP(
		&hashCount, "hash-count", "k", bloompress.DefaultHashCount, "hash functions per insert")
	compressCmd.Flags().IntVarP(
		&insertCount, "insert-count", "n", 1000, "inserts per filter when sweeping the hash count")
	compressCmd.Flags().StringVar(
		&param, "param", "insert", "parameter to sweep: insert or hash")
	compressCmd.Flags().IntVar(
		&stop, "stop", 10001, "sweep end (exclusive)")
	compressCmd.Flags().IntVar(
		&step, "step", 50, "distance between swept values")
	compressCmd.Flags().StringVar(
		&codecList, "codecs", "bzip2,zlib", "comma separated codecs, each as name or name:level")
	compressCmd.Flags().IntVarP(
		&parallel, "parallel", "p", 1, "number of sweep steps to run concurrently")

	fprCmd.Flags().StringVar(
		&hashCountList, "hash-counts", "4,5,6", "comma separated hash counts, one curve each")
	fprCmd.Flags().IntVar(
		&fprStop, "stop", 10000, "last insert count (exclusive)")
	fprCmd.Flags().IntVar(
		&fprStep, "step", 10, "distance between insert counts")
	fprCmd.Flags().IntVar(
		&probes, "probes", 10000, "probes per synthesized array when measuring")
}

func newLogger(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}
