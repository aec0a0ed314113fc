// internal/cli/command.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nanofeat/core/errs"
	"nanofeat/internal/reads"
	"nanofeat/internal/version"
)

// EnvPrefix prefixes the environment overrides, e.g. NANOFEAT_KMER_LEN.
const EnvPrefix = "NANOFEAT"

// ExtractFunc runs an extraction with resolved options.
type ExtractFunc func(cmd *cobra.Command, opts Options) error

// NewRootCommand builds the nanofeat command tree.
func NewRootCommand(extract ExtractFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "nanofeat",
		Short: "Extract per-site signal features from resquiggled nanopore reads",
		Long: `nanofeat turns resquiggled nanopore reads into one feature record per
candidate methylation site, ready for training or calling.

It is suggested to run one flowcell, or a group of flowcells, at a time
when the whole data set is very large.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newExtractCommand(extract))
	return root
}

func newExtractCommand(extract ExtractFunc) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract features from a directory of read files",
		Example: `  nanofeat extract -i reads/ --reference-path genome.fa -o features.tsv
  nanofeat extract -i reads/ --reference-path genome.fa.fai -o features.tsv.gz -p 8 --motifs CG,CHG --mod-loc 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := Load(v)
			if err != nil {
				return err
			}
			return extract(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringP("reads-dir", "i", "", "directory (or single file / glob) of read files [*]")
	f.BoolP("recursively", "r", true, "search --reads-dir recursively")
	f.String("corrected-group", reads.DefaultCorrectedGroup, "corrected group written by the resquiggler")
	f.String("basecall-subgroup", reads.DefaultBasecallSubgroup, "basecall subgroup inside the corrected group")
	f.String("reference-path", "", "reference genome: FASTA (.gz ok), .fai index, or SAM/BAM header [*]")

	f.String("normalize-method", "mad", "read-level signal normalization: mad | zscore")
	f.Int("methy-label", 1, "label of the sites of interest, 0 or 1")
	f.Int("kmer-len", 17, "k-mer length around each site (odd)")
	f.Int("cent-signals-len", 360, "number of central signal samples per site")
	f.String("motifs", "CG", "comma-separated motifs; IUPAC codes allowed, all sharing --mod-loc")
	f.Int("mod-loc", 0, "0-based location of the target base in the motif")
	f.Int("max-signal-sum", 0, "skip sites whose k-mer spans more raw samples (0 = no cap)")
	f.Int64("seed", 0, "seed for central-signal sampling")

	f.IntP("nproc", "p", 1, "number of processes to use; one is reserved for writing")
	f.IntP("batch-num", "b", 100, "number of read files per batch")

	f.StringP("write-path", "o", "", "output path ('-' for stdout; .gz/.xz/.zst/.bz2 compress) [*]")
	f.String("format", "tsv", "output format: tsv | jsonl")

	f.String("metrics-addr", "", "serve prometheus metrics on this address (e.g. :9100)")
	f.String("log-level", "info", "log level: debug | info | warn | error")
	f.Bool("log-json", false, "log JSON lines instead of console text")
	f.String("config", "", "YAML/TOML/JSON settings file; flags override it")

	_ = v.BindPFlags(f)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}

// Load merges the config file named by the "config" key (if any) into v and
// decodes the validated Options.
func Load(v *viper.Viper) (Options, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("read config %s: %v: %w", path, err, errs.ErrConfig)
		}
	}
	var o Options
	if err := v.Unmarshal(&o); err != nil {
		return Options{}, fmt.Errorf("decode settings: %v: %w", err, errs.ErrConfig)
	}
	return o, o.Validate()
}
