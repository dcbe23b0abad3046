/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/scode/hashdial/pkg/dialerr"
	"github.com/scode/hashdial/pkg/metrics"
	"github.com/scode/hashdial/pkg/partitioner"
)

const (
	envPrefix = "HASHDIAL"

	flagPartition       = "partition"
	flagNumPartitions   = "num-partitions"
	flagMetricsTextfile = "metrics-textfile"
)

// Execute runs the hashdial command line. Every returned error carries a
// dialerr kind.
func Execute() error {
	return execute(NewRootCommand())
}

func execute(command *cobra.Command) error {
	err := command.Execute()
	if err != nil && dialerr.KindOf(err) == dialerr.Unknown {
		// unknown sub-commands, stray arguments and the like
		err = dialerr.Wrap(dialerr.Usage, "invalid command line", err)
	}
	return err
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(viper.New())
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	command := &cobra.Command{
		Use:   "hashdial",
		Short: "Partition a line stream by content hash",
		Long: `Implements some useful hashdial mechanisms.

Running one "accept" instance per partition index over the same input splits
the input into disjoint, order-preserving parts. Options may also be given as
environment variables, e.g. HASHDIAL_PARTITION and HASHDIAL_NUM_PARTITIONS.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dialerr.New(dialerr.Usage, "sub-command required; please see --help")
		},
	}
	command.CompletionOptions.DisableDefaultCmd = true
	command.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return dialerr.Wrap(dialerr.Usage, "invalid option", err)
	})
	command.PersistentFlags().IntP(flagPartition, "p", 0, "The partition for which to accept lines")
	command.PersistentFlags().IntP(flagNumPartitions, "n", 0, "Total number of partitions")
	command.PersistentFlags().String(flagMetricsTextfile, "", "Write pass metrics to this file in prometheus text format")
	bindFlags(v, command.PersistentFlags())

	command.AddCommand(NewAcceptCommand(v))
	command.AddCommand(NewAssignCommand(v))
	command.AddCommand(NewVersionCommand())
	return command
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// requiredInt returns the integer value of key, taken from its flag or its
// environment variable.
func requiredInt(v *viper.Viper, key string) (int, error) {
	if !v.IsSet(key) {
		return 0, dialerr.Newf(dialerr.Usage, "required option --%s (or %s) not provided", key, envName(key))
	}
	raw := strings.TrimSpace(v.GetString(key))
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dialerr.Wrap(dialerr.Usage, fmt.Sprintf("invalid value %q for --%s", raw, key), err)
	}
	return val, nil
}

// partitionConfig decodes --partition and --num-partitions into a validated
// partitioner.Config.
func partitionConfig(v *viper.Viper) (partitioner.Config, error) {
	partition, err := requiredInt(v, flagPartition)
	if err != nil {
		return partitioner.Config{}, err
	}
	numPartitions, err := requiredInt(v, flagNumPartitions)
	if err != nil {
		return partitioner.Config{}, err
	}
	cfg := partitioner.Config{
		Partition:     partition,
		NumPartitions: numPartitions,
	}
	if err := cfg.Validate(); err != nil {
		return partitioner.Config{}, err
	}
	return cfg, nil
}

func exportMetrics(v *viper.Viper, log *zap.SugaredLogger) error {
	path := v.GetString(flagMetricsTextfile)
	if path == "" {
		return nil
	}
	if err := metrics.WriteTextfile(path); err != nil {
		log.Errorw("Failed to write metrics textfile", zap.String("path", path), zap.Error(err))
		return dialerr.Wrap(dialerr.IO, "failed to write metrics textfile", err)
	}
	log.Debugw("Wrote metrics textfile", zap.String("path", path))
	return nil
}
