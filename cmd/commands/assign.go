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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/scode/hashdial/pkg/filter"
	"github.com/scode/hashdial/pkg/shared/logging"
)

func NewAssignCommand(v *viper.Viper) *cobra.Command {
	command := &cobra.Command{
		Use:   "assign",
		Short: "Prefix every line with the partition it belongs to",
		Long: `Prefix every line with the index of the partition that would accept it,
followed by a tab. Only --num-partitions is required.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			numPartitions, err := requiredInt(v, flagNumPartitions)
			if err != nil {
				return err
			}
			log := logging.NewLogger().Named("assign").With("numPartitions", numPartitions)
			tagger, err := filter.NewTagger(numPartitions, filter.WithLogger(log))
			if err != nil {
				return err
			}
			ctx := logging.WithLogger(cmd.Context(), log)
			err = tagger.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			return multierr.Append(err, exportMetrics(v, log))
		},
	}
	return command
}
