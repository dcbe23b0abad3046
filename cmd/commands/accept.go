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

func NewAcceptCommand(v *viper.Viper) *cobra.Command {
	command := &cobra.Command{
		Use:   "accept",
		Short: "Filter lines accepting only those in the given partition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := partitionConfig(v)
			if err != nil {
				return err
			}
			log := logging.NewLogger().Named("accept").With("partition", cfg.Partition, "numPartitions", cfg.NumPartitions)
			f, err := filter.NewStreamFilter(cfg, filter.WithLogger(log))
			if err != nil {
				return err
			}
			ctx := logging.WithLogger(cmd.Context(), log)
			err = f.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			return multierr.Append(err, exportMetrics(v, log))
		},
	}
	return command
}
