package main

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"irisform/config"
	"irisform/form"
	"irisform/i18n"
	"irisform/ml"
)

func newPredictCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "predict <sepal-length> <sepal-width> <petal-length> <petal-width>",
		Short: "Classify one set of measurements with the configured model",
		Args:  cobra.ExactArgs(len(form.Fields)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			values := make(url.Values, len(form.Fields))
			for i, field := range form.Fields {
				values.Set(field.Name, args[i])
			}
			measurement, errs := form.Parse(values)
			if len(errs) > 0 {
				return errors.New(describeErrors(errs))
			}

			handle, err := ml.OpenHandle(cfg.Model.Path)
			if err != nil {
				return err
			}
			label, err := ml.NewAdapter(handle).Classify(measurement.Vector())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ml.SpeciesName(label))
			return nil
		},
	}
}

func describeErrors(errs form.Errors) string {
	p := i18n.Printer("")
	lines := make([]string, 0, len(errs))
	for name, fe := range errs {
		lines = append(lines, fmt.Sprintf("%s: %s", name, fe.Message(p)))
	}
	sort.Strings(lines)
	return "invalid measurements:\n  " + strings.Join(lines, "\n  ")
}
