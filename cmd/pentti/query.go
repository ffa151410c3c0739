package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Amansingh-afk/pentti"
	"github.com/Amansingh-afk/pentti/vocab"
)

func (a *app) newQueryCmd() *cobra.Command {
	var (
		vocabPath string
		pairs     string
		property  string
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Encode a record from a vocabulary file and query one property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := vocab.Load(vocabPath)
			if err != nil {
				return err
			}
			record, err := parsePairs(pairs)
			if err != nil {
				return err
			}
			sys, err := pentti.NewFromConfig(cfg, pentti.WithLogger(a.log))
			if err != nil {
				return err
			}
			rec, err := sys.Record(record)
			if err != nil {
				return err
			}
			p, err := sys.Encode(property)
			if err != nil {
				return err
			}
			unbound, err := sys.Bind(p, rec)
			if err != nil {
				return err
			}
			m, err := sys.Nearest(unbound)
			if err != nil {
				return err
			}
			a.log.Debug().Str("property", property).Int("distance", m.Distance).Msg("query answered")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (distance %d/%d)\n", property, m.Symbol, m.Distance, sys.Dims())
			return err
		},
	}
	cmd.Flags().StringVar(&vocabPath, "vocab", "", "vocabulary YAML file")
	cmd.Flags().StringVar(&pairs, "pairs", "", "record as Property=Value,Property=Value")
	cmd.Flags().StringVar(&property, "property", "", "symbol to unbind from the record")
	for _, name := range []string{"vocab", "pairs", "property"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func parsePairs(s string) (map[string]string, error) {
	out := make(map[string]string)
	for _, kv := range strings.Split(s, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		k, v, ok := strings.Cut(kv, "=")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !ok || k == "" || v == "" {
			return nil, fmt.Errorf("pair %q: want Property=Value", kv)
		}
		if _, dup := out[k]; dup {
			return nil, fmt.Errorf("pair %q: property %s given twice", kv, k)
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no pairs given")
	}
	return out, nil
}
