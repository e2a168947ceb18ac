package main

import (
	"fmt"
	"log/slog"

	"github.com/scott-cotton/cli"

	"github.com/ConradIrwin/ini-go"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key", cli.ErrUsage)
	}
	key := args[0]
	for _, file := range inputs(args[1:]) {
		data, err := readFile(cc, file)
		if err != nil {
			return err
		}
		value, err := lookup(data, cfg.Section, key, cfg.logger())
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		fmt.Fprintln(cc.Out, value)
	}
	return nil
}

// sectionPairs collects the pairs of the section called name.
type sectionPairs struct {
	name  string
	pairs ini.Map
}

func (s *sectionPairs) UnmarshalINI(d *ini.Deserializer) error {
	return d.DecodeRecord(s.name, nil, func(key string, value *ini.Deserializer) error {
		text, err := value.DecodeScalar()
		if err != nil {
			return err
		}
		s.pairs.Set(key, text)
		return nil
	})
}

// lookup returns the value of key in section, or among the bare pairs when
// section is empty. Repeated keys resolve to their last value.
func lookup(data []byte, section, key string, logger *slog.Logger) (string, error) {
	opts := []ini.DecodeOption{ini.WithLogger(logger), ini.AllowTrailingInput()}

	pairs := &ini.Map{}
	if section == "" {
		if err := ini.Unmarshal(data, pairs, opts...); err != nil {
			return "", err
		}
	} else {
		sp := &sectionPairs{name: section}
		if err := ini.Unmarshal(data, sp, opts...); err != nil {
			return "", err
		}
		pairs = &sp.pairs
	}

	v, ok := pairs.Get(key)
	if !ok {
		if section != "" {
			return "", fmt.Errorf("no key %s in [%s]", key, section)
		}
		return "", fmt.Errorf("no key %s", key)
	}
	return v.(string), nil
}
