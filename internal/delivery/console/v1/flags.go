package v1

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

func newFlagSet(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}
	flagSet.SortFlags = false
	return flagSet
}

// parseFlags parses args into flagSet. Unknown flags are reported with
// the closest defined flag when there is one.
func parseFlags(flagSet *pflag.FlagSet, args []string) error {
	err := flagSet.Parse(args)
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return err
	}

	if strings.Contains(err.Error(), "unknown flag") {
		if suggestion := suggestFlag(args, flagSet); suggestion != "" {
			return fmt.Errorf("%s (did you mean %s?)", err, suggestion)
		}
	}
	return err
}

// parseTaskID parses the first positional argument as a task ID.
// Any further positional argument is rejected.
func parseTaskID(positional []string) (int64, error) {
	if len(positional) == 0 {
		return 0, errInvalidTaskID
	}
	if len(positional) > 1 {
		return 0, &unexpectedArgumentError{arg: positional[1], hint: "quote values that contain spaces"}
	}

	id, err := strconv.ParseInt(strings.TrimSpace(positional[0]), 10, 64)
	if err != nil {
		return 0, errInvalidTaskID
	}
	return id, nil
}

// splitLeadingID removes a leading task ID from args so that a negative
// ID is not taken for a shorthand flag.
func splitLeadingID(args []string) (string, []string, bool) {
	if len(args) == 0 {
		return "", args, false
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64); err != nil {
		return "", args, false
	}
	return args[0], args[1:], true
}
