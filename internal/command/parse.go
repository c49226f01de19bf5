package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/placecraft/internal/domain"
)

// Request is one parsed protocol line
type Request struct {
	Verb string
	Args []string
}

// Parse splits a line into a lower-cased verb and its arguments.
func Parse(line string) (Request, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Request{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyCommand)
	}
	return Request{Verb: strings.ToLower(fields[0]), Args: fields[1:]}, nil
}

func usageError(usage string) error {
	return fmt.Errorf("%w: "+ErrMsgUsageFmt, domain.ErrInvalidInput, usage)
}

// expectArgs checks the argument count against [lo, hi]; hi < 0 means no
// upper bound.
func expectArgs(args []string, lo, hi int, usage string) error {
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		return usageError(usage)
	}
	return nil
}

func parseInt(arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: "+ErrMsgNotANumberFmt, domain.ErrInvalidInput, arg)
	}
	return v, nil
}

func parseUint(arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: "+ErrMsgNotANumberFmt, domain.ErrInvalidInput, arg)
	}
	return v, nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := parseInt(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
