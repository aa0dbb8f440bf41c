package option

import (
	"sort"
	"strconv"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/pkg/errors"
)

// SplitString splits s at each delim. Unless includeEmpties is set, runs of
// delimiters count as one and empty fields are dropped.
func SplitString(s string, delim rune, includeEmpties bool) (ret []string) {
	var item strings.Builder
	for _, r := range s {
		if r != delim {
			item.WriteRune(r)
			continue
		}
		if includeEmpties || item.Len() != 0 {
			ret = append(ret, item.String())
			item.Reset()
		}
	}
	if includeEmpties || item.Len() != 0 {
		ret = append(ret, item.String())
	}
	return
}

// NumericRange parses a comma separated list of numbers and ranges such as
// "1,3-5,9-". An open start of a range is min and an open end is max. The
// numbers are returned sorted without duplicates.
func NumericRange(s string, min, max int) ([]int, error) {
	set := make(map[int]struct{})
	for _, part := range SplitString(s, ',', false) {
		ends := SplitString(part, '-', true)
		if len(ends) > 2 {
			return nil, errors.Errorf("bad range: %s", s)
		}
		first, err := rangeEnd(ends[0], min)
		if err != nil {
			return nil, errors.Wrapf(err, "bad range: %s", s)
		}
		if len(ends) == 1 {
			set[first] = struct{}{}
			continue
		}
		last, err := rangeEnd(ends[1], max)
		if err != nil {
			return nil, errors.Wrapf(err, "bad range: %s", s)
		}
		if last < first {
			continue
		}
		for i := range iter.N(last - first + 1) {
			set[first+i] = struct{}{}
		}
	}
	ret := make([]int, 0, len(set))
	for i := range set {
		ret = append(ret, i)
	}
	sort.Ints(ret)
	return ret, nil
}

func rangeEnd(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
