package args

import (
	"fmt"
	"strings"
)

// SplitCompound collects every value of flag in argv and splits it on
// whitespace into a set. The legacy grammar passes tag lists as one
// space-delimited token ("-n", "Cat Dog"), so duplicates collapse and
// order carries no meaning.
func SplitCompound(argv []string, flag string) (map[string]struct{}, error) {
	if argv == nil {
		return nil, ErrNilArgumentVector
	}

	set := make(map[string]struct{})
	for i := 0; i < len(argv); i++ {
		if argv[i] != flag {
			continue
		}
		if i+1 >= len(argv) {
			return nil, fmt.Errorf("%s must be followed by a list of values", flag)
		}
		i++
		for _, v := range strings.Fields(argv[i]) {
			set[v] = struct{}{}
		}
	}
	return set, nil
}
