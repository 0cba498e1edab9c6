// Package args implements the legacy argument-vector engine: a classifier
// that partitions a flat token list into typed buckets, a compound-value
// splitter for tag lists, a system-property parser, and an eager validity
// checker used for dry validation before a run.
//
// The legacy grammar packs a flag and its configuration suffix into a single
// token ("-gL", "-fNW"), so the vector is scanned by hand rather than fed to
// a flag library; the service's own CLI surface lives in the flags package.
package args

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilArgumentVector signals a caller bug: the argument vector itself was
// absent, not merely empty.
var ErrNilArgumentVector = errors.New("argument vector is required")

// Buckets holds the ten classified token sequences. Each bucket carries the
// matching flag tokens verbatim, followed by any value each flag consumed,
// in input order.
type Buckets struct {
	Runpath    []string // -p and its path token
	Reporters  []string // -g/-o/-e/-f/-r tokens plus file and reporter names
	Suites     []string // -s and suite names
	Props      []string // -Dname=value tokens
	Includes   []string // -n and tag lists
	Excludes   []string // -x and tag lists
	Concurrent []string // -c tokens
	MemberOf   []string // -m and package names
	BeginsWith []string // -w and package prefixes
	TestNG     []string // -t and TestNG suite file names
}

// Classify partitions the argument vector into buckets. Every token lands in
// exactly one bucket; a token consumed as a flag's value is absorbed into the
// same bucket as its flag. A nil vector is a contract violation. Unrecognized
// tokens and missing trailing values are malformed-argument errors, with one
// deliberate exception: a dangling -p is accepted as a literal runpath token.
// Legacy invocations pass a bare trailing -p and rely on it being tolerated.
func Classify(argv []string) (*Buckets, error) {
	if argv == nil {
		return nil, ErrNilArgumentVector
	}

	b := &Buckets{}
	for i := 0; i < len(argv); i++ {
		s := argv[i]
		switch {
		case s == "-p":
			b.Runpath = append(b.Runpath, s)
			if i+1 < len(argv) {
				i++
				b.Runpath = append(b.Runpath, argv[i])
			}
		case strings.HasPrefix(s, "-D"):
			b.Props = append(b.Props, s)
		case strings.HasPrefix(s, "-g"), strings.HasPrefix(s, "-o"), strings.HasPrefix(s, "-e"):
			b.Reporters = append(b.Reporters, s)
		case strings.HasPrefix(s, "-f"):
			v, err := takeValue(argv, &i, s, "file name")
			if err != nil {
				return nil, err
			}
			b.Reporters = append(b.Reporters, s, v)
		case strings.HasPrefix(s, "-r"):
			v, err := takeValue(argv, &i, s, "reporter name")
			if err != nil {
				return nil, err
			}
			b.Reporters = append(b.Reporters, s, v)
		case s == "-s":
			v, err := takeValue(argv, &i, s, "suite name")
			if err != nil {
				return nil, err
			}
			b.Suites = append(b.Suites, s, v)
		case s == "-n":
			v, err := takeValue(argv, &i, s, "tag list")
			if err != nil {
				return nil, err
			}
			b.Includes = append(b.Includes, s, v)
		case s == "-x":
			v, err := takeValue(argv, &i, s, "tag list")
			if err != nil {
				return nil, err
			}
			b.Excludes = append(b.Excludes, s, v)
		case s == "-c":
			b.Concurrent = append(b.Concurrent, s)
		case s == "-m":
			v, err := takeValue(argv, &i, s, "package name")
			if err != nil {
				return nil, err
			}
			b.MemberOf = append(b.MemberOf, s, v)
		case s == "-w":
			v, err := takeValue(argv, &i, s, "package prefix")
			if err != nil {
				return nil, err
			}
			b.BeginsWith = append(b.BeginsWith, s, v)
		case s == "-t":
			v, err := takeValue(argv, &i, s, "suite file name")
			if err != nil {
				return nil, err
			}
			b.TestNG = append(b.TestNG, s, v)
		default:
			return nil, fmt.Errorf("unrecognized argument: %s", s)
		}
	}
	return b, nil
}

// takeValue consumes the token following argv[*i] as the value of flag.
// The value must exist and must not itself look like a flag.
func takeValue(argv []string, i *int, flag, what string) (string, error) {
	if *i+1 >= len(argv) {
		return "", fmt.Errorf("%s must be followed by a %s", flag, what)
	}
	next := argv[*i+1]
	if strings.HasPrefix(next, "-") {
		return "", fmt.Errorf("%s must be followed by a %s, got another flag: %s", flag, what, next)
	}
	*i++
	return next, nil
}

// ParseProperties decodes the props bucket into a name/value map.
// Each token has the shape -Dname=value; anything else is malformed.
func ParseProperties(props []string) (map[string]string, error) {
	m := make(map[string]string, len(props))
	for _, s := range props {
		if !strings.HasPrefix(s, "-D") {
			return nil, fmt.Errorf("not a property argument: %s", s)
		}
		body := s[len("-D"):]
		eq := strings.Index(body, "=")
		if eq <= 0 {
			return nil, fmt.Errorf("property argument must have the form -Dname=value: %s", s)
		}
		m[body[:eq]] = body[eq+1:]
	}
	return m, nil
}
