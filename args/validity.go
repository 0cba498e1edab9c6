package args

import (
	"fmt"

	"golang.org/x/mod/module"

	"github.com/specrun/specrun/reporters"
)

// CheckValidity runs the full classification and compilation pipeline over
// the argument vector without keeping any of its outputs. It returns the
// first malformed-argument diagnostic, or nil when the vector is well
// formed. The check is pure and idempotent, so callers may dry-validate
// before committing to a run.
func CheckValidity(argv []string) error {
	b, err := Classify(argv)
	if err != nil {
		return err
	}
	if _, err := ParseProperties(b.Props); err != nil {
		return err
	}
	if _, err := SplitCompound(b.Includes, "-n"); err != nil {
		return err
	}
	if _, err := SplitCompound(b.Excludes, "-x"); err != nil {
		return err
	}
	if err := checkPackageValues(b.MemberOf, "-m"); err != nil {
		return err
	}
	if err := checkPackageValues(b.BeginsWith, "-w"); err != nil {
		return err
	}
	if _, err := reporters.Compile(b.Reporters); err != nil {
		return err
	}
	return nil
}

// checkPackageValues validates the value following each occurrence of flag
// as an import path. Buckets alternate flag and value tokens.
func checkPackageValues(bucket []string, flag string) error {
	for i := 0; i+1 < len(bucket); i += 2 {
		if bucket[i] != flag {
			continue
		}
		if err := module.CheckImportPath(bucket[i+1]); err != nil {
			return fmt.Errorf("%s value is not a valid package path: %w", flag, err)
		}
	}
	return nil
}
