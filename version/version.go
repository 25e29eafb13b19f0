// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"

	"github.com/ava-labs/shamir/utils/constants"
)

var (
	Current = &Semantic{
		Major: 1,
		Minor: 0,
		Patch: 0,
	}

	// String is displayed by the --version flag.
	String = fmt.Sprintf("%s/%s", constants.AppName, Current)
)

type Semantic struct {
	Major int
	Minor int
	Patch int
}

func (s *Semantic) String() string {
	return fmt.Sprintf("v%d.%d.%d", s.Major, s.Minor, s.Patch)
}
