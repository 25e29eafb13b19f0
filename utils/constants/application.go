// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// AppName is the name of this application, used for flag prefixes, default
// directories and the metrics namespace.
const AppName = "shamir"
