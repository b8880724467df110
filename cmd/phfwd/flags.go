// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/gaissmai/phfwd"
)

// redirect is a single FROM=TO flag argument.
type redirect struct {
	from string
	to   string
}

// redirectsValue is a repeatable pflag.Value for FROM=TO pairs,
// FROM and TO are validated when the flag is set.
type redirectsValue []redirect

var _ pflag.Value = (*redirectsValue)(nil)

func (rv *redirectsValue) String() string {
	pairs := make([]string, 0, len(*rv))
	for _, r := range *rv {
		pairs = append(pairs, r.from+"="+r.to)
	}
	return "[" + strings.Join(pairs, ",") + "]"
}

// Set appends a FROM=TO pair.
func (rv *redirectsValue) Set(s string) error {
	from, to, ok := strings.Cut(s, "=")
	if !ok {
		return errors.Errorf("%q: want FROM=TO", s)
	}
	if !phfwd.Valid(from) {
		return errors.Wrapf(phfwd.ErrInvalidNumber, "%q", from)
	}
	if !phfwd.Valid(to) {
		return errors.Wrapf(phfwd.ErrInvalidNumber, "%q", to)
	}

	*rv = append(*rv, redirect{from, to})
	return nil
}

func (rv *redirectsValue) Type() string {
	return "FROM=TO"
}
