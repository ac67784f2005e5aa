// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ L = (*zap.SugaredLogger)(nil)

// New builds a zap-backed L.
//
// If verbose is true, a development logger with debug output is built;
// otherwise, a production logger logging at info level and above is built.
//
// The returned function flushes any buffered log entries, and should be
// called before the process exits.
func New(verbose bool) (L, func(), error) {
	var (
		base *zap.Logger
		err  error
	)
	if verbose {
		base, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		base, err = cfg.Build()
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not build logger")
	}

	return base.Sugar(), func() { _ = base.Sync() }, nil
}
