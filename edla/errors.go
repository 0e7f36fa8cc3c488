// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is matched by every *ConfigError using errors.Is
	ErrConfig = errors.New("edla: configuration error")

	// ErrNotBuilt is returned when using a Network before Config
	ErrNotBuilt = errors.New("edla: network not configured")

	// ErrPatternSize is returned for input or target patterns of the wrong length
	ErrPatternSize = errors.New("edla: pattern size mismatch")
)

// ConfigError reports an inconsistent network dimension or parameter.
// It is fatal for the run and surfaced when the network is configured.
type ConfigError struct {
	Field string
	Value any
	Msg   string
}

func (ce *ConfigError) Error() string {
	return fmt.Sprintf("edla: invalid %s = %v: %s", ce.Field, ce.Value, ce.Msg)
}

func (ce *ConfigError) Is(target error) bool { return target == ErrConfig }

func configErr(field string, val any, msg string) error {
	return &ConfigError{Field: field, Value: val, Msg: msg}
}
