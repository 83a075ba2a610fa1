package policy

import "errors"

var (
	ErrSettingsNotFound = errors.New("policy settings not found")
)
