package config

import "errors"

// ErrNoConfigFile is returned when no candidate config path exists and is
// readable.
var ErrNoConfigFile = errors.New("unable to find a config file")
