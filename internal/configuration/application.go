package configuration

import (
	"fmt"

	"github.com/desertwitch/fontscan/internal/schema"
)

// Keys of the configuration file.
const (
	KeyRecursive      = "SCAN_RECURSIVE"
	KeyIncludeHidden  = "SCAN_INCLUDE_HIDDEN"
	KeyMaxDepth       = "SCAN_MAX_DEPTH"
	KeyFollowSymlinks = "SCAN_FOLLOW_SYMLINKS"
	KeyFilters        = "SCAN_FILTERS"
	KeyMaxEntrySize   = "SCAN_MAX_ENTRY_SIZE"
	KeyExclude        = "SCAN_EXCLUDE"
	KeyCopyOverwrite  = "COPY_OVERWRITE"
)

// AppConfiguration is the principal structure holding the application configuration.
type AppConfiguration struct {
	Traversal     schema.TraversalConfig
	CopyOverwrite bool
}

// NewAppConfiguration returns a pointer to a new [AppConfiguration] holding
// the defaults.
func NewAppConfiguration() *AppConfiguration {
	return &AppConfiguration{
		Traversal: schema.DefaultTraversalConfig(),
	}
}

// Load returns the [AppConfiguration] of the given configuration files. The
// defaults are returned without any files. Invalid values are ignored in
// favor of the defaults.
func (c *Handler) Load(filenames ...string) (*AppConfiguration, error) {
	config := NewAppConfiguration()

	if len(filenames) == 0 {
		return config, nil
	}

	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-load) %w", err)
	}

	config.Apply(envMap)

	return config, nil
}

// Apply sets all values present in a configuration map (map[key]value).
func (a *AppConfiguration) Apply(envMap map[string]string) {
	if v, ok := MapKeyToBool(envMap, KeyRecursive); ok {
		a.Traversal.Recursive = v
	}

	if v, ok := MapKeyToBool(envMap, KeyIncludeHidden); ok {
		a.Traversal.IncludeHidden = v
	}

	if v, ok := MapKeyToUint64(envMap, KeyMaxDepth); ok {
		a.Traversal.MaxDepth = schema.DepthLimit(uint(v))
	}

	if v, ok := MapKeyToBool(envMap, KeyFollowSymlinks); ok {
		a.Traversal.FollowSymlinks = v
	}

	if v := MapKeyToList(envMap, KeyFilters); v != nil {
		a.Traversal.NameFilters = v
	}

	if v, ok := MapKeyToUint64(envMap, KeyMaxEntrySize); ok {
		a.Traversal.MaxEntrySize = schema.SizeLimit(v)
	}

	if v := MapKeyToList(envMap, KeyExclude); v != nil {
		a.Traversal.ExcludePatterns = v
	}

	if v, ok := MapKeyToBool(envMap, KeyCopyOverwrite); ok {
		a.CopyOverwrite = v
	}
}
