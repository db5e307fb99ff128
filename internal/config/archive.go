package config

import "fmt"

// Archive backends.
const (
	ArchiveNone = "none"
	ArchiveFS   = "fs"
	ArchiveGCS  = "gcs"
)

// ArchiveConfig selects where report snapshots are stored.
type ArchiveConfig struct {
	Type      string `yaml:"type" env:"TASKS_ARCHIVE_TYPE" env-default:"fs"`
	FSDir     string `yaml:"fs_dir" env:"TASKS_ARCHIVE_FS_DIR" env-default:"./tasks-data/snapshots"`
	GCSBucket string `yaml:"gcs_bucket" env:"TASKS_ARCHIVE_GCS_BUCKET"`
	GCSPrefix string `yaml:"gcs_prefix" env:"TASKS_ARCHIVE_GCS_PREFIX" env-default:"snapshots/"`
}

// Validate validates the archive configuration.
func (c *ArchiveConfig) Validate() error {
	switch c.Type {
	case ArchiveNone:
	case ArchiveFS:
		if c.FSDir == "" {
			return fmt.Errorf("TASKS_ARCHIVE_FS_DIR is required when TASKS_ARCHIVE_TYPE is 'fs'")
		}
	case ArchiveGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("TASKS_ARCHIVE_GCS_BUCKET is required when TASKS_ARCHIVE_TYPE is 'gcs'")
		}
	default:
		return fmt.Errorf("unknown TASKS_ARCHIVE_TYPE: %s", c.Type)
	}
	return nil
}
