package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownDataDriver error if config data.driver is not supported.
	ErrUnknownDataDriver = errors.New("toml config data.driver must be one of file, sqlite, mysql, postgres")

	// ErrEmptyDataDir error if the file driver has no directory.
	ErrEmptyDataDir = errors.New("toml config data.dir can not be empty with the file driver")

	// ErrEmptyBackupDir error if backups are enabled without a target directory.
	ErrEmptyBackupDir = errors.New("toml config backup.dir can not be empty when backups are enabled")
)
