// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

const (
	// DefaultConfigFileName is the name of the configuration file in MdscanHomeDir
	DefaultConfigFileName = "config"
	// MdscanHomeDir is the mdscan directory in the user home
	MdscanHomeDir = ".mdscan"
	// MdscanConfigEnv names the environment variable with the configuration file path
	MdscanConfigEnv = "MDSCANCONFIG"
)

// Loader loads the rewrite configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultConfigurationLoader loads the configuration from the file
// named by MdscanConfigEnv or else from $HOME/.mdscan/config, if it exists
type DefaultConfigurationLoader struct{}

// Load implements Loader
func (d *DefaultConfigurationLoader) Load() (*Config, error) {
	if configFilePath, found := os.LookupEnv(MdscanConfigEnv); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", MdscanConfigEnv)
		}
		return load(configFilePath)
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		klog.Warningf("failed to get user home directory: %v", err)
		return &Config{}, nil
	}
	configFilePath := filepath.Join(userHomeDir, MdscanHomeDir, DefaultConfigFileName)
	if _, err := os.Stat(configFilePath); errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return load(configFilePath)
}

// FileLoader loads the configuration from a given file path
type FileLoader string

// Load implements Loader
func (f FileLoader) Load() (*Config, error) {
	return load(string(f))
}

func load(configFilePath string) (*Config, error) {
	stat, err := os.Stat(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %w", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", configFilePath, err)
	}
	klog.V(6).Infof("loaded configuration from %s", configFilePath)
	return config, nil
}
