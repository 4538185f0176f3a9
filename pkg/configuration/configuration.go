package configuration

import (
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type DefaultValueFunction func(existingValue interface{}) interface{}

type configType string

const inMemory configType = "in-memory"
const configFile configType = "file"

const defaultConfigName = "android-useragent"

// Configuration is an interface for managing configuration values.
type Configuration interface {
	Clone() Configuration

	Set(key string, value interface{})
	Get(key string) interface{}
	IsSet(key string) bool
	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int

	AddFlagSet(flagset *pflag.FlagSet) error
	AllKeys() []string
	AddDefaultValue(key string, defaultValue DefaultValueFunction)
	AddAlternativeKeys(key string, altKeys []string)
	GetAlternativeKeys(key string) []string
}

// extendedViper is a wrapper around the viper library.
// It adds support for default values and alternative keys.
type extendedViper struct {
	viper           *viper.Viper
	alternativeKeys map[string][]string
	defaultValues   map[string]DefaultValueFunction
	configType      configType
	files           []string
	mutex           sync.Mutex
}

// StandardDefaultValueFunction is a default value function that returns the default value if the existing value is nil.
func StandardDefaultValueFunction(defaultValue interface{}) DefaultValueFunction {
	return func(existingValue interface{}) interface{} {
		if existingValue != nil {
			return existingValue
		} else {
			return defaultValue
		}
	}
}

// determineBasePath returns the base path for the configuration files.
func determineBasePath() string {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	result := path.Join(homedir, ".config", defaultConfigName)
	return result
}

// New creates a configuration reading the default config file, if any.
func New() Configuration {
	config := NewFromFiles(defaultConfigName)
	return config
}

// NewFromFiles creates a new Configuration instance from the given files.
// A file with an extension is used as is, otherwise it is looked up by name
// in the base path and the working directory.
func NewFromFiles(files ...string) Configuration {
	config := createViperDefaultConfig()
	config.configType = configFile
	config.files = files
	readConfigFilesIntoViper(files, config)
	return config
}

// NewInMemory creates a new Configuration instance that is not backed by a file.
func NewInMemory() Configuration {
	config := createViperDefaultConfig()
	config.configType = inMemory
	return config
}

func createViperDefaultConfig() *extendedViper {
	// prepare environment variables
	config := &extendedViper{
		viper:           viper.New(),
		alternativeKeys: make(map[string][]string),
		defaultValues:   make(map[string]DefaultValueFunction),
	}
	config.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.viper.AutomaticEnv()

	for key, altKeys := range alternativeKeys {
		config.alternativeKeys[key] = altKeys
	}
	return config
}

func readConfigFilesIntoViper(files []string, config *extendedViper) {
	for _, file := range files {
		if filepath.Ext(file) != "" {
			config.viper.SetConfigFile(file)
		} else {
			config.viper.SetConfigName(file)
		}
	}

	config.viper.AddConfigPath(determineBasePath())
	config.viper.AddConfigPath(".")

	// a missing config file is not an error
	_ = config.viper.ReadInConfig()
}

// Clone creates a copy of the current configuration.
func (ev *extendedViper) Clone() Configuration {
	ev.mutex.Lock()
	defer ev.mutex.Unlock()

	var clone Configuration
	if ev.configType == configFile {
		clone = NewFromFiles(ev.files...)
	} else {
		clone = NewInMemory()
	}

	keys := ev.viper.AllKeys()
	for i := range keys {
		if isSet := ev.viper.IsSet(keys[i]); isSet {
			clone.Set(keys[i], ev.viper.Get(keys[i]))
		}
	}

	for k, v := range ev.defaultValues {
		clone.AddDefaultValue(k, v)
	}

	for k, v := range ev.alternativeKeys {
		clone.AddAlternativeKeys(k, v)
	}

	return clone
}

// Set sets a configuration value.
func (ev *extendedViper) Set(key string, value interface{}) {
	ev.mutex.Lock()
	defer ev.mutex.Unlock()

	ev.viper.Set(key, value)
}

func (ev *extendedViper) get(key string) interface{} {
	ev.mutex.Lock()
	defer ev.mutex.Unlock()

	if ev.viper.IsSet(key) {
		return ev.viper.Get(key)
	}

	// the first alternative key that is set wins
	for _, altKey := range ev.alternativeKeys[key] {
		if ev.viper.IsSet(altKey) {
			return ev.viper.Get(altKey)
		}
	}

	return ev.viper.Get(key)
}

// IsSet returns true if a value for the given key or one of its alternative keys was explicitly set.
func (ev *extendedViper) IsSet(key string) bool {
	ev.mutex.Lock()
	defer ev.mutex.Unlock()

	if ev.viper.IsSet(key) {
		return true
	}
	for _, altKey := range ev.alternativeKeys[key] {
		if ev.viper.IsSet(altKey) {
			return true
		}
	}
	return false
}

// Get returns a configuration value.
func (ev *extendedViper) Get(key string) interface{} {
	// use synchronized get()
	value := ev.get(key)

	if ev.defaultValues[key] != nil {
		value = ev.defaultValues[key](value)
	}

	return value
}

// GetString returns a configuration value as string.
func (ev *extendedViper) GetString(key string) string {
	result := ev.Get(key)
	if result == nil {
		return ""
	}

	switch v := result.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}

	return ""
}

// GetBool returns a configuration value as bool.
func (ev *extendedViper) GetBool(key string) bool {
	result := ev.Get(key)
	if result == nil {
		return false
	}

	switch v := result.(type) {
	case bool:
		return v
	case string:
		boolResult, _ := strconv.ParseBool(strings.TrimSpace(v))
		return boolResult
	}

	return false
}

// GetInt returns a configuration value as int.
func (ev *extendedViper) GetInt(key string) int {
	result := ev.Get(key)
	if result == nil {
		return 0
	}

	switch v := result.(type) {
	case string:
		temp, _ := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		return int(temp)
	case float32:
		return int(v)
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}

	return 0
}

// AddFlagSet adds a flag set to the configuration.
func (ev *extendedViper) AddFlagSet(flagset *pflag.FlagSet) error {
	return ev.viper.BindPFlags(flagset)
}

// AllKeys returns all keys of the configuration.
func (ev *extendedViper) AllKeys() []string {
	keys := ev.viper.AllKeys()

	for k := range ev.defaultValues {
		keys = append(keys, k)
	}

	return keys
}

// AddDefaultValue adds a default value to the configuration.
func (ev *extendedViper) AddDefaultValue(key string, defaultValue DefaultValueFunction) {
	ev.defaultValues[key] = defaultValue
}

// AddAlternativeKeys adds alternative keys to the configuration.
func (ev *extendedViper) AddAlternativeKeys(key string, altKeys []string) {
	ev.alternativeKeys[key] = altKeys
}

// GetAlternativeKeys returns alternative keys from the configuration.
func (ev *extendedViper) GetAlternativeKeys(key string) []string {
	return ev.alternativeKeys[key]
}
