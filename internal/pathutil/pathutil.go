// Package pathutil resolves where exerun keeps its files
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvName selects an isolated set of files, e.g. EXERUN_ENV=dev.
const EnvName = "EXERUN_ENV"

const appDir = "exerun"

// Paths is the file layout of one environment.
type Paths struct {
	Config string
	DB     string
	Status string
	Log    string
	Sounds string
}

var (
	current *Paths
	once    sync.Once
)

// Initialize resolves the layout for the environment named by EXERUN_ENV.
// It must be called once at program startup.
func Initialize() error {
	var err error

	once.Do(func() {
		current, err = Resolve(os.Getenv(EnvName))
	})

	return err
}

// Resolve computes the layout of env. The empty env is the default one.
// Custom sounds are shared by all environments.
func Resolve(env string) (*Paths, error) {
	suffix := ""
	if env = strings.TrimSpace(env); env != "" {
		suffix = "_" + env
	}

	configFile, err := xdg.ConfigFile(filepath.Join(appDir, "config"+suffix+".yml"))
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	dataDir, err := xdg.DataFile(appDir)
	if err != nil {
		return nil, fmt.Errorf("resolving data dir: %w", err)
	}

	return &Paths{
		Config: configFile,
		DB:     filepath.Join(dataDir, appDir+suffix+".db"),
		Status: filepath.Join(dataDir, "status"+suffix+".json"),
		Log:    filepath.Join(dataDir, "log", appDir+suffix+".log"),
		Sounds: filepath.Join(dataDir, "sounds"),
	}, nil
}

func mustGet() *Paths {
	if current == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return current
}

func ConfigFilePath() string {
	return mustGet().Config
}

func DBFilePath() string {
	return mustGet().DB
}

func StatusFilePath() string {
	return mustGet().Status
}

func LogFilePath() string {
	return mustGet().Log
}

// SoundDir is where custom cue sounds are looked up.
func SoundDir() string {
	return mustGet().Sounds
}

// StripExtension returns the file name without its extension.
func StripExtension(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
