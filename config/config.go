package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	env    string
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		env:    env,
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) Env() string {
	return c.env
}

const (
	defaultWindowWidth   = 1200
	defaultWindowHeight  = 800
	defaultWindowTitle   = "vect2d playground"
	defaultTolerance     = 1e-9
	defaultRotationSpeed = 0.01
	defaultGravity       = -9.8
	defaultPixelsPerUnit = 40.0
	defaultLogLevel      = "info"
)

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}
	if windowWidth <= 0 {
		windowWidth = defaultWindowWidth
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}
	if windowHeight <= 0 {
		windowHeight = defaultWindowHeight
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}
	if len(windowTitle) == 0 {
		windowTitle = defaultWindowTitle
	}

	return windowTitle
}

// GetTolerance is the epsilon used when comparing vectors for display.
func (c *Config) GetTolerance() float64 {
	tolerance := c.getFloat("TOLERANCE", "geometry.tolerance", defaultTolerance)
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}

	return tolerance
}

// GetRotationSpeed is in radians per tick.
func (c *Config) GetRotationSpeed() float64 {
	return c.getFloat("ROTATION_SPEED", "playground.rotationspeed", defaultRotationSpeed)
}

// GetGravity is the vertical acceleration of the particle world in units/s^2.
// Zero is a valid setting.
func (c *Config) GetGravity() float64 {
	return c.getFloat("GRAVITY", "sim.gravity", defaultGravity)
}

func (c *Config) GetPixelsPerUnit() float64 {
	pixelsPerUnit := c.getFloat("PIXELS_PER_UNIT", "playground.pixelsperunit", defaultPixelsPerUnit)
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = defaultPixelsPerUnit
	}

	return pixelsPerUnit
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}
	if len(logLevel) == 0 {
		logLevel = defaultLogLevel
	}

	return logLevel
}

func (c *Config) getFloat(envKey, fileKey string, fallback float64) float64 {
	if c.config.IsSet(envKey) {
		return c.config.GetFloat64(envKey)
	}
	if c.config.IsSet(fileKey) {
		return c.config.GetFloat64(fileKey)
	}

	return fallback
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
