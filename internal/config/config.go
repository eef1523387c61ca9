package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"haircut/internal/game"
)

// FileName is the optional settings file looked up in the config directory.
const FileName = "haircut.json"

// Settings is everything the desktop driver needs to start a session.
type Settings struct {
	LogLevel     string
	Seed         uint64 // 0 means seed from the clock
	WindowWidth  int
	WindowHeight int
	Tuning       game.Tuning
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("seed", 0)
	viper.SetDefault("window.width", 800)
	viper.SetDefault("window.height", 600)

	t := game.DefaultTuning()
	viper.SetDefault("tuning.courtRadius.x", t.CourtRadius.X())
	viper.SetDefault("tuning.courtRadius.y", t.CourtRadius.Y())
	viper.SetDefault("tuning.knifeStart.x", t.KnifeStart.X())
	viper.SetDefault("tuning.knifeStart.y", t.KnifeStart.Y())
	viper.SetDefault("tuning.knifeRadius.x", t.KnifeRadius.X())
	viper.SetDefault("tuning.knifeRadius.y", t.KnifeRadius.Y())
	viper.SetDefault("tuning.knifeSpeed", t.KnifeSpeed)
	viper.SetDefault("tuning.lives", t.Lives)
	viper.SetDefault("tuning.headRadius.x", t.HeadRadius.X())
	viper.SetDefault("tuning.headRadius.y", t.HeadRadius.Y())
	viper.SetDefault("tuning.defaultHairLength", t.DefaultHairLength)
	viper.SetDefault("tuning.disappearTime", t.DisappearTime)
	viper.SetDefault("tuning.reappearTime", t.ReappearTime)
	viper.SetDefault("tuning.happyThreshold", t.HappyThreshold)
	viper.SetDefault("tuning.cutTime", t.CutTime)
	viper.SetDefault("tuning.minHeadSpeed", t.MinHeadSpeed)
	viper.SetDefault("tuning.maxHeadSpeed", t.MaxHeadSpeed)
}

// BindFlags registers the command line overrides on fs and binds them.
func BindFlags(fs *pflag.FlagSet) error {
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.Uint64("seed", 0, "random seed, 0 to seed from the clock")
	if err := viper.BindPFlag("logLevel", fs.Lookup("log-level")); err != nil {
		return fmt.Errorf("bind log-level: %w", err)
	}
	if err := viper.BindPFlag("seed", fs.Lookup("seed")); err != nil {
		return fmt.Errorf("bind seed: %w", err)
	}
	return nil
}

// Load sets defaults, reads haircut.json from configDir if present and
// applies HAIRCUT_* environment overrides (HAIRCUT_SEED, HAIRCUT_TUNING_LIVES, ...).
func Load(configDir string) (Settings, error) {
	setDefaults()

	viper.SetEnvPrefix("haircut")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(strings.TrimSuffix(FileName, ".json"))
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return current(), nil
}

func current() Settings {
	return Settings{
		LogLevel:     viper.GetString("logLevel"),
		Seed:         viper.GetUint64("seed"),
		WindowWidth:  viper.GetInt("window.width"),
		WindowHeight: viper.GetInt("window.height"),
		Tuning: game.Tuning{
			CourtRadius:       vec2("tuning.courtRadius"),
			KnifeStart:        vec2("tuning.knifeStart"),
			KnifeRadius:       vec2("tuning.knifeRadius"),
			KnifeSpeed:        f32("tuning.knifeSpeed"),
			Lives:             viper.GetUint32("tuning.lives"),
			HeadRadius:        vec2("tuning.headRadius"),
			DefaultHairLength: f32("tuning.defaultHairLength"),
			DisappearTime:     f32("tuning.disappearTime"),
			ReappearTime:      f32("tuning.reappearTime"),
			HappyThreshold:    f32("tuning.happyThreshold"),
			CutTime:           f32("tuning.cutTime"),
			MinHeadSpeed:      f32("tuning.minHeadSpeed"),
			MaxHeadSpeed:      f32("tuning.maxHeadSpeed"),
		},
	}
}

func f32(key string) float32 {
	return float32(viper.GetFloat64(key))
}

func vec2(key string) mgl32.Vec2 {
	return mgl32.Vec2{f32(key + ".x"), f32(key + ".y")}
}
