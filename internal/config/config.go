package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Server
	Port        string
	FrontendURL string

	// Redis (optional frame/cue publishing)
	RedisURL          string
	RedisPublishEvery int

	// Security
	JWTSecret         string
	ControllerPINHash string // bcrypt; single-quote it in .env so '$' is not expanded
	SessionTTLMinutes int

	// Game Settings
	Game Game
}

// Game holds the static simulation settings. It is read once at startup.
type Game struct {
	FieldWidth   int `toml:"field_width"`
	FieldHeight  int `toml:"field_height"`
	PaddleWidth  int `toml:"paddle_width"`
	PaddleHeight int `toml:"paddle_height"`
	PaddleOffset int `toml:"paddle_offset"` // gap between each paddle and its goal line
	PaddleSpeed  int `toml:"paddle_speed"`
	AISpeed      int `toml:"ai_speed"`
	AIDeadZone   int `toml:"ai_dead_zone"`
	BallSize     int `toml:"ball_size"`

	// Horizontal serve speed is drawn from [BallSpeedMin, BallSpeedMax).
	BallSpeedMin int `toml:"ball_speed_min"`
	BallSpeedMax int `toml:"ball_speed_max"`
	// Vertical serve speed is drawn from [ServeSpeedYMin, ServeSpeedYMax).
	ServeSpeedYMin int `toml:"serve_speed_y_min"`
	ServeSpeedYMax int `toml:"serve_speed_y_max"`

	WinScore int   `toml:"win_score"`
	TickRate int   `toml:"tick_rate"`
	Seed     int64 `toml:"seed"` // 0 seeds from the clock
}

// DefaultGame returns the classic settings: 800x600 at 60 ticks, first to 5.
func DefaultGame() Game {
	return Game{
		FieldWidth:     800,
		FieldHeight:    600,
		PaddleWidth:    12,
		PaddleHeight:   100,
		PaddleOffset:   30,
		PaddleSpeed:    6,
		AISpeed:        5,
		AIDeadZone:     10,
		BallSize:       14,
		BallSpeedMin:   5,
		BallSpeedMax:   8,
		ServeSpeedYMin: 3,
		ServeSpeedYMax: 7,
		WinScore:       5,
		TickRate:       60,
	}
}

// Load reads .env (if present), an optional TOML file named by
// PONG_CONFIG_FILE, then environment overrides.
func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	g := DefaultGame()
	if path := os.Getenv("PONG_CONFIG_FILE"); path != "" {
		if err := LoadGameFile(path, &g); err != nil {
			return nil, err
		}
		log.Printf("[CONFIG] Game settings loaded from %s", path)
	}

	env := &envReader{}
	cfg := &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Redis
		RedisURL:          getEnv("REDIS_URL", ""),
		RedisPublishEvery: env.getInt("REDIS_PUBLISH_EVERY", 1),

		// Security
		JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
		ControllerPINHash: getEnv("CONTROLLER_PIN_HASH", ""),
		SessionTTLMinutes: env.getInt("SESSION_TTL_MINUTES", 120),

		// Game Settings
		Game: Game{
			FieldWidth:     env.getInt("FIELD_WIDTH", g.FieldWidth),
			FieldHeight:    env.getInt("FIELD_HEIGHT", g.FieldHeight),
			PaddleWidth:    env.getInt("PADDLE_WIDTH", g.PaddleWidth),
			PaddleHeight:   env.getInt("PADDLE_HEIGHT", g.PaddleHeight),
			PaddleOffset:   env.getInt("PADDLE_OFFSET", g.PaddleOffset),
			PaddleSpeed:    env.getInt("PADDLE_SPEED", g.PaddleSpeed),
			AISpeed:        env.getInt("AI_SPEED", g.AISpeed),
			AIDeadZone:     env.getInt("AI_DEAD_ZONE", g.AIDeadZone),
			BallSize:       env.getInt("BALL_SIZE", g.BallSize),
			BallSpeedMin:   env.getInt("BALL_SPEED_MIN", g.BallSpeedMin),
			BallSpeedMax:   env.getInt("BALL_SPEED_MAX", g.BallSpeedMax),
			ServeSpeedYMin: env.getInt("SERVE_SPEED_Y_MIN", g.ServeSpeedYMin),
			ServeSpeedYMax: env.getInt("SERVE_SPEED_Y_MAX", g.ServeSpeedYMax),
			WinScore:       env.getInt("WIN_SCORE", g.WinScore),
			TickRate:       env.getInt("TICK_RATE", g.TickRate),
			Seed:           env.getInt64("GAME_SEED", g.Seed),
		},
	}

	if len(env.errs) > 0 {
		return nil, fmt.Errorf("invalid config: %w", errors.Join(env.errs...))
	}
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadGameFile decodes a TOML file over g. Keys missing from the file keep
// their current values.
func LoadGameFile(path string, g *Game) error {
	if _, err := toml.DecodeFile(path, g); err != nil {
		return fmt.Errorf("failed to decode game config %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// envReader parses numeric overrides and keeps every malformed one.
type envReader struct {
	errs []error
}

func (r *envReader) getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s=%q is not an integer", key, value))
		return defaultValue
	}
	return intVal
}

func (r *envReader) getInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s=%q is not an integer", key, value))
		return defaultValue
	}
	return intVal
}
