package main

import (
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/theflywheel/probemap"
)

type logConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max_size"`
	MaxDays    int    `toml:"max_days"`
	MaxBackups int    `toml:"max_backups"`
}

type exampleConfig struct {
	Map probemap.Config `toml:"map"`
	Log logConfig       `toml:"log"`
}

func loadConfig(path string) (exampleConfig, error) {
	cfg := exampleConfig{
		Map: probemap.DefaultConfig(),
		Log: logConfig{Level: "debug", Format: "console"},
	}
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return cfg, cfg.Map.Validate()
}

func newLogger(cfg logConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	sink := zapcore.AddSync(os.Stdout)
	if cfg.Filename != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxDays,
			MaxBackups: cfg.MaxBackups,
		})
	}
	return zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller()), nil
}

func main() {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := loadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	m, err := probemap.New(cfg.Map, probemap.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}

	fmt.Printf("Map created: strategy=%s capacity=%d\n", cfg.Map.Strategy, m.Cap())

	// Insert some data
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("p%d", i)
		if err := m.Put(key, &probemap.Point{X: float64(i), Y: float64(i * 100)}); err != nil {
			log.Fatalf("Failed to insert key %s: %v", key, err)
		}
	}

	fmt.Printf("Inserted 10 points, capacity is now %d\n", m.Cap())

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("p%d", i)
		if p, ok := m.GetSafe(key); ok {
			fmt.Printf("Key %s => (%g, %g)\n", key, p.X, p.Y)
		} else {
			fmt.Printf("Key %s not found\n", key)
		}
	}

	// Putting an existing key keeps the first value
	if err := m.Put("p2", &probemap.Point{X: 999}); err != nil {
		log.Fatalf("Failed to put key: %v", err)
	}
	fmt.Printf("Key p2 after second put => X=%g\n", m.Get("p2").X)

	if removed, ok := m.Remove("p4"); ok {
		fmt.Printf("Removed p4 => (%g, %g)\n", removed.X, removed.Y)
	}
	fallback := &probemap.Point{X: -1, Y: -1}
	p := m.GetOrElse("p4", fallback)
	fmt.Printf("Key p4 after remove => (%g, %g)\n", p.X, p.Y)

	stats := m.Stats()
	fmt.Printf("Size=%d Capacity=%d Tombstones=%d Resizes=%d\n",
		stats.Size, stats.Capacity, stats.Tombstones, stats.Resizes)

	fmt.Println("Example completed successfully")
}
