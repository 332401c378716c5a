package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	StartDir    string
	Theme       Theme
	CacheCap    int
	ExportOut   string
	ShowVersion bool
}

func Load() (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("fileexplorer", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.StartDir, "dir", "", "directory to start browsing in (default: working directory)")
	theme := string(ThemeDark)
	fs.StringVar(&theme, "theme", getenvDefault("FILEEXPLORER_THEME", string(ThemeDark)), "theme: dark|light")
	fs.IntVar(&cfg.CacheCap, "cache", getenvDefaultInt("FILEEXPLORER_CACHE", 64), "render cache capacity in records (min 8)")
	fs.StringVar(&cfg.ExportOut, "out", "export.jsonl", "output path for record export")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}
	cfg.Theme = Theme(theme)

	// A bare positional argument also selects the start directory.
	if cfg.StartDir == "" && fs.NArg() > 0 {
		cfg.StartDir = fs.Arg(0)
	}
	if cfg.StartDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg.StartDir = wd
	}

	if cfg.CacheCap < 8 {
		cfg.CacheCap = 8
	}

	return cfg, nil
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvDefaultInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func (c *Config) String() string {
	return fmt.Sprintf("dir=%s theme=%s cache=%d", c.StartDir, c.Theme, c.CacheCap)
}
