package configs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"github.com/t3chE/online-bookstore-final-assessment/domain"
	"github.com/t3chE/online-bookstore-final-assessment/internal/discount"
)

type CatalogEntry struct {
	Title    string `koanf:"title"`
	Category string `koanf:"category"`
	Price    string `koanf:"price"`
	Image    string `koanf:"image"`
}

type DiscountEntry struct {
	Code    string `koanf:"code"`
	Percent int    `koanf:"percent"`
	Amount  string `koanf:"amount"`
}

type Config struct {
	App struct {
		Name        string `koanf:"name"`
		LogPath     string `koanf:"log_path"`
		MetricsAddr string `koanf:"metrics_addr"`
	} `koanf:"app"`

	Inventory struct {
		DefaultStock int `koanf:"default_stock"`
	} `koanf:"inventory"`

	Catalog   []CatalogEntry  `koanf:"catalog"`
	Discounts []DiscountEntry `koanf:"discounts"`
}

// Load reads the YAML config at path and overlays BOOKSHOP_-prefixed
// environment variables (nested keys with __, e.g. BOOKSHOP_APP__NAME).
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := k.Load(env.Provider("BOOKSHOP_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "BOOKSHOP_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.Name == "" {
		return errors.New("app.name is required")
	}
	if c.Inventory.DefaultStock < 0 {
		return errors.New("inventory.default_stock must not be negative")
	}
	if len(c.Catalog) == 0 {
		return errors.New("catalog must not be empty")
	}
	for _, e := range c.Catalog {
		if e.Title == "" {
			return errors.New("catalog entry without a title")
		}
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			return fmt.Errorf("catalog %q: bad price %q: %w", e.Title, e.Price, err)
		}
		if price.IsNegative() {
			return fmt.Errorf("catalog %q: price must not be negative", e.Title)
		}
	}
	for _, d := range c.Discounts {
		if d.Code == "" {
			return errors.New("discount entry without a code")
		}
		if d.Percent < 0 || d.Percent > 100 {
			return fmt.Errorf("discount %q: percent out of range", d.Code)
		}
		if d.Amount != "" {
			if _, err := decimal.NewFromString(d.Amount); err != nil {
				return fmt.Errorf("discount %q: bad amount %q: %w", d.Code, d.Amount, err)
			}
		}
	}
	return nil
}

// Books converts the catalog seed into domain books. Call after
// Validate; prices are known to parse.
func (c Config) Books() []domain.Book {
	books := make([]domain.Book, 0, len(c.Catalog))
	for _, e := range c.Catalog {
		price, _ := decimal.NewFromString(e.Price)
		books = append(books, domain.Book{
			Title:     e.Title,
			Category:  e.Category,
			UnitPrice: price,
			ImageRef:  e.Image,
		})
	}
	return books
}

// Rules converts the discount seed into registry rules.
func (c Config) Rules() []discount.Rule {
	rules := make([]discount.Rule, 0, len(c.Discounts))
	for _, d := range c.Discounts {
		rule := discount.Rule{Code: d.Code, Percent: d.Percent}
		if d.Amount != "" {
			rule.Amount, _ = decimal.NewFromString(d.Amount)
		}
		rules = append(rules, rule)
	}
	return rules
}
