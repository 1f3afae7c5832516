package trash

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"time"

	"github.com/babarot/trashcan/internal/config"
	"github.com/docker/go-units"
	"github.com/gobwas/glob"
	"github.com/k1LoW/duration"
	"github.com/samber/lo"
)

// Filterable defines what a listed entry must provide to be filtered
type Filterable interface {
	// GetName returns the base name of the original path
	GetName() string
	// GetPath returns the current path in trash
	GetPath() string
	// GetDeletedAt returns when the entry was trashed
	GetDeletedAt() time.Time
	// GetSize returns the size in bytes (negative when unknown)
	GetSize() int64
}

// FilterOptions holds filtering configuration
type FilterOptions struct {
	Include config.IncludeConfig
	Exclude config.ExcludeConfig

	// Within overrides Include.WithinDays when set (e.g. "3 days")
	Within string
}

// Filter applies the list filters to items, keeping their order
func Filter[T Filterable](items []T, opts FilterOptions) []T {
	items = rejectByNames(items, opts.Exclude.Files)
	items = rejectByPatterns(items, opts.Exclude.Patterns)
	items = rejectByGlobs(items, opts.Exclude.Globs)
	items = rejectBySize(items, opts.Exclude.Size)
	items = filterByPeriod(items, period(opts))
	return items
}

func period(opts FilterOptions) string {
	if opts.Within != "" {
		return opts.Within
	}
	if opts.Include.WithinDays > 0 {
		return fmt.Sprintf("%d days", opts.Include.WithinDays)
	}
	return ""
}

func rejectByNames[T Filterable](items []T, names []string) []T {
	if len(names) == 0 {
		return items
	}
	return lo.Reject(items, func(item T, _ int) bool {
		return slices.Contains(names, item.GetName())
	})
}

func rejectByPatterns[T Filterable](items []T, patterns []string) []T {
	if len(patterns) == 0 {
		return items
	}
	var res []*regexp.Regexp
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			slog.Warn("ignoring invalid exclude pattern", "pattern", p, "error", err)
			continue
		}
		res = append(res, re)
	}
	return lo.Reject(items, func(item T, _ int) bool {
		return lo.SomeBy(res, func(re *regexp.Regexp) bool {
			return re.MatchString(item.GetName())
		})
	})
}

func rejectByGlobs[T Filterable](items []T, globs []string) []T {
	if len(globs) == 0 {
		return items
	}
	var matchers []glob.Glob
	for _, g := range globs {
		m, err := glob.Compile(g)
		if err != nil {
			slog.Warn("ignoring invalid exclude glob", "glob", g, "error", err)
			continue
		}
		matchers = append(matchers, m)
	}
	return lo.Reject(items, func(item T, _ int) bool {
		return lo.SomeBy(matchers, func(m glob.Glob) bool {
			return m.Match(item.GetName())
		})
	})
}

func rejectBySize[T Filterable](items []T, size config.SizeConfig) []T {
	if size.Min == "" && size.Max == "" {
		return items
	}
	minSize, maxSize := int64(-1), int64(-1)
	if size.Min != "" {
		if v, err := units.FromHumanSize(size.Min); err == nil {
			minSize = v
		}
	}
	if size.Max != "" {
		if v, err := units.FromHumanSize(size.Max); err == nil {
			maxSize = v
		}
	}
	return lo.Filter(items, func(item T, _ int) bool {
		s := item.GetSize()
		if s < 0 {
			// size unknown
			return false
		}
		if minSize >= 0 && s <= minSize {
			return false
		}
		if maxSize >= 0 && maxSize <= s {
			return false
		}
		return true
	})
}

func filterByPeriod[T Filterable](items []T, within string) []T {
	if within == "" {
		return items
	}
	d, err := duration.Parse(within)
	if err != nil {
		slog.Error("failed to parse duration", "within", within, "error", err)
		return items
	}
	return lo.Filter(items, func(item T, _ int) bool {
		return time.Since(item.GetDeletedAt()) < d
	})
}
