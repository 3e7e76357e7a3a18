package main

import (
	"context"
	"errors"
	"os"
	"time"

	"monjoel_backend/internal/pricebook/repository"
	"monjoel_backend/internal/pricing"
	settingsrepo "monjoel_backend/internal/settings/repository"
	settingsservice "monjoel_backend/internal/settings/service"
	"monjoel_backend/platform/apperr"
	"monjoel_backend/platform/config"
	"monjoel_backend/platform/db"
	"monjoel_backend/platform/logger"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const pricebookSeedPath = "seed/pricebook.yaml"
const settingsSeedPath = "seed/settings.yaml"

type seedItem struct {
	Code               string `yaml:"code"`
	Label              string `yaml:"label"`
	Category           string `yaml:"category"`
	BasePriceCents     int64  `yaml:"basePriceCents"`
	DurationMinMinutes int    `yaml:"durationMinMinutes"`
	DurationMaxMinutes int    `yaml:"durationMaxMinutes"`
}

type seedSurcharges struct {
	NightPct   int `yaml:"nightPct"`
	WeekendPct int `yaml:"weekendPct"`
	UrgentPct  int `yaml:"urgentPct"`
	HolidayPct int `yaml:"holidayPct"`
}

type pricebookSeed struct {
	Surcharges seedSurcharges `yaml:"surcharges"`
	Items      []seedItem     `yaml:"items"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("seeding database")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	seedPricebook(ctx, log, repository.New(pool))
	seedSettings(ctx, log, settingsrepo.New(pool))

	log.Info("seed complete")
}

func seedPricebook(ctx context.Context, log *logger.Logger, repo *repository.Repository) {
	seed := loadPricebookSeed(log)

	rows := pricebookRows(seed)
	created := 0
	for _, row := range rows {
		if _, err := repo.Create(ctx, row); err != nil {
			if apperr.Is(err, apperr.KindConflict) {
				continue
			}
			log.Error("failed to seed pricebook item", "code", row.Code, "error", err)
			panic("failed to seed pricebook item: " + err.Error())
		}
		created++
	}
	log.Info("pricebook items seeded", "created", created, "skipped", len(rows)-created)

	if _, err := repo.GetSurchargePolicy(ctx); err == nil {
		log.Info("surcharge policy already present, leaving as is")
		return
	} else if !apperr.Is(err, apperr.KindNotFound) {
		log.Error("failed to read surcharge policy", "error", err)
		panic("failed to read surcharge policy: " + err.Error())
	}

	if _, err := repo.UpsertSurchargePolicy(ctx, repository.SurchargePolicy{
		NightPct:   seed.Surcharges.NightPct,
		WeekendPct: seed.Surcharges.WeekendPct,
		UrgentPct:  seed.Surcharges.UrgentPct,
		HolidayPct: seed.Surcharges.HolidayPct,
	}); err != nil {
		log.Error("failed to seed surcharge policy", "error", err)
		panic("failed to seed surcharge policy: " + err.Error())
	}
	log.Info("surcharge policy seeded")
}

// pricebookRows turns seed entries into insertable rows, assigning each a
// fresh primary key.
func pricebookRows(seed pricebookSeed) []repository.Item {
	now := time.Now()
	rows := make([]repository.Item, 0, len(seed.Items))
	for _, item := range seed.Items {
		rows = append(rows, repository.Item{
			ID:                 uuid.New(),
			Code:               item.Code,
			Label:              item.Label,
			Category:           item.Category,
			BasePriceCents:     item.BasePriceCents,
			DurationMinMinutes: item.DurationMinMinutes,
			DurationMaxMinutes: item.DurationMaxMinutes,
			IsActive:           true,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}
	return rows
}

// settingRows returns the default settings with primary keys assigned.
func settingRows() []settingsrepo.Setting {
	rows := settingsservice.DefaultSettings()
	for i := range rows {
		rows[i].ID = uuid.New()
	}
	return rows
}

// loadPricebookSeed reads the yaml seed file, falling back to the built-in
// pricebook when the file is absent.
func loadPricebookSeed(log *logger.Logger) pricebookSeed {
	data, err := os.ReadFile(pricebookSeedPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error("failed to read pricebook seed", "path", pricebookSeedPath, "error", err)
			panic("failed to read pricebook seed: " + err.Error())
		}
		log.Warn("pricebook seed file missing, using built-in pricebook", "path", pricebookSeedPath)
		return builtinPricebookSeed()
	}

	var seed pricebookSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.Error("failed to parse pricebook seed", "path", pricebookSeedPath, "error", err)
		panic("failed to parse pricebook seed: " + err.Error())
	}
	return seed
}

func builtinPricebookSeed() pricebookSeed {
	defaults := pricing.DefaultSurcharges
	seed := pricebookSeed{
		Surcharges: seedSurcharges{
			NightPct:   defaults.NightPct,
			WeekendPct: defaults.WeekendPct,
			UrgentPct:  defaults.UrgentPct,
			HolidayPct: defaults.HolidayPct,
		},
	}
	for _, entry := range pricing.DefaultEntries() {
		seed.Items = append(seed.Items, seedItem{
			Code:               entry.Code,
			Label:              entry.Code,
			Category:           "general",
			BasePriceCents:     entry.BasePriceCents,
			DurationMinMinutes: entry.Duration.Min,
			DurationMaxMinutes: entry.Duration.Max,
		})
	}
	return seed
}

func seedSettings(ctx context.Context, log *logger.Logger, repo *settingsrepo.Repository) {
	for _, setting := range settingRows() {
		if err := repo.InsertMissing(ctx, setting); err != nil {
			log.Error("failed to seed setting", "key", setting.Key, "error", err)
			panic("failed to seed setting: " + err.Error())
		}
	}
	log.Info("site settings seeded")

	overrides := loadSettingsOverrides(log)
	applied := 0
	for key, value := range overrides {
		if err := repo.UpdateValue(ctx, key, value); err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				log.Warn("settings override for unknown key skipped", "key", key)
				continue
			}
			log.Error("failed to apply settings override", "key", key, "error", err)
			panic("failed to apply settings override: " + err.Error())
		}
		applied++
	}
	if applied > 0 {
		log.Info("settings overrides applied", "count", applied)
	}
}

// loadSettingsOverrides reads optional key/value overrides for the defaults.
func loadSettingsOverrides(log *logger.Logger) map[string]string {
	data, err := os.ReadFile(settingsSeedPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error("failed to read settings seed", "path", settingsSeedPath, "error", err)
			panic("failed to read settings seed: " + err.Error())
		}
		return nil
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		log.Error("failed to parse settings seed", "path", settingsSeedPath, "error", err)
		panic("failed to parse settings seed: " + err.Error())
	}
	return overrides
}
