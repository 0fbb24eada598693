package service

import (
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/Glycoguide2025/glycoguide-app-sub002/internal/error_values"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
	})
}

// Closed key sets of the weekly activity grid. Validator tags can't describe
// map keys two levels deep, so the payload walk is manual.
var (
	dayKeys = map[string]struct{}{
		"mon": {}, "tue": {}, "wed": {}, "thu": {}, "fri": {}, "sat": {}, "sun": {},
	}
	categoryKeys = map[string]struct{}{
		"energy": {}, "mindfulness": {}, "movement": {}, "sleep": {}, "hydration": {}, "bm": {},
	}
	glucoseContexts = map[string]struct{}{
		"fasting": {}, "post_meal": {}, "random": {}, "bedtime": {},
	}
	wearableMetrics = map[string]struct{}{
		"steps": {}, "heart_rate": {}, "sleep_minutes": {}, "glucose": {},
	}
)

// normalizeWeekPayload verifies every key of the payload against the closed
// day and category sets. Day keys are accepted case-insensitively and stored
// lowercase. One unknown key anywhere rejects the whole payload.
func normalizeWeekPayload(payload entity.WeekPayload) (entity.WeekPayload, error) {
	normalized := make(entity.WeekPayload, len(payload))
	for day, categories := range payload {
		dayKey := strings.ToLower(day)
		if _, ok := dayKeys[dayKey]; !ok {
			return nil, errorvalues.ErrInvalidPayload
		}
		flags := make(map[string]bool, len(categories))
		for category, done := range categories {
			categoryKey := strings.ToLower(category)
			if _, ok := categoryKeys[categoryKey]; !ok {
				return nil, errorvalues.ErrInvalidPayload
			}
			flags[categoryKey] = done
		}
		normalized[dayKey] = flags
	}
	return normalized, nil
}

func validGlucoseContext(context string) bool {
	_, ok := glucoseContexts[context]
	return ok
}

func validWearableMetric(metric string) bool {
	_, ok := wearableMetrics[metric]
	return ok
}
