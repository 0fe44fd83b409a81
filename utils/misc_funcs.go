package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
)

const DateLayout = "2006-01-02"

func ColorText(text, color string) string {
	return color + text + Reset
}

func ColorStatus(code int) string {
	switch {
	case code >= 500:
		return ColorText(fmt.Sprint(code), Red)
	case code >= 400:
		return ColorText(fmt.Sprint(code), Yellow)
	default:
		return ColorText(fmt.Sprint(code), Green)
	}
}

// GetAPIHitter identifies the caller for request logs.
func GetAPIHitter(c *gin.Context) string {
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return c.ClientIP()
}

// NormalizeName trims, collapses inner spaces and title-cases a person or course name.
func NormalizeName(name string) string {
	// a Caser keeps state and cannot be shared between requests
	return cases.Title(language.BrazilianPortuguese).String(strings.Join(strings.Fields(name), " "))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseDate reads a YYYY-MM-DD date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}
