// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shelflife/internal/utils"
)

var languageAliases = map[string]string{
	"zh-tw":   "zh_TW",
	"zh_tw":   "zh_TW",
	"zh-hant": "zh_TW",
	"zh":      "zh_TW",
	"en":      "en",
	"en-us":   "en",
	"en-gb":   "en",
}

// I18nMiddleware picks the first Accept-Language entry we have a locale for.
func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(utils.LangContextKey, resolveLanguage(c.GetHeader("Accept-Language"), defaultLang))
		c.Next()
	}
}

func resolveLanguage(header, defaultLang string) string {
	// Handle cases like "zh-TW,zh;q=0.9,en;q=0.8"
	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.Split(part, ";")[0]))
		if lang, ok := languageAliases[tag]; ok {
			return lang
		}
	}
	return defaultLang
}
