package locale

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
)

// Domain - имя каталога сообщений (locales/<lang>/LC_MESSAGES/default.po).
const Domain = "default"

// DefaultLanguage - язык исходных msgid. Для него каталог не нужен.
const DefaultLanguage = "en_US"

// Init подключает каталог переводов. Без вызова Init (или для
// DefaultLanguage) T возвращает msgid как есть.
func Init(dir, lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}

	if lang != DefaultLanguage {
		catalogue := filepath.Join(dir, lang, "LC_MESSAGES", Domain+".po")
		if _, err := os.Stat(catalogue); err != nil {
			return fmt.Errorf("locale %q: %w", lang, err)
		}
	}

	gotext.Configure(dir, lang, Domain)

	logger.Log.WithFields(logrus.Fields{
		"component": "locale",
		"lang":      lang,
		"dir":       dir,
	}).Debug("Message catalogue configured.")
	return nil
}

// T переводит msgid и подставляет аргументы в стиле fmt.
func T(msgid string, args ...any) string {
	return gotext.Get(msgid, args...)
}
